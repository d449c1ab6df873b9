package probe

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Candidate keys, in lookup order. Gateways disagree on naming, so a few
// spellings are tried before giving up.
var (
	transactionIDKeys = []string{"id", "transactionId", "transaction_id"}
	pixCodeKeys       = []string{"pixCode", "pix_code", "copyPaste"}
	pixQRCodeKeys     = []string{"pixQrCode", "pix_qr_code", "qrCode"}
)

// nestedKey is searched when a key is missing at the top level.
const nestedKey = "data"

// Extract parses body as a JSON object and looks up the transaction id, the
// PIX code and the PIX QR-code payload. It returns false when body is not a
// JSON object; a missing key is not an error.
func Extract(body []byte) (Extracted, bool) {
	doc, ok := decodeObject(body)
	if !ok {
		return Extracted{}, false
	}

	var nested map[string]json.RawMessage
	if raw, ok := doc[nestedKey]; ok {
		nested, _ = decodeObject(raw)
	}

	return Extracted{
		TransactionID: lookup(doc, nested, transactionIDKeys),
		PixCode:       lookup(doc, nested, pixCodeKeys),
		PixQRCode:     lookup(doc, nested, pixQRCodeKeys),
	}, true
}

func decodeObject(raw []byte) (map[string]json.RawMessage, bool) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, false
	}
	return doc, true
}

func lookup(doc, nested map[string]json.RawMessage, keys []string) Lookup {
	for _, m := range []map[string]json.RawMessage{doc, nested} {
		for _, k := range keys {
			if v, ok := render(m[k]); ok {
				return Lookup{Value: v, Found: true}
			}
		}
	}
	return Lookup{}
}

// render turns a JSON value into display text. Strings are unquoted, other
// values keep their JSON spelling. Null and absent values are not found.
func render(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	return string(raw), true
}
