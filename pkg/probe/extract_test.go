package probe

import "testing"

func TestExtract(t *testing.T) {
	found := func(v string) Lookup { return Lookup{Value: v, Found: true} }

	tests := []struct {
		name       string
		body       string
		wantParsed bool
		want       Extracted
	}{
		{
			name:       "all fields at top level",
			body:       `{"id":"abc123","pixCode":"000201...","pixQrCode":"data:image/..."}`,
			wantParsed: true,
			want:       Extracted{TransactionID: found("abc123"), PixCode: found("000201..."), PixQRCode: found("data:image/...")},
		},
		{
			name:       "empty object",
			body:       `{}`,
			wantParsed: true,
		},
		{
			name:       "numeric id keeps its JSON spelling",
			body:       `{"id": 1234567890123}`,
			wantParsed: true,
			want:       Extracted{TransactionID: found("1234567890123")},
		},
		{
			name:       "null counts as absent",
			body:       `{"id":null,"pixCode":"abc"}`,
			wantParsed: true,
			want:       Extracted{PixCode: found("abc")},
		},
		{
			name:       "alternate spellings",
			body:       `{"transactionId":"t-1","pix_code":"p","qrCode":"q"}`,
			wantParsed: true,
			want:       Extracted{TransactionID: found("t-1"), PixCode: found("p"), PixQRCode: found("q")},
		},
		{
			name:       "fields nested under data",
			body:       `{"status":"PENDING","data":{"id":"n-1","pixCode":"nested"}}`,
			wantParsed: true,
			want:       Extracted{TransactionID: found("n-1"), PixCode: found("nested")},
		},
		{
			name:       "top level wins over data",
			body:       `{"id":"top","data":{"id":"inner"}}`,
			wantParsed: true,
			want:       Extracted{TransactionID: found("top")},
		},
		{
			name:       "data that is not an object is ignored",
			body:       `{"data":"nope"}`,
			wantParsed: true,
		},
		{name: "array", body: `[{"id":"x"}]`},
		{name: "null document", body: `null`},
		{name: "html", body: `<html></html>`},
		{name: "empty body", body: ``},
		{name: "truncated", body: `{"id":"abc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, parsed := Extract([]byte(tt.body))
			if parsed != tt.wantParsed {
				t.Fatalf("Extract() parsed = %v, want %v", parsed, tt.wantParsed)
			}
			if got != tt.want {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLookupString(t *testing.T) {
	if got := (Lookup{}).String(); got != "not found" {
		t.Errorf("String() = %q, want %q", got, "not found")
	}
	if got := (Lookup{Value: "abc", Found: true}).String(); got != "abc" {
		t.Errorf("String() = %q, want %q", got, "abc")
	}
}

func TestTrialHeader(t *testing.T) {
	trial := Trial{Headers: []Header{
		{Name: "authorization", Value: "first"},
		{Name: "Authorization", Value: "second"},
	}}
	if v, ok := trial.Header("AUTHORIZATION"); !ok || v != "first" {
		t.Errorf("Header() = %q, %v, want first, true", v, ok)
	}
	if _, ok := trial.Header("Accept"); ok {
		t.Error("Header(Accept) found, want missing")
	}
}
