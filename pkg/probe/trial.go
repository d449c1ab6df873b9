package probe

import "strings"

// Header names the runner and the built-in catalogs care about.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"

	ContentTypeJSON = "application/json"
)

// Header is a single request header. Trials keep headers as an ordered list
// so that a report reads the same way the trial was written.
type Header struct {
	Name  string
	Value string
}

// Trial is one candidate request configuration.
//
// Body may be any value the JSON encoder accepts. Structs encode their
// fields in declaration order and json.RawMessage is sent verbatim, so both
// keep the field order of the experiment. The runner never modifies a Trial.
type Trial struct {
	Label   string
	Headers []Header
	Body    any
}

// Header returns the value of the first header matching name
// (case-insensitive) and whether it was present.
func (t Trial) Header(name string) (string, bool) {
	for _, h := range t.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}
