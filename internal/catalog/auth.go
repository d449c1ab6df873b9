package catalog

import (
	"errors"
	"fmt"

	"github.com/bft-labs/payprobe/pkg/probe"
)

// AuthScheme selects how the credential is placed in the Authorization header.
type AuthScheme string

const (
	// AuthRaw sends the credential verbatim.
	AuthRaw AuthScheme = "raw"
	// AuthBearer sends "Bearer <credential>".
	AuthBearer AuthScheme = "bearer"
	// AuthNone sends no Authorization header.
	AuthNone AuthScheme = "none"
)

// ErrUnknownAuthScheme is returned by ParseAuthScheme.
var ErrUnknownAuthScheme = errors.New("payprobe: unknown auth scheme")

// ParseAuthScheme parses a scheme name. The empty string means AuthRaw.
func ParseAuthScheme(s string) (AuthScheme, error) {
	switch AuthScheme(s) {
	case "", AuthRaw:
		return AuthRaw, nil
	case AuthBearer, AuthNone:
		return AuthScheme(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAuthScheme, s)
}

// Headers returns the JSON content headers plus the Authorization header for
// the scheme, in that wire order: Authorization, Content-Type, Accept.
func Headers(scheme AuthScheme, credential string) []probe.Header {
	headers := make([]probe.Header, 0, 3)
	switch scheme {
	case AuthRaw:
		headers = append(headers, probe.Header{Name: probe.HeaderAuthorization, Value: credential})
	case AuthBearer:
		headers = append(headers, probe.Header{Name: probe.HeaderAuthorization, Value: "Bearer " + credential})
	}
	return append(headers,
		probe.Header{Name: probe.HeaderContentType, Value: probe.ContentTypeJSON},
		probe.Header{Name: probe.HeaderAccept, Value: probe.ContentTypeJSON},
	)
}
