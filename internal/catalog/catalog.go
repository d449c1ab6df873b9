package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bft-labs/payprobe/pkg/probe"
)

// Catalog names.
const (
	Formats = "formats"
	Amounts = "amounts"
	All     = "all"
)

// ErrUnknownCatalog is returned by Build for names outside Names().
var ErrUnknownCatalog = errors.New("payprobe: unknown catalog")

type builder func(p Profile, credential string) []probe.Trial

var catalogs = map[string]builder{
	Formats: formatTrials,
	Amounts: amountTrials,
	All: func(p Profile, credential string) []probe.Trial {
		return append(formatTrials(p, credential), amountTrials(p, credential)...)
	},
}

// Names lists the available catalogs, sorted.
func Names() []string {
	names := make([]string, 0, len(catalogs))
	for n := range catalogs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build returns the trials of the named catalog for profile p, authorized
// with credential.
func Build(name string, p Profile, credential string) ([]probe.Trial, error) {
	b, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownCatalog, name, Names())
	}
	return b(p, credential), nil
}

// formatTrials compares body shapes and Authorization schemes for one order.
func formatTrials(p Profile, credential string) []probe.Trial {
	raw := Headers(AuthRaw, credential)
	return []probe.Trial{
		{Label: "flat body, raw key", Headers: raw, Body: p.Flat()},
		{Label: "customer object, raw key", Headers: raw, Body: p.Nested()},
		{Label: "minimal body, raw key", Headers: raw, Body: p.Minimal()},
		{Label: "flat body, bearer key", Headers: Headers(AuthBearer, credential), Body: p.Flat()},
	}
}

// amountTrials sends the flat shape with a well-formed CPF, at the profile
// amount and at a small one, to separate CPF rejections from amount limits.
func amountTrials(p Profile, credential string) []probe.Trial {
	raw := Headers(AuthRaw, credential)

	valid := p
	valid.CPF = ValidCPF

	small := valid
	small.Amount = SmallAmount

	return []probe.Trial{
		{Label: fmt.Sprintf("valid cpf, amount %d", valid.Amount), Headers: raw, Body: valid.Flat()},
		{Label: fmt.Sprintf("valid cpf, amount %d", small.Amount), Headers: raw, Body: small.Flat()},
	}
}
