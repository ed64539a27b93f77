package domain

import (
	"strings"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/common"
)

// ifaceOf builds a FacetInterface from canonical signatures like "f(uint256)".
func ifaceOf(signatures ...string) *m.FacetInterface {
	iface := &m.FacetInterface{}

	for _, sig := range signatures {
		open := strings.IndexByte(sig, '(')
		name := sig[:open]
		params := strings.TrimSuffix(sig[open+1:], ")")

		var inputs []string
		if params != "" {
			inputs = strings.Split(params, ",")
		}

		iface.Functions = append(iface.Functions, m.FunctionSignature{Name: name, Inputs: inputs})
	}

	return iface
}

func facetOf(name string, addr byte, signatures ...string) m.Facet {
	return m.Facet{Name: name, Address: addrOf(addr), Interface: ifaceOf(signatures...)}
}

func addrOf(b byte) common.Address {
	var a common.Address
	a[len(a)-1] = b

	return a
}

func sel(sig string) m.Selector {
	return SelectorOf(sig)
}

func sels(signatures ...string) []m.Selector {
	out := make([]m.Selector, 0, len(signatures))
	for _, s := range signatures {
		out = append(out, SelectorOf(s))
	}

	return out
}
