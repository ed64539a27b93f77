package domain

import (
	"testing"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorOf(t *testing.T) {
	tests := map[string]string{
		"transfer(address,uint256)": "0xa9059cbb",
		"balanceOf(address)":        "0x70a08231",
		"approve(address,uint256)":  "0x095ea7b3",
		"totalSupply()":             "0x18160ddd",
		"owner()":                   "0x8da5cb5b",
		"facets()":                  "0x7a0ed627",
		"diamondCut((address,uint8,bytes4[])[],address,bytes)": "0x1f931c1c",
	}

	for sig, want := range tests {
		t.Run(sig, func(t *testing.T) {
			assert.Equal(t, want, SelectorOf(sig).String())
		})
	}
}

func TestSelectorExtractor_Extract(t *testing.T) {
	t.Run("declaration order without initializer", func(t *testing.T) {
		extractor := NewSelectorExtractor(ExtractorOptions{})

		got, err := extractor.Extract(ifaceOf("transfer(address,uint256)", "init(address)", "owner()"))
		require.NoError(t, err)
		assert.Equal(t, sels("transfer(address,uint256)", "owner()"), got)
	})

	t.Run("init with other params is kept", func(t *testing.T) {
		extractor := NewSelectorExtractor(ExtractorOptions{})

		got, err := extractor.Extract(ifaceOf("init()", "init(address,bytes)"))
		require.NoError(t, err)
		assert.Equal(t, sels("init()", "init(address,bytes)"), got)
	})

	t.Run("configured initializers", func(t *testing.T) {
		extractor := NewSelectorExtractor(ExtractorOptions{Initializers: []string{"initialize()", "setup(uint256)"}})

		got, err := extractor.Extract(ifaceOf("init(address)", "initialize()", "setup(uint256)", "owner()"))
		require.NoError(t, err)
		assert.Equal(t, sels("init(address)", "owner()"), got)
	})

	t.Run("empty initializer list excludes nothing", func(t *testing.T) {
		extractor := NewSelectorExtractor(ExtractorOptions{Initializers: []string{}})

		got, err := extractor.Extract(ifaceOf("init(address)"))
		require.NoError(t, err)
		assert.Equal(t, sels("init(address)"), got)
	})

	t.Run("empty interface", func(t *testing.T) {
		got, err := NewSelectorExtractor(ExtractorOptions{}).Extract(&m.FacetInterface{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSelectorExtractor_Validation(t *testing.T) {
	unnamed := &m.FacetInterface{Functions: []m.FunctionSignature{
		{Name: "owner"},
		{Name: "", Inputs: []string{"uint256"}},
	}}
	untyped := &m.FacetInterface{Functions: []m.FunctionSignature{
		{Name: "set", Inputs: []string{""}},
		{Name: "owner"},
	}}
	duplicate := ifaceOf("owner()", "owner()")

	tests := []struct {
		name    string
		mode    ValidationMode
		iface   *m.FacetInterface
		want    []m.Selector
		wantErr bool
	}{
		{name: "strict missing interface", mode: ValidationStrict, iface: nil, wantErr: true},
		{name: "lenient missing interface", mode: ValidationLenient, iface: nil, want: []m.Selector{}},
		{name: "strict empty name", mode: ValidationStrict, iface: unnamed, wantErr: true},
		{name: "lenient empty name", mode: ValidationLenient, iface: unnamed, want: sels("owner()")},
		{name: "strict empty type", mode: ValidationStrict, iface: untyped, wantErr: true},
		{name: "lenient empty type", mode: ValidationLenient, iface: untyped, want: sels("owner()")},
		{name: "strict duplicate", mode: ValidationStrict, iface: duplicate, wantErr: true},
		{name: "lenient duplicate", mode: ValidationLenient, iface: duplicate, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := NewSelectorExtractor(ExtractorOptions{Mode: tt.mode})

			got, err := extractor.Extract(tt.iface)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedInterface)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValidationMode(t *testing.T) {
	mode, err := ParseValidationMode("")
	require.NoError(t, err)
	assert.Equal(t, ValidationStrict, mode)

	mode, err = ParseValidationMode("Lenient")
	require.NoError(t, err)
	assert.Equal(t, ValidationLenient, mode)

	_, err = ParseValidationMode("loose")
	assert.Error(t, err)
}

func TestFacetInterfaceFromABI(t *testing.T) {
	entries := []m.ABIEntry{
		{Type: "constructor", Inputs: []m.ABIParam{{Type: "address"}}},
		{Type: "event", Name: "Paused"},
		{Type: "function", Name: "transfer", Inputs: []m.ABIParam{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}}},
		{Type: "function", Name: "diamondCut", Inputs: []m.ABIParam{
			{Name: "_diamondCut", Type: "tuple[]", Components: []m.ABIParam{
				{Name: "facetAddress", Type: "address"},
				{Name: "action", Type: "uint8"},
				{Name: "functionSelectors", Type: "bytes4[]"},
			}},
			{Name: "_init", Type: "address"},
			{Name: "_calldata", Type: "bytes"},
		}},
		{Type: "function", Name: "legacy", Inputs: []m.ABIParam{{Type: "uint"}, {Type: "int[2]"}}},
		{Type: "fallback"},
	}

	iface := FacetInterfaceFromABI(entries)
	require.Len(t, iface.Functions, 3)

	assert.Equal(t, "transfer(address,uint256)", iface.Functions[0].Signature())
	assert.Equal(t, "diamondCut((address,uint8,bytes4[])[],address,bytes)", iface.Functions[1].Signature())
	assert.Equal(t, "legacy(uint256,int256[2])", iface.Functions[2].Signature())

	got, err := NewSelectorExtractor(ExtractorOptions{}).Extract(iface)
	require.NoError(t, err)
	assert.Equal(t, "0x1f931c1c", got[1].String())
}
