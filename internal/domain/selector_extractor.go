package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrMalformedInterface is returned when a facet interface cannot be turned
// into selectors under the active validation mode.
var ErrMalformedInterface = errors.New("malformed facet interface")

// DefaultInitializers are excluded from every facet's selector set.
var DefaultInitializers = []string{"init(address)"}

// ValidationMode controls how SelectorExtractor treats incomplete interfaces.
type ValidationMode string

const (
	// ValidationStrict rejects missing interfaces and empty names or types.
	ValidationStrict ValidationMode = "strict"
	// ValidationLenient treats a missing interface as empty and skips unnamed functions.
	ValidationLenient ValidationMode = "lenient"
)

// ParseValidationMode accepts "strict" or "lenient"; empty means strict.
func ParseValidationMode(value string) (ValidationMode, error) {
	switch ValidationMode(strings.ToLower(strings.TrimSpace(value))) {
	case ValidationStrict, "":
		return ValidationStrict, nil
	case ValidationLenient:
		return ValidationLenient, nil
	}

	return ValidationStrict, fmt.Errorf("unknown validation mode %q", value)
}

// ExtractorOptions configures a SelectorExtractor.
type ExtractorOptions struct {
	Mode         ValidationMode
	Initializers []string
}

// SelectorExtractor turns a facet interface into its routable selectors.
type SelectorExtractor interface {
	Extract(iface *m.FacetInterface) ([]m.Selector, error)
	Mode() ValidationMode
}

type selectorExtractor struct {
	mode         ValidationMode
	initializers map[string]struct{}
}

// NewSelectorExtractor returns an extractor. A nil Initializers list falls
// back to DefaultInitializers; an empty non-nil list excludes nothing.
func NewSelectorExtractor(opts ExtractorOptions) SelectorExtractor {
	initializers := opts.Initializers
	if initializers == nil {
		initializers = DefaultInitializers
	}

	excluded := make(map[string]struct{}, len(initializers))
	for _, sig := range initializers {
		excluded[strings.TrimSpace(sig)] = struct{}{}
	}

	mode := opts.Mode
	if mode == "" {
		mode = ValidationStrict
	}

	return &selectorExtractor{mode: mode, initializers: excluded}
}

func (e *selectorExtractor) Mode() ValidationMode {
	return e.mode
}

// Extract returns one selector per function in declaration order, skipping
// initializers. Duplicate signatures fail in every mode.
func (e *selectorExtractor) Extract(iface *m.FacetInterface) ([]m.Selector, error) {
	if iface == nil {
		if e.mode == ValidationLenient {
			return []m.Selector{}, nil
		}

		return nil, fmt.Errorf("%w: interface is missing", ErrMalformedInterface)
	}

	selectors := make([]m.Selector, 0, len(iface.Functions))
	seen := make(map[string]struct{}, len(iface.Functions))

	for i, fn := range iface.Functions {
		if reason := invalidFunction(fn); reason != "" {
			if e.mode == ValidationStrict {
				return nil, fmt.Errorf("%w: function %d: %s", ErrMalformedInterface, i, reason)
			}

			slog.Warn("Skipping invalid function", "index", i, "name", fn.Name, "reason", reason)

			continue
		}

		sig := fn.Signature()
		if _, dup := seen[sig]; dup {
			return nil, fmt.Errorf("%w: duplicate signature %s", ErrMalformedInterface, sig)
		}

		seen[sig] = struct{}{}

		if _, skip := e.initializers[sig]; skip {
			continue
		}

		selectors = append(selectors, SelectorOf(sig))
	}

	return selectors, nil
}

func invalidFunction(fn m.FunctionSignature) string {
	if strings.TrimSpace(fn.Name) == "" {
		return "empty name"
	}

	for j, input := range fn.Inputs {
		if strings.TrimSpace(input) == "" {
			return fmt.Sprintf("parameter %d has no type", j)
		}
	}

	return ""
}

// SelectorOf hashes a canonical signature such as "transfer(address,uint256)".
func SelectorOf(signature string) m.Selector {
	var sel m.Selector

	copy(sel[:], crypto.Keccak256([]byte(signature))[:m.SelectorSize])

	return sel
}

// FacetInterfaceFromABI collects the function entries of an ABI, in order,
// with canonical parameter types.
func FacetInterfaceFromABI(entries []m.ABIEntry) *m.FacetInterface {
	iface := &m.FacetInterface{Functions: []m.FunctionSignature{}}

	for _, entry := range entries {
		if entry.Type != "function" {
			continue
		}

		inputs := make([]string, 0, len(entry.Inputs))
		for _, param := range entry.Inputs {
			inputs = append(inputs, CanonicalType(param))
		}

		iface.Functions = append(iface.Functions, m.FunctionSignature{Name: entry.Name, Inputs: inputs})
	}

	return iface
}

// CanonicalType renders a parameter type the way it appears in a selector
// signature: tuples expand to "(t1,t2)" with their array suffix, and the
// uint/int aliases widen to 256 bits.
func CanonicalType(param m.ABIParam) string {
	if strings.HasPrefix(param.Type, "tuple") {
		parts := make([]string, 0, len(param.Components))
		for _, component := range param.Components {
			parts = append(parts, CanonicalType(component))
		}

		return "(" + strings.Join(parts, ",") + ")" + strings.TrimPrefix(param.Type, "tuple")
	}

	base, suffix := splitArraySuffix(param.Type)
	switch base {
	case "uint", "int":
		base += "256"
	}

	return base + suffix
}

func splitArraySuffix(typ string) (string, string) {
	if i := strings.IndexByte(typ, '['); i >= 0 {
		return typ[:i], typ[i:]
	}

	return typ, ""
}
