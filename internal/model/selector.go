package model

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// SelectorSize is the width of a function selector in bytes.
const SelectorSize = 4

// Selector is the 4-byte fingerprint a diamond uses to route a call to a facet.
type Selector [SelectorSize]byte

// String renders the selector as 0x-prefixed lowercase hex.
func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// MarshalText implements encoding.TextMarshaler.
func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Selector) UnmarshalText(text []byte) error {
	parsed, err := ParseSelector(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// ParseSelector decodes a selector from hex, with or without the 0x prefix.
func ParseSelector(value string) (Selector, error) {
	var sel Selector

	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(value), "0x"), "0X")
	if len(raw) != SelectorSize*2 {
		return sel, fmt.Errorf("selector %q: want %d hex digits, got %d", value, SelectorSize*2, len(raw))
	}

	if _, err := hex.Decode(sel[:], []byte(raw)); err != nil {
		return sel, fmt.Errorf("selector %q: %w", value, err)
	}

	return sel, nil
}

// SelectorStrings renders a selector list for logs and reports.
func SelectorStrings(selectors []Selector) []string {
	out := make([]string, 0, len(selectors))
	for _, sel := range selectors {
		out = append(out, sel.String())
	}

	return out
}
