package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FlexDecimal is a numeric input field that accepts JSON/YAML numbers or
// strings and remembers whether a value was supplied at all. Empty or missing
// values stay unset so documented defaults can apply; a non-empty string that
// fails to parse resolves to zero rather than erroring.
type FlexDecimal struct {
	value decimal.Decimal
	set   bool
}

// Flex creates a set FlexDecimal from a decimal.
func Flex(d decimal.Decimal) FlexDecimal {
	return FlexDecimal{value: d, set: true}
}

// FlexFromFloat creates a set FlexDecimal from a float64.
func FlexFromFloat(f float64) FlexDecimal {
	return Flex(decimal.NewFromFloat(f))
}

// FlexFromInt creates a set FlexDecimal from an int64.
func FlexFromInt(i int64) FlexDecimal {
	return Flex(decimal.NewFromInt(i))
}

// FlexFromString parses a string input. Empty strings stay unset; anything
// non-numeric resolves to zero.
func FlexFromString(s string) FlexDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return FlexDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Flex(decimal.Zero)
	}
	return Flex(d)
}

// Decimal returns the held value, zero if unset.
func (f FlexDecimal) Decimal() decimal.Decimal {
	return f.value
}

// IsSet reports whether a value was supplied.
func (f FlexDecimal) IsSet() bool {
	return f.set
}

// Or returns the held value, or def when no value was supplied.
func (f FlexDecimal) Or(def decimal.Decimal) decimal.Decimal {
	if !f.set {
		return def
	}
	return f.value
}

// OrFloat is Or with a float64 default.
func (f FlexDecimal) OrFloat(def float64) decimal.Decimal {
	return f.Or(decimal.NewFromFloat(def))
}

// Int returns the value truncated to an int, or def when unset.
func (f FlexDecimal) Int(def int) int {
	if !f.set {
		return def
	}
	return int(f.value.IntPart())
}

// MarshalJSON emits the value as a quoted decimal string, or null when unset.
func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return []byte(`"` + f.value.String() + `"`), nil
}

// UnmarshalJSON accepts numbers, quoted numbers, empty strings and null.
func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = FlexDecimal{}
		return nil
	}
	s = strings.Trim(s, `"`)
	*f = FlexFromString(s)
	return nil
}

// MarshalYAML emits the value as a decimal string, or nil when unset.
func (f FlexDecimal) MarshalYAML() (interface{}, error) {
	if !f.set {
		return nil, nil
	}
	return f.value.String(), nil
}

// UnmarshalYAML accepts scalar numbers, strings and null nodes.
func (f *FlexDecimal) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*f = FlexDecimal{}
		return nil
	}
	*f = FlexFromString(node.Value)
	return nil
}
