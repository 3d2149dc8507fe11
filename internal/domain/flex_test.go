package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlexFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantSet bool
		wantVal string
	}{
		{"plain number", "42.5", true, "42.5"},
		{"negative", "-100", true, "-100"},
		{"empty stays unset", "", false, "0"},
		{"whitespace stays unset", "   ", false, "0"},
		{"garbage resolves to zero", "abc", true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FlexFromString(tt.input)
			assert.Equal(t, tt.wantSet, f.IsSet())
			assert.Equal(t, tt.wantVal, f.Decimal().String())
		})
	}
}

func TestFlexDefaults(t *testing.T) {
	var unset FlexDecimal
	assert.Equal(t, "20", unset.OrFloat(20).String())
	assert.Equal(t, 30, unset.Int(30))

	zero := FlexFromInt(0)
	// An explicit zero is not a missing value.
	assert.Equal(t, "0", zero.OrFloat(20).String())
	assert.Equal(t, 0, zero.Int(30))
}

func TestFlexJSONRoundTrip(t *testing.T) {
	type payload struct {
		Amount FlexDecimal `json:"amount"`
	}

	tests := []struct {
		name    string
		input   string
		wantSet bool
		wantVal string
	}{
		{"number", `{"amount": 1500.25}`, true, "1500.25"},
		{"quoted number", `{"amount": "1500.25"}`, true, "1500.25"},
		{"null", `{"amount": null}`, false, "0"},
		{"missing", `{}`, false, "0"},
		{"empty string", `{"amount": ""}`, false, "0"},
		{"non-numeric string", `{"amount": "n/a"}`, true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.wantSet, p.Amount.IsSet())
			assert.Equal(t, tt.wantVal, p.Amount.Decimal().String())
		})
	}

	t.Run("set value marshals as a string", func(t *testing.T) {
		data, err := json.Marshal(payload{Amount: FlexFromFloat(99.5)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount": "99.5"}`, string(data))
	})

	t.Run("unset value marshals as null", func(t *testing.T) {
		data, err := json.Marshal(payload{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount": null}`, string(data))
	})
}

func TestFlexYAML(t *testing.T) {
	type payload struct {
		Amount FlexDecimal `yaml:"amount"`
	}

	tests := []struct {
		name    string
		input   string
		wantSet bool
		wantVal string
	}{
		{"number", "amount: 1500.25", true, "1500.25"},
		{"quoted number", `amount: "1500.25"`, true, "1500.25"},
		{"null", "amount: null", false, "0"},
		{"missing", "{}", false, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.wantSet, p.Amount.IsSet())
			assert.Equal(t, tt.wantVal, p.Amount.Decimal().String())
		})
	}
}
