package options_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkbridge-io/options-api/internal/options"
)

// decodeValue parses raw JSON the way the upstream client does, with
// number literals preserved.
func decodeValue(t *testing.T, raw string) any {
	t.Helper()

	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var v any
	require.NoError(t, decoder.Decode(&v))
	return v
}

func TestNormalizeFieldValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		skip bool
	}{
		{name: "plain string", raw: `"Red"`, want: "Red"},
		{name: "empty string skips", raw: `""`, skip: true},
		{name: "null skips", raw: `null`, skip: true},
		{name: "integer", raw: `42`, want: "42"},
		{name: "large integer keeps literal", raw: `100000000`, want: "100000000"},
		{name: "decimal", raw: `2.5`, want: "2.5"},
		{name: "boolean true", raw: `true`, want: "true"},
		{name: "boolean false", raw: `false`, want: "false"},
		{name: "array of strings joins raw", raw: `["A","A","B"]`, want: "A, A, B"},
		{name: "array of named objects", raw: `[{"name":"Alice"},{"name":"Bob"}]`, want: "Alice, Bob"},
		{name: "array mixing named and scalars", raw: `[{"name":"Alice"},"guest",7]`, want: "Alice, guest, 7"},
		{name: "array with null element", raw: `[null,"X"]`, want: "null, X"},
		{name: "array with unnamed object", raw: `[{"id":"u1"}]`, want: `{"id":"u1"}`},
		{name: "empty array yields empty value", raw: `[]`, want: ""},
		{name: "named object", raw: `{"name":"Widget"}`, want: "Widget"},
		{name: "named object with numeric name", raw: `{"name":7}`, want: "7"},
		{name: "object with null name falls through", raw: `{"name":null}`, want: `{"name":null}`},
		{name: "unnamed object", raw: `{"id":"rec9"}`, want: `{"id":"rec9"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := decodeValue(t, tt.raw)

			got, ok := options.NormalizeFieldValue(value)
			if tt.skip {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.want, got)

			// The same raw value always normalizes to the same string.
			again, okAgain := options.NormalizeFieldValue(value)
			require.True(t, okAgain)
			assert.Equal(t, got, again)
		})
	}
}

func TestNormalizeMissingFieldSkips(t *testing.T) {
	// A record that lacks the requested field entirely decodes to nil.
	_, ok := options.NormalizeFieldValue(nil)
	assert.False(t, ok)
}
