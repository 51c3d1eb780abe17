package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkbridge-io/options-api/internal/config"
)

func TestSetupDisabled(t *testing.T) {
	tel, err := Setup(context.Background(), config.OTelConfig{ServiceName: "lark-options-api"})

	require.NoError(t, err)
	assert.Nil(t, tel)

	// Shutdown on the nil result is a no-op, so callers can defer it
	// unconditionally.
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetupEnabled(t *testing.T) {
	tel, err := Setup(context.Background(), config.OTelConfig{
		Endpoint:       "http://127.0.0.1:4318",
		ServiceName:    "lark-options-api",
		ServiceVersion: "test",
	})

	require.NoError(t, err)
	require.NotNil(t, tel)

	// No spans were recorded, so shutdown flushes nothing and succeeds
	// without a collector listening.
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{name: "empty", in: "", want: map[string]string{}},
		{name: "single pair", in: "x-team=forms", want: map[string]string{"x-team": "forms"}},
		{
			name: "multiple pairs with spaces",
			in:   "x-team=forms, x-env = staging",
			want: map[string]string{"x-team": "forms", "x-env": "staging"},
		},
		{name: "pair without value dropped", in: "malformed", want: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseHeaders(tt.in))
		})
	}
}
