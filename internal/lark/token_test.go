package lark

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkbridge-io/options-api/internal/logger"
	"github.com/larkbridge-io/options-api/test/fixtures"
)

func newTestClient(t *testing.T, upstream *fixtures.Upstream) *Client {
	t.Helper()
	return NewClient(logger.Development(), upstream.URL(), Credentials{
		AppID:     "cli_test",
		AppSecret: "test-secret",
	})
}

func TestAccessTokenCaching(t *testing.T) {
	upstream := fixtures.NewUpstream(t)
	upstream.SetToken("t-one")

	client := newTestClient(t, upstream)

	base := time.Unix(1_700_000_000, 0)
	clock := base
	client.tokens.now = func() time.Time { return clock }

	token, err := client.tokens.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-one", token)
	assert.Equal(t, 1, upstream.AuthCalls())

	// At exactly 3000s of age the cached token is still served.
	clock = base.Add(3000 * time.Second)
	upstream.SetToken("t-two")

	token, err = client.tokens.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-one", token)
	assert.Equal(t, 1, upstream.AuthCalls())

	// One second later the window has lapsed and a fresh exchange runs.
	clock = base.Add(3001 * time.Second)

	token, err = client.tokens.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-two", token)
	assert.Equal(t, 2, upstream.AuthCalls())
}

func TestAccessTokenSendsCredentials(t *testing.T) {
	upstream := fixtures.NewUpstream(t)
	client := newTestClient(t, upstream)

	_, err := client.tokens.AccessToken(context.Background())
	require.NoError(t, err)

	body := upstream.LastAuthBody()
	assert.Equal(t, "cli_test", body["app_id"])
	assert.Equal(t, "test-secret", body["app_secret"])
}

func TestAccessTokenExchangeFailures(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*fixtures.Upstream)
	}{
		{
			name: "non-success code",
			configure: func(u *fixtures.Upstream) {
				u.SetAuthReply(99991663, "app not found")
			},
		},
		{
			name: "empty token in reply",
			configure: func(u *fixtures.Upstream) {
				u.SetToken("")
			},
		},
		{
			name: "malformed body",
			configure: func(u *fixtures.Upstream) {
				u.SetAuthBody("<html>bad gateway</html>")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := fixtures.NewUpstream(t)
			tt.configure(upstream)

			client := newTestClient(t, upstream)

			_, err := client.tokens.AccessToken(context.Background())

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
		})
	}
}

func TestAccessTokenTransportFailure(t *testing.T) {
	upstream := fixtures.NewUpstream(t)
	client := newTestClient(t, upstream)
	upstream.Close()

	_, err := client.tokens.AccessToken(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestAccessTokenFailedRefreshThenRecovery(t *testing.T) {
	upstream := fixtures.NewUpstream(t)
	upstream.SetToken("t-one")

	client := newTestClient(t, upstream)

	base := time.Unix(1_700_000_000, 0)
	clock := base
	client.tokens.now = func() time.Time { return clock }

	_, err := client.tokens.AccessToken(context.Background())
	require.NoError(t, err)

	// The window lapses while the upstream is refusing exchanges.
	clock = base.Add(4000 * time.Second)
	upstream.SetAuthReply(1, "temporarily unavailable")

	_, err = client.tokens.AccessToken(context.Background())
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)

	// Once the upstream recovers, the next call exchanges again.
	upstream.SetAuthReply(0, "")
	upstream.SetToken("t-two")

	token, err := client.tokens.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-two", token)
	assert.Equal(t, 3, upstream.AuthCalls())
}
