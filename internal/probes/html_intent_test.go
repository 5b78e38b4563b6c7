package probes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubFetcher struct {
	body string
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.body, nil
}

func newIntentEngine(fetcher *stubFetcher) *Engine {
	return NewEngine(nil, fetcher, time.Second, zap.NewNop())
}

func TestHTMLIntent(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{
			"password input with login wording",
			`<html><body><form>Login<input type="password" name="pw"></form></body></html>`,
			1,
		},
		{
			"single quoted password attribute",
			`<html><body>Please verify<input type='password'></body></html>`,
			1,
		},
		{
			"password input without wording",
			`<html><body><input type="password"></body></html>`,
			1, // the attribute marker itself contains "password"
		},
		{
			"wording without password input",
			`<html><body>Please login to continue</body></html>`,
			0,
		},
		{
			"plain page",
			`<html><body>Nothing to see here</body></html>`,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newIntentEngine(&stubFetcher{body: tt.body})
			out := e.HTMLIntent(context.Background(), "http://example.com/")
			assert.True(t, out.Resolved)
			assert.Equal(t, tt.want, out.Value)
		})
	}
}

func TestHTMLIntentFetchFailure(t *testing.T) {
	e := newIntentEngine(&stubFetcher{err: errors.New("connection refused")})
	out := e.HTMLIntent(context.Background(), "http://unreachable.example/")
	assert.False(t, out.Resolved)
	assert.Equal(t, 0, out.OrDefault())
}
