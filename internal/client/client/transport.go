package client

import (
	"context"
	"net/http"
)

// TokenSource provides the current bearer token. An empty string means no
// token is stored and the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) string
}

// AuthTransport wraps every outgoing request: when a token is present it is
// attached as a bearer credential, and an authentication-rejected response
// triggers the OnAuthRejected hook (navigation back to the login view)
// before the response is passed through to the caller unchanged. The
// transport observes and redirects but never swallows the failure.
type AuthTransport struct {
	Base   http.RoundTripper
	Tokens TokenSource

	// OnAuthRejected is invoked on every 401 response. May be nil.
	OnAuthRejected func()
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// The token is re-read from storage on every request: session state can
	// change at any time via logout elsewhere in the application.
	if tok := t.Tokens.Token(req.Context()); tok != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.OnAuthRejected != nil {
		t.OnAuthRejected()
	}

	return resp, nil
}
