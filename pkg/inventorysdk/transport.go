package inventorysdk

import "net/http"

// BearerTransport is an http.RoundTripper that attaches the stored token
// as a bearer Authorization header. When the store is empty the request
// passes through untouched, so anonymous reads keep working.
type BearerTransport struct {
	Store TokenStore
	// Base is the underlying transport. Nil means http.DefaultTransport.
	Base http.RoundTripper
}

// NewBearerTransport wraps the default transport with token attachment.
func NewBearerTransport(store TokenStore) *BearerTransport {
	return &BearerTransport{Store: store}
}

// RoundTrip implements http.RoundTripper. The request is cloned before
// mutation, per the RoundTripper contract.
func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	token := ""
	if t.Store != nil {
		token = t.Store.Get()
	}
	if token == "" {
		return base.RoundTrip(req)
	}

	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return base.RoundTrip(cloned)
}
