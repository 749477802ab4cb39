package inventorysdk

import (
	"sync"
	"time"
)

// AuthState is the derived authentication state of the client. It is a pure
// function of the stored token; no network calls are involved.
type AuthState struct {
	Authenticated bool
	Subject       string
	Roles         []string
	ExpiresAt     time.Time
}

// IsAdmin reports whether the state carries the Admin role.
func (s AuthState) IsAdmin() bool {
	for _, r := range s.Roles {
		if r == "Admin" {
			return true
		}
	}
	return false
}

// StateProvider observes a TokenStore and derives the current AuthState.
// Expired or undecodable tokens derive the anonymous state.
type StateProvider struct {
	store TokenStore
	now   func() time.Time

	mu   sync.Mutex
	subs subscribers
}

// NewStateProvider creates a provider observing the given store.
func NewStateProvider(store TokenStore) *StateProvider {
	p := &StateProvider{store: store, now: time.Now}
	store.Subscribe(p.subs.notify)
	return p
}

// Current derives the state from the stored token.
func (p *StateProvider) Current() AuthState {
	token := p.store.Get()
	if token == "" {
		return AuthState{}
	}

	claims := DecodeClaims(token)
	if claims.Subject == "" || claims.Expired(p.now()) {
		return AuthState{}
	}

	return AuthState{
		Authenticated: true,
		Subject:       claims.Subject,
		Roles:         claims.Roles,
		ExpiresAt:     claims.ExpiresAt,
	}
}

// Subscribe registers a callback invoked whenever the underlying store
// changes. The returned function cancels the subscription.
func (p *StateProvider) Subscribe(fn func()) (cancel func()) {
	return p.subs.add(fn)
}

// MarkAuthenticated stores the token, transitioning to the authenticated
// state if the token is live.
func (p *StateProvider) MarkAuthenticated(token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Set(token)
}

// MarkLoggedOut clears the stored token. Calling it while already logged
// out is harmless.
func (p *StateProvider) MarkLoggedOut() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Clear()
}
