package inventorysdk

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a token. The token is returned, not
// stored; callers decide whether to persist it via a StateProvider.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login",
		LoginRequest{Email: email, Password: password}, &resp, http.StatusOK)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account with the User role.
func (c *Client) Register(ctx context.Context, fullName, email, password string) (*User, error) {
	var resp RegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/register",
		RegisterRequest{FullName: fullName, Email: email, Password: password}, &resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Promote grants the Admin role to the given user. Requires Admin.
func (c *Client) Promote(ctx context.Context, userID string) (*User, error) {
	var resp PromoteResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/promote/"+userID, nil, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout tells the server the session is over. The stored token must be
// cleared separately (StateProvider.MarkLoggedOut).
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, http.StatusOK)
}
