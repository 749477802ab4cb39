/*
Package inventorysdk provides a client SDK for the inventory service.

# Overview

The package is organized around four cooperating pieces:

  - TokenStore: durable storage for the raw JWT (FileTokenStore survives
    process restarts, MemoryTokenStore is for tests)
  - StateProvider: derives the current authentication state from the store
    and notifies subscribers when it changes
  - BearerTransport: an http.RoundTripper that attaches the stored token as
    an Authorization header on every outgoing request
  - Client: a typed API client covering auth, product and supplier endpoints

Typical wiring:

	store, err := inventorysdk.NewFileTokenStore("/home/me/.invctl/token")
	if err != nil {
		log.Fatal(err)
	}
	state := inventorysdk.NewStateProvider(store)
	client := inventorysdk.NewClient("http://localhost:8080", store)

	token, err := client.Login(ctx, "admin@example.com", "Admin123!")
	if err != nil {
		log.Fatal(err)
	}
	state.MarkAuthenticated(token)

	products, err := client.ListProducts(ctx, 1, 10)

# Anonymous use

Catalog reads work without a token. When the store is empty the transport
sends requests without an Authorization header and the server serves public
endpoints normally.

# Error handling

API failures are returned as *APIError carrying the server's error code and
HTTP status. Sentinel errors ErrUnauthorized, ErrForbidden and ErrNotFound
match via errors.Is for the common cases:

	_, err := client.CreateProduct(ctx, req)
	if errors.Is(err, inventorysdk.ErrForbidden) {
		// signed in but not an Admin
	}

# Claims

DecodeClaims inspects a token's payload without verifying its signature.
It is strictly a client-side convenience (showing the signed-in user,
deciding whether to render admin controls); the server always re-verifies.
Malformed input yields zero claims rather than an error, so a corrupt
stored token simply degrades to the anonymous state.
*/
package inventorysdk
