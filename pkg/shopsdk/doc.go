/*
Package shopsdk provides a client SDK for the Tomato market REST backend.

# SDKClient vs Session

The package is organized around two types:

  - SDKClient: unauthenticated operations (login) and the factory for sessions
  - Session: authenticated operations; every request carries the session credential

A Session is the explicit authentication context for a sequence of calls. It is
created from a stored access token and injected wherever backend access is
needed, instead of mutating shared request defaults:

	client := shopsdk.NewSDKClient("https://api.tomato.example", 10*time.Second)

	token, err := client.Login(ctx, "alice", "secret")
	session := client.NewSession(token)

	profile, err := session.GetProfile(ctx)
	seller, err := session.GetSellerProfile(ctx, profile.ID)

	err = session.PatchProfile(ctx, profile.ID, shopsdk.PatchProfileRequest{Nickname: "Al"})
	err = session.PatchSellerProfile(ctx, profile.ID, shopsdk.PatchSellerProfileRequest{Introduce: "hi"})

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status and the
backend message:

	var apiErr *shopsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// credential rejected; send the user back to login
	}

Transport failures (timeouts, refused connections) are returned wrapped and are
not *APIError.

# Credentials

Tokens are treated as opaque. CredentialExpired peeks at tokens that happen to
be JWTs (without verifying them) so callers can drop credentials whose exp
claim has passed before issuing any request.
*/
package shopsdk
