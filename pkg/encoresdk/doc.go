/*
Package encoresdk provides a client for the encore concert service.

# SDKClient vs Session

SDKClient covers the public endpoints (health, concert listing, analytics,
filters) and the login flow. Session wraps a fully authenticated token and
covers profile, two-factor management and concert mutations.

	client := encoresdk.NewSDKClient("http://localhost:8080")

	page, err := client.ListConcerts(ctx, encoresdk.ConcertQuery{
		Genres:  []string{"Rock", "Punk"},
		OrderBy: "Price",
	})

# Two-stage login

Accounts with two-factor authentication answer the password step with a
challenge rather than a token:

	res, err := client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	var session *encoresdk.Session
	if res.RequireTwoFactor {
		session, err = client.CompleteTwoFactorLogin(ctx, res, code)
	} else {
		session = client.NewSessionFromToken(res.Token)
	}

AuthenticateWithPassword returns a *TwoFactorRequiredError holding the same
challenge when a second factor is needed.

# Errors

Non-success responses surface as *APIError carrying the status code and the
server message. Rejected concert payloads fill APIError.Fields instead.
*/
package encoresdk
