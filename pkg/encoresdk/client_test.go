package encoresdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcertQueryEncode(t *testing.T) {
	t.Parallel()

	require.Empty(t, ConcertQuery{}.encode())

	lo, hi := 10.0, 59.99
	q := ConcertQuery{
		Search:   "night",
		Genres:   []string{"Rock", "Punk"},
		Country:  "UK",
		MinPrice: &lo,
		MaxPrice: &hi,
		OrderBy:  "Price",
		Page:     2,
		Limit:    5,
	}
	enc := q.encode()
	require.Contains(t, enc, "genre=Rock%2CPunk")
	require.Contains(t, enc, "minPrice=10")
	require.Contains(t, enc, "maxPrice=59.99")
	require.Contains(t, enc, "orderBy=Price")
	require.Contains(t, enc, "page=2")
	require.Contains(t, enc, "limit=5")
	require.Contains(t, enc, "search=night")
	require.NotContains(t, enc, "city=")
}

func TestErrorParsing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/concerts/7":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Concert not found"}`))
		case "/api/concerts":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":{"name":"Event name is required"}}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`upstream down`))
		}
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL + "/")
	ctx := context.Background()

	_, err := client.GetConcert(ctx, 7)
	require.True(t, IsNotFound(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Concert not found", apiErr.Message)

	_, err = client.NewSessionFromToken("tok").CreateConcert(ctx, ConcertRequest{})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Event name is required", apiErr.Fields["name"])

	_, err = client.GetLiveness(ctx)
	require.Equal(t, http.StatusBadGateway, StatusOf(err))
	require.Contains(t, err.Error(), "upstream down")
}

func TestTwoStageLogin(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(LoginResponse{
				RequireTwoFactor: true,
				UserID:           "u1",
				TempToken:        "partial",
			})
		case "/api/auth/2fa/login":
			var req TwoFactorLoginRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.UserID != "u1" || req.TempToken != "partial" || req.Token != "123456" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Invalid verification code"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(AuthResponse{User: User{ID: "u1", TwoFactorEnabled: true}, Token: "full"})
		case "/api/auth/me":
			if r.Header.Get("Authorization") != "Bearer full" {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"Forbidden: Invalid token"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(MeResponse{User: User{ID: "u1", Name: "Sam"}})
		}
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	ctx := context.Background()

	_, err := client.AuthenticateWithPassword(ctx, "a@x.com", "pw")
	var tfa *TwoFactorRequiredError
	require.ErrorAs(t, err, &tfa)
	require.Equal(t, "u1", tfa.Challenge.UserID)

	_, err = client.CompleteTwoFactorLogin(ctx, tfa.Challenge, "000000")
	require.True(t, IsUnauthorized(err))

	session, err := client.CompleteTwoFactorLogin(ctx, tfa.Challenge, "123456")
	require.NoError(t, err)
	require.Equal(t, "full", session.Token())
	require.True(t, session.User().TwoFactorEnabled)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "Sam", me.Name)
	require.Equal(t, "Sam", session.User().Name)

	_, err = client.NewSessionFromToken("bogus").Me(ctx)
	require.True(t, IsUnauthorized(err))
}
