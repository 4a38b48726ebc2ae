package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rajat290/fitpro-connect/auth"
	"github.com/rajat290/fitpro-connect/models"
)

// Full journey: a member registers, logs in, reads their own record,
// and is turned away from the staff-only member listing.
func TestMemberJourney(t *testing.T) {
	authHandler, svc, repo := newTestHandler(t)
	userHandler := &UserHandler{Repo: repo}

	_, err := svc.Register(context.Background(), auth.RegisterInput{
		Email: "alice@example.com", Password: "secret123", Role: "member",
	})
	require.NoError(t, err)

	// login
	rec := postJSON(t, authHandler.Login, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Role models.Role `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, models.RoleMember, resp.Data.User.Role)
	token := resp.Data.AccessToken

	// wrong password stays generic
	bad := postJSON(t, authHandler.Login, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, bad.Code)
	require.Contains(t, bad.Body.String(), "Invalid credentials")

	issuer := svc.Issuer

	// own record is readable with the token
	me := RequireAuth(issuer)(userHandler.Me)
	meRec := doGet(me, "Bearer "+token)
	require.Equal(t, http.StatusOK, meRec.Code)
	require.Contains(t, meRec.Body.String(), "alice@example.com")

	// staff-only listing answers 403 to a member token, 401 to none
	staffList := RequireAuth(issuer, models.RoleAdmin, models.RoleTrainer)(userHandler.ListMembers)
	forbidden := doGet(staffList, "Bearer "+token)
	require.Equal(t, http.StatusForbidden, forbidden.Code)

	unauthenticated := doGet(staffList, "")
	require.Equal(t, http.StatusUnauthorized, unauthenticated.Code)
	require.NotEqual(t, forbidden.Code, unauthenticated.Code)
}
