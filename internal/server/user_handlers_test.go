package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfiles(t *testing.T) {
	app, _ := newTestApp(t)
	aliceToken := signup(t, app, "alice")
	signup(t, app, "bob")

	status, body := request(t, app, http.MethodGet, "/api/users/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body["username"])

	// Any authenticated user can view another profile.
	status, body = request(t, app, http.MethodGet, "/api/users/bob", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bob", body["username"])
	assert.NotContains(t, body, "hashed_password")

	status, _ = request(t, app, http.MethodGet, "/api/users/ghost", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListUsers(t *testing.T) {
	app, _ := newTestApp(t)
	aliceToken := signup(t, app, "alice")
	signup(t, app, "bob")
	signup(t, app, "carol")

	status, users := requestList(t, app, http.MethodGet, "/api/users/", aliceToken)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0]["username"])

	status, users = requestList(t, app, http.MethodGet, "/api/users/?limit=1&offset=1", aliceToken)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0]["username"])
}

func TestUpdateUserMergesFields(t *testing.T) {
	app, _ := newTestApp(t)
	aliceToken := signup(t, app, "alice")

	status, body := request(t, app, http.MethodPatch, "/api/users/alice", aliceToken, map[string]any{
		"bio": "new bio",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "new bio", body["bio"])
	// Untouched fields survive the patch.
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Equal(t, float64(48197), body["location"])
	assert.Equal(t, float64(25), body["friend_radius"])
}

func TestUpdateUserAccessControl(t *testing.T) {
	app, _ := newTestApp(t)
	signup(t, app, "alice")
	bobToken := signup(t, app, "bob")
	adminToken := signupAdmin(t, app, "root")

	// A non-admin cannot touch someone else's profile.
	status, _ := request(t, app, http.MethodPatch, "/api/users/alice", bobToken, map[string]any{
		"bio": "defaced",
	})
	assert.Equal(t, http.StatusForbidden, status)

	// An admin can.
	status, body := request(t, app, http.MethodPatch, "/api/users/alice", adminToken, map[string]any{
		"bio": "moderated",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "moderated", body["bio"])
}

func TestDeleteUser(t *testing.T) {
	app, _ := newTestApp(t)
	aliceToken := signup(t, app, "alice")
	bobToken := signup(t, app, "bob")

	// Alice and bob exchange a message, then alice deletes her account.
	status, _ := request(t, app, http.MethodPost, "/api/messages/", aliceToken, map[string]any{
		"to_user": "bob",
		"text":    "goodbye",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = request(t, app, http.MethodDelete, "/api/users/bob", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = request(t, app, http.MethodDelete, "/api/users/alice", aliceToken, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = request(t, app, http.MethodGet, "/api/users/alice", bobToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// The exchanged message went with her.
	status, messages := requestList(t, app, http.MethodGet, "/api/messages/", bobToken)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, messages)
}
