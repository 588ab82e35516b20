package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBotAPIStub(t *testing.T, memberStatus string, canInvite bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/bot123456:ABC/") {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"ok":false,"description":"Unauthorized"}`)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			fmt.Fprint(w, `{"ok":true,"result":{"id":123456,"username":"my_project_bot"}}`)
		case strings.HasSuffix(r.URL.Path, "/getChat"):
			assert.Equal(t, "-1001234567890", r.URL.Query().Get("chat_id"))
			fmt.Fprint(w, `{"ok":true,"result":{"id":-1001234567890,"type":"channel","title":"My Channel"}}`)
		case strings.HasSuffix(r.URL.Path, "/getChatMember"):
			assert.Equal(t, "-1001234567890", r.URL.Query().Get("chat_id"))
			assert.Equal(t, "123456", r.URL.Query().Get("user_id"))
			fmt.Fprintf(w, `{"ok":true,"result":{"status":%q,"can_invite_users":%v}}`, memberStatus, canInvite)
		default:
			t.Fatalf("unexpected bot API method: %s", r.URL.Path)
		}
	}))
}

func TestCheckBotChannelAdminWithInviteRights(t *testing.T) {
	server := newBotAPIStub(t, "administrator", true)
	defer server.Close()

	client := NewClient(server.URL)
	check, err := client.CheckBotChannel(context.Background(), "123456:ABC", "-1001234567890")

	require.NoError(t, err)
	assert.Equal(t, "my_project_bot", check.BotUsername)
	assert.Equal(t, "My Channel", check.ChannelTitle)
	assert.True(t, check.CanInviteLinks)
}

func TestCheckBotChannelPlainMemberHasNoCapability(t *testing.T) {
	server := newBotAPIStub(t, "member", false)
	defer server.Close()

	client := NewClient(server.URL)
	check, err := client.CheckBotChannel(context.Background(), "123456:ABC", "-1001234567890")

	require.NoError(t, err)
	assert.False(t, check.CanInviteLinks)
}

func TestCheckBotChannelAdminWithoutInviteRights(t *testing.T) {
	server := newBotAPIStub(t, "administrator", false)
	defer server.Close()

	client := NewClient(server.URL)
	check, err := client.CheckBotChannel(context.Background(), "123456:ABC", "-1001234567890")

	require.NoError(t, err)
	assert.False(t, check.CanInviteLinks)
}

func TestCheckBotChannelRejectedToken(t *testing.T) {
	server := newBotAPIStub(t, "administrator", true)
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CheckBotChannel(context.Background(), "bad-token", "-1001234567890")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unauthorized", apiErr.Description)
}

func TestCheckBotChannelChatNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			fmt.Fprint(w, `{"ok":true,"result":{"id":123456,"username":"my_project_bot"}}`)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"ok":false,"description":"Bad Request: chat not found"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CheckBotChannel(context.Background(), "123456:ABC", "@nope")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad Request: chat not found", apiErr.Description)
}

func TestCheckBotChannelTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := NewClient(server.URL)
	_, err := client.CheckBotChannel(context.Background(), "123456:ABC", "-100123")

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failure is not an API rejection")
}
