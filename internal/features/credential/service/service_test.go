package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subhub-backend/internal/features/credential/models"
	"subhub-backend/internal/platform/telegram"
)

type stubAuthority struct {
	calls int
	check *telegram.BotChannelCheck
	err   error
}

func (s *stubAuthority) CheckBotChannel(ctx context.Context, botToken, channelID string) (*telegram.BotChannelCheck, error) {
	s.calls++
	return s.check, s.err
}

func TestValidateEmptyInputsSkipNetwork(t *testing.T) {
	cases := []models.ValidationRequest{
		{BotToken: "", ChannelID: "-100123"},
		{BotToken: "123:abc", ChannelID: ""},
		{BotToken: "   ", ChannelID: "-100123"},
		{BotToken: "123:abc", ChannelID: "\t "},
	}

	for _, req := range cases {
		authority := &stubAuthority{}
		svc := NewCredentialService(authority)

		verdict := svc.Validate(context.Background(), req)

		assert.False(t, verdict.Valid)
		assert.NotEmpty(t, verdict.Error)
		assert.Nil(t, verdict.Subject)
		assert.Equal(t, 0, authority.calls, "empty input must not reach the authority")
	}
}

func TestValidateSuccess(t *testing.T) {
	authority := &stubAuthority{
		check: &telegram.BotChannelCheck{
			BotUsername:    "my_project_bot",
			ChannelTitle:   "My Channel",
			CanInviteLinks: true,
		},
	}
	svc := NewCredentialService(authority)

	verdict := svc.Validate(context.Background(), models.ValidationRequest{
		BotToken:  "123456:ABC",
		ChannelID: "-1001234567890",
	})

	require.True(t, verdict.Valid)
	assert.Empty(t, verdict.Error)
	require.NotNil(t, verdict.Subject)
	assert.Equal(t, "my_project_bot", verdict.Subject.BotUsername)
	assert.Equal(t, "My Channel", verdict.Subject.ChannelTitle)
	assert.Equal(t, 1, authority.calls)
}

func TestValidateBotLacksPermission(t *testing.T) {
	authority := &stubAuthority{
		check: &telegram.BotChannelCheck{
			BotUsername:    "my_project_bot",
			ChannelTitle:   "My Channel",
			CanInviteLinks: false,
		},
	}
	svc := NewCredentialService(authority)

	verdict := svc.Validate(context.Background(), models.ValidationRequest{
		BotToken:  "bad",
		ChannelID: "-100123",
	})

	assert.False(t, verdict.Valid)
	assert.Equal(t, "bot lacks required permission", verdict.Error)
	assert.Nil(t, verdict.Subject)
}

func TestValidateAuthorityRejection(t *testing.T) {
	authority := &stubAuthority{
		err: &telegram.APIError{Description: "Unauthorized"},
	}
	svc := NewCredentialService(authority)

	verdict := svc.Validate(context.Background(), models.ValidationRequest{
		BotToken:  "bad",
		ChannelID: "-100123",
	})

	assert.False(t, verdict.Valid)
	assert.Equal(t, "Unauthorized", verdict.Error)
}

func TestValidateTransportFailureIsInvalidVerdict(t *testing.T) {
	// Unreachable authority and rejected credential are deliberately not
	// distinguished: both come back as an invalid, retryable verdict.
	authority := &stubAuthority{err: errors.New("dial tcp: connection refused")}
	svc := NewCredentialService(authority)

	verdict := svc.Validate(context.Background(), models.ValidationRequest{
		BotToken:  "123456:ABC",
		ChannelID: "-100123",
	})

	assert.False(t, verdict.Valid)
	assert.Equal(t, "validation failed", verdict.Error)
}

func TestValidateIdempotentAgainstStableAuthority(t *testing.T) {
	authority := &stubAuthority{
		check: &telegram.BotChannelCheck{
			BotUsername:    "my_project_bot",
			ChannelTitle:   "My Channel",
			CanInviteLinks: true,
		},
	}
	svc := NewCredentialService(authority)

	req := models.ValidationRequest{BotToken: "123456:ABC", ChannelID: "-100123"}
	first := svc.Validate(context.Background(), req)
	second := svc.Validate(context.Background(), req)

	assert.Equal(t, first.Valid, second.Valid)
	assert.Equal(t, first.Subject, second.Subject)
	// No caching: every invocation re-validates against the authority.
	assert.Equal(t, 2, authority.calls)
}
