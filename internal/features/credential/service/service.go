package service

import (
	"context"
	"errors"
	"strings"

	"subhub-backend/internal/common/logger"
	"subhub-backend/internal/features/credential/models"
	"subhub-backend/internal/platform/telegram"
)

type credentialService struct {
	authority Authority
}

func NewCredentialService(authority Authority) CredentialService {
	return &credentialService{authority: authority}
}

// Validate checks the token/channel pair against the authority. Every
// invocation re-validates: the pairing can change between calls (e.g. the bot
// was removed from the channel), so no verdict is ever cached.
//
// Transport failures and authority rejections collapse into the same invalid
// verdict: the dashboard cannot distinguish them and presents both as
// retryable ("check token/permissions and try again").
func (s *credentialService) Validate(ctx context.Context, req models.ValidationRequest) models.ValidationVerdict {
	if strings.TrimSpace(req.BotToken) == "" || strings.TrimSpace(req.ChannelID) == "" {
		return models.ValidationVerdict{
			Valid: false,
			Error: "bot token and channel id are required",
		}
	}

	check, err := s.authority.CheckBotChannel(ctx, req.BotToken, req.ChannelID)
	if err != nil {
		return models.ValidationVerdict{
			Valid: false,
			Error: verdictError(err),
		}
	}

	if !check.CanInviteLinks {
		logger.Debug().
			Str("bot", check.BotUsername).
			Msg("Bot present in channel but missing invite-link rights")
		return models.ValidationVerdict{
			Valid: false,
			Error: "bot lacks required permission",
		}
	}

	return models.ValidationVerdict{
		Valid: true,
		Subject: &models.ValidationSubject{
			BotUsername:  check.BotUsername,
			ChannelTitle: check.ChannelTitle,
		},
	}
}

// verdictError prefers the authority-supplied message; transport failures get
// the same generic message a rejection without description would.
func verdictError(err error) string {
	var apiErr *telegram.APIError
	if errors.As(err, &apiErr) && apiErr.Description != "" {
		return apiErr.Description
	}
	logger.Warn().Err(err).Msg("Messaging authority unreachable or returned no description")
	return "validation failed"
}
