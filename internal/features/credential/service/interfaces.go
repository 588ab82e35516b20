package service

import (
	"context"

	"subhub-backend/internal/features/credential/models"
	"subhub-backend/internal/platform/telegram"
)

// CredentialService validates a bot token and channel identifier pair against
// the messaging authority before a project is activated.
type CredentialService interface {
	Validate(ctx context.Context, req models.ValidationRequest) models.ValidationVerdict
}

// Authority is the messaging-platform capability check. The platform Telegram
// client implements it; tests substitute a stub.
type Authority interface {
	CheckBotChannel(ctx context.Context, botToken, channelID string) (*telegram.BotChannelCheck, error)
}
