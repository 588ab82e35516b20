package service

import (
	"context"
	"errors"
	"strings"

	"subhub-backend/internal/common/logger"
	"subhub-backend/internal/features/gatewaykey/models"
	"subhub-backend/internal/platform/stripe"
)

// Recognized secret-key prefixes. Anything else never reaches the network.
const (
	livePrefix = "sk_live_"
	testPrefix = "sk_test_"
)

type keyService struct {
	authority Authority
}

func NewKeyService(authority Authority) KeyService {
	return &keyService{authority: authority}
}

// Validate gates the key on its prefix, then resolves the account behind it.
// The processor is the sole source of truth each time; nothing is mutated or
// cached, so repeated calls are safe.
func (s *keyService) Validate(ctx context.Context, req models.KeyCheckRequest) models.KeyCheckVerdict {
	key := strings.TrimSpace(req.SecretKey)
	if !strings.HasPrefix(key, livePrefix) && !strings.HasPrefix(key, testPrefix) {
		return models.KeyCheckVerdict{
			Valid: false,
			Error: "invalid key format",
		}
	}

	account, err := s.authority.GetAccount(ctx, key)
	if err != nil {
		return models.KeyCheckVerdict{
			Valid: false,
			Error: verdictError(err),
		}
	}

	// A live-prefixed key can still resolve to an account that cannot charge;
	// the verdict reflects the account's actual capability, not the prefix.
	return models.KeyCheckVerdict{
		Valid:       true,
		AccountName: account.DisplayName(),
		AccountID:   account.ID,
		LiveMode:    account.ChargesEnabled && strings.HasPrefix(key, livePrefix),
	}
}

func verdictError(err error) string {
	var apiErr *stripe.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	logger.Warn().Err(err).Msg("Payment processor unreachable or returned no message")
	return "validation failed"
}
