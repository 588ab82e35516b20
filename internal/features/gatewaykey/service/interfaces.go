package service

import (
	"context"

	"subhub-backend/internal/features/gatewaykey/models"
	"subhub-backend/internal/platform/stripe"
)

// KeyService validates a payment-processor secret key against the processor's
// live API.
type KeyService interface {
	Validate(ctx context.Context, req models.KeyCheckRequest) models.KeyCheckVerdict
}

// Authority is the processor's account-identity endpoint. The platform Stripe
// client implements it; tests substitute a stub.
type Authority interface {
	GetAccount(ctx context.Context, secretKey string) (*stripe.Account, error)
}
