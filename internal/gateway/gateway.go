package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentGateway defines the interface for payment processing
type PaymentGateway interface {
	// Charge processes a payment charge
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error)

	// Name returns the gateway name
	Name() string
}

// ChargeRequest represents a charge request
type ChargeRequest struct {
	BookingID   string
	UserID      string
	Amount      decimal.Decimal
	Description string
}

// ChargeResponse represents a charge response
type ChargeResponse struct {
	Success       bool
	TransactionID string
	FailureReason string
}
