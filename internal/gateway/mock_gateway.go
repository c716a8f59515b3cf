package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockGateway implements PaymentGateway with a configurable approval rate.
// It stands in for a real payment processor in development and load tests.
type MockGateway struct {
	config *MockGatewayConfig
	randFn func() float64
	mu     sync.RWMutex
}

// MockGatewayConfig holds configuration for the mock gateway
type MockGatewayConfig struct {
	// SuccessRate is the probability of an approved charge (0.0 to 1.0)
	SuccessRate float64

	// DelayMs is the simulated processing delay in milliseconds
	DelayMs int

	// FailureReasons is a list of possible decline reasons
	FailureReasons []string
}

// DefaultMockGatewayConfig returns default configuration
func DefaultMockGatewayConfig() *MockGatewayConfig {
	return &MockGatewayConfig{
		SuccessRate: 0.5,
		DelayMs:     0,
		FailureReasons: []string{
			"insufficient_funds",
			"card_declined",
			"expired_card",
			"processing_error",
		},
	}
}

// NewMockGateway creates a new mock gateway
func NewMockGateway(config *MockGatewayConfig) *MockGateway {
	if config == nil {
		config = DefaultMockGatewayConfig()
	}

	if config.SuccessRate < 0 {
		config.SuccessRate = 0
	}
	if config.SuccessRate > 1 {
		config.SuccessRate = 1
	}

	return &MockGateway{
		config: config,
		randFn: rand.Float64,
	}
}

// Charge processes a mock payment charge. Declines are reported in the
// response, not as an error; errors mean the charge never ran.
func (g *MockGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("charge request is required")
	}
	if req.BookingID == "" {
		return nil, fmt.Errorf("booking ID is required")
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("charge amount cannot be negative")
	}

	g.mu.RLock()
	successRate := g.config.SuccessRate
	delayMs := g.config.DelayMs
	reasons := g.config.FailureReasons
	randFn := g.randFn
	g.mu.RUnlock()

	// Simulate processing delay
	if delayMs > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(delayMs) * time.Millisecond):
		}
	}

	resp := &ChargeResponse{
		TransactionID: fmt.Sprintf("mock_txn_%s", uuid.New().String()[:8]),
	}

	if randFn() < successRate {
		resp.Success = true
		return resp, nil
	}

	resp.Success = false
	if len(reasons) > 0 {
		resp.FailureReason = reasons[rand.Intn(len(reasons))]
	} else {
		resp.FailureReason = "payment_failed"
	}

	return resp, nil
}

// Name returns the gateway name
func (g *MockGateway) Name() string {
	return "mock"
}

// SetSuccessRate updates the success rate (for testing)
func (g *MockGateway) SetSuccessRate(rate float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	g.config.SuccessRate = rate
}

// GetSuccessRate returns the current success rate
func (g *MockGateway) GetSuccessRate() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.config.SuccessRate
}

// setRandFn overrides the randomness source (for testing)
func (g *MockGateway) setRandFn(fn func() float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.randFn = fn
}

// Ensure MockGateway implements PaymentGateway
var _ PaymentGateway = (*MockGateway)(nil)
