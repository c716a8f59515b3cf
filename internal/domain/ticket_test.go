package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewTicket(t *testing.T) {
	price := decimal.RequireFromString("50.00")

	tests := []struct {
		name       string
		ticketType string
		price      decimal.Decimal
		quantity   int
		wantErr    error
	}{
		{name: "valid ticket", ticketType: "VIP", price: price, quantity: 100},
		{name: "free ticket", ticketType: "General", price: decimal.Zero, quantity: 100},
		{name: "empty type", ticketType: "", price: price, quantity: 100, wantErr: ErrInvalidTicketType},
		{name: "negative price", ticketType: "VIP", price: decimal.RequireFromString("-0.01"), quantity: 100, wantErr: ErrInvalidPrice},
		{name: "zero quantity", ticketType: "VIP", price: price, quantity: 0, wantErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket("ticket-001", "event-001", tt.ticketType, tt.price, tt.quantity)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ticket.Price.Equal(tt.price) {
				t.Errorf("expected price %s, got %s", tt.price, ticket.Price)
			}
		})
	}
}

func TestTicket_HasStock(t *testing.T) {
	ticket := &Ticket{Quantity: 2}

	if !ticket.HasStock(2) {
		t.Error("expected stock to cover exact remaining quantity")
	}
	if ticket.HasStock(3) {
		t.Error("expected stock not to cover more than remaining")
	}
}

func TestNewPayment_RoundsAmount(t *testing.T) {
	payment, err := NewPayment("payment-001", "booking-001", decimal.RequireFromString("59.975"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payment.Amount.String() != "59.98" {
		t.Errorf("expected amount 59.98, got %s", payment.Amount)
	}
	if payment.Status != PaymentStatusSuccess {
		t.Errorf("expected status success, got %s", payment.Status)
	}
}

func TestNewPayment_Invalid(t *testing.T) {
	if _, err := NewPayment("payment-001", "", decimal.NewFromInt(10)); !errors.Is(err, ErrInvalidBookingID) {
		t.Fatalf("expected ErrInvalidBookingID, got %v", err)
	}
	if _, err := NewPayment("payment-001", "booking-001", decimal.NewFromInt(-10)); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}
