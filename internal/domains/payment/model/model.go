package model

import (
	"strings"
	"time"
)

const (
	EntityName = "paymentMethod"

	TypeDebit  = "debit"
	TypeCredit = "credit"
	TypeUPI    = "upi"
)

// PaymentMethod stores how a user pays. Card numbers are only ever persisted
// masked; the full number exists nowhere after the create request is handled.
type PaymentMethod struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	CardNumber string    `json:"cardNumber,omitempty"`
	UPIHandle  string    `json:"upiId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

const maskedLength = 16

// MaskCardNumber strips spaces, keeps the last four digits and left-pads with
// '*' to a fixed sixteen characters.
func MaskCardNumber(raw string) string {
	digits := strings.ReplaceAll(raw, " ", "")

	last4 := digits
	if len(digits) > 4 {
		last4 = digits[len(digits)-4:]
	}

	return strings.Repeat("*", maskedLength-len(last4)) + last4
}
