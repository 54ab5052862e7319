package dto

import (
	"time"

	"github.com/google/uuid"

	"tatkal/internal/domains/payment/model"
	"tatkal/shared/timezone"
)

type CreatePaymentMethodRequest struct {
	Type       string `json:"type"                  validate:"required,oneof=debit credit upi"`
	CardNumber string `json:"card_number,omitempty" validate:"required_unless=Type upi,omitempty,min=12"`
	UPIHandle  string `json:"upi_id,omitempty"      validate:"required_if=Type upi,omitempty,contains=@"`
}

// ToModel masks the card number before anything is stored. UPI handles are
// kept verbatim.
func (r *CreatePaymentMethodRequest) ToModel() model.PaymentMethod {
	m := model.PaymentMethod{
		ID:        uuid.NewString(),
		Type:      r.Type,
		CreatedAt: timezone.Now(),
	}

	if r.Type == model.TypeUPI {
		m.UPIHandle = r.UPIHandle
	} else {
		m.CardNumber = model.MaskCardNumber(r.CardNumber)
	}

	return m
}

type PaymentMethodResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	CardNumber string    `json:"card_number,omitempty"`
	UPIHandle  string    `json:"upi_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *PaymentMethodResponse) FromModel(m model.PaymentMethod) {
	r.ID = m.ID
	r.Type = m.Type
	r.CardNumber = m.CardNumber
	r.UPIHandle = m.UPIHandle
	r.CreatedAt = m.CreatedAt
}

type GetPaymentMethodsResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetPaymentMethodsResponse) FromModels(models []model.PaymentMethod) {
	r.TotalData = len(models)

	r.PaymentMethods = make([]PaymentMethodResponse, len(models))
	for i, mod := range models {
		r.PaymentMethods[i].FromModel(mod)
	}
}
