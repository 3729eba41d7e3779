package requests

// PaymentEvent mirrors the callback emitted by the checkout widget.
type PaymentEvent struct {
	SessionData string             `json:"-"`
	Event       string             `json:"event" validate:"required"`
	Result      PaymentEventResult `json:"result"`
}

type PaymentEventResult struct {
	Status        string  `json:"status"`
	Reference     string  `json:"reference"`
	PhoneNumber   string  `json:"phone_number,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}
