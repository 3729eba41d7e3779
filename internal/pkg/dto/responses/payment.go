package responses

type CheckoutConfig struct {
	PublicAPIKey string `json:"public_api_key"`
	Live         bool   `json:"live"`
	Currency     string `json:"currency"`
	Country      string `json:"country"`
	Email        string `json:"email,omitempty"`
	FullName     string `json:"full_name,omitempty"`
}

type PaymentEvent struct {
	Event         string `json:"event"`
	Status        string `json:"status"`
	Reference     string `json:"reference"`
	TransactionID string `json:"transaction_id,omitempty"`
}
