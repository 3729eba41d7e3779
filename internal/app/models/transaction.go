package models

import "time"

type Transaction struct {
	ID            string    `bson:"_id"`
	UserID        string    `bson:"user_id"`
	Reference     string    `bson:"reference"`
	Status        string    `bson:"status"`
	Amount        float64   `bson:"amount"`
	Currency      string    `bson:"currency"`
	PaymentMethod string    `bson:"payment_method,omitempty"`
	PhoneNumber   string    `bson:"phone_number,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
}
