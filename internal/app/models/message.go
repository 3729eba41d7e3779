package models

import "time"

type Message struct {
	ID         string    `bson:"_id"`
	SenderID   string    `bson:"sender_id"`
	ReceiverID string    `bson:"receiver_id"`
	Content    string    `bson:"content"`
	IsRead     bool      `bson:"is_read"`
	CreatedAt  time.Time `bson:"created_at"`
}
