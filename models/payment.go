package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is an append-only log entry referencing the booking it settles.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
}
