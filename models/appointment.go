package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a catalog entry describing a bookable treatment, its
// price and its full daily slot list. Seeded externally; read-only here.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
	Slots []string           `bson:"slots,omitempty" json:"slots"`
}
