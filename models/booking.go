package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's reservation of one treatment slot on a date.
// Mutated once, by the payment flow, to set paid and transactionId.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TreatmentName   string             `bson:"treatmentName" json:"treatmentName"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	AppointmentTime string             `bson:"appointmentTime" json:"appointmentTime"`
	PatientName     string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid            bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
