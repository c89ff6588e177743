package paymentRepo

import "doctorsportal/models"

// PaymentRepository provides append-only access to the payments collection.
type PaymentRepository interface {
	Insert(payment *models.Payment) (string, error)
}
