package booking

import "doctorsportal/models"

// CreateResult reports the outcome of a booking attempt. AlreadyBooked means
// the duplicate check matched and nothing was inserted.
type CreateResult struct {
	InsertedID    string
	AlreadyBooked bool
	Message       string
}

// Service implements the booking and payment workflow.
type Service interface {
	// CreateBooking inserts the booking unless one already exists for the
	// same (appointmentDate, email, treatmentName).
	CreateBooking(booking models.Booking) (*CreateResult, error)
	// GetBookingsByEmail returns the caller's bookings.
	GetBookingsByEmail(email string) ([]models.Booking, error)
	// GetBookingByID returns a single booking, or nil when absent.
	GetBookingByID(id string) (*models.Booking, error)
	// CreatePaymentIntent asks the processor for a client-confirmable
	// payment handle for the given decimal price.
	CreatePaymentIntent(price float64) (clientSecret string, err error)
	// RecordPayment appends the payment and marks the referenced booking
	// paid. An unknown booking id is silently ignored by the update.
	RecordPayment(payment models.Payment) (insertedID string, err error)
}
