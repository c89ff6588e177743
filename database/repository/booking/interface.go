package bookingRepo

import "doctorsportal/models"

// BookingRepository provides access to the bookings collection.
type BookingRepository interface {
	GetByDate(date string) ([]models.Booking, error)
	GetByEmail(email string) ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	// FindDuplicates returns bookings matching the duplicate-check key
	// (appointmentDate, email, treatmentName).
	FindDuplicates(date, email, treatmentName string) ([]models.Booking, error)
	// Insert stores a new booking and returns its object id as a hex string.
	Insert(booking *models.Booking) (string, error)
	// MarkPaid sets paid=true and the transaction id on the referenced
	// booking. An unknown id matches zero documents and is not an error.
	MarkPaid(bookingID, transactionID string) error
}
