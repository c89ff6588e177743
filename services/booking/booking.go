package booking

import (
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// DefaultBookingService implements Service over the bookings and payments
// collections plus the payment processor.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository

	// CreateIntent is the processor call; defaults to Stripe on first use.
	CreateIntent IntentCreator
}

// CreateBooking runs the duplicate check before inserting. The check and the
// insert are two independent store operations with no transaction around
// them, so two concurrent identical requests can both pass the check and
// both insert.
func (s *DefaultBookingService) CreateBooking(booking models.Booking) (*CreateResult, error) {
	logger := utils.GetLogger()

	existing, err := s.Bookings.FindDuplicates(booking.AppointmentDate, booking.Email, booking.TreatmentName)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if len(existing) > 0 {
		return &CreateResult{
			AlreadyBooked: true,
			Message:       fmt.Sprintf("You already have a booking on %s", booking.AppointmentDate),
		}, nil
	}

	id, err := s.Bookings.Insert(&booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("id", id),
		zap.String("treatment", booking.TreatmentName),
		zap.String("date", booking.AppointmentDate))
	return &CreateResult{InsertedID: id}, nil
}

// GetBookingsByEmail returns the caller's bookings.
func (s *DefaultBookingService) GetBookingsByEmail(email string) ([]models.Booking, error) {
	return s.Bookings.GetByEmail(email)
}

// GetBookingByID returns a single booking by id.
func (s *DefaultBookingService) GetBookingByID(id string) (*models.Booking, error) {
	return s.Bookings.GetByID(id)
}

// RecordPayment appends the payment record, then flags the referenced
// booking. The two writes are not transactional; a missing booking id
// matches zero documents and raises no error.
func (s *DefaultBookingService) RecordPayment(payment models.Payment) (string, error) {
	logger := utils.GetLogger()

	id, err := s.Payments.Insert(&payment)
	if err != nil {
		return "", fmt.Errorf("failed to record payment: %w", err)
	}

	if err := s.Bookings.MarkPaid(payment.BookingID, payment.TransactionID); err != nil {
		return "", fmt.Errorf("failed to mark booking paid: %w", err)
	}

	logger.Info("payment recorded",
		zap.String("payment", id),
		zap.String("booking", payment.BookingID),
		zap.String("transaction", payment.TransactionID))
	return id, nil
}
