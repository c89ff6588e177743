package handlers

import (
	userRepo "doctorsportal/database/repository/user"
)

// HandlerBundle groups the portal's handlers for route registration.
type HandlerBundle struct {
	Appointments *AppointmentHandler
	Bookings     *BookingHandler
	Payments     *PaymentHandler
	Users        *UserHandler
	Doctors      *DoctorHandler

	// UserRepo backs the admin role check middleware.
	UserRepo userRepo.UserRepository
}
