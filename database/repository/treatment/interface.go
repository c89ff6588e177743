package treatmentRepo

import "doctorsportal/models"

// AppointmentOptionRepository provides read access to the treatment catalog.
type AppointmentOptionRepository interface {
	// GetAll returns every catalog entry with its full slot list.
	GetAll() ([]models.AppointmentOption, error)
	// GetNames returns catalog entries projected down to the name field.
	GetNames() ([]models.AppointmentOption, error)
	// AvailabilityByDate computes remaining slots per treatment for the given
	// date in a single aggregation against the bookings collection.
	AvailabilityByDate(date string) ([]models.AppointmentOption, error)
}
