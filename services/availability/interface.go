package availability

import "doctorsportal/models"

// Service computes remaining bookable slots per treatment for a date.
type Service interface {
	// AvailableOptions merges the catalog with that date's bookings in
	// process, preserving the catalog's slot ordering.
	AvailableOptions(date string) ([]models.AppointmentOption, error)
	// AvailableOptionsAggregated computes the same result with a single
	// aggregation pipeline in the store.
	AvailableOptionsAggregated(date string) ([]models.AppointmentOption, error)
	// SpecialtyNames lists catalog entries projected to names only.
	SpecialtyNames() ([]models.AppointmentOption, error)
}
