package availability

import (
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService implements Service over the treatment catalog
// and the bookings collection.
type DefaultAvailabilityService struct {
	Options  treatmentRepo.AppointmentOptionRepository
	Bookings bookingRepo.BookingRepository
}

// AvailableOptions fetches the full catalog and the bookings for the date,
// then subtracts each treatment's booked times from its slot list. An absent
// or malformed date simply matches no bookings, yielding full availability.
func (s *DefaultAvailabilityService) AvailableOptions(date string) ([]models.AppointmentOption, error) {
	logger := utils.GetLogger()

	options, err := s.Options.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment options: %w", err)
	}

	alreadyBooked, err := s.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	for i := range options {
		booked := BookedTimesFor(options[i].Name, alreadyBooked)
		options[i].Slots = RemainingSlots(options[i].Slots, booked)
	}

	logger.Debug("computed availability",
		zap.String("date", date),
		zap.Int("options", len(options)),
		zap.Int("bookings", len(alreadyBooked)))
	return options, nil
}

// AvailableOptionsAggregated delegates the merge to the store's aggregation
// pipeline. Result slot ordering is not guaranteed.
func (s *DefaultAvailabilityService) AvailableOptionsAggregated(date string) ([]models.AppointmentOption, error) {
	options, err := s.Options.AvailabilityByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate availability for %s: %w", date, err)
	}
	return options, nil
}

// SpecialtyNames lists the catalog projected to treatment names.
func (s *DefaultAvailabilityService) SpecialtyNames() ([]models.AppointmentOption, error) {
	names, err := s.Options.GetNames()
	if err != nil {
		return nil, fmt.Errorf("failed to load specialties: %w", err)
	}
	return names, nil
}
