package availability

import (
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
)

func TestRemainingSlotsSubtractsBookedTimes(t *testing.T) {
	slots := []string{"10:00", "11:00"}
	booked := []string{"10:00"}

	assert.Equal(t, []string{"11:00"}, RemainingSlots(slots, booked))
}

func TestRemainingSlotsNoBookingsLeavesSlotsUntouched(t *testing.T) {
	slots := []string{"08:00", "09:30", "11:00"}

	assert.Equal(t, slots, RemainingSlots(slots, nil))
}

func TestRemainingSlotsFullyBookedYieldsEmptyNotNil(t *testing.T) {
	slots := []string{"10:00", "11:00"}

	remaining := RemainingSlots(slots, []string{"11:00", "10:00"})
	assert.NotNil(t, remaining)
	assert.Empty(t, remaining)
}

func TestRemainingSlotsPreservesOriginalOrdering(t *testing.T) {
	slots := []string{"14:00", "09:00", "11:30", "10:00"}
	booked := []string{"09:00"}

	assert.Equal(t, []string{"14:00", "11:30", "10:00"}, RemainingSlots(slots, booked))
}

func TestBookedTimesForFiltersByTreatmentName(t *testing.T) {
	bookings := []models.Booking{
		{TreatmentName: "Teeth Cleaning", AppointmentTime: "10:00"},
		{TreatmentName: "Cavity Protection", AppointmentTime: "10:00"},
		{TreatmentName: "Teeth Cleaning", AppointmentTime: "11:00"},
	}

	assert.Equal(t, []string{"10:00", "11:00"}, BookedTimesFor("Teeth Cleaning", bookings))
	assert.Nil(t, BookedTimesFor("Oral Surgery", bookings))
}
