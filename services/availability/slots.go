package availability

import "doctorsportal/models"

// BookedTimesFor collects the appointment times of the bookings made for the
// named treatment.
func BookedTimesFor(treatmentName string, bookings []models.Booking) []string {
	var times []string
	for _, b := range bookings {
		if b.TreatmentName == treatmentName {
			times = append(times, b.AppointmentTime)
		}
	}
	return times
}

// RemainingSlots returns slots minus booked, preserving the original slot
// ordering. A fully booked treatment yields an empty (non-nil) slice.
func RemainingSlots(slots, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	remaining := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			remaining = append(remaining, s)
		}
	}
	return remaining
}
