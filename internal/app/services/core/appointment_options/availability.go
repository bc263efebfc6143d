package appointmentOptions

import "doctors-portal-service/internal/app/models"

// ComputeAvailability removes from every template the slots already booked
// for that treatment on date. Templates keep their order, as do the slots
// within each of them. Bookings for any other date are ignored and the
// inputs are never modified.
func ComputeAvailability(date string, templates []models.AppointmentOption, bookingsOnDate []models.Booking) []models.AppointmentOption {
	bookedSlotsByTreatment := make(map[string]map[string]struct{})
	for _, booking := range bookingsOnDate {
		if booking.AppointmentDate != date {
			continue
		}
		bookedSlots, ok := bookedSlotsByTreatment[booking.Treatment]
		if !ok {
			bookedSlots = make(map[string]struct{})
			bookedSlotsByTreatment[booking.Treatment] = bookedSlots
		}
		bookedSlots[booking.Slot] = struct{}{}
	}

	result := make([]models.AppointmentOption, len(templates))
	for i, template := range templates {
		bookedSlots := bookedSlotsByTreatment[template.Name]
		remaining := make([]string, 0, len(template.Slots))
		for _, slot := range template.Slots {
			if _, booked := bookedSlots[slot]; booked {
				continue
			}
			remaining = append(remaining, slot)
		}
		result[i] = template.WithSlots(remaining)
	}
	return result
}
