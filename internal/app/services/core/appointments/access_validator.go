package appointments

import (
	"carelink-service/internal/app/models"
)

// AuthorizeAppointmentAccess decides whether the actor may view data tied
// to the appointment. Only exact identity equality authorizes; every
// branch below is an equivalent "authorized" outcome, the order just
// determines which rule matched first in debug traces.
//
// The function fails closed: a panic caused by malformed appointment data
// is recovered and reported as unauthorized.
func AuthorizeAppointmentAccess(appointment *models.Appointment, actor *models.ActorContext) (authorized bool) {
	defer func() {
		if r := recover(); r != nil {
			authorized = false
		}
	}()

	if appointment == nil || actor == nil || actor.UserID == "" {
		return false
	}

	// Direct booking owner.
	if appointment.UserID != "" && appointment.UserID == actor.UserID {
		return true
	}

	// Family bookings still authorize through the account holder who made
	// the booking, not the family member named on it.
	if appointment.IsFamilyBooking && appointment.UserID != "" && appointment.UserID == actor.UserID {
		return true
	}

	// Declared primary user.
	if appointment.PrimaryUserID != nil && *appointment.PrimaryUserID != "" && *appointment.PrimaryUserID == actor.UserID {
		return true
	}

	return false
}
