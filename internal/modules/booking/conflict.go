package booking

import "github.com/Userdead-19/labs-cse/internal/domain"

// overlaps reports whether the half-open slot [start, end) collides with an
// existing [existingStart, existingEnd). Times are "HH:MM" strings, which
// order correctly under plain string comparison. Slots that merely touch
// (existingEnd == start) do not overlap, so back-to-back bookings are fine.
func overlaps(existingStart, existingEnd, start, end string) bool {
	if existingStart <= start && existingEnd > start {
		// candidate starts inside existing
		return true
	}
	if existingStart < end && existingEnd >= end {
		// candidate ends inside existing
		return true
	}
	if existingStart >= start && existingEnd <= end {
		// candidate fully contains existing
		return true
	}
	return false
}

// HasConflict decides whether the candidate slot collides with any booking
// in the given snapshot. The caller supplies the snapshot (approved bookings
// for one lab and date, minus any excluded id), so the decision is pure and
// deterministic; false when the snapshot is empty.
func HasConflict(approved []domain.Booking, start, end string) bool {
	for _, b := range approved {
		if overlaps(b.StartTime, b.EndTime, start, end) {
			return true
		}
	}
	return false
}
