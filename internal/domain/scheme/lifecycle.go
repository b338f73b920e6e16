package scheme

import "time"

// Classify derives the lifecycle status of a scheme at now, comparing calendar
// days in now's location. The end date is inclusive. Activation is an
// administrative action; an activated scheme whose start date has not been
// reached is still reported as draft.
func Classify(startDate, endDate, now time.Time, activated bool) Status {
	today := NormalizeDate(now)
	if !endDate.IsZero() && today.After(NormalizeDate(endDate)) {
		return StatusExpired
	}
	if !activated {
		return StatusDraft
	}
	if !startDate.IsZero() && today.Before(NormalizeDate(startDate)) {
		return StatusDraft
	}
	return StatusActive
}
