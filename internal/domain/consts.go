package domain

const (
	// MinutesPerDay is the size of the wraparound clock space
	MinutesPerDay = 24 * 60

	// HalfDayMinutes bounds inferred UTC offsets to (-HalfDayMinutes, HalfDayMinutes]
	HalfDayMinutes = MinutesPerDay / 2

	// WarnLeadMinutes is how far ahead of the disconnect instant the warning fires
	WarnLeadMinutes = 15
)
