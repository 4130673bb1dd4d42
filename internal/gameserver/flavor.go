package gameserver

// FlavorText returns an atmospheric sentence for the given phase of exam day.
//
// Postcondition: Returns a non-empty string.
func FlavorText(period TimePeriod) string {
	switch period {
	case PeriodMorning:
		return "Morning light floods the campus as students hurry to class."
	case PeriodAfternoon:
		return "The afternoon is slipping away; the exam draws closer."
	default:
		return "Evening is here. The exam centre doors will open soon."
	}
}
