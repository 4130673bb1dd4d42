package gameserver

import "fmt"

// TimePeriod is a named phase of exam day.
type TimePeriod string

const (
	PeriodMorning   TimePeriod = "Morning"
	PeriodAfternoon TimePeriod = "Afternoon"
	PeriodEvening   TimePeriod = "Evening"
)

// Exam day runs from DayStartHour until the exam at ExamHour. The move budget
// is spread evenly over that span.
const (
	DayStartHour = 8
	ExamHour     = 19
)

// ClockTime is a time of day in minutes past midnight.
type ClockTime int

// Hour returns the hour component in [0, 23].
func (t ClockTime) Hour() int {
	return (int(t) / 60) % 24
}

// Period returns the named phase for this time.
//
// Postcondition: Returns one of the TimePeriod constants.
func (t ClockTime) Period() TimePeriod {
	switch h := t.Hour(); {
	case h < 12:
		return PeriodMorning
	case h < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// String returns the time in "HH:MM" format.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), int(t)%60)
}

// ClockForMoves maps moves spent out of maxMoves onto the exam-day clock.
//
// Precondition: maxMoves > 0.
// Postcondition: Returns DayStartHour:00 for spent == 0 and ExamHour:00 once
// every move is spent.
func ClockForMoves(spent, maxMoves int) ClockTime {
	if maxMoves <= 0 {
		return ClockTime(DayStartHour * 60)
	}
	if spent < 0 {
		spent = 0
	}
	if spent > maxMoves {
		spent = maxMoves
	}
	span := (ExamHour - DayStartHour) * 60
	return ClockTime(DayStartHour*60 + span*spent/maxMoves)
}
