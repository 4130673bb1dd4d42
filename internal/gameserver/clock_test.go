package gameserver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/campus-adventure/internal/gameserver"
)

func TestClockTime_Period(t *testing.T) {
	cases := []struct {
		minutes int
		period  gameserver.TimePeriod
	}{
		{8 * 60, gameserver.PeriodMorning},
		{11*60 + 59, gameserver.PeriodMorning},
		{12 * 60, gameserver.PeriodAfternoon},
		{16*60 + 30, gameserver.PeriodAfternoon},
		{17 * 60, gameserver.PeriodEvening},
		{19 * 60, gameserver.PeriodEvening},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.period, gameserver.ClockTime(tc.minutes).Period(), "minutes %d", tc.minutes)
	}
}

func TestClockTime_String(t *testing.T) {
	assert.Equal(t, "08:00", gameserver.ClockTime(8*60).String())
	assert.Equal(t, "13:42", gameserver.ClockTime(13*60+42).String())
}

func TestClockForMoves(t *testing.T) {
	assert.Equal(t, "08:00", gameserver.ClockForMoves(0, 50).String())
	assert.Equal(t, "19:00", gameserver.ClockForMoves(50, 50).String())
	assert.Equal(t, "13:30", gameserver.ClockForMoves(25, 50).String())
	assert.Equal(t, "08:00", gameserver.ClockForMoves(3, 0).String())
}

func TestFlavorText(t *testing.T) {
	for _, p := range []gameserver.TimePeriod{gameserver.PeriodMorning, gameserver.PeriodAfternoon, gameserver.PeriodEvening} {
		assert.NotEmpty(t, gameserver.FlavorText(p))
	}
}

func TestPropertyClockNeverRunsBackwards(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		max := rapid.IntRange(1, 200).Draw(t, "max")
		a := rapid.IntRange(0, max).Draw(t, "a")
		b := rapid.IntRange(a, max).Draw(t, "b")
		ta, tb := gameserver.ClockForMoves(a, max), gameserver.ClockForMoves(b, max)
		if tb < ta {
			t.Fatalf("clock went from %s to %s", ta, tb)
		}
		if tb.Hour() < gameserver.DayStartHour || int(tb) > gameserver.ExamHour*60 {
			t.Fatalf("clock %s outside exam day", tb)
		}
	})
}
