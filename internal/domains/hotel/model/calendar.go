package model

import (
	"innkeeper/shared/constant"
	"innkeeper/shared/failure"
)

const (
	MinDayRate = 0.5
	MaxDayRate = 1.5
)

// RateCalendar stores a nightly price multiplier per day of the month.
// Every day defaults to the neutral multiplier 1.0.
type RateCalendar struct {
	modifiers [constant.DaysInMonth]float64
}

func NewRateCalendar() *RateCalendar {
	calendar := &RateCalendar{}
	for i := range calendar.modifiers {
		calendar.modifiers[i] = 1.0
	}

	return calendar
}

// Set stores the multiplier for a day. Invalid input leaves the calendar
// untouched.
func (c *RateCalendar) Set(day int, rate float64) error {
	if day < 1 || day > constant.DaysInMonth {
		return failure.InvalidDayParam
	}

	if rate < MinDayRate || rate > MaxDayRate {
		return failure.InvalidRateParam
	}

	c.modifiers[day-1] = rate

	return nil
}

// Modifier returns the multiplier for a day, or the neutral 1.0 when the day
// falls outside the month. It never fails.
func (c *RateCalendar) Modifier(day int) float64 {
	if day < 1 || day > constant.DaysInMonth {
		return 1.0
	}

	return c.modifiers[day-1]
}
