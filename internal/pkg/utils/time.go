package utils

import (
	"time"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
)

// ParseSlotStart combines a schedule date and slot into a wall clock instant
// in loc. Slots are accepted as HH:MM or HH:MM:SS.
func ParseSlotStart(date, slot string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	value := date + "T" + slot
	start, err := time.ParseInLocation(constvars.SlotLayoutMinutes, value, loc)
	if err == nil {
		return start, nil
	}
	return time.ParseInLocation(constvars.SlotLayoutSeconds, value, loc)
}

func CalculateSessionEnd(start time.Time) time.Time {
	return start.Add(constvars.VideoSessionDuration)
}

// NextDates returns count consecutive calendar dates starting the day after now.
func NextDates(now time.Time, count int) []string {
	dates := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(constvars.DateLayout))
	}
	return dates
}
