package availability

import (
	"time"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"
)

// Schedule is the resolved booking calendar of one therapist.
type Schedule struct {
	Dates    []string
	Slots    map[string][]string
	Fallback bool
}

// SlotsFor looks a date up by exact string match. Unknown dates have no slots.
func (s *Schedule) SlotsFor(date string) []string {
	slots, ok := s.Slots[date]
	if !ok {
		return []string{}
	}
	return slots
}

// FirstDate is the date preselected when the booking page opens.
func (s *Schedule) FirstDate() string {
	if len(s.Dates) == 0 {
		return ""
	}
	return s.Dates[0]
}

type Resolver struct {
	now      func() time.Time
	location *time.Location
}

func NewResolver(location *time.Location) *Resolver {
	if location == nil {
		location = time.Local
	}
	return &Resolver{now: time.Now, location: location}
}

// Resolve turns stored availability into a schedule. Anything that cannot be
// decoded resolves to the default week.
func (r *Resolver) Resolve(a Availability) *Schedule {
	switch a.Kind() {
	case KindStructured:
		return fromDays(a.Days())
	case KindRaw:
		decoded := FromJSON([]byte(a.RawValue()))
		if decoded.Kind() == KindStructured {
			return fromDays(decoded.Days())
		}
	}
	return r.fallback()
}

func (r *Resolver) fallback() *Schedule {
	dates := utils.NextDates(r.now().In(r.location), constvars.FallbackAvailabilityDays)
	slots := make(map[string][]string, len(dates))
	for _, date := range dates {
		slots[date] = append([]string(nil), constvars.DefaultAvailabilitySlots...)
	}
	return &Schedule{Dates: dates, Slots: slots, Fallback: true}
}

func fromDays(days []Day) *Schedule {
	schedule := &Schedule{
		Dates: make([]string, 0, len(days)),
		Slots: make(map[string][]string, len(days)),
	}
	for _, day := range days {
		schedule.Dates = append(schedule.Dates, day.Date)
		// first entry wins on duplicate dates
		if _, exists := schedule.Slots[day.Date]; !exists {
			schedule.Slots[day.Date] = day.Slots
		}
	}
	return schedule
}
