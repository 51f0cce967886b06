package branch

import (
	"fmt"
	"slices"
	"time"
	_ "time/tzdata"

	"laundry/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// Schedule says on which local days a branch takes orders.
type Schedule struct {
	location      *time.Location
	operatingDays map[time.Weekday]struct{}
	holidays      map[string]struct{}
}

// NewSchedule builds a schedule in the IANA timezone tz. Holidays are local
// calendar dates in YYYY-MM-DD form.
func NewSchedule(tz string, operatingDays []time.Weekday, holidays []string) (Schedule, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause("timezone", err)
	}
	if len(operatingDays) == 0 {
		return Schedule{}, errs.NewValueIsRequiredError("operatingDays")
	}

	days := make(map[time.Weekday]struct{}, len(operatingDays))
	for _, d := range operatingDays {
		if d < time.Sunday || d > time.Saturday {
			return Schedule{}, errs.NewValueIsOutOfRangeError("operatingDays", int(d), int(time.Sunday), int(time.Saturday))
		}
		days[d] = struct{}{}
	}

	off := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		if _, err := time.Parse(dateLayout, h); err != nil {
			return Schedule{}, errs.NewValueIsInvalidErrorWithCause("holidays", fmt.Errorf("%q: %w", h, err))
		}
		off[h] = struct{}{}
	}

	return Schedule{location: loc, operatingDays: days, holidays: off}, nil
}

// EveryDay is the schedule of a branch open all week without holidays.
func EveryDay(tz string) (Schedule, error) {
	return NewSchedule(tz, []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
	}, nil)
}

func (s Schedule) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

func (s Schedule) Timezone() string {
	return s.Location().String()
}

// OperatingDays returns the weekdays in Sunday-first order.
func (s Schedule) OperatingDays() []time.Weekday {
	out := make([]time.Weekday, 0, len(s.operatingDays))
	for d := range s.operatingDays {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

func (s Schedule) Holidays() []string {
	out := make([]string, 0, len(s.holidays))
	for h := range s.holidays {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// IsOpenOn reports whether the local day containing t is an operating,
// non-holiday day.
func (s Schedule) IsOpenOn(t time.Time) bool {
	local := t.In(s.Location())
	if _, ok := s.operatingDays[local.Weekday()]; !ok {
		return false
	}
	_, holiday := s.holidays[local.Format(dateLayout)]
	return !holiday
}

// DayWindow returns [start, end) of the local calendar day containing t.
func (s Schedule) DayWindow(t time.Time) (time.Time, time.Time) {
	local := t.In(s.Location())
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, s.Location())
	return start, start.AddDate(0, 0, 1)
}
