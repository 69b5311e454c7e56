package calendar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rickar/cal/v2"
)

// DefaultWeekend is Friday and Saturday night, the nights charged at the weekend rate.
var DefaultWeekend = []time.Weekday{time.Friday, time.Saturday}

// Oracle answers whether a night is charged at the elevated rate: a weekend
// night, a public holiday, or one of the operator-proclaimed extra dates.
// Holidays are computed once per year and cached.
type Oracle struct {
	weekend  map[time.Weekday]bool
	holidays []*cal.Holiday
	extra    map[string]string

	mu    sync.RWMutex
	years map[int]map[string]string
}

func NewOracle(weekend []time.Weekday, holidays []*cal.Holiday, extra []time.Time) *Oracle {
	o := &Oracle{
		weekend:  make(map[time.Weekday]bool, len(weekend)),
		holidays: holidays,
		extra:    make(map[string]string, len(extra)),
		years:    make(map[int]map[string]string),
	}
	for _, d := range weekend {
		o.weekend[d] = true
	}
	for _, d := range extra {
		o.extra[dateKey(d)] = "Proclaimed holiday"
	}
	return o
}

// NewPhilippines is the production oracle: Philippine regular holidays and
// nationwide special non-working days.
func NewPhilippines(weekend []time.Weekday, extra []time.Time) *Oracle {
	return NewOracle(weekend, PhilippineHolidays, extra)
}

// NewFixed marks only the given dates as elevated, with no weekend rule.
func NewFixed(dates ...time.Time) *Oracle {
	return NewOracle(nil, nil, dates)
}

func (o *Oracle) IsElevated(day time.Time) bool {
	if o.weekend[day.Weekday()] {
		return true
	}
	_, ok := o.Holiday(day)
	return ok
}

// Holiday returns the name of the holiday falling on day, if any.
func (o *Oracle) Holiday(day time.Time) (string, bool) {
	key := dateKey(day)
	if name, ok := o.extra[key]; ok {
		return name, true
	}
	name, ok := o.yearHolidays(day.Year())[key]
	return name, ok
}

func (o *Oracle) yearHolidays(year int) map[string]string {
	o.mu.RLock()
	days, ok := o.years[year]
	o.mu.RUnlock()
	if ok {
		return days
	}

	days = make(map[string]string, len(o.holidays))
	for _, h := range o.holidays {
		actual, observed := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		days[dateKey(actual)] = h.Name
		if !observed.IsZero() {
			days[dateKey(observed)] = h.Name
		}
	}

	o.mu.Lock()
	o.years[year] = days
	o.mu.Unlock()

	return days
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseWeekdays reads a comma separated list such as "fri,sat". Full day names are accepted.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	var out []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if len(part) > 3 {
			part = part[:3]
		}
		d, ok := weekdayNames[part]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		out = append(out, d)
	}
	return out, nil
}
