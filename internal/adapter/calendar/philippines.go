package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Fixed-date and Easter-relative Philippine holidays. Movable proclaimed days
// (Chinese New Year, Eid al-Fitr, Eid al-Adha) change every year and are
// supplied through the extra dates instead.
var (
	NewYear = &cal.Holiday{Name: "New Year's Day", Type: cal.ObservancePublic, Month: time.January, Day: 1, Func: cal.CalcDayOfMonth}

	EdsaRevolution = &cal.Holiday{Name: "EDSA People Power Revolution Anniversary", Type: cal.ObservanceOther, Month: time.February, Day: 25, Func: cal.CalcDayOfMonth}

	MaundyThursday = &cal.Holiday{Name: "Maundy Thursday", Type: cal.ObservancePublic, Offset: -3, Func: cal.CalcEasterOffset}
	GoodFriday     = &cal.Holiday{Name: "Good Friday", Type: cal.ObservancePublic, Offset: -2, Func: cal.CalcEasterOffset}
	BlackSaturday  = &cal.Holiday{Name: "Black Saturday", Type: cal.ObservanceOther, Offset: -1, Func: cal.CalcEasterOffset}

	DayOfValor = &cal.Holiday{Name: "Araw ng Kagitingan", Type: cal.ObservancePublic, Month: time.April, Day: 9, Func: cal.CalcDayOfMonth}
	LaborDay   = &cal.Holiday{Name: "Labor Day", Type: cal.ObservancePublic, Month: time.May, Day: 1, Func: cal.CalcDayOfMonth}

	IndependenceDay = &cal.Holiday{Name: "Independence Day", Type: cal.ObservancePublic, Month: time.June, Day: 12, Func: cal.CalcDayOfMonth}

	NinoyAquinoDay = &cal.Holiday{Name: "Ninoy Aquino Day", Type: cal.ObservanceOther, Month: time.August, Day: 21, Func: cal.CalcDayOfMonth}

	// Last Monday of August.
	NationalHeroesDay = &cal.Holiday{Name: "National Heroes Day", Type: cal.ObservancePublic, Month: time.August, Weekday: time.Monday, Offset: -1, Func: cal.CalcWeekdayOffset}

	AllSaintsDay = &cal.Holiday{Name: "All Saints' Day", Type: cal.ObservanceOther, Month: time.November, Day: 1, Func: cal.CalcDayOfMonth}
	AllSoulsDay  = &cal.Holiday{Name: "All Souls' Day", Type: cal.ObservanceOther, Month: time.November, Day: 2, Func: cal.CalcDayOfMonth}
	BonifacioDay = &cal.Holiday{Name: "Bonifacio Day", Type: cal.ObservancePublic, Month: time.November, Day: 30, Func: cal.CalcDayOfMonth}

	ImmaculateConception = &cal.Holiday{Name: "Feast of the Immaculate Conception", Type: cal.ObservanceOther, Month: time.December, Day: 8, Func: cal.CalcDayOfMonth}

	ChristmasEve = &cal.Holiday{Name: "Christmas Eve", Type: cal.ObservanceOther, Month: time.December, Day: 24, Func: cal.CalcDayOfMonth}
	Christmas    = &cal.Holiday{Name: "Christmas Day", Type: cal.ObservancePublic, Month: time.December, Day: 25, Func: cal.CalcDayOfMonth}
	RizalDay     = &cal.Holiday{Name: "Rizal Day", Type: cal.ObservancePublic, Month: time.December, Day: 30, Func: cal.CalcDayOfMonth}
	NewYearsEve  = &cal.Holiday{Name: "Last Day of the Year", Type: cal.ObservanceOther, Month: time.December, Day: 31, Func: cal.CalcDayOfMonth}

	PhilippineHolidays = []*cal.Holiday{
		NewYear,
		EdsaRevolution,
		MaundyThursday,
		GoodFriday,
		BlackSaturday,
		DayOfValor,
		LaborDay,
		IndependenceDay,
		NinoyAquinoDay,
		NationalHeroesDay,
		AllSaintsDay,
		AllSoulsDay,
		BonifacioDay,
		ImmaculateConception,
		ChristmasEve,
		Christmas,
		RizalDay,
		NewYearsEve,
	}
)
