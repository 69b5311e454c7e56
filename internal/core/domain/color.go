package domain

type DisplayColor string

const (
	ColorRed    DisplayColor = "red"
	ColorBlue   DisplayColor = "blue"
	ColorViolet DisplayColor = "violet"
	ColorGreen  DisplayColor = "green"
	ColorGray   DisplayColor = "gray"
)

type colorRule struct {
	color DisplayColor
	match func(b *Booking) bool
}

// displayColorRules is evaluated top to bottom; the first match wins.
var displayColorRules = []colorRule{
	{ColorRed, func(b *Booking) bool { return b.Status == BookingNoShow }},
	{ColorBlue, func(b *Booking) bool { return b.PaymentStatus() == PaymentPaid }},
	{ColorViolet, func(b *Booking) bool { return b.PaymentStatus() == PaymentPartial }},
	{ColorGreen, func(b *Booking) bool { return b.Status == BookingPencil }},
}

func (b *Booking) DisplayColor() DisplayColor {
	for _, rule := range displayColorRules {
		if rule.match(b) {
			return rule.color
		}
	}
	return ColorGray
}
