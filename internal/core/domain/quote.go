package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type NightRate struct {
	Date     time.Time       `json:"date"`
	Elevated bool            `json:"elevated"`
	Rate     decimal.Decimal `json:"rate"`
}

type Quote struct {
	Stay   DateRange       `json:"-"`
	Nights []NightRate     `json:"nights"`
	Total  decimal.Decimal `json:"total"`
}
