package domain_test

import (
	"testing"

	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortRooms_NumbersCompareNumerically(t *testing.T) {
	rooms := []domain.Room{{Number: "1001"}, {Number: "PH-A"}, {Number: "216"}, {Number: "201"}, {Number: "07"}, {Number: "7"}, {Number: "101"}}

	domain.SortRooms(rooms)

	got := make([]string, 0, len(rooms))
	for _, r := range rooms {
		got = append(got, r.Number)
	}
	assert.Equal(t, []string{"07", "7", "101", "201", "216", "1001", "PH-A"}, got)
}
