package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeCalendar(t *testing.T) {
	t.Run("weekday afternoon", func(t *testing.T) {
		// November 3rd 2023 is a Friday
		parts := DecomposeCalendar(time.Date(2023, 11, 3, 17, 42, 10, 0, time.UTC))

		assert.Equal(t, CalendarParts{
			Year:      2023,
			Month:     11,
			Day:       3,
			Hour:      17,
			Weekday:   "Friday",
			IsWeekend: false,
		}, parts)
	})

	t.Run("sunday is weekend", func(t *testing.T) {
		parts := DecomposeCalendar(time.Date(2023, 11, 5, 1, 15, 0, 0, time.UTC))

		assert.Equal(t, "Sunday", parts.Weekday)
		assert.True(t, parts.IsWeekend)
	})

	t.Run("midnight is hour zero", func(t *testing.T) {
		parts := DecomposeCalendar(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, 0, parts.Hour)
	})
}
