package adherence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_February2024(t *testing.T) {
	// 1 de febrero de 2024 es jueves; año bisiesto.
	grid := BuildGrid(2024, 1)

	require.Len(t, grid, 33)
	for i := 0; i < 4; i++ {
		assert.True(t, grid[i].Blank())
	}
	assert.Equal(t, 1, grid[4].Day)
	assert.Equal(t, 29, grid[32].Day)
}

func TestBuildGrid_StartsOnSunday(t *testing.T) {
	grid := BuildGrid(2023, 0) // enero 2023 empieza domingo

	require.Len(t, grid, 31)
	assert.Equal(t, 1, grid[0].Day)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 1))
	assert.Equal(t, 28, DaysInMonth(2023, 1))
	assert.Equal(t, 28, DaysInMonth(1900, 1))
	assert.Equal(t, 29, DaysInMonth(2000, 1))
	assert.Equal(t, 31, DaysInMonth(2024, 11))
	assert.Equal(t, 30, DaysInMonth(2024, 3))
}

func TestFirstWeekday(t *testing.T) {
	assert.Equal(t, 4, FirstWeekday(2024, 1))
	assert.Equal(t, 0, FirstWeekday(2023, 0))
	assert.Equal(t, 6, FirstWeekday(2024, 5)) // junio 2024 empieza sábado
}

func TestYearMonth_Navigation(t *testing.T) {
	assert.Equal(t, YearMonth{Year: 2023, Month: 11}, YearMonth{Year: 2024, Month: 0}.Previous())
	assert.Equal(t, YearMonth{Year: 2025, Month: 0}, YearMonth{Year: 2024, Month: 11}.Next())
	assert.Equal(t, YearMonth{Year: 2024, Month: 4}, YearMonth{Year: 2024, Month: 5}.Previous())

	ym := YearMonth{Year: 2024, Month: 3}
	for i := 0; i < 12; i++ {
		ym = ym.Next()
	}
	assert.Equal(t, YearMonth{Year: 2025, Month: 3}, ym)

	for i := 0; i < 12; i++ {
		ym = ym.Previous()
	}
	assert.Equal(t, YearMonth{Year: 2024, Month: 3}, ym)
}

func TestYearMonth_Valid(t *testing.T) {
	assert.True(t, YearMonth{Year: 2024, Month: 0}.Valid())
	assert.True(t, YearMonth{Year: 2024, Month: 11}.Valid())
	assert.False(t, YearMonth{Year: 2024, Month: 12}.Valid())
	assert.False(t, YearMonth{Year: 2024, Month: -1}.Valid())

	assert.Equal(t, day("2024-02-01"), YearMonth{Year: 2024, Month: 1}.First())
	assert.Equal(t, YearMonth{Year: 2024, Month: 1}, YearMonthOf(day("2024-02-29")))
}
