package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/pkg/types"
)

func defaultHours() domain.BusinessHours {
	return domain.BusinessHours{
		OpeningHour:         9,
		ClosingHour:         19,
		SlotIntervalMinutes: 60,
	}
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestGenerateTimeSlots_SundayIsAlwaysEmpty(t *testing.T) {
	// 2025-11-02 - воскресенье
	sunday := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(defaultHours(), sunday, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_FutureWeekdayFullGrid(t *testing.T) {
	// 2025-11-04 - вторник
	date := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 20, 14, 30, 0, 0, time.UTC)

	slots, err := generateTimeSlots(defaultHours(), date, now)
	require.NoError(t, err)

	expected := []types.TimeString{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00", "18:00",
	}
	assert.Equal(t, expected, slots)
}

func TestGenerateTimeSlots_TodayCutsOffCurrentAndPastHours(t *testing.T) {
	// Сегодня, текущий час 14: слоты 09:00..14:00 исключаются, 15:00..18:00 остаются
	now := time.Date(2025, 11, 4, 14, 5, 0, 0, time.UTC)
	date := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(defaultHours(), date, now)
	require.NoError(t, err)

	expected := []types.TimeString{"15:00", "16:00", "17:00", "18:00"}
	assert.Equal(t, expected, slots)
}

func TestGenerateTimeSlots_TodayAfterClosing(t *testing.T) {
	now := time.Date(2025, 11, 4, 19, 30, 0, 0, time.UTC)
	date := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(defaultHours(), date, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_PastDateIsEmpty(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 11, 4, 8, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(defaultHours(), date, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_CustomInterval(t *testing.T) {
	hours := domain.BusinessHours{OpeningHour: 9, ClosingHour: 11, SlotIntervalMinutes: 30}
	date := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(hours, date, now)
	require.NoError(t, err)

	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}
	assert.Equal(t, expected, slots)
}

func TestFilterTakenSlots(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00", "11:00", "12:00"}

	t.Run("removes taken times", func(t *testing.T) {
		available := filterTakenSlots(slots, []types.TimeString{"10:00", "12:00"})
		assert.Equal(t, []types.TimeString{"09:00", "11:00"}, available)
	})

	t.Run("nothing taken keeps full grid", func(t *testing.T) {
		available := filterTakenSlots(slots, nil)
		assert.Equal(t, slots, available)
	})

	t.Run("everything taken gives empty result", func(t *testing.T) {
		available := filterTakenSlots(slots, slots)
		assert.Empty(t, available)
	})

	t.Run("taken time outside the grid is ignored", func(t *testing.T) {
		available := filterTakenSlots(slots, []types.TimeString{mustTime(t, "20:00")})
		assert.Equal(t, slots, available)
	})
}
