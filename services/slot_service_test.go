package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTo12Hour(t *testing.T) {
	cases := map[string]string{
		"":      "12:00 AM",
		"00:00": "12:00 AM",
		"08:00": "8:00 AM",
		"11:30": "11:30 AM",
		"12:00": "12:00 PM",
		"13:00": "1:00 PM",
		"21:00": "9:00 PM",
		"22:00": "10:00 PM",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, FormatTo12Hour(input), "input %q", input)
	}
}

func TestPriceForHour(t *testing.T) {
	assert.Equal(t, 800, priceForHour(8))
	assert.Equal(t, 800, priceForHour(11))
	assert.Equal(t, 1000, priceForHour(12))
	assert.Equal(t, 1000, priceForHour(15))
	assert.Equal(t, 1200, priceForHour(16))
	assert.Equal(t, 1200, priceForHour(19))
	assert.Equal(t, 1500, priceForHour(20))
	assert.Equal(t, 1500, priceForHour(21))
}

func TestBuildDailySlots(t *testing.T) {
	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	slots := buildDailySlots(date)

	require.Len(t, slots, 14)

	expectedPrices := []int{800, 800, 800, 800, 1000, 1000, 1000, 1000, 1200, 1200, 1200, 1200, 1500, 1500}
	for i, slot := range slots {
		assert.Equal(t, expectedPrices[i], slot.Price, "slot %d", i)
		assert.Equal(t, date, slot.Date)
		assert.False(t, slot.IsBooked)
	}

	assert.Equal(t, "08:00", slots[0].StartTime24)
	assert.Equal(t, "09:00", slots[0].EndTime24)
	assert.Equal(t, "8:00 AM", slots[0].StartTime)
	assert.Equal(t, "21:00", slots[13].StartTime24)
	assert.Equal(t, "22:00", slots[13].EndTime24)
	assert.Equal(t, "9:00 PM", slots[13].StartTime)
	assert.Equal(t, "10:00 PM", slots[13].EndTime)

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1].StartTime24, slots[i].StartTime24)
		assert.Equal(t, slots[i-1].EndTime24, slots[i].StartTime24, "slots must be contiguous")
	}
}

func TestStaleLayout(t *testing.T) {
	fresh := buildDailySlots(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))[0]
	assert.False(t, staleLayout(fresh))

	old := fresh
	old.StartTime24 = "08:00"
	old.EndTime24 = "10:00"
	assert.True(t, staleLayout(old))
}

func TestTodaySlotsGeneratesWhenEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	// Rollover sweep before the read.
	mock.ExpectExec(`UPDATE "slots"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "slots"`).WillReturnResult(sqlmock.NewResult(0, 0))

	// No inventory for today yet.
	mock.ExpectQuery(`SELECT (.+) FROM "slots"`).WillReturnRows(sqlmock.NewRows(slotColumns))

	// Bulk insert of the fresh daily set.
	idRows := sqlmock.NewRows([]string{"id"})
	for i := 0; i < 14; i++ {
		idRows.AddRow(uuid.New().String())
	}
	mock.ExpectQuery(`INSERT INTO "slots"`).WillReturnRows(idRows)

	slots, err := TodaySlots(db)
	require.NoError(t, err)
	require.Len(t, slots, 14)

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1].StartTime24, slots[i].StartTime24)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodaySlotsReplacesStaleTwoHourLayout(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "slots"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "slots"`).WillReturnResult(sqlmock.NewResult(0, 0))

	today := Midnight(time.Now().UTC())
	now := time.Now().UTC()
	rows := sqlmock.NewRows(slotColumns).
		AddRow(uuid.New().String(), today, "8:00 AM", "10:00 AM", "08:00", "10:00", 800, false, nil, nil, now, now, now)
	mock.ExpectQuery(`SELECT (.+) FROM "slots"`).WillReturnRows(rows)

	// Retired 2-hour layout detected: wipe today's rows and rebuild.
	mock.ExpectExec(`DELETE FROM "slots"`).WillReturnResult(sqlmock.NewResult(0, 7))

	idRows := sqlmock.NewRows([]string{"id"})
	for i := 0; i < 14; i++ {
		idRows.AddRow(uuid.New().String())
	}
	mock.ExpectQuery(`INSERT INTO "slots"`).WillReturnRows(idRows)

	slots, err := TodaySlots(db)
	require.NoError(t, err)
	require.Len(t, slots, 14)
	assert.Equal(t, "08:00", slots[0].StartTime24)
	assert.Equal(t, "09:00", slots[0].EndTime24)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodaySlotsFiltersBooked(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "slots"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "slots"`).WillReturnResult(sqlmock.NewResult(0, 0))

	today := Midnight(time.Now().UTC())
	now := time.Now().UTC()
	rows := sqlmock.NewRows(slotColumns).
		AddRow(uuid.New().String(), today, "9:00 AM", "10:00 AM", "09:00", "10:00", 800, true, uuid.New().String(), "BK1", now, now, now).
		AddRow(uuid.New().String(), today, "8:00 AM", "9:00 AM", "08:00", "09:00", 800, false, nil, nil, now, now, now)
	mock.ExpectQuery(`SELECT (.+) FROM "slots"`).WillReturnRows(rows)

	slots, err := TodaySlots(db)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "08:00", slots[0].StartTime24)
	assert.False(t, slots[0].IsBooked)

	assert.NoError(t, mock.ExpectationsWereMet())
}
