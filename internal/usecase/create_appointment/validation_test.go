package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/pkg/types"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"strips mask characters", "(11) 99999-8888", "11999998888"},
		{"plain digits pass through", "1199999888", "1199999888"},
		{"truncates beyond 11 digits", "119999988887777", "11999998888"},
		{"letters are dropped", "11 abc 9999-8888", "1199998888"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePhone(tt.raw))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Run("nine digits rejected", func(t *testing.T) {
		err := validatePhone("119999888")
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("ten digits accepted", func(t *testing.T) {
		assert.NoError(t, validatePhone("1199998888"))
	})

	t.Run("eleven digits accepted", func(t *testing.T) {
		assert.NoError(t, validatePhone("11999998888"))
	})

	t.Run("truncation happens before validation", func(t *testing.T) {
		digits := normalizePhone("11999998888000000")
		require.Len(t, digits, domain.MaxPhoneDigits)
		assert.NoError(t, validatePhone(digits))
	})
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   string
	}{
		{"eleven digits", "11999998888", "(11) 99999-8888"},
		{"ten digits", "1199998888", "(11) 9999-8888"},
		{"short remainder has no hyphen", "119999", "(11) 9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPhone(tt.digits))
		})
	}
}

func testHours() domain.BusinessHours {
	return domain.BusinessHours{OpeningHour: 9, ClosingHour: 19, SlotIntervalMinutes: 60}
}

func TestValidateSlotTime(t *testing.T) {
	// 2025-11-04 - вторник, 2025-11-02 - воскресенье
	tuesday := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		startTime types.TimeString
		now       time.Time
		wantErr   error
	}{
		{"valid future weekday slot", tuesday, "10:00", now, nil},
		{"sunday rejected", sunday, "10:00", time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC), ErrClosedDay},
		{"past date rejected", tuesday, "10:00", time.Date(2025, 11, 5, 8, 0, 0, 0, time.UTC), ErrInvalidDate},
		{"before opening rejected", tuesday, "08:00", now, ErrInvalidTimeSlot},
		{"at closing rejected", tuesday, "19:00", now, ErrInvalidTimeSlot},
		{"off-grid time rejected", tuesday, "10:30", now, ErrInvalidTimeSlot},
		{"last slot of the day accepted", tuesday, "18:00", now, nil},
		{"today current hour rejected", tuesday, "14:00", time.Date(2025, 11, 4, 14, 10, 0, 0, time.UTC), ErrTooLateToBook},
		{"today next hour accepted", tuesday, "15:00", time.Date(2025, 11, 4, 14, 10, 0, 0, time.UTC), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlotTime(testHours(), tt.date, tt.startTime, tt.now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			CustomerName:  "João Silva",
			CustomerPhone: "(11) 99999-8888",
			ServiceID:     domain.ServiceCombo,
			Date:          time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC),
			StartTime:     "10:00",
		}
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validateRequest(valid()))
	})

	t.Run("blank name rejected", func(t *testing.T) {
		req := valid()
		req.CustomerName = "   "
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("unknown service rejected", func(t *testing.T) {
		req := valid()
		req.ServiceID = "mullet"
		assert.ErrorIs(t, validateRequest(req), ErrServiceNotFound)
	})

	t.Run("missing time rejected", func(t *testing.T) {
		req := valid()
		req.StartTime = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("malformed time rejected", func(t *testing.T) {
		req := valid()
		req.StartTime = "25:99"
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}
