package temporal

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestNewIsoTime(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			h, m, s, ms, us, ns int
			overflow            Overflow
			want                IsoTime
		}{
			{12, 34, 56, 789, 101, 112, Reject, NewIsoTimeUnchecked(12, 34, 56, 789, 101, 112)},
			{0, 0, 0, 0, 0, 0, Reject, Midnight()},
			{23, 59, 59, 999, 999, 999, Reject, NewIsoTimeUnchecked(23, 59, 59, 999, 999, 999)},
			// Constrain clamps each field independently, no carry.
			{24, 60, 61, 1000, -1, 5000, Constrain, NewIsoTimeUnchecked(23, 59, 59, 999, 0, 999)},
			{-5, 30, 0, 0, 0, 0, Constrain, NewIsoTimeUnchecked(0, 30, 0, 0, 0, 0)},
		}
		for _, tt := range tests {
			got, err := NewIsoTime(tt.h, tt.m, tt.s, tt.ms, tt.us, tt.ns, tt.overflow)
			if err != nil {
				t.Errorf("NewIsoTime(%v, %v, %v, %v, %v, %v, %v) failed: %v", tt.h, tt.m, tt.s, tt.ms, tt.us, tt.ns, tt.overflow, err)
				continue
			}
			if got != tt.want {
				t.Errorf("NewIsoTime(%v, %v, %v, %v, %v, %v, %v) = %v, want %v", tt.h, tt.m, tt.s, tt.ms, tt.us, tt.ns, tt.overflow, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			h, m, s, ms, us, ns int
			overflow            Overflow
		}{
			"hour 24":        {24, 0, 0, 0, 0, 0, Reject},
			"negative hour":  {-1, 0, 0, 0, 0, 0, Reject},
			"minute 60":      {0, 60, 0, 0, 0, 0, Reject},
			"second 60":      {0, 0, 60, 0, 0, 0, Reject},
			"millisecond":    {0, 0, 0, 1000, 0, 0, Reject},
			"microsecond":    {0, 0, 0, 0, 1000, 0, Reject},
			"nanosecond":     {0, 0, 0, 0, 0, 1000, Reject},
			"unknown policy": {0, 0, 0, 0, 0, 0, Overflow(99)},
		}
		for name, tt := range tests {
			_, err := NewIsoTime(tt.h, tt.m, tt.s, tt.ms, tt.us, tt.ns, tt.overflow)
			if !errors.Is(err, ErrRange) {
				t.Errorf("%q: NewIsoTime did not fail with ErrRange, got %v", name, err)
			}
		}
	})
}

func TestNewIsoTimeFromComponents(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			h, m, s  int
			fraction string
			want     IsoTime
		}{
			{12, 34, 56, "0", NewIsoTimeUnchecked(12, 34, 56, 0, 0, 0)},
			{0, 0, 0, "0.5", NewIsoTimeUnchecked(0, 0, 0, 500, 0, 0)},
			{1, 2, 3, "0.123456789", NewIsoTimeUnchecked(1, 2, 3, 123, 456, 789)},
			{1, 2, 3, "0.123456", NewIsoTimeUnchecked(1, 2, 3, 123, 456, 0)},
			{1, 2, 3, "0.123", NewIsoTimeUnchecked(1, 2, 3, 123, 0, 0)},
			// Sub-nanosecond digits round half away from zero at the nanosecond.
			{0, 0, 0, "0.0000000005", NewIsoTimeUnchecked(0, 0, 0, 0, 0, 1)},
			{0, 0, 0, "0.0000000004", Midnight()},
			{0, 0, 0, "0.9999999994", NewIsoTimeUnchecked(0, 0, 0, 999, 999, 999)},
		}
		for _, tt := range tests {
			got, err := NewIsoTimeFromComponents(tt.h, tt.m, tt.s, decimal.MustParse(tt.fraction))
			if err != nil {
				t.Errorf("NewIsoTimeFromComponents(%v, %v, %v, %v) failed: %v", tt.h, tt.m, tt.s, tt.fraction, err)
				continue
			}
			if got != tt.want {
				t.Errorf("NewIsoTimeFromComponents(%v, %v, %v, %v) = %v, want %v", tt.h, tt.m, tt.s, tt.fraction, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			h, m, s  int
			fraction string
		}{
			"negative fraction": {0, 0, 0, "-0.1"},
			"fraction of one":   {0, 0, 0, "1"},
			"fraction above":    {0, 0, 0, "1.5"},
			"tie-break carry":   {0, 0, 0, "0.0009999995"},
			"hour out of range": {24, 0, 0, "0.1"},
			"minute 60":         {0, 60, 0, "0"},
		}
		for name, tt := range tests {
			_, err := NewIsoTimeFromComponents(tt.h, tt.m, tt.s, decimal.MustParse(tt.fraction))
			if !errors.Is(err, ErrRange) {
				t.Errorf("%q: NewIsoTimeFromComponents did not fail with ErrRange, got %v", name, err)
			}
		}
	})
}

func TestBalanceIsoTime(t *testing.T) {
	tests := []struct {
		h, m, s, ms, us, ns float64
		wantDays            int64
		want                IsoTime
	}{
		{0, 0, 0, 0, 0, 0, 0, Midnight()},
		{12, 34, 56, 789, 101, 112, 0, NewIsoTimeUnchecked(12, 34, 56, 789, 101, 112)},
		{25, 0, 0, 0, 0, 0, 1, NewIsoTimeUnchecked(1, 0, 0, 0, 0, 0)},
		{48, 0, 0, 0, 0, 0, 2, Midnight()},
		{-1, 0, 0, 0, 0, 0, -1, NewIsoTimeUnchecked(23, 0, 0, 0, 0, 0)},
		{0, 90, 0, 0, 0, 0, 0, NewIsoTimeUnchecked(1, 30, 0, 0, 0, 0)},
		{0, 0, 86400, 0, 0, 0, 1, Midnight()},
		{0, 0, -1, 0, 0, 0, -1, NewIsoTimeUnchecked(23, 59, 59, 0, 0, 0)},
		{0, 0, 0, 0, 0, -1, -1, NewIsoTimeUnchecked(23, 59, 59, 999, 999, 999)},
		{23, 59, 59, 999, 999, 1000, 1, Midnight()},
		{0, 0, 0, 1500, 0, 0, 0, NewIsoTimeUnchecked(0, 0, 1, 500, 0, 0)},
		{0, 0, 0, 0, -2500, 0, -1, NewIsoTimeUnchecked(23, 59, 59, 997, 500, 0)},
	}
	for _, tt := range tests {
		days, got := BalanceIsoTime(tt.h, tt.m, tt.s, tt.ms, tt.us, tt.ns)
		if days != tt.wantDays || got != tt.want {
			t.Errorf("BalanceIsoTime(%v, %v, %v, %v, %v, %v) = (%v, %v), want (%v, %v)",
				tt.h, tt.m, tt.s, tt.ms, tt.us, tt.ns, days, got, tt.wantDays, tt.want)
		}
	}
}

func TestIsoTime_Add(t *testing.T) {
	tests := []struct {
		t        IsoTime
		ns       int64
		wantDays int64
		want     IsoTime
	}{
		{Midnight(), 0, 0, Midnight()},
		{Midnight(), nsPerHour, 0, NewIsoTimeUnchecked(1, 0, 0, 0, 0, 0)},
		{NewIsoTimeUnchecked(23, 0, 0, 0, 0, 0), 2 * nsPerHour, 1, NewIsoTimeUnchecked(1, 0, 0, 0, 0, 0)},
		{NewIsoTimeUnchecked(0, 30, 0, 0, 0, 0), -nsPerHour, -1, NewIsoTimeUnchecked(23, 30, 0, 0, 0, 0)},
		{NewIsoTimeUnchecked(12, 0, 0, 0, 0, 0), 90*nsPerMinute + 1, 0, NewIsoTimeUnchecked(13, 30, 0, 0, 0, 1)},
		{NewIsoTimeUnchecked(23, 59, 59, 999, 999, 999), 1, 1, Midnight()},
	}
	for _, tt := range tests {
		days, got := tt.t.Add(NormalizedTimeDurationFromNanoseconds(tt.ns))
		if days != tt.wantDays || got != tt.want {
			t.Errorf("%v.Add(%v ns) = (%v, %v), want (%v, %v)", tt.t, tt.ns, days, got, tt.wantDays, tt.want)
		}
	}
}

func TestIsoTime_Diff(t *testing.T) {
	tests := []struct {
		t, u IsoTime
		want TimeDuration
	}{
		{Midnight(), Midnight(), TimeDuration{}},
		{NewIsoTimeUnchecked(12, 30, 0, 0, 0, 0), NewIsoTimeUnchecked(13, 45, 30, 0, 0, 0), TimeDuration{Hours: 1, Minutes: 15, Seconds: 30}},
		// Deltas are raw per field and may disagree in sign.
		{NewIsoTimeUnchecked(1, 30, 0, 0, 0, 0), NewIsoTimeUnchecked(2, 15, 45, 0, 0, 0), TimeDuration{Hours: 1, Minutes: -15, Seconds: 45}},
		{NewIsoTimeUnchecked(13, 45, 30, 0, 0, 0), NewIsoTimeUnchecked(12, 30, 0, 0, 0, 0), TimeDuration{Hours: -1, Minutes: -15, Seconds: -30}},
		{NewIsoTimeUnchecked(0, 0, 0, 100, 200, 300), NewIsoTimeUnchecked(0, 0, 0, 300, 100, 900), TimeDuration{Milliseconds: 200, Microseconds: -100, Nanoseconds: 600}},
	}
	for _, tt := range tests {
		if got := tt.t.Diff(tt.u); got != tt.want {
			t.Errorf("%v.Diff(%v) = %+v, want %+v", tt.t, tt.u, got, tt.want)
		}
	}
}

func TestIsoTime_Round(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			t         IsoTime
			increment RoundingIncrement
			unit      Unit
			mode      RoundingMode
			wantDays  int64
			want      IsoTime
		}{
			{NewIsoTimeUnchecked(12, 34, 56, 700, 0, 0), 15, Minute, RoundHalfEven, 0, NewIsoTimeUnchecked(12, 30, 0, 0, 0, 0)},
			{NewIsoTimeUnchecked(12, 30, 0, 0, 0, 0), 1, Hour, RoundHalfEven, 0, NewIsoTimeUnchecked(12, 0, 0, 0, 0, 0)},
			{NewIsoTimeUnchecked(12, 30, 0, 0, 0, 0), 1, Hour, RoundHalfExpand, 0, NewIsoTimeUnchecked(13, 0, 0, 0, 0, 0)},
			{NewIsoTimeUnchecked(11, 30, 0, 0, 0, 0), 1, Hour, RoundHalfEven, 0, NewIsoTimeUnchecked(12, 0, 0, 0, 0, 0)},
			{NewIsoTimeUnchecked(23, 59, 59, 999, 999, 999), 1, Second, RoundCeil, 1, Midnight()},
			{NewIsoTimeUnchecked(23, 59, 59, 999, 999, 999), 1, Second, RoundFloor, 0, NewIsoTimeUnchecked(23, 59, 59, 0, 0, 0)},
			// Fields coarser than the unit are preserved.
			{NewIsoTimeUnchecked(8, 22, 15, 0, 123, 456), 10, Microsecond, RoundTrunc, 0, NewIsoTimeUnchecked(8, 22, 15, 0, 120, 0)},
			{NewIsoTimeUnchecked(8, 22, 15, 123, 0, 0), 100, Millisecond, RoundExpand, 0, NewIsoTimeUnchecked(8, 22, 15, 200, 0, 0)},
			{NewIsoTimeUnchecked(8, 22, 15, 0, 0, 7), 5, Nanosecond, RoundHalfExpand, 0, NewIsoTimeUnchecked(8, 22, 15, 0, 0, 5)},
			// Day rounding yields a day count and midnight.
			{NewIsoTimeUnchecked(11, 0, 0, 0, 0, 0), 1, Day, RoundTrunc, 0, Midnight()},
			{NewIsoTimeUnchecked(13, 0, 0, 0, 0, 0), 1, Day, RoundHalfExpand, 1, Midnight()},
		}
		for _, tt := range tests {
			days, got, err := tt.t.Round(tt.increment, tt.unit, tt.mode)
			if err != nil {
				t.Errorf("%v.Round(%v, %v, %v) failed: %v", tt.t, tt.increment, tt.unit, tt.mode, err)
				continue
			}
			if days != tt.wantDays || got != tt.want {
				t.Errorf("%v.Round(%v, %v, %v) = (%v, %v), want (%v, %v)", tt.t, tt.increment, tt.unit, tt.mode, days, got, tt.wantDays, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			increment RoundingIncrement
			unit      Unit
			mode      RoundingMode
		}{
			"zero increment":  {0, Hour, RoundTrunc},
			"huge increment":  {RoundingIncrement(maxRoundingIncrement + 1), Hour, RoundTrunc},
			"calendar unit":   {1, Month, RoundTrunc},
			"week unit":       {1, Week, RoundTrunc},
			"unknown mode":    {1, Hour, RoundingMode(99)},
			"unrepresentable": {maxRoundingIncrement, Day, RoundTrunc},
		}
		for name, tt := range tests {
			_, _, err := Noon().Round(tt.increment, tt.unit, tt.mode)
			if !errors.Is(err, ErrRange) {
				t.Errorf("%q: Round(%v, %v, %v) did not fail with ErrRange, got %v", name, tt.increment, tt.unit, tt.mode, err)
			}
		}
	})
}

func TestIsoTime_RoundWithDayLength(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// A 23-hour day puts noon past its midpoint.
		days, got, err := Noon().RoundWithDayLength(1, Day, RoundHalfExpand, 23*nsPerHour)
		if err != nil {
			t.Errorf("RoundWithDayLength failed: %v", err)
		}
		if days != 1 || got != Midnight() {
			t.Errorf("RoundWithDayLength(1, Day, halfExpand, 23h) = (%v, %v), want (1, %v)", days, got, Midnight())
		}

		// A 25-hour day keeps noon below the midpoint.
		days, got, err = Noon().RoundWithDayLength(1, Day, RoundHalfExpand, 25*nsPerHour)
		if err != nil {
			t.Errorf("RoundWithDayLength failed: %v", err)
		}
		if days != 0 || got != Midnight() {
			t.Errorf("RoundWithDayLength(1, Day, halfExpand, 25h) = (%v, %v), want (0, %v)", days, got, Midnight())
		}
	})

	t.Run("error", func(t *testing.T) {
		for name, dayLength := range map[string]int64{"zero": 0, "negative": -nsPerDay} {
			_, _, err := Noon().RoundWithDayLength(1, Day, RoundTrunc, dayLength)
			if !errors.Is(err, ErrRange) {
				t.Errorf("%q: RoundWithDayLength did not fail with ErrRange, got %v", name, err)
			}
		}
	})
}

func TestIsoTime_Cmp(t *testing.T) {
	tests := []struct {
		t, u IsoTime
		want int
	}{
		{Midnight(), Midnight(), 0},
		{Midnight(), Noon(), -1},
		{Noon(), Midnight(), 1},
		{NewIsoTimeUnchecked(12, 0, 0, 0, 0, 0), NewIsoTimeUnchecked(12, 0, 0, 0, 0, 1), -1},
		{NewIsoTimeUnchecked(11, 59, 59, 999, 999, 999), Noon(), -1},
	}
	for _, tt := range tests {
		if got := tt.t.Cmp(tt.u); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", tt.t, tt.u, got, tt.want)
		}
	}
}

func TestIsoTime_ToEpochMs(t *testing.T) {
	tests := []struct {
		t    IsoTime
		want int64
	}{
		{Midnight(), 0},
		{Noon(), 43_200_000},
		{NewIsoTimeUnchecked(1, 2, 3, 4, 0, 0), 3_723_004},
		// Microseconds and nanoseconds are excluded.
		{NewIsoTimeUnchecked(0, 0, 0, 0, 999, 999), 0},
		{NewIsoTimeUnchecked(23, 59, 59, 999, 0, 0), msPerDay - 1},
	}
	for _, tt := range tests {
		if got := tt.t.ToEpochMs(); got != tt.want {
			t.Errorf("%v.ToEpochMs() = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestIsoTime_IsValid(t *testing.T) {
	tests := []struct {
		t    IsoTime
		want bool
	}{
		{Midnight(), true},
		{NewIsoTimeUnchecked(23, 59, 59, 999, 999, 999), true},
		{NewIsoTimeUnchecked(24, 0, 0, 0, 0, 0), false},
		{NewIsoTimeUnchecked(0, 0, 0, 0, 0, 1000), false},
	}
	for _, tt := range tests {
		if got := tt.t.IsValid(); got != tt.want {
			t.Errorf("%v.IsValid() = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestIsoTime_String(t *testing.T) {
	tests := []struct {
		t    IsoTime
		want string
	}{
		{Midnight(), "00:00:00"},
		{Noon(), "12:00:00"},
		{NewIsoTimeUnchecked(12, 34, 56, 789, 0, 0), "12:34:56.789"},
		{NewIsoTimeUnchecked(12, 34, 56, 100, 0, 0), "12:34:56.1"},
		{NewIsoTimeUnchecked(0, 0, 0, 0, 0, 1), "00:00:00.000000001"},
		{NewIsoTimeUnchecked(1, 2, 3, 123, 456, 789), "01:02:03.123456789"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
