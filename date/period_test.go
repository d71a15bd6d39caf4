package date

import (
	"slices"
	"testing"
	"time"
)

func TestPeriod_Range(t *testing.T) {
	testCases := []struct {
		name   string
		period Period
		in     Date
		want   Range
	}{
		{
			name:   "Daily",
			period: Daily,
			in:     New(2025, time.September, 8),
			want:   Range{From: New(2025, time.September, 8), To: New(2025, time.September, 8)},
		},
		{
			name:   "Weekly on a Monday",
			period: Weekly,
			in:     New(2025, time.September, 8),
			want:   Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name:   "Weekly on a Sunday",
			period: Weekly,
			in:     New(2025, time.September, 14),
			want:   Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name:   "Weekly across years",
			period: Weekly,
			in:     New(2025, time.January, 1),
			want:   Range{From: New(2024, time.December, 30), To: New(2025, time.January, 5)},
		},
		{
			name:   "Monthly in a leap year",
			period: Monthly,
			in:     New(2024, time.February, 15),
			want:   Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)},
		},
		{
			name:   "Quarterly Q3",
			period: Quarterly,
			in:     New(2025, time.August, 20),
			want:   Range{From: New(2025, time.July, 1), To: New(2025, time.September, 30)},
		},
		{
			name:   "Quarterly Q4",
			period: Quarterly,
			in:     New(2025, time.December, 31),
			want:   Range{From: New(2025, time.October, 1), To: New(2025, time.December, 31)},
		},
		{
			name:   "Yearly",
			period: Yearly,
			in:     New(2025, time.June, 1),
			want:   Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.period.Range(tc.in); got != tc.want {
				t.Errorf("%v.Range(%v) = %v, want %v", tc.period, tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"week": Weekly, "Weekly": Weekly, "month": Monthly, "Quarterly": Quarterly, " year ": Yearly, "day": Daily} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Errorf("ParsePeriod(\"fortnight\") expected an error")
	}
}

func TestRange(t *testing.T) {
	r := NewRange(MustParse("2024-03-10"), MustParse("2024-02-15"))
	if r.From != MustParse("2024-02-15") {
		t.Errorf("NewRange() did not swap boundaries: %v", r)
	}
	if got := r.Days(); got != 25 {
		t.Errorf("Days() = %d, want 25", got)
	}
	if !r.Contains(MustParse("2024-03-10")) || r.Contains(MustParse("2024-03-11")) {
		t.Errorf("Contains() boundaries are wrong")
	}

	got := slices.Collect(r.Periods(Monthly))
	want := []Range{
		{From: MustParse("2024-02-15"), To: MustParse("2024-02-29")},
		{From: MustParse("2024-03-01"), To: MustParse("2024-03-10")},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Periods() = %v, want %v", got, want)
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		r    Range
		want string
	}{
		{Year(2025), "2025"},
		{Quarterly.Range(New(2025, 5, 5)), "2025-Q2"},
		{Monthly.Range(New(2025, 5, 5)), "2025-05"},
		{Weekly.Range(New(2025, 9, 10)), "2025-W37"},
		{Weekly.Range(New(2025, 1, 1)), "2025-W01"},
		{NewRange(New(2025, 9, 9), New(2025, 9, 15)), "2025-09-09_2025-09-15"},
		{NewRange(New(2025, 5, 5), New(2025, 6, 6)), "2025-05-05_2025-06-06"},
	}
	for _, tc := range testCases {
		if got := tc.r.Identifier(); got != tc.want {
			t.Errorf("Identifier() = %q, want %q", got, tc.want)
		}
	}
}
