package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	if got, want := New(2025, time.January, 32), New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
	if got, want := New(2025, 13, 1), New(2026, time.January, 1); got != want {
		t.Errorf("New(2025, 13, 1) = %v, want %v", got, want)
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"same day next month", "2025-03-15", 1, "2025-04-15"},
		{"offset zero", "2025-03-15", 0, "2025-03-15"},
		{"year rollover", "2025-11-10", 3, "2026-02-10"},
		{"clamped to february", "2025-01-31", 1, "2025-02-28"},
		{"clamped to leap february", "2024-01-31", 1, "2024-02-29"},
		{"clamped to 30 days", "2025-03-31", 1, "2025-04-30"},
		{"long offset keeps day", "2025-01-31", 2, "2025-03-31"},
		{"negative", "2025-03-31", -1, "2025-02-28"},
		{"negative year rollover", "2025-01-15", -13, "2023-12-15"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParse(tc.in).AddMonths(tc.n)
			if got.String() != tc.want {
				t.Errorf("%s.AddMonths(%d) = %v, want %v", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if want := New(2025, time.July, 1); got != want {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
	if _, err := Parse("01/07/2025"); err == nil {
		t.Errorf("Parse(\"01/07/2025\") expected an error")
	}
}

func TestDaysAndYearsBetween(t *testing.T) {
	from, to := MustParse("2024-01-01"), MustParse("2025-01-01")
	if got := from.DaysBetween(to); got != 366 {
		t.Errorf("DaysBetween() = %d, want 366", got)
	}
	if got := to.DaysBetween(from); got != -366 {
		t.Errorf("DaysBetween() = %d, want -366", got)
	}
	if got := MustParse("2020-01-01").YearsBetween(MustParse("2024-01-01")); got < 3.99 || got > 4.01 {
		t.Errorf("YearsBetween() = %v, want ~4", got)
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		On Date `json:"on"`
	}
	data, err := json.Marshal(wrapper{On: New(2025, time.March, 4)})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"on":"2025-03-04"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"on":"2025-3-4"}`), &w); err != nil {
		t.Fatal(err)
	}
	if w.On != New(2025, time.March, 4) {
		t.Errorf("Unmarshal() = %v", w.On)
	}

	if err := json.Unmarshal([]byte(`{"on":""}`), &w); err != nil {
		t.Fatal(err)
	}
	if !w.On.IsZero() {
		t.Errorf("Unmarshal(\"\") = %v, want zero date", w.On)
	}
}
