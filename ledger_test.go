package hostfolio

import (
	"slices"
	"strings"
	"testing"

	"github.com/etnz/hostfolio/date"
)

func TestLedger_Records(t *testing.T) {
	ledger := newTestLedger(t)

	count := func(filters ...func(Record) bool) int {
		n := 0
		for range ledger.Records(filters...) {
			n++
		}
		return n
	}

	testCases := []struct {
		name    string
		filters []func(Record) bool
		want    int
	}{
		{"all", nil, 11},
		{"loft", []func(Record) bool{ByProperty("loft")}, 7},
		{"expenses", []func(Record) bool{ByCommand(CmdExpense)}, 3},
		{"either", []func(Record) bool{ByCommand(CmdIncome), ByCommand(CmdDistribute)}, 2},
		{"march", []func(Record) bool{InRange(date.NewRange(d("2024-03-01"), d("2024-03-31")))}, 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := count(tc.filters...); got != tc.want {
				t.Errorf("Records() yielded %d records, want %d", got, tc.want)
			}
		})
	}
}

func TestLedger_Properties(t *testing.T) {
	ledger := NewLedger()
	appendValid(t, ledger,
		NewProperty(d("2024-05-01"), "", "studio", 180000, 0, 0, 0),
		NewProperty(d("2024-01-01"), "", "beach house", 400000, 100000, 0, 2),
	)
	var names []string
	for p := range ledger.Properties() {
		names = append(names, p.Name)
	}
	if want := []string{"beach house", "studio"}; !slices.Equal(names, want) {
		t.Errorf("Properties() = %v, want %v", names, want)
	}

	studio, _ := ledger.Property("studio")
	if studio.Life != DefaultBuildingLife || studio.Units != 1 {
		t.Errorf("studio defaults = life %d, units %d, want %d, 1", studio.Life, studio.Units, DefaultBuildingLife)
	}
	if studio.ID == "" {
		t.Error("validated record has no id")
	}
	if got, want := ledger.OldestRecordDate(), d("2024-01-01"); got != want {
		t.Errorf("OldestRecordDate() = %s, want %s", got, want)
	}
	if got, want := ledger.NewestRecordDate(), d("2024-05-01"); got != want {
		t.Errorf("NewestRecordDate() = %s, want %s", got, want)
	}
}

func TestLedger_Validate(t *testing.T) {
	ledger := NewLedger()
	appendValid(t, ledger, NewProperty(d("2024-01-01"), "", "loft", 250000, 50000, 25, 1))

	testCases := []struct {
		name string
		rec  Record
		want string // part of the error message, "" for a valid record
	}{
		{"valid booking", NewBooking(d("2024-02-01"), "", "loft", 3, 900, 100), ""},
		{"unknown property", NewBooking(d("2024-02-01"), "", "castle", 3, 900, 100), "not declared"},
		{"before purchase", NewBooking(d("2023-12-01"), "", "loft", 3, 900, 100), "only acquired"},
		{"no nights", NewBooking(d("2024-02-01"), "", "loft", 0, 900, 100), "nights must be at least 1"},
		{"fees over amount", NewBooking(d("2024-02-01"), "", "loft", 3, 900, 1000), "exceed"},
		{"duplicate property", NewProperty(d("2024-03-01"), "", "loft", 1000, 0, 0, 0), "already declared"},
		{"land over price", NewProperty(d("2024-03-01"), "", "lot", 1000, 2000, 0, 0), "exceeds"},
		{"no name", NewProperty(d("2024-03-01"), "", "", 1000, 0, 0, 0), "name is required"},
		{"negative price", NewProperty(d("2024-03-01"), "", "shed", -1, 0, 0, 0), "price must be greater than 0"},
		{"unknown system", NewLoan(d("2024-01-01"), "", "loft", 1000, 0.1, 12, "bullet"), "system must be one of sac, price"},
		{"no months", NewLoan(d("2024-01-01"), "", "loft", 1000, 0.1, 0, "sac"), "months must be at least 1"},
		{"default system", NewLoan(d("2024-01-01"), "", "loft", 1000, 0.1, 12, ""), ""},
		{"unknown category", NewExpense(d("2024-02-01"), "", "", "gift", 10), "category must be one of"},
		{"portfolio expense", NewExpense(d("2024-02-01"), "", "", "", 10), ""},
		{"zero contribution", NewContribute(d("2024-02-01"), "", 0), "amount must be greater than 0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ledger.Validate(tc.rec)
			if tc.want == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				if got.Identifier() == "" {
					t.Error("Validate() did not assign an id")
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestLedger_ValidateDefaults(t *testing.T) {
	ledger := NewLedger()
	appendValid(t, ledger, NewProperty(d("2024-01-31"), "", "loft", 250000, 0, 0, 0))

	rec, err := ledger.Validate(NewLoan(d("2024-01-31"), "", "loft", 1000, 0.1, 12, ""))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	loan := rec.(Loan)
	if loan.System != DefaultLoanSystem {
		t.Errorf("System = %q, want %q", loan.System, DefaultLoanSystem)
	}
	// the first installment is due one month later, clamped to the end of February
	if want := d("2024-02-29"); loan.Start != want {
		t.Errorf("Start = %s, want %s", loan.Start, want)
	}

	rec, err = ledger.Validate(NewExpense(d("2024-02-01"), "", "loft", "", 10))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := rec.(Expense).Category; got != Other {
		t.Errorf("Category = %q, want %q", got, Other)
	}
}

func TestLedger_Fmt(t *testing.T) {
	ledger := NewLedger()
	// raw records, as decoded from a file
	ledger.Append(
		NewProperty(d("2024-01-01"), "", "loft", 250000, 0, 0, 0),
		NewBooking(d("2024-02-01"), "", "loft", 2, 500, 0),
		NewBooking(d("2024-02-02"), "", "castle", 2, 500, 0),
		NewIncome(d("2024-02-03"), "", 0),
	)
	out, err := ledger.Fmt()
	if err == nil {
		t.Fatal("Fmt() error = nil, want the two invalid records reported")
	}
	if n := strings.Count(err.Error(), "invalid"); n != 2 {
		t.Errorf("Fmt() reported %d errors, want 2: %v", n, err)
	}
	if out.Len() != 2 {
		t.Errorf("Fmt() kept %d records, want 2", out.Len())
	}
}
