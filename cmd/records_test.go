package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/etnz/hostfolio"
	"github.com/google/subcommands"
)

func TestAddRecords(t *testing.T) {
	useLedger(t, createTempLedger(t, ""))

	steps := []struct {
		cmd  subcommands.Command
		args []string
	}{
		{&contributeCmd{}, []string{"-d", "2024-01-01", "-amount", "300000"}},
		{&addPropertyCmd{}, []string{"-d", "2024-01-01", "-name", "loft", "-price", "250000", "-land", "50000"}},
		{&addLoanCmd{}, []string{"-d", "2024-01-01", "-property", "loft", "-principal", "120000", "-rate", "12%", "-months", "120", "-system", "sac"}},
		{&addBookingCmd{}, []string{"-d", "2024-03-10", "-property", "loft", "-nights", "5", "-amount", "2000", "-fees", "300"}},
		{&addExpenseCmd{}, []string{"-d", "2024-03-15", "-property", "loft", "-c", "variable", "-amount", "200"}},
		{&addIncomeCmd{}, []string{"-d", "2024-03-31", "-amount", "100"}},
		{&addRenovationCmd{}, []string{"-d", "2024-04-01", "-property", "loft", "-amount", "12000"}},
		{&appraiseCmd{}, []string{"-d", "2024-12-31", "-property", "loft", "-value", "280000"}},
		{&distributeCmd{}, []string{"-d", "2024-12-31", "-amount", "1000", "-m", "dividends"}},
	}
	for _, s := range steps {
		if status := run(t, s.cmd, s.args...); status != subcommands.ExitSuccess {
			t.Fatalf("%s %v = %v, want ExitSuccess", s.cmd.Name(), s.args, status)
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != len(steps) {
		t.Fatalf("ledger has %d records, want %d", ledger.Len(), len(steps))
	}
	for _, rec := range ledger.Records() {
		if rec.Identifier() == "" {
			t.Errorf("%s record on %s has no id", rec.What(), rec.When())
		}
	}
	loft, ok := ledger.Property("loft")
	if !ok || loft.Life != hostfolio.DefaultBuildingLife || loft.Units != 1 {
		t.Errorf("property loft = %+v, want default life and one unit", loft)
	}
	for loan := range ledger.Loans("loft") {
		if loan.Rate != 0.12 || loan.Start.String() != "2024-02-01" {
			t.Errorf("loan = %+v, want 12%% starting on 2024-02-01", loan)
		}
	}
}

func TestAddRecordErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want subcommands.ExitStatus
	}{
		{"unknown property", &addBookingCmd{}, []string{"-d", "2024-03-10", "-property", "castle", "-nights", "2", "-amount", "500"}, subcommands.ExitFailure},
		{"booking before acquisition", &addBookingCmd{}, []string{"-d", "2023-12-10", "-property", "loft", "-nights", "2", "-amount", "500"}, subcommands.ExitFailure},
		{"duplicate property", &addPropertyCmd{}, []string{"-d", "2024-06-01", "-name", "loft", "-price", "1000"}, subcommands.ExitFailure},
		{"unknown category", &addExpenseCmd{}, []string{"-d", "2024-06-01", "-c", "travel", "-amount", "10"}, subcommands.ExitFailure},
		{"unknown system", &addLoanCmd{}, []string{"-d", "2024-06-01", "-property", "loft", "-principal", "1000", "-months", "12", "-system", "bullet"}, subcommands.ExitFailure},
		{"missing amount", &contributeCmd{}, []string{"-d", "2024-06-01"}, subcommands.ExitUsageError},
		{"bad date", &contributeCmd{}, []string{"-d", "June 1st", "-amount", "10"}, subcommands.ExitUsageError},
		{"bad rate", &addLoanCmd{}, []string{"-property", "loft", "-principal", "1000", "-months", "12", "-rate", "twelve"}, subcommands.ExitUsageError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name := createTempLedger(t, testLedger)
			useLedger(t, name)

			if got := run(t, tc.cmd, tc.args...); got != tc.want {
				t.Errorf("%s %v = %v, want %v", tc.cmd.Name(), tc.args, got, tc.want)
			}
			content, err := os.ReadFile(name)
			if err != nil {
				t.Fatal(err)
			}
			if string(content) != testLedger {
				t.Errorf("ledger was modified:\n%s", content)
			}
		})
	}
}

func TestFmt(t *testing.T) {
	unordered := `{"command":"booking","date":"2024-03-10","property":"loft","nights":5,"amount":2000,"fees":300}

{"command":"property","date":"2024-01-01","name":"loft","price":250000,"land":50000,"memo":"first one"}
`
	name := createTempLedger(t, unordered)
	useLedger(t, name)

	if status := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt = %v, want ExitSuccess", status)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("formatted ledger has %d lines, want 2:\n%s", len(lines), content)
	}
	if !strings.HasPrefix(lines[0], `{"command":"property","date":"2024-01-01","id":"`) ||
		!strings.Contains(lines[0], `"memo":"first one","name":"loft","price":250000,"land":50000,"life":25,"units":1}`) {
		t.Errorf("first line = %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `{"command":"booking","date":"2024-03-10","id":"`) {
		t.Errorf("second line = %s", lines[1])
	}

	// Running it again is stable.
	if status := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt = %v, want ExitSuccess", status)
	}
	again, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(content) {
		t.Errorf("fmt is not stable:\n%s\nthen:\n%s", content, again)
	}
}

func TestFmtInvalidLedger(t *testing.T) {
	invalid := `{"command":"booking","date":"2024-03-10","property":"loft","nights":5,"amount":2000}
`
	name := createTempLedger(t, invalid)
	useLedger(t, name)

	if status := run(t, &fmtCmd{}); status != subcommands.ExitFailure {
		t.Errorf("fmt = %v, want ExitFailure", status)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != invalid {
		t.Errorf("invalid ledger was rewritten:\n%s", content)
	}
}
