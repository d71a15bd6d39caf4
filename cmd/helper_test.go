package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/subcommands"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

// Helper function to create a temporary ledger file
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test_ledger.jsonl")
	if content != "" {
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write to temp file: %v", err)
		}
	}
	return name
}

// useLedger overrides the global ledger file for the test, and prints raw markdown.
func useLedger(t *testing.T, name string) {
	t.Helper()
	oldLedgerFile, oldRaw := ledgerFile, raw
	yes := true
	ledgerFile, raw = &name, &yes
	t.Cleanup(func() { ledgerFile, raw = oldLedgerFile, oldRaw })
}

// run parses args with the command flags and executes it.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: invalid arguments %v: %v", cmd.Name(), args, err)
	}
	return cmd.Execute(context.Background(), f)
}

// captureStdout returns what fn prints on stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.Bytes()
	}()
	defer func() { os.Stdout = old }()
	fn()
	w.Close()
	return string(<-done)
}

const testLedger = `{"command":"contribute","date":"2024-01-01","amount":300000}
{"command":"property","date":"2024-01-01","name":"loft","price":250000,"land":50000,"life":25,"units":1}
{"command":"loan","date":"2024-01-01","property":"loft","principal":120000,"rate":0.12,"months":120,"system":"sac"}
{"command":"booking","date":"2024-03-10","property":"loft","nights":5,"amount":2000,"fees":300}
{"command":"expense","date":"2024-03-15","property":"loft","category":"variable","amount":200}
`
