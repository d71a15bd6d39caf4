package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script requires a POSIX shell")
	}
	tempDir := t.TempDir()

	// hf-hello writes the environment it received to the file given as argument.
	script := "#!/bin/sh\nprintf '%s\\n' \"$HF_LEDGER_FILE\" \"$HF_CURRENCY\" \"$HF_VERBOSE\" > \"$1\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "hf-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	expectedLedgerFile := filepath.Join(tempDir, "random_ledger.jsonl")
	oldLedgerFile, oldCurrency := *ledgerFile, *currency
	*ledgerFile, *currency = expectedLedgerFile, "USD"
	defer func() { *ledgerFile, *currency = oldLedgerFile, oldCurrency }()

	out := filepath.Join(tempDir, "out.txt")
	found, code := RunExtension("hello", []string{out})
	if !found || code != 3 {
		t.Fatalf("RunExtension() = %v, %d, want true, 3", found, code)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{expectedLedgerFile, "USD", "false"}, "\n") + "\n"
	if string(got) != want {
		t.Errorf("extension environment:\n%s\nwant:\n%s", got, want)
	}

	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Errorf("RunExtension() found a missing extension")
	}
}
