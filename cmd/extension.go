package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
)

// RunExtension attempts to find and execute an external hf-<subcommand> binary.
// The global flags are passed to it through their HF_* environment variables.
//
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "hf-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		Logger().Debugw("extension not found", "command", name, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	for env, flagName := range envFlags {
		if f := flag.Lookup(flagName); f != nil {
			cmd.Env = append(cmd.Env, env+"="+f.Value.String())
		}
	}

	Logger().Debugw("running extension", "command", lp, "args", args)
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
