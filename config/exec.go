package config

import (
	"os/exec"

	"github.com/gobs/args"
)

// splitProg splits a shell-style command line into argv, reused from
// the teacher's own gobs/args usage for job commands.
func splitProg(cmd string) []string {
	return args.GetArgs(cmd)
}

// runScript executes path with no arguments and waits for it to
// finish.
func runScript(path string) error {
	return exec.Command(path).Run()
}
