// Package sinks implements C6, the passthrough sinks: consumers of
// the raw event stream that run independently of classification and
// policy. LogSink mirrors original_source/dockermon.py's
// print_callback; ProgramSink mirrors its prog_callback.
package sinks

import (
	"os/exec"

	"github.com/netresearch/dockwatch/core"
)

// Sink consumes one raw event. Sinks never return an error to the
// pipeline: failures are logged and swallowed, since a sink must never
// stall classification or policy delivery.
type Sink interface {
	Handle(core.RawEvent)
}

// LogSink writes each event as a single JSON line via the Logger.
type LogSink struct {
	log core.Logger
}

// NewLogSink returns a LogSink. log must not be nil.
func NewLogSink(log core.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Handle(ev core.RawEvent) {
	js, err := ev.JSON()
	if err != nil {
		s.log.Warningf("log sink: marshaling event: %v", err)
		return
	}
	s.log.Noticef("%s", js)
}

// ProgramSink spawns prog for every event, writes the event JSON to
// its stdin, closes stdin, and does not wait for the process to exit —
// exactly original_source's prog_callback.
type ProgramSink struct {
	argv []string
	log  core.Logger
}

// NewProgramSink wraps an already-split argv (see config.splitProg,
// which uses gobs/args — the same shell-token splitter the teacher's
// job types use for Command — to turn the --prog flag into argv).
func NewProgramSink(argv []string, log core.Logger) *ProgramSink {
	return &ProgramSink{argv: argv, log: log}
}

func (s *ProgramSink) Handle(ev core.RawEvent) {
	if len(s.argv) == 0 {
		return
	}

	js, err := ev.JSON()
	if err != nil {
		s.log.Warningf("program sink: marshaling event: %v", err)
		return
	}

	cmd := exec.Command(s.argv[0], s.argv[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		s.log.Errorf("program sink: stdin pipe: %v", err)
		return
	}
	if err := cmd.Start(); err != nil {
		s.log.Errorf("program sink: starting %s: %v", s.argv[0], err)
		return
	}

	if _, err := stdin.Write(js); err != nil {
		s.log.Warningf("program sink: writing to %s: %v", s.argv[0], err)
	}
	stdin.Close()

	// Don't wait: the pipeline must not block on the spawned process.
	// Reap it in the background so it doesn't become a zombie.
	go cmd.Wait()
}
