package core

import "regexp"

// Settings is the immutable configuration consumed by the pipeline
// components (C3-C6) once built at startup by package config. It is
// never mutated after config.Build returns.
type Settings struct {
	SocketURL string

	// ProgramPipe is the argv of an external command that receives raw
	// events on stdin, one JSON object per invocation. Empty disables
	// the program sink.
	ProgramPipe []string

	PrintRawEvents bool
	EnableRestart  bool

	RestartLimit          int
	RestartThresholdMin   int
	RestartResetPeriodMin int

	// NamePatterns is non-empty; a container is eligible iff at least
	// one pattern matches its name. See CompileNamePatterns.
	NamePatterns []*regexp.Regexp

	MailRecipients []string
	MailServer     string
	MailFromHost   string
}

// CompileNamePatterns compiles the given raw pattern strings into
// regular expressions. A bare "*" token is rewritten to ".*" before
// compilation, matching the convention in spec section 3. An empty
// input list is interpreted as "match everything".
func CompileNamePatterns(raw []string) ([]*regexp.Regexp, error) {
	if len(raw) == 0 {
		raw = []string{".*"}
	}

	patterns := make([]*regexp.Regexp, 0, len(raw))
	for _, token := range raw {
		if token == "*" {
			token = ".*"
		}
		re, err := regexp.Compile(token)
		if err != nil {
			return nil, WrapConfigError("name pattern "+token, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}
