package config

import (
	"errors"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/netresearch/dockwatch/core"
)

var errEmptyRecipients = errors.New("file contains no recipient addresses")

func splitLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// fileOverrides is the YAML config-file shape: hyphen-separated keys
// matching the CLI flags they override, per original_source's
// argumenthandler.py merge loop (spec.md's "--config-file" note).
type fileOverrides struct {
	SocketURL                              string   `yaml:"socket-url" mapstructure:"socket-url"`
	Prog                                    string   `yaml:"prog" mapstructure:"prog"`
	RestartContainersOnDie                  *bool    `yaml:"restart-containers-on-die" mapstructure:"restart-containers-on-die"`
	RestartLimit                            *int     `yaml:"restart-limit" mapstructure:"restart-limit"`
	RestartThreshold                        *int     `yaml:"restart-threshold" mapstructure:"restart-threshold"`
	RestartResetPeriod                      *int     `yaml:"restart-reset-period" mapstructure:"restart-reset-period"`
	ContainersToRestart                     []string `yaml:"containers-to-restart" mapstructure:"containers-to-restart"`
	RestartNotificationEmailAddressesPath   string   `yaml:"restart-notification-email-addresses-path" mapstructure:"restart-notification-email-addresses-path"`
	RestartNotificationEmailServer          string   `yaml:"restart-notification-email-server" mapstructure:"restart-notification-email-server"`
}

// loadConfigFile reads path, parses it as YAML into a generic map (so
// empty values can be detected and skipped before decoding), and
// merges non-empty keys onto f.
func loadConfigFile(path string, f *Flags, log core.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.WrapConfigError("reading config file "+path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return core.WrapConfigError("parsing config file "+path, err)
	}

	for key, value := range raw {
		if isEmptyValue(value) {
			log.Warningf("omitting empty value from config file for key: %s", key)
			delete(raw, key)
		}
	}

	var overrides fileOverrides
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &overrides, WeaklyTypedInput: true})
	if err != nil {
		return core.WrapConfigError("building config decoder", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return core.WrapConfigError("decoding config file "+path, err)
	}

	applyOverrides(f, &overrides)
	return nil
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

// applyOverrides merges non-zero fields of o onto f. List-valued keys
// extend rather than replace, matching the original merge loop.
func applyOverrides(f *Flags, o *fileOverrides) {
	if o.SocketURL != "" {
		f.SocketURL = o.SocketURL
	}
	if o.Prog != "" {
		f.Prog = o.Prog
	}
	if o.RestartContainersOnDie != nil {
		f.RestartContainersOnDie = *o.RestartContainersOnDie
	}
	if o.RestartLimit != nil {
		f.RestartLimit = *o.RestartLimit
	}
	if o.RestartThreshold != nil {
		f.RestartThreshold = *o.RestartThreshold
	}
	if o.RestartResetPeriod != nil {
		f.RestartResetPeriod = *o.RestartResetPeriod
	}
	f.ContainersToRestart = append(f.ContainersToRestart, o.ContainersToRestart...)
	if o.RestartNotificationEmailAddressesPath != "" {
		f.RestartNotificationEmailAddressesPath = o.RestartNotificationEmailAddressesPath
	}
	if o.RestartNotificationEmailServer != "" {
		f.RestartNotificationEmailServer = o.RestartNotificationEmailServer
	}
}

// loadRecipients reads one address per line from path. Blank lines
// are skipped. An empty or missing file is a ConfigError.
func loadRecipients(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapConfigError("reading recipients file "+path, err)
	}

	var recipients []string
	for _, line := range splitLines(string(data)) {
		if line == "" {
			continue
		}
		recipients = append(recipients, line)
	}
	if len(recipients) == 0 {
		return nil, core.WrapConfigError("recipients file "+path, errEmptyRecipients)
	}
	return recipients, nil
}
