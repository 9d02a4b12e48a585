// Package config implements C7, configuration and bootstrap: CLI flag
// parsing (github.com/jessevdk/go-flags), an optional YAML config file
// merge (gopkg.in/yaml.v3), and construction of the immutable
// core.Settings the rest of the pipeline runs against.
package config

// Flags is the go-flags struct for the single "daemon" command,
// grounded on ofelia.go's flags.NewNamedParser + AddCommand pattern
// and spec.md section 6's flag table.
type Flags struct {
	Version bool `long:"version" description:"print version and exit"`

	SocketURL string `long:"socket-url" default:"ipc:///var/run/docker.sock" description:"engine socket url (ipc:///path/to/sock or tcp://host:port)"`
	Prog      string `long:"prog" description:"program to call with each raw event on stdin (e.g. \"jq --unbuffered .\")"`
	ConfigFile string `long:"config-file" description:"config file in YAML format"`

	PrintAllEvents  bool `long:"print-all-events" description:"print raw events to the log sink"`
	DoNotPrintEvents bool `long:"do-not-print-events" description:"suppress the log sink"`

	RestartContainersOnDie      bool `long:"restart-containers-on-die" description:"restart eligible containers when they die or become unhealthy"`
	DoNotRestartContainersOnDie bool `long:"do-not-restart-containers-on-die" description:"never restart containers (notice-only mail still sent)"`

	RestartLimit        int `long:"restart-limit" default:"3" description:"restarts allowed within restart-threshold minutes"`
	RestartThreshold     int `long:"restart-threshold" default:"10" description:"minutes defining the restart-limit window"`
	RestartResetPeriod   int `long:"restart-reset-period" default:"2" description:"minutes a restart must hold before its counter is cleared"`

	ContainersToRestart []string `long:"containers-to-restart" description:"name patterns eligible for restart (repeatable), defaults to all"`

	RestartNotificationEmailAddressesPath string `long:"restart-notification-email-addresses-path" description:"file with one recipient address per line"`
	RestartNotificationEmailServer        string `long:"restart-notification-email-server" description:"SMTP server (host[:port]) for restart notifications"`
}
