package config

import (
	"errors"
	"os"

	"github.com/netresearch/dockwatch/core"
)

// errMissingMailServer mirrors argumenthandler.py's unconditional exit
// when --notification-email-server is absent.
var errMissingMailServer = errors.New("container restart notifications email server is not defined")

// hostHostnameFile and interpolateScript are optional filesystem
// touchpoints carried over from original_source/dockermon.py and
// notificationservice.py: a host-provided hostname override for mail
// subjects, and a one-shot pre-processing hook run before bootstrap.
const (
	hostHostnameFile = "/dockermon/host-hostname"
	interpolateScript = "/interpolate-env-vars.sh"
)

// Build turns parsed Flags into an immutable core.Settings, loading
// the config file (if set) and the recipients file first.
func Build(f *Flags, log core.Logger) (*core.Settings, error) {
	if f.ConfigFile != "" {
		if err := loadConfigFile(f.ConfigFile, f, log); err != nil {
			return nil, err
		}
	}

	if f.RestartNotificationEmailServer == "" {
		return nil, core.WrapConfigError("restart-notification-email-server", errMissingMailServer)
	}

	patterns, err := core.CompileNamePatterns(f.ContainersToRestart)
	if err != nil {
		return nil, err
	}

	var recipients []string
	if f.RestartNotificationEmailAddressesPath != "" {
		recipients, err = loadRecipients(f.RestartNotificationEmailAddressesPath)
		if err != nil {
			return nil, err
		}
	}

	settings := &core.Settings{
		SocketURL:             f.SocketURL,
		PrintRawEvents:         f.PrintAllEvents && !f.DoNotPrintEvents,
		EnableRestart:          f.RestartContainersOnDie && !f.DoNotRestartContainersOnDie,
		RestartLimit:           f.RestartLimit,
		RestartThresholdMin:    f.RestartThreshold,
		RestartResetPeriodMin:  f.RestartResetPeriod,
		NamePatterns:           patterns,
		MailRecipients:         recipients,
		MailServer:             f.RestartNotificationEmailServer,
		MailFromHost:           mailFromHost(),
	}

	if f.Prog != "" {
		settings.ProgramPipe = splitProg(f.Prog)
	}

	return settings, nil
}

// mailFromHost reads the optional host-hostname touchpoint, falling
// back to the literal "root" — exactly
// notificationservice.py's get_mail_hostname(), which never consults
// the real machine hostname.
func mailFromHost() string {
	if data, err := os.ReadFile(hostHostnameFile); err == nil {
		if h := splitLines(string(data))[0]; h != "" {
			return h
		}
	}
	return "root"
}

// RunInterpolateScript runs the optional pre-processing hook once, at
// startup, before any other bootstrap step. Its absence is not an
// error.
func RunInterpolateScript(log core.Logger) {
	if _, err := os.Stat(interpolateScript); err != nil {
		return
	}
	if err := runScript(interpolateScript); err != nil {
		log.Warningf("interpolate-env-vars.sh failed: %v", err)
	}
}
