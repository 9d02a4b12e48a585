package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/netresearch/dockwatch/broadcast"
	"github.com/netresearch/dockwatch/classify"
	"github.com/netresearch/dockwatch/config"
	"github.com/netresearch/dockwatch/core"
	"github.com/netresearch/dockwatch/engine"
	"github.com/netresearch/dockwatch/notify"
	"github.com/netresearch/dockwatch/policy"
	"github.com/netresearch/dockwatch/sinks"
)

var version = "0.1.0"

// daemonCommand is the go-flags command implementing the watchdog's
// single mode of operation, grounded on ofelia.go's
// flags.NewNamedParser + AddCommand pattern.
type daemonCommand struct {
	config.Flags
}

func (d *daemonCommand) Execute(_ []string) error {
	if d.Version {
		fmt.Println("dockwatch", version)
		return nil
	}

	config.RunInterpolateScript(&core.SimpleLogger{})

	log, err := config.NewLogger("")
	if err != nil {
		return err
	}

	settings, err := config.Build(&d.Flags, log)
	if err != nil {
		return err
	}

	return run(settings, log)
}

func run(settings *core.Settings, log core.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := engine.NewClient(settings.SocketURL, log)

	var mailer policy.Mailer = notify.New(notify.Config{
		SMTPServer: settings.MailServer,
		Recipients: settings.MailRecipients,
		FromHost:   settings.MailFromHost,
	}, log)

	policyEngine := policy.New(policy.Settings{
		EnableRestart:         settings.EnableRestart,
		RestartLimit:          settings.RestartLimit,
		RestartThresholdMin:   settings.RestartThresholdMin,
		RestartResetPeriodMin: settings.RestartResetPeriodMin,
		NamePatterns:          settings.NamePatterns,
	}, client, mailer, log, nil)

	broadcaster := broadcast.New(nil)
	broadcaster.Register(policyEngine)

	var logSink *sinks.LogSink
	if settings.PrintRawEvents {
		logSink = sinks.NewLogSink(log)
	}
	var progSink *sinks.ProgramSink
	if len(settings.ProgramPipe) > 0 {
		progSink = sinks.NewProgramSink(settings.ProgramPipe, log)
	}

	events, errs := client.Stream(ctx)
	for {
		select {
		case raw, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if logSink != nil {
				logSink.Handle(raw)
			}
			if progSink != nil {
				progSink.Handle(raw)
			}
			if ce, ok := classify.Classify(raw); ok {
				broadcaster.Dispatch(ce)
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

func main() {
	var cmd daemonCommand
	parser := flags.NewNamedParser("dockwatch", flags.Default)
	if _, err := parser.AddCommand("daemon", "container-lifecycle watchdog daemon", "", &cmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		var flagErr *flags.Error
		if errors.As(err, &flagErr) {
			parser.WriteHelp(os.Stdout)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
