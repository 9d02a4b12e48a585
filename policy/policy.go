// Package policy implements C4, the restart policy engine: it
// subscribes to C3's semantic notifications and decides, per
// container and under rate limits, whether to restart and whether to
// notify operators by mail.
package policy

import (
	"context"
	"regexp"
	"time"

	"github.com/netresearch/dockwatch/broadcast"
	"github.com/netresearch/dockwatch/core"
)

// Restarter issues restart requests. Implemented by engine.Client.
type Restarter interface {
	Restart(ctx context.Context, containerID string) error
}

// Mailer sends operator notifications. Implemented by notify.Mailer.
type Mailer interface {
	Send(subject string, body []byte) error
}

// Settings bundles the restart-rate configuration from C7 (spec
// section 3: restart_limit N, restart_threshold_min T,
// restart_reset_period_min R) plus the name-pattern eligibility list
// and the global restart on/off switch.
type Settings struct {
	EnableRestart         bool
	RestartLimit          int
	RestartThresholdMin   int
	RestartResetPeriodMin int
	NamePatterns          []*regexp.Regexp
}

// containerState is the per-container state the policy engine tracks,
// confined to the pipeline goroutine (spec section 9 design note: one
// map, not three parallel maps).
type containerState struct {
	restart *core.RestartRecord
}

// Engine is a broadcast.Listener that owns restart-rate state and
// drives restarts and notifications.
type Engine struct {
	settings Settings
	clock    core.Clock
	restart  Restarter
	mail     Mailer
	log      core.Logger

	eligibility *core.EligibilityCache
	containers  map[string]*containerState
}

// New returns an Engine. clock, if nil, defaults to the real clock. An
// empty NamePatterns list makes every container eligible.
func New(settings Settings, restart Restarter, mail Mailer, log core.Logger, clock core.Clock) *Engine {
	if len(settings.NamePatterns) == 0 {
		settings.NamePatterns, _ = core.CompileNamePatterns(nil)
	}
	if clock == nil {
		clock = core.GetDefaultClock()
	}
	if log == nil {
		log = &core.SimpleLogger{}
	}
	return &Engine{
		settings:    settings,
		clock:       clock,
		restart:     restart,
		mail:        mail,
		log:         log,
		eligibility: core.NewEligibilityCache(),
		containers:  make(map[string]*containerState),
	}
}

func (e *Engine) stateFor(name string) *containerState {
	s, ok := e.containers[name]
	if !ok {
		s = &containerState{restart: core.NewRestartRecord(name)}
		e.containers[name] = s
	}
	return s
}

// Notify implements broadcast.Listener.
func (e *Engine) Notify(n broadcast.Notification) {
	name := n.Event.ContainerName

	switch n.Kind {
	case broadcast.ContainerStarted, broadcast.BecameHealthy:
		e.maintainCounter(name)
	case broadcast.StoppedByHand:
		e.log.Debugf("container %s stopped by hand, ignoring", name)
	case broadcast.ContainerDead, broadcast.BecameUnhealthy:
		e.handleDeadOrUnhealthy(name, n)
	}
}

// maintainCounter implements spec section 4.4's container_started /
// became_healthy handling: leave the record alone if it looks like the
// aftermath of our own restart, otherwise clear it.
func (e *Engine) maintainCounter(name string) {
	state := e.stateFor(name)
	now := e.clock.Now()

	if state.restart.RecentEnough(now, e.settings.RestartResetPeriodMin) {
		return
	}
	state.restart.Reset()
}

func (e *Engine) handleDeadOrUnhealthy(name string, n broadcast.Notification) {
	state := e.stateFor(name)
	now := e.clock.Now()

	if !e.eligibility.Eligible(name, e.settings.NamePatterns) {
		e.log.Debugf("container %s not eligible for restart, ignoring %s", name, n.Kind)
		return
	}

	if state.restart.WithinLimit(now, e.settings.RestartLimit, e.settings.RestartThresholdMin) {
		e.attemptRestart(name, n, state, now)
		return
	}

	e.log.Warningf("container %s exhausted restart limit (%d in %d min), not restarting",
		name, e.settings.RestartLimit, e.settings.RestartThresholdMin)

	if n.Kind == broadcast.ContainerDead && !state.restart.MailSent {
		e.sendMail(limitReachedSubject(name), n.Event)
		state.restart.MailSent = true
	}
}

func (e *Engine) attemptRestart(name string, n broadcast.Notification, state *containerState, now time.Time) {
	if !e.settings.EnableRestart {
		e.sendMail(noticeOnlySubject(name), n.Event)
		return
	}

	if err := e.restart.Restart(context.Background(), n.Event.ContainerID); err != nil {
		e.log.Errorf("restart failed for container %s: %v", name, err)
		return
	}

	state.restart.RecordRestart(now)
	e.log.Noticef("restarting container %s (%d/%d)", name, len(state.restart.Occasions), e.settings.RestartLimit)
	e.sendMail(restartedSubject(name), n.Event)
}

func (e *Engine) sendMail(subject string, ev core.ContainerEvent) {
	body, err := ev.Raw.JSON()
	if err != nil {
		e.log.Errorf("marshaling mail body for container %s: %v", ev.ContainerName, err)
		return
	}
	if err := e.mail.Send(subject, body); err != nil {
		e.log.Errorf("sending mail for container %s: %v", ev.ContainerName, err)
	}
}

func limitReachedSubject(name string) string {
	return "Maximum restart count is reached for container " + name
}

func restartedSubject(name string) string {
	return "Restarting container: " + name
}

func noticeOnlySubject(name string) string {
	return "Container " + name + " is down but automatic restart is disabled"
}
