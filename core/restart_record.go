package core

import "time"

// RestartRecord is the per-container restart-rate state owned by the
// policy engine (C4). Occasions holds monotonic timestamps (not wall
// clock) so that window math is immune to clock jumps, per spec
// section 4.4's edge-case note; wall-clock time is only used for
// display/formatting in logs and mail bodies.
type RestartRecord struct {
	ContainerName string
	Occasions     []time.Time // monotonic
	MailSent      bool
}

// NewRestartRecord returns an empty record for name.
func NewRestartRecord(name string) *RestartRecord {
	return &RestartRecord{ContainerName: name}
}

// RecordRestart appends now to Occasions (invariant: non-decreasing,
// since the pipeline is single-threaded and now is always the current
// clock reading).
func (r *RestartRecord) RecordRestart(now time.Time) {
	r.Occasions = append(r.Occasions, now)
}

// Reset clears Occasions and MailSent together, leaving the record as
// a fresh one would be, matching original_source/restartservice.py's
// reset_restart_data; MailSent only ever clears via this full reset.
func (r *RestartRecord) Reset() {
	r.Occasions = nil
	r.MailSent = false
}

// WithinLimit reports whether a restart is currently allowed: true iff
// fewer than limit restarts have been recorded, or at least one of the
// last `limit` occasions falls outside the trailing window of
// thresholdMin minutes. Equivalently, false iff all of the last `limit`
// occasions fall within [now-thresholdMin, now].
func (r *RestartRecord) WithinLimit(now time.Time, limit, thresholdMin int) bool {
	if len(r.Occasions) < limit {
		return true
	}

	windowStart := now.Add(-time.Duration(thresholdMin) * time.Minute)
	last := r.Occasions[len(r.Occasions)-limit:]
	for _, t := range last {
		if t.Before(windowStart) {
			return true
		}
	}
	return false
}

// RecentEnough reports whether the most recent restart is younger than
// resetPeriodMin minutes, i.e. a start/healthy event arriving now
// should be treated as the aftermath of our own restart rather than
// organic recovery (spec section 4.4's rationale). An empty record is
// never "recent enough".
func (r *RestartRecord) RecentEnough(now time.Time, resetPeriodMin int) bool {
	if len(r.Occasions) == 0 {
		return false
	}
	last := r.Occasions[len(r.Occasions)-1]
	return now.Sub(last) < time.Duration(resetPeriodMin)*time.Minute
}
