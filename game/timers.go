package game

import "time"

// The phase clock: named, cancellable one-shot timers per session.
// Rescheduling a name cancels the previous instance, so at most one
// resolution can fire per phase. A callback that lost the race to a phase
// transition must no-op on its own phase check.

const (
	timerResolveNight = "resolve_night"
	timerStartVote    = "start_vote"
	timerResolveVote  = "resolve_vote"
)

// scheduleTimer cancels any timer under the same name and registers a new
// one. Caller holds the mutex.
func (g *Game) scheduleTimer(name string, d time.Duration, fn func()) {
	if t, ok := g.timers[name]; ok {
		t.Stop()
	}
	g.timers[name] = time.AfterFunc(d, fn)
}

// cancelTimer stops and forgets a named timer. Caller holds the mutex.
func (g *Game) cancelTimer(name string) {
	if t, ok := g.timers[name]; ok {
		t.Stop()
		delete(g.timers, name)
	}
}

// cancelAllTimers stops every outstanding timer. Caller holds the mutex, so
// the cancellation is atomic with whatever phase transition triggered it.
func (g *Game) cancelAllTimers() {
	for name, t := range g.timers {
		t.Stop()
		delete(g.timers, name)
	}
}
