package game

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/qmuntal/stateless"
)

// Phase is where a round stands.
type Phase int

const (
	// PhaseIdle is the engine before its first round is dealt.
	PhaseIdle Phase = iota
	PhaseInProgress
	PhaseResolved
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in_progress"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

type trigger string

const (
	triggerDeal  trigger = "deal"
	triggerBust  trigger = "bust"
	triggerStand trigger = "stand"
	triggerVoid  trigger = "void"
)

// newPhaseMachine builds the round lifecycle. Dealing is allowed from every
// phase; only a round in progress can be settled.
func newPhaseMachine(logger *log.Logger) *stateless.StateMachine {
	sm := stateless.NewStateMachine(PhaseIdle)

	sm.Configure(PhaseIdle).
		Permit(triggerDeal, PhaseInProgress)

	sm.Configure(PhaseInProgress).
		PermitReentry(triggerDeal).
		Permit(triggerBust, PhaseResolved).
		Permit(triggerStand, PhaseResolved).
		Permit(triggerVoid, PhaseResolved)

	sm.Configure(PhaseResolved).
		Permit(triggerDeal, PhaseInProgress)

	sm.OnTransitioned(func(_ context.Context, t stateless.Transition) {
		logger.Debug("Phase transition",
			"from", t.Source,
			"to", t.Destination,
			"trigger", t.Trigger)
	})

	return sm
}
