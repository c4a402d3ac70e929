// Package session implements the guided workout and yoga session state
// machines. The machines hold no I/O: callers inject a Clock and a random
// source, drive them with events, and persist the finalized record
// themselves. This keeps every transition unit-testable without a UI
// or a real timer.
package session

import (
	"errors"
	"time"
)

// Phase is the coarse state of a guided session.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseResting
	PhaseSummary
	PhaseAbandoned
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseResting:
		return "resting"
	case PhaseSummary:
		return "summary"
	case PhaseAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Overlay is the single modal overlay slot. Exactly one overlay can be open
// at a time by construction.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayQuitConfirm
	OverlaySkipConfirm
)

func (o Overlay) String() string {
	switch o {
	case OverlayQuitConfirm:
		return "quit_confirm"
	case OverlaySkipConfirm:
		return "skip_confirm"
	}
	return "none"
}

var (
	// ErrFinished is returned for events applied after the session reached
	// a terminal phase.
	ErrFinished = errors.New("session already finished")
	// ErrWrongPhase is returned when an event is not valid in the current phase.
	ErrWrongPhase = errors.New("event not valid in current phase")
	// ErrNoOverlay is returned for confirm/cancel events with no overlay open.
	ErrNoOverlay = errors.New("no overlay open")
	// ErrNoProgress is returned when finalizing would produce an empty record.
	ErrNoProgress = errors.New("no completed sets to save")
	// ErrFirstExercise is returned by Previous at index zero.
	ErrFirstExercise = errors.New("already at first exercise")
	// ErrLastExercise is returned by Skip on the final exercise.
	ErrLastExercise = errors.New("already at last exercise")
)

// Clock abstracts wall-clock reads so tests can simulate elapsed time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns a Clock backed by time.Now.
func RealClock() Clock { return realClock{} }

// RestMessages is the fixed pool a rest-screen message is drawn from.
// Only membership is meaningful, never distribution.
var RestMessages = []string{
	"Breathe in calm, breathe out tension.",
	"You are stronger than you think.",
	"Every breath is a new beginning.",
	"Stay present, stay powerful.",
	"Progress, not perfection.",
	"Let your energy flow.",
	"You are exactly where you need to be.",
	"Embrace the stretch, embrace the change.",
	"Balance is not something you find, it's something you create.",
	"Your only limit is your mind.",
}
