package session

import (
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/meltforce/repflow/internal/calories"
	"github.com/meltforce/repflow/internal/models"
)

// DefaultYogaRestSeconds is the rest countdown between poses.
const DefaultYogaRestSeconds = 20

// defaultPoseSeconds is used for poses without a suggested duration.
const defaultPoseSeconds = 30

// Yoga walks a user through a pose sequence with per-pose hold countdowns.
// A pose whose timer ran to zero counts as completed at its configured
// duration; a pose advanced past without starting the timer counts as
// skipped (duration 0, calories 0) after an explicit confirmation.
type Yoga struct {
	clock Clock
	rng   *rand.Rand

	category string
	poses    []models.YogaPlanPose

	configured []int // per-pose hold durations, user-adjustable
	skipped    []bool

	index     int
	remaining int
	running   bool
	phase     Phase
	overlay   Overlay
	quote     string

	restConfigured int
	restRemaining  int

	chimePending bool
	saved        bool

	log *models.YogaSessionLog
}

// NewYoga starts a guided yoga session over the given poses.
func NewYoga(category string, poses []models.YogaPlanPose, clock Clock, rng *rand.Rand) (*Yoga, error) {
	if len(poses) == 0 {
		return nil, errors.New("yoga session needs at least one pose")
	}
	y := &Yoga{
		clock:          clock,
		rng:            rng,
		category:       category,
		poses:          poses,
		configured:     make([]int, len(poses)),
		skipped:        make([]bool, len(poses)),
		restConfigured: DefaultYogaRestSeconds,
	}
	for i, p := range poses {
		d := p.Duration
		if d <= 0 {
			d = defaultPoseSeconds
		}
		y.configured[i] = d
	}
	y.remaining = y.configured[0]
	y.pickQuote()
	return y, nil
}

func (y *Yoga) pickQuote() {
	y.quote = RestMessages[y.rng.Intn(len(RestMessages))]
}

// Phase returns the current phase.
func (y *Yoga) Phase() Phase { return y.phase }

// Overlay returns the open modal overlay, if any.
func (y *Yoga) Overlay() Overlay { return y.overlay }

// Index returns the current pose index.
func (y *Yoga) Index() int { return y.index }

// PoseCount returns the number of poses in the sequence.
func (y *Yoga) PoseCount() int { return len(y.poses) }

// Current returns the pose being held.
func (y *Yoga) Current() models.YogaPlanPose { return y.poses[y.index] }

// Remaining returns the pose countdown in seconds.
func (y *Yoga) Remaining() int { return y.remaining }

// Running reports whether the pose countdown is ticking.
func (y *Yoga) Running() bool { return y.running }

// Quote returns the motivational message shown with the current pose.
func (y *Yoga) Quote() string { return y.quote }

// RestRemaining returns the rest countdown, 0 outside Resting.
func (y *Yoga) RestRemaining() int { return y.restRemaining }

// ConfiguredDuration returns the hold duration set for the current pose.
func (y *Yoga) ConfiguredDuration() int { return y.configured[y.index] }

// TakeChime reports whether a chime fired since the last call and clears it.
func (y *Yoga) TakeChime() bool {
	c := y.chimePending
	y.chimePending = false
	return c
}

// Log returns the finalized session log, nil before finalization.
func (y *Yoga) Log() *models.YogaSessionLog { return y.log }

func (y *Yoga) terminal() bool {
	return y.phase == PhaseSummary || y.phase == PhaseAbandoned
}

// Start begins or resumes the pose countdown.
func (y *Yoga) Start() error {
	if y.terminal() {
		return ErrFinished
	}
	if y.phase != PhaseActive {
		return ErrWrongPhase
	}
	if y.remaining == 0 {
		return errors.New("timer at zero, reset first")
	}
	y.running = true
	return nil
}

// Pause stops the pose countdown without resetting it.
func (y *Yoga) Pause() error {
	if y.terminal() {
		return ErrFinished
	}
	if y.phase != PhaseActive {
		return ErrWrongPhase
	}
	y.running = false
	return nil
}

// Reset restores the pose countdown to its configured duration.
func (y *Yoga) Reset() error {
	if y.terminal() {
		return ErrFinished
	}
	if y.phase != PhaseActive {
		return ErrWrongPhase
	}
	y.running = false
	y.remaining = y.configured[y.index]
	return nil
}

// SetDuration changes the current pose's hold duration (minimum 5 seconds).
// The countdown follows when it has not started yet.
func (y *Yoga) SetDuration(seconds int) error {
	if y.terminal() {
		return ErrFinished
	}
	if y.phase != PhaseActive {
		return ErrWrongPhase
	}
	if seconds < minHoldSeconds {
		seconds = minHoldSeconds
	}
	untouched := !y.running && y.remaining == y.configured[y.index]
	y.configured[y.index] = seconds
	if untouched {
		y.remaining = seconds
	}
	return nil
}

// SetRest changes the rest duration used between poses (minimum 5 seconds).
func (y *Yoga) SetRest(seconds int) error {
	if y.terminal() {
		return ErrFinished
	}
	if seconds < minHoldSeconds {
		seconds = minHoldSeconds
	}
	y.restConfigured = seconds
	return nil
}

// Tick advances the active countdown by one second. When a pose countdown
// reaches zero the chime flag is set and the session rests, or finalizes on
// the last pose.
func (y *Yoga) Tick() error {
	if y.terminal() {
		return ErrFinished
	}
	switch y.phase {
	case PhaseActive:
		if !y.running {
			return nil
		}
		y.remaining--
		if y.remaining > 0 {
			return nil
		}
		y.remaining = 0
		y.running = false
		y.chimePending = true
		y.skipped[y.index] = false
		if y.index == len(y.poses)-1 {
			y.finalize()
			return nil
		}
		y.enterRest()
	case PhaseResting:
		y.restRemaining--
		if y.restRemaining <= 0 {
			y.advanceFromRest()
		}
	}
	return nil
}

func (y *Yoga) enterRest() {
	y.phase = PhaseResting
	y.restRemaining = y.restConfigured
}

func (y *Yoga) advanceFromRest() {
	y.phase = PhaseActive
	y.restRemaining = 0
	y.index++
	y.remaining = y.configured[y.index]
	y.running = false
	y.pickQuote()
}

// SkipRest ends the rest interval immediately.
func (y *Yoga) SkipRest() error {
	if y.terminal() {
		return ErrFinished
	}
	if y.phase != PhaseResting {
		return ErrWrongPhase
	}
	y.advanceFromRest()
	return nil
}

// ExtendRest adds 20 seconds to the running rest countdown.
func (y *Yoga) ExtendRest() error {
	if y.terminal() {
		return ErrFinished
	}
	if y.phase != PhaseResting {
		return ErrWrongPhase
	}
	y.restRemaining += RestExtendSeconds
	return nil
}

// Next advances to the following pose, or finishes on the last one. If the
// current pose's timer was never started it asks for a skip confirmation
// instead; the return value reports whether that confirmation is now open.
func (y *Yoga) Next() (confirmRequired bool, err error) {
	if y.terminal() {
		return false, ErrFinished
	}
	if y.phase != PhaseActive {
		return false, ErrWrongPhase
	}
	if y.running {
		return false, errors.New("pause the timer before advancing")
	}
	if y.remaining == y.configured[y.index] {
		y.overlay = OverlaySkipConfirm
		return true, nil
	}
	y.skipped[y.index] = false
	y.advanceOrFinish()
	return false, nil
}

// ConfirmSkip marks the current pose skipped and advances.
func (y *Yoga) ConfirmSkip() error {
	if y.overlay != OverlaySkipConfirm {
		return ErrNoOverlay
	}
	y.overlay = OverlayNone
	y.skipped[y.index] = true
	y.advanceOrFinish()
	return nil
}

func (y *Yoga) advanceOrFinish() {
	if y.index == len(y.poses)-1 {
		y.finalize()
		return
	}
	y.index++
	y.remaining = y.configured[y.index]
	y.running = false
	y.pickQuote()
}

// Previous rewinds to the prior pose.
func (y *Yoga) Previous() error {
	if y.terminal() {
		return ErrFinished
	}
	if y.phase != PhaseActive {
		return ErrWrongPhase
	}
	if y.index == 0 {
		return ErrFirstExercise
	}
	y.index--
	y.remaining = y.configured[y.index]
	y.running = false
	return nil
}

// HasProgress reports whether leaving now would lose anything: the session
// advanced past the first pose, the current timer was touched, or the
// summary was reached.
func (y *Yoga) HasProgress() bool {
	return y.index > 0 ||
		y.running ||
		y.remaining != y.configured[y.index] ||
		y.phase == PhaseSummary
}

// RequestQuit opens the quit confirmation when there is unsaved progress.
func (y *Yoga) RequestQuit() (bool, error) {
	if y.phase == PhaseAbandoned {
		return false, ErrFinished
	}
	if y.saved || !y.HasProgress() {
		y.phase = PhaseAbandoned
		return false, nil
	}
	y.overlay = OverlayQuitConfirm
	return true, nil
}

// ConfirmSave finalizes the log with the current skip/complete markings.
func (y *Yoga) ConfirmSave() error {
	if y.overlay != OverlayQuitConfirm {
		return ErrNoOverlay
	}
	y.overlay = OverlayNone
	// Poses not reached are recorded as skipped. During rest the pose at
	// the current index has already completed, so start past it.
	start := y.index
	if y.phase == PhaseResting {
		start = y.index + 1
	}
	for i := start; i < len(y.poses); i++ {
		y.skipped[i] = true
	}
	y.finalize()
	return nil
}

// ConfirmDiscard closes the session without a record.
func (y *Yoga) ConfirmDiscard() error {
	if y.overlay != OverlayQuitConfirm {
		return ErrNoOverlay
	}
	y.overlay = OverlayNone
	y.phase = PhaseAbandoned
	return nil
}

// CancelOverlay dismisses the open confirmation and resumes.
func (y *Yoga) CancelOverlay() error {
	if y.overlay == OverlayNone {
		return ErrNoOverlay
	}
	y.overlay = OverlayNone
	return nil
}

// finalize produces the immutable session log: completed poses at their
// configured duration with estimator calories, skipped poses at zero.
func (y *Yoga) finalize() {
	now := y.clock.Now()
	logs := make([]models.YogaPoseLog, len(y.poses))
	for i, p := range y.poses {
		difficulty := p.Difficulty
		if difficulty == "" {
			difficulty = models.DifficultyBeginner
		}
		if y.skipped[i] {
			logs[i] = models.YogaPoseLog{Name: p.Name, Difficulty: difficulty}
			continue
		}
		d := y.configured[i]
		logs[i] = models.YogaPoseLog{
			Name:       p.Name,
			Difficulty: difficulty,
			Duration:   d,
			Calories:   calories.ForPoseSeconds(d),
		}
	}
	y.log = &models.YogaSessionLog{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Category:    y.category,
		Poses:       logs,
		CompletedAt: now.Format(time.RFC3339),
	}
	y.saved = true
	y.phase = PhaseSummary
}
