package session

import (
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/meltforce/repflow/internal/calories"
	"github.com/meltforce/repflow/internal/models"
)

const (
	// DefaultRestSeconds is the rest countdown inserted between exercises.
	DefaultRestSeconds = 10
	// RestExtendSeconds is added per "+20s" press.
	RestExtendSeconds = 20
	// minHoldSeconds is the floor for hold-type durations.
	minHoldSeconds = 5
	// defaultHoldSeconds is used when an exercise declares no default.
	defaultHoldSeconds = 30
)

// Side selects a bilateral sub-count.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Workout walks a user through an exercise list: adjust the current
// quantity, press Done to record a completed set and rest, finish on the
// last exercise. Finalization filters out exercises with no recorded work
// and recomputes every total from the set records.
type Workout struct {
	clock Clock
	rng   *rand.Rand

	workoutType string
	exercises   []models.Exercise
	logs        []models.ExerciseLog

	index     int
	phase     Phase
	overlay   Overlay
	startedAt time.Time

	// pending input for the current exercise, discarded on Skip/Previous
	pendingReps     int
	pendingDuration int
	pendingLeft     int
	pendingRight    int

	restRemaining int
	restMessage   string

	finalized *models.WorkoutSession
}

// NewWorkout starts a guided workout over the given exercises. The clock
// read at construction is the session start for elapsed-time accounting.
func NewWorkout(workoutType string, exercises []models.Exercise, clock Clock, rng *rand.Rand) (*Workout, error) {
	if len(exercises) == 0 {
		return nil, errors.New("workout needs at least one exercise")
	}
	w := &Workout{
		clock:       clock,
		rng:         rng,
		workoutType: workoutType,
		exercises:   exercises,
		logs:        make([]models.ExerciseLog, len(exercises)),
		startedAt:   clock.Now(),
	}
	for i, ex := range exercises {
		w.logs[i] = models.ExerciseLog{ExerciseID: ex.ID, ExerciseName: ex.Name}
	}
	w.resetPending()
	return w, nil
}

func (w *Workout) resetPending() {
	ex := w.exercises[w.index]
	w.pendingReps = 0
	w.pendingLeft = 0
	w.pendingRight = 0
	w.pendingDuration = 0
	if ex.IsHold() {
		w.pendingDuration = ex.DefaultDuration
		if w.pendingDuration == 0 {
			w.pendingDuration = defaultHoldSeconds
		}
	}
}

// Phase returns the current phase.
func (w *Workout) Phase() Phase { return w.phase }

// Overlay returns the open modal overlay, if any.
func (w *Workout) Overlay() Overlay { return w.overlay }

// Index returns the current exercise index.
func (w *Workout) Index() int { return w.index }

// Current returns the exercise being tracked.
func (w *Workout) Current() models.Exercise { return w.exercises[w.index] }

// RestRemaining returns the rest countdown in seconds, 0 outside Resting.
func (w *Workout) RestRemaining() int { return w.restRemaining }

// RestMessage returns the message chosen for the current rest interval.
func (w *Workout) RestMessage() string { return w.restMessage }

// ElapsedSeconds is the wall-clock time since the session started.
func (w *Workout) ElapsedSeconds() int {
	return int(w.clock.Now().Sub(w.startedAt) / time.Second)
}

// PendingQuantity is the in-progress amount for the current exercise:
// seconds for hold-type, summed left+right for bilateral, reps otherwise.
func (w *Workout) PendingQuantity() int {
	ex := w.exercises[w.index]
	switch {
	case ex.IsHold():
		return w.pendingDuration
	case ex.Bilateral:
		return w.pendingLeft + w.pendingRight
	default:
		return w.pendingReps
	}
}

// Logs returns the per-exercise records accumulated so far.
func (w *Workout) Logs() []models.ExerciseLog { return w.logs }

// Session returns the finalized record, nil before finalization.
func (w *Workout) Session() *models.WorkoutSession { return w.finalized }

func (w *Workout) terminal() bool {
	return w.phase == PhaseSummary || w.phase == PhaseAbandoned
}

// Adjust changes the current quantity by delta. Hold-type durations clamp
// at 5 seconds, rep counts at zero.
func (w *Workout) Adjust(delta int) error {
	if w.terminal() {
		return ErrFinished
	}
	if w.phase != PhaseActive {
		return ErrWrongPhase
	}
	ex := w.exercises[w.index]
	switch {
	case ex.IsHold():
		w.pendingDuration = max(minHoldSeconds, w.pendingDuration+delta)
	case ex.Bilateral:
		return errors.New("bilateral exercise: use AdjustSide")
	default:
		w.pendingReps = max(0, w.pendingReps+delta)
	}
	return nil
}

// SetQuantity replaces the current quantity (quick-set buttons).
func (w *Workout) SetQuantity(n int) error {
	if w.terminal() {
		return ErrFinished
	}
	if w.phase != PhaseActive {
		return ErrWrongPhase
	}
	if n < 0 {
		n = 0
	}
	ex := w.exercises[w.index]
	switch {
	case ex.IsHold():
		w.pendingDuration = max(minHoldSeconds, n)
	case ex.Bilateral:
		return errors.New("bilateral exercise: use AdjustSide")
	default:
		w.pendingReps = n
	}
	return nil
}

// AdjustSide changes one side's count of a bilateral exercise.
func (w *Workout) AdjustSide(side Side, delta int) error {
	if w.terminal() {
		return ErrFinished
	}
	if w.phase != PhaseActive {
		return ErrWrongPhase
	}
	if !w.exercises[w.index].Bilateral {
		return errors.New("not a bilateral exercise")
	}
	switch side {
	case SideLeft:
		w.pendingLeft = max(0, w.pendingLeft+delta)
	case SideRight:
		w.pendingRight = max(0, w.pendingRight+delta)
	default:
		return errors.New("side must be left or right")
	}
	return nil
}

// Done records the pending input as a completed set and moves on: into the
// rest interval, or straight to finalization on the last exercise. On the
// last exercise it refuses to finalize a session with no recorded work.
func (w *Workout) Done() error {
	if w.terminal() {
		return ErrFinished
	}
	if w.phase != PhaseActive {
		return ErrWrongPhase
	}

	last := w.index == len(w.exercises)-1
	quantity := w.PendingQuantity()
	if last && quantity == 0 && !w.recordedWork() {
		// Zero-rep sets on earlier exercises are filtered at finalization,
		// so they do not make an otherwise empty session saveable.
		return ErrNoProgress
	}

	w.recordSet(quantity)
	if last {
		w.finalize()
		return nil
	}
	w.enterRest()
	return nil
}

func (w *Workout) recordSet(quantity int) {
	ex := w.exercises[w.index]
	set := models.WorkoutSet{Completed: true}
	if ex.IsHold() {
		set.Duration = quantity
	} else {
		set.Reps = quantity
	}
	log := &w.logs[w.index]
	log.Sets = append(log.Sets, set)

	total := 0
	for _, s := range log.Sets {
		if s.Completed {
			total += s.Quantity(ex.IsHold())
		}
	}
	log.TotalReps = total
	log.TotalCalories = calories.ForExercise(ex, total)
}

func (w *Workout) enterRest() {
	w.phase = PhaseResting
	w.restRemaining = DefaultRestSeconds
	w.restMessage = RestMessages[w.rng.Intn(len(RestMessages))]
}

// Skip abandons the current exercise's input and advances without recording
// anything. The exercise stays in the sequence for future sessions.
func (w *Workout) Skip() error {
	if w.terminal() {
		return ErrFinished
	}
	if w.phase != PhaseActive {
		return ErrWrongPhase
	}
	if w.index == len(w.exercises)-1 {
		return ErrLastExercise
	}
	w.index++
	w.resetPending()
	return nil
}

// Previous rewinds one exercise, discarding in-progress input for the
// current one. Already-recorded sets on the prior exercise are kept.
func (w *Workout) Previous() error {
	if w.terminal() {
		return ErrFinished
	}
	if w.phase != PhaseActive {
		return ErrWrongPhase
	}
	if w.index == 0 {
		return ErrFirstExercise
	}
	w.index--
	w.resetPending()
	return nil
}

// Tick advances countdowns by one second. Outside Resting it is a no-op;
// elapsed session time is derived from the clock, not from ticks.
func (w *Workout) Tick() error {
	if w.terminal() {
		return ErrFinished
	}
	if w.phase != PhaseResting {
		return nil
	}
	w.restRemaining--
	if w.restRemaining <= 0 {
		w.advanceFromRest()
	}
	return nil
}

// ExtendRest adds 20 seconds to the running rest countdown.
func (w *Workout) ExtendRest() error {
	if w.terminal() {
		return ErrFinished
	}
	if w.phase != PhaseResting {
		return ErrWrongPhase
	}
	w.restRemaining += RestExtendSeconds
	return nil
}

// SkipRest ends the rest interval immediately.
func (w *Workout) SkipRest() error {
	if w.terminal() {
		return ErrFinished
	}
	if w.phase != PhaseResting {
		return ErrWrongPhase
	}
	w.advanceFromRest()
	return nil
}

func (w *Workout) advanceFromRest() {
	w.phase = PhaseActive
	w.restRemaining = 0
	w.restMessage = ""
	w.index++
	w.resetPending()
}

func (w *Workout) completedSets() int {
	n := 0
	for _, log := range w.logs {
		for _, s := range log.Sets {
			if s.Completed {
				n++
			}
		}
	}
	return n
}

// recordedWork reports whether any exercise log would survive finalization.
func (w *Workout) recordedWork() bool {
	for _, log := range w.logs {
		if log.TotalReps > 0 {
			return true
		}
	}
	return false
}

// HasProgress reports whether at least one completed set exists — the gate
// for the quit confirmation.
func (w *Workout) HasProgress() bool { return w.completedSets() > 0 }

// RequestQuit opens the quit confirmation when there is unsaved progress.
// It returns true when confirmation is required; false means the caller may
// navigate away immediately.
func (w *Workout) RequestQuit() (bool, error) {
	if w.terminal() {
		return false, ErrFinished
	}
	if !w.HasProgress() {
		w.phase = PhaseAbandoned
		return false, nil
	}
	w.overlay = OverlayQuitConfirm
	return true, nil
}

// ConfirmSave finalizes exactly as the Summary path does and closes the
// session. The caller persists the record and navigates away.
func (w *Workout) ConfirmSave() error {
	if w.overlay != OverlayQuitConfirm {
		return ErrNoOverlay
	}
	w.overlay = OverlayNone
	w.finalize()
	return nil
}

// ConfirmDiscard closes the session without a record.
func (w *Workout) ConfirmDiscard() error {
	if w.overlay != OverlayQuitConfirm {
		return ErrNoOverlay
	}
	w.overlay = OverlayNone
	w.phase = PhaseAbandoned
	return nil
}

// CancelOverlay dismisses the open confirmation and resumes.
func (w *Workout) CancelOverlay() error {
	if w.overlay == OverlayNone {
		return ErrNoOverlay
	}
	w.overlay = OverlayNone
	return nil
}

// finalize recomputes every aggregate from the set records and produces the
// immutable session. Exercises with no recorded work are dropped.
func (w *Workout) finalize() {
	now := w.clock.Now()

	// Empty slice, not nil: the persisted wire shape stays a JSON array
	// even when every log is filtered out (quit-save with only zero-rep
	// sets can get here).
	kept := []models.ExerciseLog{}
	totalCalories := 0.0
	totalSets := 0
	totalReps := 0
	for _, log := range w.logs {
		if log.TotalReps <= 0 {
			continue
		}
		kept = append(kept, log)
		totalCalories += log.TotalCalories
		totalReps += log.TotalReps
		for _, s := range log.Sets {
			if s.Completed {
				totalSets++
			}
		}
	}

	w.finalized = &models.WorkoutSession{
		ID:            strconv.FormatInt(now.UnixMilli(), 10),
		Date:          now.Format("2006-01-02"),
		WorkoutType:   w.workoutType,
		Exercises:     kept,
		TotalDuration: w.ElapsedSeconds() / 60,
		TotalCalories: calories.Round1(totalCalories),
		TotalSets:     totalSets,
		TotalReps:     totalReps,
	}
	w.phase = PhaseSummary
}
