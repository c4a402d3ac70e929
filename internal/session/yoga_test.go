package session

import (
	"errors"
	"math"
	"testing"

	"github.com/meltforce/repflow/internal/models"
)

func morningPoses() []models.YogaPlanPose {
	return []models.YogaPlanPose{
		{Name: "Mountain Pose", Difficulty: models.DifficultyBeginner, Duration: 30},
		{Name: "Downward Dog", Difficulty: models.DifficultyBeginner, Duration: 45},
		{Name: "Warrior II", Difficulty: models.DifficultyIntermediate, Duration: 60},
	}
}

func newTestYoga(t *testing.T, poses []models.YogaPlanPose) *Yoga {
	t.Helper()
	y, err := NewYoga("morning", poses, newFakeClock(), testRNG())
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func runPoseToZero(t *testing.T, y *Yoga) {
	t.Helper()
	if err := y.Start(); err != nil {
		t.Fatal(err)
	}
	for y.Running() {
		if err := y.Tick(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNewYogaRequiresPoses(t *testing.T) {
	if _, err := NewYoga("morning", nil, newFakeClock(), testRNG()); err == nil {
		t.Fatal("expected error for empty pose list")
	}
}

func TestNewYogaDefaultsPoseDuration(t *testing.T) {
	y := newTestYoga(t, []models.YogaPlanPose{{Name: "Child's Pose"}})
	if y.ConfiguredDuration() != defaultPoseSeconds {
		t.Errorf("configured = %d, want %d", y.ConfiguredDuration(), defaultPoseSeconds)
	}
	if y.Remaining() != defaultPoseSeconds {
		t.Errorf("remaining = %d, want %d", y.Remaining(), defaultPoseSeconds)
	}
}

// TestYogaFullSession runs every pose to zero and checks the final log.
func TestYogaFullSession(t *testing.T) {
	y := newTestYoga(t, morningPoses())

	for pose := 0; pose < 3; pose++ {
		runPoseToZero(t, y)
		if !y.TakeChime() {
			t.Fatalf("pose %d: no chime after countdown", pose)
		}
		if y.TakeChime() {
			t.Fatalf("pose %d: chime not cleared after read", pose)
		}
		if pose < 2 {
			if y.Phase() != PhaseResting {
				t.Fatalf("pose %d: phase = %v, want resting", pose, y.Phase())
			}
			if err := y.SkipRest(); err != nil {
				t.Fatal(err)
			}
		}
	}

	if y.Phase() != PhaseSummary {
		t.Fatalf("phase = %v, want summary", y.Phase())
	}
	log := y.Log()
	if log == nil {
		t.Fatal("no finalized log")
	}
	if log.Category != "morning" {
		t.Errorf("category = %q, want morning", log.Category)
	}
	if log.CompletedAt != "2025-06-02T18:00:00Z" {
		t.Errorf("completedAt = %q", log.CompletedAt)
	}
	wantDur := []int{30, 45, 60}
	wantCal := []float64{2.1, 3.2, 4.2}
	for i, p := range log.Poses {
		if p.Duration != wantDur[i] {
			t.Errorf("pose %d duration = %d, want %d", i, p.Duration, wantDur[i])
		}
		if math.Abs(p.Calories-wantCal[i]) > 1e-9 {
			t.Errorf("pose %d calories = %v, want %v", i, p.Calories, wantCal[i])
		}
	}
}

func TestYogaRestCountdownAdvances(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	runPoseToZero(t, y)

	if y.RestRemaining() != DefaultYogaRestSeconds {
		t.Fatalf("rest = %d, want %d", y.RestRemaining(), DefaultYogaRestSeconds)
	}
	if err := y.ExtendRest(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < DefaultYogaRestSeconds+RestExtendSeconds; i++ {
		if err := y.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if y.Phase() != PhaseActive {
		t.Fatalf("phase after rest = %v, want active", y.Phase())
	}
	if y.Index() != 1 {
		t.Errorf("index = %d, want 1", y.Index())
	}
	if y.Remaining() != 45 {
		t.Errorf("remaining = %d, want 45 (next pose's duration)", y.Remaining())
	}
}

func TestYogaSetRestDuration(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	if err := y.SetRest(40); err != nil {
		t.Fatal(err)
	}
	runPoseToZero(t, y)
	if y.RestRemaining() != 40 {
		t.Errorf("rest = %d, want 40", y.RestRemaining())
	}
}

func TestYogaPauseAndReset(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	if err := y.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if err := y.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if err := y.Pause(); err != nil {
		t.Fatal(err)
	}
	if y.Remaining() != 20 {
		t.Fatalf("remaining = %d, want 20", y.Remaining())
	}
	if err := y.Tick(); err != nil {
		t.Fatal(err)
	}
	if y.Remaining() != 20 {
		t.Error("paused timer must not tick")
	}
	if err := y.Reset(); err != nil {
		t.Fatal(err)
	}
	if y.Remaining() != 30 || y.Running() {
		t.Errorf("after reset: remaining = %d running = %v", y.Remaining(), y.Running())
	}
}

func TestYogaSetDurationFollowsUntouchedTimer(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	if err := y.SetDuration(90); err != nil {
		t.Fatal(err)
	}
	if y.Remaining() != 90 {
		t.Fatalf("untouched timer must follow, remaining = %d", y.Remaining())
	}

	// Once the timer has run, changing the duration leaves the countdown alone.
	if err := y.Start(); err != nil {
		t.Fatal(err)
	}
	_ = y.Tick()
	_ = y.Pause()
	if err := y.SetDuration(120); err != nil {
		t.Fatal(err)
	}
	if y.Remaining() != 89 {
		t.Errorf("touched timer moved, remaining = %d, want 89", y.Remaining())
	}
	if y.ConfiguredDuration() != 120 {
		t.Errorf("configured = %d, want 120", y.ConfiguredDuration())
	}

	if err := y.SetDuration(1); err != nil {
		t.Fatal(err)
	}
	if y.ConfiguredDuration() != minHoldSeconds {
		t.Errorf("configured = %d, want floor %d", y.ConfiguredDuration(), minHoldSeconds)
	}
}

// TestYogaSkipConfirmation: advancing past a pose whose timer was never
// touched asks for confirmation and logs the pose at zero.
func TestYogaSkipConfirmation(t *testing.T) {
	y := newTestYoga(t, morningPoses())

	confirm, err := y.Next()
	if err != nil {
		t.Fatal(err)
	}
	if !confirm {
		t.Fatal("untouched timer: Next must require confirmation")
	}
	if y.Overlay() != OverlaySkipConfirm {
		t.Fatalf("overlay = %v, want skip_confirm", y.Overlay())
	}
	if err := y.ConfirmSkip(); err != nil {
		t.Fatal(err)
	}
	if y.Index() != 1 {
		t.Fatalf("index = %d, want 1", y.Index())
	}

	// Finish the remaining poses and check the skipped one logged 0/0.
	runPoseToZero(t, y)
	_ = y.SkipRest()
	runPoseToZero(t, y)

	log := y.Log()
	if log == nil {
		t.Fatal("no finalized log")
	}
	if log.Poses[0].Duration != 0 || log.Poses[0].Calories != 0 {
		t.Errorf("skipped pose logged %d s / %v cal, want 0/0", log.Poses[0].Duration, log.Poses[0].Calories)
	}
	if log.Poses[1].Duration != 45 {
		t.Errorf("completed pose duration = %d, want 45", log.Poses[1].Duration)
	}
}

func TestYogaNextWithTouchedTimerSkipsConfirmation(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	_ = y.Start()
	_ = y.Tick()
	_ = y.Pause()

	confirm, err := y.Next()
	if err != nil {
		t.Fatal(err)
	}
	if confirm {
		t.Error("touched timer: no confirmation expected")
	}
	if y.Index() != 1 {
		t.Errorf("index = %d, want 1", y.Index())
	}
}

func TestYogaNextWhileRunningRejected(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	_ = y.Start()
	if _, err := y.Next(); err == nil {
		t.Error("Next while running must fail")
	}
}

func TestYogaCancelSkipOverlay(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	if _, err := y.Next(); err != nil {
		t.Fatal(err)
	}
	if err := y.CancelOverlay(); err != nil {
		t.Fatal(err)
	}
	if y.Overlay() != OverlayNone {
		t.Errorf("overlay = %v, want none", y.Overlay())
	}
	if y.Index() != 0 {
		t.Errorf("cancel must not advance, index = %d", y.Index())
	}
}

func TestYogaPrevious(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	if err := y.Previous(); !errors.Is(err, ErrFirstExercise) {
		t.Fatalf("err = %v, want ErrFirstExercise", err)
	}
	_ = y.Start()
	_ = y.Tick()
	_ = y.Pause()
	if _, err := y.Next(); err != nil {
		t.Fatal(err)
	}
	if err := y.Previous(); err != nil {
		t.Fatal(err)
	}
	if y.Index() != 0 {
		t.Fatalf("index = %d, want 0", y.Index())
	}
	if y.Remaining() != 30 {
		t.Errorf("remaining = %d, want restored 30", y.Remaining())
	}
}

func TestYogaQuoteFromPool(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	found := false
	for _, m := range RestMessages {
		if m == y.Quote() {
			found = true
		}
	}
	if !found {
		t.Errorf("quote %q not in pool", y.Quote())
	}
}

func TestYogaQuitWithoutProgress(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	confirm, err := y.RequestQuit()
	if err != nil {
		t.Fatal(err)
	}
	if confirm {
		t.Error("fresh session: quit must not require confirmation")
	}
	if y.Phase() != PhaseAbandoned {
		t.Errorf("phase = %v, want abandoned", y.Phase())
	}
	if y.Log() != nil {
		t.Error("abandoned session must not produce a log")
	}
}

// TestYogaQuitSaveMarksUnreachedSkipped: saving mid-session records every
// pose never reached as skipped.
func TestYogaQuitSaveMarksUnreachedSkipped(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	runPoseToZero(t, y) // pose 0 completed, now resting

	confirm, err := y.RequestQuit()
	if err != nil {
		t.Fatal(err)
	}
	if !confirm {
		t.Fatal("progress exists: quit must require confirmation")
	}
	if err := y.ConfirmSave(); err != nil {
		t.Fatal(err)
	}

	log := y.Log()
	if log == nil {
		t.Fatal("no log after save-and-exit")
	}
	if log.Poses[0].Duration != 30 {
		t.Errorf("completed pose duration = %d, want 30", log.Poses[0].Duration)
	}
	for i := 1; i < 3; i++ {
		if log.Poses[i].Duration != 0 || log.Poses[i].Calories != 0 {
			t.Errorf("unreached pose %d logged %d s / %v cal, want 0/0", i, log.Poses[i].Duration, log.Poses[i].Calories)
		}
	}
}

func TestYogaQuitDiscard(t *testing.T) {
	y := newTestYoga(t, morningPoses())
	_ = y.Start()
	_ = y.Tick()
	_ = y.Pause()
	if _, err := y.RequestQuit(); err != nil {
		t.Fatal(err)
	}
	if err := y.ConfirmDiscard(); err != nil {
		t.Fatal(err)
	}
	if y.Log() != nil {
		t.Error("discard must not produce a log")
	}
	if y.Phase() != PhaseAbandoned {
		t.Errorf("phase = %v, want abandoned", y.Phase())
	}
	if err := y.Start(); !errors.Is(err, ErrFinished) {
		t.Errorf("Start after discard = %v, want ErrFinished", err)
	}
}

func TestYogaQuitAfterSummaryNeedsNoConfirmation(t *testing.T) {
	y := newTestYoga(t, []models.YogaPlanPose{{Name: "Corpse Pose", Duration: 10}})
	runPoseToZero(t, y)
	if y.Phase() != PhaseSummary {
		t.Fatalf("phase = %v, want summary", y.Phase())
	}
	confirm, err := y.RequestQuit()
	if err != nil {
		t.Fatal(err)
	}
	if confirm {
		t.Error("already saved: leaving the summary needs no confirmation")
	}
}

func TestYogaMissingDifficultyDefaultsBeginner(t *testing.T) {
	y := newTestYoga(t, []models.YogaPlanPose{{Name: "Cat-Cow", Duration: 10}})
	runPoseToZero(t, y)
	if got := y.Log().Poses[0].Difficulty; got != models.DifficultyBeginner {
		t.Errorf("difficulty = %q, want beginner default", got)
	}
}
