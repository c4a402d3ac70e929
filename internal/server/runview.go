package server

import (
	"github.com/meltforce/repflow/internal/models"
	"github.com/meltforce/repflow/internal/session"
)

// runView is the client-facing snapshot of a guided run. Everything the UI
// renders comes from here; the state machine itself never leaves the server.
type runView struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Phase   string `json:"phase"`
	Overlay string `json:"overlay,omitempty"`

	Workout *workoutView `json:"workout,omitempty"`
	Yoga    *yogaView    `json:"yoga,omitempty"`

	Session *models.WorkoutSession `json:"session,omitempty"`
	Log     *models.YogaSessionLog `json:"log,omitempty"`

	Saved     bool   `json:"saved"`
	SaveError string `json:"saveError,omitempty"`
}

type workoutView struct {
	Index           int             `json:"index"`
	Total           int             `json:"total"`
	Exercise        models.Exercise `json:"exercise"`
	PendingQuantity int             `json:"pendingQuantity"`
	RestRemaining   int             `json:"restRemaining,omitempty"`
	RestMessage     string          `json:"restMessage,omitempty"`
	ElapsedSeconds  int             `json:"elapsedSeconds"`
}

type yogaView struct {
	Index              int                 `json:"index"`
	Total              int                 `json:"total"`
	Pose               models.YogaPlanPose `json:"pose"`
	Remaining          int                 `json:"remaining"`
	ConfiguredDuration int                 `json:"configuredDuration"`
	Running            bool                `json:"running"`
	RestRemaining      int                 `json:"restRemaining,omitempty"`
	Quote              string              `json:"quote"`
	Chime              bool                `json:"chime,omitempty"`
}

func (s *Server) runView(rn *run) runView {
	v := runView{
		ID:        rn.id.String(),
		Kind:      string(rn.kind),
		Saved:     rn.persisted && rn.saveErr == "",
		SaveError: rn.saveErr,
	}

	switch rn.kind {
	case runWorkout:
		w := rn.workout
		v.Phase = w.Phase().String()
		if w.Overlay() != session.OverlayNone {
			v.Overlay = w.Overlay().String()
		}
		v.Session = w.Session()
		if v.Phase == session.PhaseSummary.String() || v.Phase == session.PhaseAbandoned.String() {
			return v
		}
		v.Workout = &workoutView{
			Index:           w.Index(),
			Total:           len(w.Logs()),
			Exercise:        w.Current(),
			PendingQuantity: w.PendingQuantity(),
			RestRemaining:   w.RestRemaining(),
			RestMessage:     w.RestMessage(),
			ElapsedSeconds:  w.ElapsedSeconds(),
		}
	case runYoga:
		y := rn.yoga
		v.Phase = y.Phase().String()
		if y.Overlay() != session.OverlayNone {
			v.Overlay = y.Overlay().String()
		}
		v.Log = y.Log()
		if v.Phase == session.PhaseSummary.String() || v.Phase == session.PhaseAbandoned.String() {
			return v
		}
		v.Yoga = &yogaView{
			Index:              y.Index(),
			Total:              y.PoseCount(),
			Pose:               y.Current(),
			Remaining:          y.Remaining(),
			ConfiguredDuration: y.ConfiguredDuration(),
			Running:            y.Running(),
			RestRemaining:      y.RestRemaining(),
			Quote:              y.Quote(),
			Chime:              y.TakeChime(),
		}
	}
	return v
}
