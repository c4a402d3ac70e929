package server

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/meltforce/repflow/internal/catalog"
	"github.com/meltforce/repflow/internal/models"
	"github.com/meltforce/repflow/internal/session"
	"github.com/meltforce/repflow/internal/storage"
)

// runTTL bounds how long an untouched guided run stays in memory.
const runTTL = 24 * time.Hour

type runKind string

const (
	runWorkout runKind = "workout"
	runYoga    runKind = "yoga"
)

// run is one in-flight guided session, driven by POSTed events.
type run struct {
	id     uuid.UUID
	userID int64
	kind   runKind

	// mu guards the state machine and the save bookkeeping below. The
	// registry mutex only protects the map; concurrent requests against
	// the same run serialize here. Held across event application,
	// persistence, and view rendering (the view consumes the chime).
	mu      sync.Mutex
	workout *session.Workout
	yoga    *session.Yoga

	persisted bool
	saveErr   string
	touched   time.Time
}

type runRegistry struct {
	mu   sync.Mutex
	runs map[uuid.UUID]*run
}

func newRunRegistry() *runRegistry {
	return &runRegistry{runs: make(map[uuid.UUID]*run)}
}

func (reg *runRegistry) add(r *run) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	now := time.Now()
	for id, old := range reg.runs {
		if now.Sub(old.touched) > runTTL {
			delete(reg.runs, id)
		}
	}
	reg.runs[r.id] = r
}

// get returns the run if it exists and belongs to the given user.
func (reg *runRegistry) get(id uuid.UUID, userID int64) (*run, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.runs[id]
	if !ok || r.userID != userID {
		return nil, false
	}
	r.touched = time.Now()
	return r, true
}

func (s *Server) handleStartWorkoutRun(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day         string   `json:"day"`         // schedule short day, e.g. "Mon"
		ExerciseIDs []string `json:"exerciseIds"` // explicit list, overrides day
		WorkoutType string   `json:"workoutType"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	var exercises []models.Exercise
	workoutType := req.WorkoutType
	switch {
	case len(req.ExerciseIDs) > 0:
		for _, id := range req.ExerciseIDs {
			ex, ok := catalog.ExerciseByID(id)
			if !ok {
				writeError(w, http.StatusBadRequest, "unknown exercise: "+id)
				return
			}
			exercises = append(exercises, ex)
		}
	case req.Day != "":
		day, ok := catalog.DayByShortName(req.Day)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown schedule day: "+req.Day)
			return
		}
		exercises = day.Exercises
		if workoutType == "" {
			workoutType = day.Workout
		}
	default:
		writeError(w, http.StatusBadRequest, "day or exerciseIds required")
		return
	}

	workout, err := session.NewWorkout(workoutType, exercises, session.RealClock(), newRunRand())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rn := &run{
		id:      uuid.New(),
		userID:  userID(r),
		kind:    runWorkout,
		workout: workout,
		touched: time.Now(),
	}
	// Render before publishing: once the run is in the registry another
	// request may grab it.
	view := s.runView(rn)
	s.runs.add(rn)
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleStartYogaRun(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day      string `json:"day"` // plan day, e.g. "mon"
		Category string `json:"category"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Day == "" {
		writeError(w, http.StatusBadRequest, "day required")
		return
	}

	poses, ok := catalog.YogaPlanForDay(req.Day)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown plan day: "+req.Day)
		return
	}

	yoga, err := session.NewYoga(req.Category, poses, session.RealClock(), newRunRand())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rn := &run{
		id:      uuid.New(),
		userID:  userID(r),
		kind:    runYoga,
		yoga:    yoga,
		touched: time.Now(),
	}
	view := s.runView(rn)
	s.runs.add(rn)
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	rn, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	rn.mu.Lock()
	view := s.runView(rn)
	rn.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

// runEvent is one client action applied to a run's state machine.
type runEvent struct {
	Action  string `json:"action"`
	Value   int    `json:"value,omitempty"`
	Side    string `json:"side,omitempty"`
	Confirm bool   `json:"confirm,omitempty"` // for "quit": true saves, false discards
}

func (s *Server) handleRunEvent(w http.ResponseWriter, r *http.Request) {
	rn, ok := s.lookupRun(w, r)
	if !ok {
		return
	}

	var ev runEvent
	if err := readJSON(r, &ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	rn.mu.Lock()
	var err error
	if rn.kind == runWorkout {
		err = applyWorkoutEvent(rn.workout, ev)
	} else {
		err = applyYogaEvent(rn.yoga, ev)
	}
	if err != nil {
		rn.mu.Unlock()
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	s.persistIfFinished(r, rn)
	view := s.runView(rn)
	rn.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) lookupRun(w http.ResponseWriter, r *http.Request) (*run, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid run id")
		return nil, false
	}
	rn, ok := s.runs.get(id, userID(r))
	if !ok {
		writeError(w, http.StatusNotFound, "run not found")
		return nil, false
	}
	return rn, true
}

func applyWorkoutEvent(w *session.Workout, ev runEvent) error {
	switch ev.Action {
	case "adjust":
		return w.Adjust(ev.Value)
	case "adjust_side":
		return w.AdjustSide(session.Side(ev.Side), ev.Value)
	case "set_quantity":
		return w.SetQuantity(ev.Value)
	case "done":
		return w.Done()
	case "skip":
		return w.Skip()
	case "previous":
		return w.Previous()
	case "tick":
		return w.Tick()
	case "extend_rest":
		return w.ExtendRest()
	case "skip_rest":
		return w.SkipRest()
	case "quit":
		_, err := w.RequestQuit()
		return err
	case "confirm_save":
		return w.ConfirmSave()
	case "confirm_discard":
		return w.ConfirmDiscard()
	case "cancel":
		return w.CancelOverlay()
	default:
		return errUnknownAction(ev.Action)
	}
}

func applyYogaEvent(y *session.Yoga, ev runEvent) error {
	switch ev.Action {
	case "start":
		return y.Start()
	case "pause":
		return y.Pause()
	case "reset":
		return y.Reset()
	case "set_duration":
		return y.SetDuration(ev.Value)
	case "set_rest":
		return y.SetRest(ev.Value)
	case "next":
		_, err := y.Next()
		return err
	case "confirm_skip":
		return y.ConfirmSkip()
	case "previous":
		return y.Previous()
	case "tick":
		return y.Tick()
	case "extend_rest":
		return y.ExtendRest()
	case "skip_rest":
		return y.SkipRest()
	case "quit":
		_, err := y.RequestQuit()
		return err
	case "confirm_save":
		return y.ConfirmSave()
	case "confirm_discard":
		return y.ConfirmDiscard()
	case "cancel":
		return y.CancelOverlay()
	default:
		return errUnknownAction(ev.Action)
	}
}

type unknownActionError string

func (e unknownActionError) Error() string { return "unknown action: " + string(e) }

func errUnknownAction(action string) error { return unknownActionError(action) }

// persistIfFinished saves a freshly finalized record. Caller holds rn.mu.
// Anonymous runs keep the record in the run view but are never persisted;
// the response carries the reason so the client can stash it locally.
func (s *Server) persistIfFinished(r *http.Request, rn *run) {
	if rn.persisted {
		return
	}

	switch rn.kind {
	case runWorkout:
		sess := rn.workout.Session()
		if sess == nil {
			return
		}
		if rn.userID == 0 {
			rn.saveErr = "sign in required to save history"
			rn.persisted = true
			return
		}
		if err := s.db.SaveWorkoutSession(r.Context(), rn.userID, sess); err != nil {
			s.log.Error("saving workout session failed", "error", err, "session", sess.ID)
			rn.saveErr = "saving failed"
			return
		}
		rn.persisted = true
		s.hub.Publish(rn.userID, storage.ChangeWorkouts)
	case runYoga:
		log := rn.yoga.Log()
		if log == nil {
			return
		}
		if rn.userID == 0 {
			rn.saveErr = "sign in required to save history"
			rn.persisted = true
			return
		}
		if err := s.yoga.SaveYogaLog(r.Context(), rn.userID, log); err != nil {
			s.log.Error("saving yoga log failed", "error", err, "log", log.ID)
			rn.saveErr = "saving failed"
			return
		}
		rn.persisted = true
		s.hub.Publish(rn.userID, storage.ChangeYogaLogs)
	}
}

func newRunRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
