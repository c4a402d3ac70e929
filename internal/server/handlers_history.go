package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/repflow/internal/models"
	"github.com/meltforce/repflow/internal/storage"
)

// History endpoints mirror the gateway contract: reads for anonymous callers
// return empty collections, writes require a signed-in user.

func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id := userID(r)
	if id == 0 {
		writeError(w, http.StatusUnauthorized, "sign in required")
		return 0, false
	}
	return id, true
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	if id == 0 {
		writeJSON(w, http.StatusOK, []models.WorkoutSession{})
		return
	}

	var (
		sessions []models.WorkoutSession
		err      error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		if _, perr := time.Parse("2006-01-02", date); perr != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		sessions, err = s.db.ListWorkoutSessionsByDate(r.Context(), id, date)
	} else {
		sessions, err = s.db.ListWorkoutSessions(r.Context(), id)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	sess, err := s.db.GetWorkoutSession(r.Context(), id, chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// handlePutSession stores a complete session record directly. This is the
// migration path for history that was finished on a device before sign-in;
// re-putting the same id overwrites rather than duplicating.
func (s *Server) handlePutSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var sess models.WorkoutSession
	if err := readJSON(r, &sess); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	sess.ID = chi.URLParam(r, "id")
	if sess.Date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}
	if _, err := time.Parse("2006-01-02", sess.Date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	if err := s.db.SaveWorkoutSession(r.Context(), id, &sess); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.hub.Publish(id, storage.ChangeWorkouts)
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	err := s.db.DeleteWorkoutSession(r.Context(), id, chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.hub.Publish(id, storage.ChangeWorkouts)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteAllSessions(w http.ResponseWriter, r *http.Request) {
	id, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteAllWorkoutSessions(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.hub.Publish(id, storage.ChangeWorkouts)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWorkoutStats(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	if id == 0 {
		writeJSON(w, http.StatusOK, &models.WorkoutStats{})
		return
	}
	stats, err := s.db.GetWorkoutStats(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	if id == 0 {
		writeJSON(w, http.StatusOK, map[string]int{"streak": 0})
		return
	}
	streak, err := s.db.GetStreak(r.Context(), id, time.Local)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"streak": streak})
}

func (s *Server) handleListYogaLogs(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	if id == 0 {
		writeJSON(w, http.StatusOK, []models.YogaSessionLog{})
		return
	}
	logs, err := s.yoga.ListYogaLogs(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// handlePutYogaLog mirrors handlePutSession for yoga history migration.
func (s *Server) handlePutYogaLog(w http.ResponseWriter, r *http.Request) {
	id, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var log models.YogaSessionLog
	if err := readJSON(r, &log); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	log.ID = chi.URLParam(r, "id")
	if log.CompletedAt == "" {
		writeError(w, http.StatusBadRequest, "completedAt is required")
		return
	}
	if _, err := time.Parse(time.RFC3339, log.CompletedAt); err != nil {
		writeError(w, http.StatusBadRequest, "completedAt must be RFC 3339")
		return
	}

	if err := s.yoga.SaveYogaLog(r.Context(), id, &log); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.hub.Publish(id, storage.ChangeYogaLogs)
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleDeleteYogaLog(w http.ResponseWriter, r *http.Request) {
	id, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	err := s.yoga.DeleteYogaLog(r.Context(), id, chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "log not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.hub.Publish(id, storage.ChangeYogaLogs)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteAllYogaLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	if err := s.yoga.DeleteAllYogaLogs(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.hub.Publish(id, storage.ChangeYogaLogs)
	w.WriteHeader(http.StatusNoContent)
}

// handleWatch streams change notifications as server-sent events. The client
// re-fetches the named collection on each event; no deltas are sent.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	id, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ch, cancel := s.hub.Subscribe(id)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case change, open := <-ch:
			if !open {
				return
			}
			data, err := json.Marshal(change)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
