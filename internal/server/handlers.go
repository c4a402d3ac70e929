package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/repflow/internal/auth"
	"github.com/meltforce/repflow/internal/catalog"
	"github.com/meltforce/repflow/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// userResponse strips the credential fields from an account.
type userResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email           string `json:"email"`
		DisplayName     string `json:"displayName"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, err := s.auth.Register(r.Context(), req.Email, req.DisplayName, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrEmailTaken):
			writeError(w, http.StatusConflict, "an account with that email already exists")
		default:
			s.log.Error("register failed", "error", err)
			writeError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	// Hand back a session immediately so the client does not log in twice.
	token, err := s.auth.Token(user)
	if err != nil {
		s.log.Error("token after register failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"user":  toUserResponse(user),
		"token": token,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		s.log.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  toUserResponse(user),
		"token": token,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	if id == 0 {
		writeError(w, http.StatusUnauthorized, "sign in required")
		return
	}
	user, err := s.auth.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleWorkoutCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.WorkoutCategories)
}

func (s *Server) handleWorkoutCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := catalog.CategoryByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown workout category")
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

func (s *Server) handleWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.WeeklySchedule)
}

func (s *Server) handleScheduleDay(w http.ResponseWriter, r *http.Request) {
	day, ok := catalog.DayByShortName(chi.URLParam(r, "day"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown schedule day")
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleYogaCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.YogaCategories)
}

func (s *Server) handleYogaPlan(w http.ResponseWriter, r *http.Request) {
	poses, ok := catalog.YogaPlanForDay(chi.URLParam(r, "day"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown plan day")
		return
	}
	writeJSON(w, http.StatusOK, poses)
}
