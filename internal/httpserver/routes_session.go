// internal/httpserver/routes_session.go
//
// HTTP routes for solve sessions:
//   - POST   /sessions               → start a session, returns id + token
//   - GET    /sessions/{id}          → current attempt, candidates, suggestions
//   - POST   /sessions/{id}/attempts → submit {guess, feedback}
//   - DELETE /sessions/{id}          → drop the session
//
// All /{id} routes require "Authorization: Bearer <token>" for that session.
// Invalid guesses or feedback are 400s and leave the session unchanged.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

// mountSessions registers all /sessions routes.
func (s *Server) mountSessions(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.With(s.requireAPIKey).Post("/", s.handleNewSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.handleGetSession)
			r.Post("/attempts", s.handleAttempt)
			r.Delete("/", s.handleDeleteSession)
		})
	})
}

// sessionView is the JSON shape of a session.
type sessionView struct {
	ID          string          `json:"id"`
	Token       string          `json:"token,omitempty"`
	Attempt     int             `json:"attempt"`
	MaxAttempts int             `json:"maxAttempts"`
	Candidates  int             `json:"candidates"`
	Suggestions []solver.Ranked `json:"suggestions"`
	Outcome     solver.Outcome  `json:"outcome"`
	Finished    bool            `json:"finished"`
	Answer      string          `json:"answer,omitempty"`
	Error       string          `json:"error,omitempty"`
}

func (s *Server) view(id string, sess *solver.Session) sessionView {
	v := sessionView{
		ID:          id,
		Attempt:     sess.Attempt(),
		MaxAttempts: s.cfg.MaxAttempts,
		Candidates:  sess.Remaining(),
		Suggestions: sess.Suggestions(),
		Outcome:     sess.Outcome(),
		Finished:    sess.Finished(),
		Answer:      sess.Answer(),
	}
	if err := sess.Err(); err != nil {
		v.Error = err.Error()
	}
	return v
}

// -----------------------------------------------------------------------------
// POST /sessions

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	if n := s.store.Prune(r.Context(), s.opts.TokenTTL); n > 0 {
		log.Info().Int("pruned", n).Msg("dropped idle sessions")
	}

	// Sign before saving so a signing failure leaves nothing unreachable behind.
	id := genID()
	tok, _, err := s.sign(id)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	sess := solver.NewSession(s.cfg)
	if err := s.store.Save(r.Context(), id, sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	v := s.view(id, sess)
	v.Token = tok
	log.Info().Str("session", id).Int("candidates", v.Candidates).Msg("session started")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// -----------------------------------------------------------------------------
// GET /sessions/{id}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var v sessionView
	err := s.store.Update(r.Context(), id, func(sess *solver.Session) error {
		v = s.view(id, sess)
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// -----------------------------------------------------------------------------
// POST /sessions/{id}/attempts

// maxAttemptBody caps the JSON body of an attempt; a valid one is ~50 bytes.
const maxAttemptBody = 4 << 10

type attemptReq struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

func (s *Server) handleAttempt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req attemptReq
	r.Body = http.MaxBytesReader(w, r.Body, maxAttemptBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var v sessionView
	err := s.store.Update(r.Context(), id, func(sess *solver.Session) error {
		if _, err := sess.Submit(req.Guess, req.Feedback); err != nil {
			return err
		}
		v = s.view(id, sess)
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, solver.ErrSessionFinished):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, solver.ErrInvalidGuess),
		errors.Is(err, solver.ErrNotInDictionary),
		errors.Is(err, solver.ErrInvalidFeedback):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	default:
		log.Error().Err(err).Str("session", id).Msg("apply attempt")
		writeError(w, http.StatusInternalServerError, "attempt_failed")
		return
	}

	ev := log.Info()
	if v.Outcome == solver.Contradiction {
		ev = log.Warn()
	}
	ev.Str("session", id).Int("attempt", v.Attempt).Int("candidates", v.Candidates).
		Str("outcome", v.Outcome.String()).Msg("attempt applied")
	_ = json.NewEncoder(w).Encode(v)
}

// -----------------------------------------------------------------------------
// DELETE /sessions/{id}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	_ = s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
