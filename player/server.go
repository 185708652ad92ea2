package player

import (
	"encoding/json"
	"net/http"
	"time"

	"isolation/game"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type ActionRequest struct {
	State       game.Snapshot `json:"state"`
	TimeLimitMs int           `json:"time_limit_ms"`
}

type ActionResponse struct {
	Action       int  `json:"action"`
	Publications int  `json:"publications"`
	TimedOut     bool `json:"timed_out"`
}

// Factory builds the player for the side to move.
type Factory func(id game.Player) Player

// Server answers action requests over HTTP. A fresh player is built for
// every request, so carry-over context does not survive between requests.
type Server struct {
	factory   Factory
	timeLimit time.Duration
}

func NewServer(factory Factory, timeLimit time.Duration) *Server {
	return &Server{factory: factory, timeLimit: timeLimit}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/action", s.handleAction)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting agent server on %s...", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	state, err := req.State.Isolation()
	if err != nil {
		http.Error(w, "bad state: "+err.Error(), http.StatusBadRequest)
		return
	}
	if state.TerminalTest() {
		http.Error(w, "state is terminal", http.StatusUnprocessableEntity)
		return
	}

	limit := s.timeLimit
	if req.TimeLimitMs > 0 {
		limit = time.Duration(req.TimeLimitMs) * time.Millisecond
	}

	result := RunTimed(s.factory(state.Player()), state, limit)
	if result.Err != nil {
		log.Error().Err(result.Err).Str("request_id", middleware.GetReqID(r.Context())).Msg("player failed")
		http.Error(w, result.Err.Error(), http.StatusInternalServerError)
		return
	}
	if !result.OK {
		http.Error(w, "no action before the time limit", http.StatusServiceUnavailable)
		return
	}
	log.Debug().Msgf("answered ply %d with %v after %v", state.PlyCount(), result.Action, result.Elapsed)

	w.Header().Set("Content-Type", "application/json")
	resp := ActionResponse{
		Action:       int(result.Action),
		Publications: result.Publications,
		TimedOut:     result.TimedOut,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode action: "+err.Error(), http.StatusInternalServerError)
	}
}
