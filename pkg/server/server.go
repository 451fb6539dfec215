package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
	"github.com/nimobeeren/InternationalDraughts/pkg/eval"
)

var (
	errBusy     = errors.New("another search is running")
	errNotFound = errors.New("search not found")
)

type Engine interface {
	Search(ctx context.Context, searchParams engine.SearchParams) common.SearchInfo
	RequestStop()
}

type Evaluator interface {
	Evaluate(b common.Board) int
	Features(b common.Board) eval.Features
}

// Server exposes one engine over HTTP. The engine owns at most one
// position at a time, so a second search is refused while one runs.
type Server struct {
	engine    Engine
	evaluator Evaluator
	depth     int
	logger    zerolog.Logger
	upgrader  websocket.Upgrader

	mu      sync.Mutex
	jobs    map[uuid.UUID]*job
	running *job
}

func New(engine Engine, evaluator Evaluator, depth int, logger zerolog.Logger) *Server {
	return &Server{
		engine:    engine,
		evaluator: evaluator,
		depth:     depth,
		logger:    logger,
		jobs:      make(map[uuid.UUID]*job),
	}
}

func (s *Server) Handler() http.Handler {
	var r = chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/eval", s.handleEval)
		r.Post("/searches", s.handleStartSearch)
		r.Get("/searches/{id}", s.handleGetSearch)
		r.Post("/searches/{id}/stop", s.handleStopSearch)
		r.Get("/searches/{id}/stream", s.handleStream)
	})
	return r
}

// Close stops the running search, if any, and waits for it to return.
func (s *Server) Close() {
	s.mu.Lock()
	var running = s.running
	s.mu.Unlock()
	if running != nil {
		running.cancel()
		<-running.done
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var busy = s.running != nil
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "busy": busy})
}

type evalRequest struct {
	FEN string `json:"fen"`
}

type evalResponse struct {
	Score    int           `json:"score"`
	Features eval.Features `json:"features"`
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	var p, err = common.NewPositionFromFEN(req.FEN)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, evalResponse{
		Score:    s.evaluator.Evaluate(p),
		Features: s.evaluator.Features(p),
	})
}

type searchRequest struct {
	FEN   string   `json:"fen"`
	Moves []string `json:"moves"`
	Depth *int     `json:"depth"`
}

func (s *Server) handleStartSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	var fen = req.FEN
	if fen == "" {
		fen = common.InitialPositionFen
	}
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	for _, smove := range req.Moves {
		var move, err = p.ParseMove(smove)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p.MakeMove(move)
	}
	var depth = s.depth
	if req.Depth != nil {
		depth = *req.Depth
	}
	if err := engine.ValidateDepth(depth); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	if s.running != nil {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, errBusy)
		return
	}
	var ctx, cancel = context.WithCancel(context.Background())
	var j = newJob(p.FEN(), depth, cancel)
	s.jobs[j.id] = j
	s.running = j
	s.mu.Unlock()

	go s.runSearch(ctx, j, p)

	writeJSON(w, http.StatusAccepted, map[string]interface{}{"id": j.id})
}

func (s *Server) runSearch(ctx context.Context, j *job, p *common.Position) {
	var logger = s.logger.With().Str("search", j.id.String()).Logger()
	logger.Info().Str("fen", j.fen).Int("depth", j.depth).Msg("search started")
	var si = s.engine.Search(ctx, engine.SearchParams{
		Position: p,
		Depth:    j.depth,
		Progress: j.publish,
	})
	s.mu.Lock()
	s.running = nil
	s.mu.Unlock()
	j.finish(si)
	logger.Info().
		Int("depth", si.Depth).
		Int("score", si.Score).
		Str("move", si.Move.String()).
		Bool("stopped", si.Stopped).
		Dur("time", si.Time).
		Msg("search finished")
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*job, bool) {
	var id, err = uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("search id: %w", err))
		return nil, false
	}
	s.mu.Lock()
	var j = s.jobs[id]
	s.mu.Unlock()
	if j == nil {
		writeError(w, http.StatusNotFound, errNotFound)
		return nil, false
	}
	return j, true
}

func (s *Server) handleGetSearch(w http.ResponseWriter, r *http.Request) {
	var j, ok = s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, j.view())
}

func (s *Server) handleStopSearch(w http.ResponseWriter, r *http.Request) {
	var j, ok = s.lookup(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	var running = s.running == j
	if running {
		s.engine.RequestStop()
	}
	s.mu.Unlock()
	if !running {
		writeJSON(w, http.StatusOK, j.view())
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]interface{}{"id": j.id})
}

const writeWait = 10 * time.Second

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	var j, ok = s.lookup(w, r)
	if !ok {
		return
	}
	var conn, err = s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var gone = make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var sent = 0
	for {
		var updates, finished, changed = j.since(sent)
		for _, update := range updates {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(update); err != nil {
				s.logger.Debug().Err(err).Msg("stream write failed")
				return
			}
		}
		sent += len(updates)
		if finished {
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, stateDone),
				time.Now().Add(writeWait))
			return
		}
		select {
		case <-changed:
		case <-gone:
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
