// Package server exposes the solver over HTTP with gin:
//
//	POST /v1/solve        {"mode":"int","weights":[[3,1],[2,4]]} → {code,msg,data:Report}
//	POST /v1/solve/batch  {"instances":[[[3,1],[2,4]],[[5]]]}   → {code,msg,data:[Report]}
//	GET  /healthz
//	GET  /metrics
//
// Middleware order: recovery, request id, tracing, access log, metrics,
// rate limit, body limit.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/internal/config"
	"github.com/katalvlaran/hungarian/internal/matrixio"
	"github.com/katalvlaran/hungarian/internal/metrics"
	"github.com/katalvlaran/hungarian/internal/runner"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/propagation"
)

// SolveRequest is the body of POST /v1/solve. Weights accept JSON numbers or
// numeric strings; decimal mode keeps every digit either way.
type SolveRequest struct {
	Mode    string          `json:"mode"`
	Epsilon *float64        `json:"epsilon"`
	Rows    []string        `json:"rows"`
	Cols    []string        `json:"cols"`
	Weights [][]json.Number `json:"weights" binding:"required"`
}

// BatchRequest is the body of POST /v1/solve/batch: float instances solved
// concurrently.
type BatchRequest struct {
	Instances [][][]float64 `json:"instances" binding:"required"`
}

// solverState is swapped atomically on config reload.
type solverState struct {
	runner      *runner.Runner
	defaultMode matrixio.Mode
	workers     int
}

// Server is the HTTP front end.
type Server struct {
	cfg     config.ServerConfig
	engine  *gin.Engine
	http    *http.Server
	metrics *metrics.Metrics
	logger  *slog.Logger
	solver  atomic.Pointer[solverState]
}

// New wires the gin engine from cfg. m must not be nil.
func New(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{cfg: cfg.Server, metrics: m, logger: logger}
	s.UpdateSolver(cfg.Solver)

	e := gin.New()
	e.Use(
		recovery(logger),
		requestID(),
		otelgin.Middleware(cfg.Log.Service, otelgin.WithPropagators(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{},
		))),
		requestLogger(logger),
		httpMetrics(m),
		rateLimit(cfg.Server.RateLimit, cfg.Server.Burst, logger),
	)
	e.GET("/healthz", s.health)
	e.GET("/metrics", gin.WrapH(m.Handler()))
	v1 := e.Group("/v1", maxBodyBytes(cfg.Server.MaxBodyBytes))
	v1.POST("/solve", s.solve)
	v1.POST("/solve/batch", s.solveBatch)
	s.engine = e

	s.http = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           e,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	return s
}

// UpdateSolver applies new solver settings to requests that start afterwards.
func (s *Server) UpdateSolver(sc config.SolverConfig) {
	mode, err := matrixio.ParseMode(sc.DefaultMode)
	if err != nil {
		mode = matrixio.ModeFloat
	}
	opts := []hungarian.Option{
		hungarian.WithEpsilon(sc.Epsilon),
		hungarian.WithMaxSize(sc.MaxSize),
		hungarian.WithLogger(s.logger),
	}
	s.solver.Store(&solverState{
		runner: &runner.Runner{
			Options:  append(opts, s.metrics.SolverOptions()...),
			Observer: s.metrics,
			Logger:   s.logger,
		},
		defaultMode: mode,
		workers:     sc.Workers,
	})
}

// Handler returns the gin engine (tests, embedding).
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) health(c *gin.Context) {
	success(c, gin.H{"status": "ok"})
}

func (s *Server) solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, statusOf(err), err.Error())
		return
	}
	st := s.solver.Load()

	mode := matrixio.Mode(req.Mode)
	if mode == "" {
		mode = st.defaultMode
	}
	cells := make([][]string, len(req.Weights))
	for i, row := range req.Weights {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = v.String()
		}
	}
	in, err := matrixio.FromCells(mode, cells)
	if err != nil {
		failure(c, statusOf(err), err.Error())
		return
	}
	in.Epsilon, in.RowLabels, in.ColLabels = req.Epsilon, req.Rows, req.Cols

	rep, err := st.runner.Run(c.Request.Context(), in)
	if err != nil {
		failure(c, statusOf(err), err.Error())
		return
	}
	success(c, rep)
}

func (s *Server) solveBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, statusOf(err), err.Error())
		return
	}
	st := s.solver.Load()

	reps, err := st.runner.RunBatch(c.Request.Context(), req.Instances, st.workers)
	if err != nil {
		failure(c, statusOf(err), err.Error())
		return
	}
	success(c, reps)
}

// Start serves until ctx is cancelled, then shuts down gracefully within the
// configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("http server listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	s.logger.Info("http server shutting down", "timeout", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return s.http.Shutdown(shutdownCtx)
}
