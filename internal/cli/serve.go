package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/buildinfo"
	"github.com/matzehuels/hanoi/pkg/cache"
	"github.com/matzehuels/hanoi/pkg/config"
	herrors "github.com/matzehuels/hanoi/pkg/errors"
	hio "github.com/matzehuels/hanoi/pkg/io"
	"github.com/matzehuels/hanoi/pkg/observability"
	"github.com/matzehuels/hanoi/pkg/render/tree"
)

const shutdownTimeout = 5 * time.Second

// serveCommand exposes solutions, frames and trees over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve moves, frames and recursion trees over HTTP",
		Long: `Serve starts an HTTP server with the following endpoints:

  GET /healthz                        build information
  GET /api/moves?disks=N&format=json  move sequence (json, yaml, text)
  GET /api/frame.svg?disks=N&after=M  animation frame as SVG
  GET /api/frame.json?disks=N&after=M animation frame as JSON
  GET /api/tree.svg?disks=N           recursion tree
  GET /metrics                        Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			reg := prometheus.NewRegistry()
			m := newMetrics(reg)
			hooks := newLogHooks(c.Logger)
			observability.SetAnimationHooks(observability.MultiAnimationHooks{hooks, m})
			observability.SetCacheHooks(observability.MultiCacheHooks{hooks, m})

			store := c.newCache(cfg, noCache)
			defer store.Close()

			return serve(cmd.Context(), c.Logger, addr, newServer(cfg, store, reg, c.Logger))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "render trees on every request")

	return cmd
}

// serve runs h on addr until ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, logger *log.Logger, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	printKeyValue("Listening", addr)
	printKeyValue("Metrics", addr+"/metrics")

	errCh := make(chan error, 1)
	go func() {
		logger.Debug("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// server holds the dependencies of the HTTP handlers.
type server struct {
	cfg    *config.Config
	cache  cache.Cache
	logger *log.Logger
}

// newServer builds the router. Metrics registered on reg are exposed at /metrics.
func newServer(cfg *config.Config, store cache.Cache, reg *prometheus.Registry, logger *log.Logger) http.Handler {
	s := &server{cfg: cfg, cache: store, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/moves", s.handleMoves)
		r.Get("/frame.svg", s.handleFrame(frameSVG))
		r.Get("/frame.json", s.handleFrame(frameJSON))
		r.Get("/tree.svg", s.handleTree)
	})

	return r
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *server) handleMoves(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	n, err := herrors.ParseDiskCount(q.Get("disks"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := q.Get("format")
	if format == "" {
		format = hio.FormatJSON
	}

	var buf bytes.Buffer
	if err := hio.Write(&buf, hio.NewDocument(n), format); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", movesContentType(format))
	w.Write(buf.Bytes())
}

func (s *server) handleFrame(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		n, err := herrors.ParseDiskCount(q.Get("disks"))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		after, err := queryInt(q.Get("after"), "after")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		ticks, err := queryInt(q.Get("tick"), "tick")
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		f, err := buildFrame(r.Context(), s.cfg, frameRequest{disks: n, moves: after, ticks: ticks})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		data, err := encodeFrame(s.cfg, f, format)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if format == frameSVG {
			w.Header().Set("Content-Type", "image/svg+xml")
		} else {
			w.Header().Set("Content-Type", "application/json")
		}
		w.Write(data)
	}
}

func (s *server) handleTree(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	n, err := herrors.ParseDiskCount(q.Get("disks"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	colored := q.Get("colored") == "true" || q.Get("colored") == "1"

	ctx := withLogger(r.Context(), s.logger)
	svg, cached, err := treeSVG(ctx, s.cache, s.cfg, n, tree.Options{Colored: colored})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("X-Cache", cacheHeader(cached))
	w.Write(svg)
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if herrors.IsUserError(err) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error: herrors.UserMessage(err),
		Code:  string(herrors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// queryInt parses an optional integer parameter; a missing value is 0. Range
// checks belong to the caller, see frameRequest.validate.
func queryInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, herrors.New(herrors.ErrCodeInvalidInput, "%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

func movesContentType(format string) string {
	switch format {
	case hio.FormatJSON:
		return "application/json"
	case hio.FormatYAML:
		return "application/yaml"
	}
	return "text/plain; charset=utf-8"
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
