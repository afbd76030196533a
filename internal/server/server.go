package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/alex-de-haas/haas.mortgage/internal/calculation"
)

// Server wires the schedule API together: router, engine, cache and logging.
type Server struct {
	cfg    *Config
	logger *logrus.Logger
	router *mux.Router
}

// New builds a server from configuration. Redis backs the cache when
// REDIS_ADDR is set, an in-memory map otherwise.
func New(cfg *Config) *Server {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	engine := calculation.NewEngine()
	engine.SetLogger(calculation.NewLogrusLogger(logger))

	var cache ScheduleCache
	if cfg.RedisAddr != "" {
		cache = NewRedisCache(cfg.RedisAddr)
		logger.WithField("addr", cfg.RedisAddr).Info("using redis schedule cache")
	} else {
		cache = NewMemoryCache()
		logger.Info("using in-memory schedule cache")
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: NewRouter(NewHandler(engine, cache, logger), logger),
	}
	return s
}

// NewRouter registers the API routes.
func NewRouter(h *Handler, logger *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(logger))
	r.HandleFunc("/health", h.Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/schedule", h.Schedule).Methods("POST")
	api.HandleFunc("/schedule/compare", h.Compare).Methods("POST")
	return r
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Port
	s.logger.WithField("addr", addr).Info("starting mortgage API server")
	return http.ListenAndServe(addr, s.router)
}

// loggingMiddleware logs each request with method, path and duration.
func loggingMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).String(),
			}).Info("request handled")
		})
	}
}
