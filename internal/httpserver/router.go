package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"elevation-service/internal/gate"
	"elevation-service/internal/identity"
	"elevation-service/internal/repository/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type decisionResponse struct {
	Outcome string `json:"outcome"`
	Target  string `json:"target,omitempty"`
}

type noticeResponse struct {
	Pending bool `json:"pending"`
}

type handler struct {
	logger   *zap.SugaredLogger
	provider identity.Provider
	resolver DecisionResolver
	banner   *gate.Banner
}

// NewRouter serves the gate query, the pending-approval notice, health and metrics.
func NewRouter(logger *zap.SugaredLogger, provider identity.Provider, resolver DecisionResolver, banner *gate.Banner) http.Handler {
	h := &handler{logger: logger, provider: provider, resolver: resolver, banner: banner}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/gate", h.evaluate)
		r.With(Guard(resolver, gate.Requirement{RequireAuth: true})).
			Get("/applications/{role}/notice", h.notice)
	})

	return r
}

func (h *handler) evaluate(w http.ResponseWriter, r *http.Request) {
	req := gate.Requirement{}

	if v := r.URL.Query().Get("requireAuth"); v != "" {
		requireAuth, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid requireAuth", http.StatusBadRequest)
			return
		}
		req.RequireAuth = requireAuth
	}

	if v := r.URL.Query().Get("role"); v != "" {
		role, err := model.ParseRole(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.RequiredRole = role
	}

	d := h.resolver.Resolve(r.Context(), identity.BearerToken(r.Header.Get("Authorization")), req)
	h.writeJSON(w, decisionResponse{Outcome: d.Outcome.String(), Target: string(d.Target)})
}

func (h *handler) notice(w http.ResponseWriter, r *http.Request) {
	role, err := model.ParseRole(chi.URLParam(r, "role"))
	if err != nil || !role.IsElevated() {
		http.Error(w, "role has no application workflow", http.StatusBadRequest)
		return
	}

	session, err := h.provider.GetSession(r.Context(), identity.BearerToken(r.Header.Get("Authorization")))
	if err != nil || session == nil {
		http.Error(w, "sign in required", http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, noticeResponse{Pending: h.banner.Pending(r.Context(), session.UserId, role)})
}

func (h *handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Errorw("failed to write response", "error", err)
	}
}

// Run serves handler on port until ctx is cancelled.
func Run(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, port int, handler http.Handler) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Infow("listening for HTTP requests", "port", port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("failed to serve http", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("failed to shut down http server", "error", err)
		}
	}()
}
