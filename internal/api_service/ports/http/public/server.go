package public

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kamaal111/forex-api/deploy/config"
	"github.com/kamaal111/forex-api/internal/api_service/ports/http/public/middleware/logger"
	"github.com/kamaal111/forex-api/internal/api_service/service"
	"github.com/kamaal111/forex-api/internal/entities"
)

type Server struct {
	Server  *http.Server
	cfg     *config.Config
	service Service
}

type ListRatesResponse struct {
	Results []entities.ExchangeRateRecord `json:"results"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewServer(server *http.Server, cfg *config.Config, service2 *service.Service) *Server {
	return &Server{
		Server:  server,
		cfg:     cfg,
		service: service2,
	}
}

func StartServer(ctx context.Context, service *service.Service, cfg *config.Config) <-chan struct{} {

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.New())
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	serverConfig := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      r,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	server := NewServer(serverConfig, cfg, service)

	r.Get("/exchange-rates", server.GetAllRates)
	r.Get("/v1/latest", server.GetLatestRate)

	doneChan := make(chan struct{})

	go func() {
		if err := server.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop server", "error", err)
		}

		close(doneChan)
	}()

	return doneChan
}

func (s *Server) GetAllRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := s.service.FetchAllRates(ctx)
	if err != nil {
		slog.Error("Failed to fetch exchange rates", "error", err)
		RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if records == nil {
		records = []entities.ExchangeRateRecord{}
	}

	RespondWithJSON(w, http.StatusOK, ListRatesResponse{Results: records})
}

func (s *Server) GetLatestRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	base := r.URL.Query().Get("base")
	symbols := r.URL.Query().Get("symbols")

	record, err := s.service.FetchLatestRate(ctx, base, symbols)
	if errors.Is(err, entities.ErrNotFound) {
		RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("Failed to fetch latest rate", "base", base, "error", err)
		RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, record)
}

func RespondWithJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func RespondWithError(w http.ResponseWriter, code int, detail string) {
	RespondWithJSON(w, code, ErrorResponse{Detail: detail})
}
