// Package mockapi serves a stand-in for the prediction backend. It answers the
// same routes with canned data so the client can be exercised locally and in
// tests without the real model.
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"

	"github.com/kilianp07/bhp/config"
	"github.com/kilianp07/bhp/core/form"
	"github.com/kilianp07/bhp/core/model"
	"github.com/kilianp07/bhp/infra/logger"
)

// Server exposes the backend routes.
type Server struct {
	addr      string
	locations []string
	price     float64
	log       logger.Logger
	srv       *http.Server
	total     *prometheus.CounterVec
	failed    prometheus.Counter
}

// New creates a mock server using the default Prometheus registerer.
func New(cfg config.MockConfig) *Server {
	return NewWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a mock server and registers its metrics on reg. If
// reg is nil the default registerer is used.
func NewWithRegistry(cfg config.MockConfig, reg prometheus.Registerer) *Server {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	log := logger.New("mock-backend")

	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bhp_mock_requests_total",
		Help: "Requests served by the mock backend",
	}, []string{"endpoint"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bhp_mock_requests_failed_total",
		Help: "Mock backend requests rejected as malformed",
	})
	if err := reg.Register(total); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if exist, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				total = exist
			} else {
				log.Errorf("existing collector for bhp_mock_requests_total has wrong type %T", are.ExistingCollector)
			}
		}
	}
	if err := reg.Register(failed); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if exist, ok := are.ExistingCollector.(prometheus.Counter); ok {
				failed = exist
			} else {
				log.Errorf("existing collector for bhp_mock_requests_failed_total has wrong type %T", are.ExistingCollector)
			}
		}
	}

	locations := make([]string, len(cfg.Locations))
	copy(locations, cfg.Locations)
	return &Server{
		addr:      cfg.Address,
		locations: locations,
		price:     cfg.EstimatedPriceLakhs,
		log:       log,
		total:     total,
		failed:    failed,
	}
}

// Handler returns the routes wrapped in a CORS policy accepting any origin.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/get_location_names", s.handleLocations).Methods(http.MethodGet)
	r.HandleFunc("/predict_home_price", s.handlePredict).Methods(http.MethodPost)
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.total.WithLabelValues("index").Inc()
	if _, err := w.Write([]byte("Bengaluru House Price Prediction mock API is running")); err != nil {
		s.log.Errorf("write index: %v", err)
	}
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	s.total.WithLabelValues("get_location_names").Inc()
	s.writeJSON(w, http.StatusOK, model.LocationsResponse{Locations: s.locations})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	s.total.WithLabelValues("predict_home_price").Inc()
	var req model.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.failed.Inc()
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.log.Debugw("predict request", map[string]any{"location": req.Location, "bhk": req.BHK})
	s.writeJSON(w, http.StatusOK, model.PredictionResponse{
		EstimatedPriceLakhs: s.price,
		Description:         Describe(req, s.price),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorf("encode response: %v", err)
	}
}

// Describe builds the short listing text returned with a mock estimate.
func Describe(req model.PredictionRequest, price float64) string {
	loc := req.Location
	if loc == "" {
		loc = "Bengaluru"
	}
	return fmt.Sprintf("%d BHK, %s sqft in %s (%s, %s). Estimated at ₹%s Lakhs.",
		req.BHK, form.FormatLakhs(req.TotalSqft), loc, req.ResolveAgeSegment(), req.Availability, form.FormatLakhs(price))
}

// Addr returns the listening address once Start has been called.
func (s *Server) Addr() string { return s.addr }

// Start runs the HTTP server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.addr = ln.Addr().String()
	s.srv = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("shutdown server: %v", err)
		}
		cancel()
	}()
	s.log.Infof("mock backend listening on %s", s.addr)
	err = s.srv.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
