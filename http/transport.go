package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-interest-calculator/calculator"
	"go-interest-calculator/domain"
	"go-interest-calculator/interest"
)

// RequestIDHeader carries the request id, generated when the client sends none
const RequestIDHeader = "X-Request-Id"

// maxBodyBytes bounds request bodies, a calculation request is a handful of numbers
const maxBodyBytes = 1 << 16

// Server dependencies for HTTP Server functions
type Server struct {
	Service  calculator.Service
	Gatherer prometheus.Gatherer
	Logger   log.Logger

	// Rejected counts requests turned away before reaching Service
	Rejected *prometheus.CounterVec

	router http.ServeMux
}

// NewServer builds a Server exposing s. Transport metrics are registered with and served from
// registry, or neither if registry is nil.
func NewServer(s calculator.Service, registry *prometheus.Registry, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		Logger:  logger,
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "interest",
			Subsystem: "http",
			Name:      "rejected_total",
			Help:      "Requests rejected before calculation, by formula and error kind.",
		}, []string{"formula", "kind"}),
		router: http.ServeMux{},
	}
	if registry != nil {
		registry.MustRegister(server.Rejected)
		server.Gatherer = registry
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/simple", s.calculate(domain.FormulaSimple))
	s.router.Handle("/api/compound", s.calculate(domain.FormulaCompound))
	s.router.Handle("/api/difference", s.calculate(domain.FormulaDifference))
	s.router.Handle("/healthz", s.healthz())
	if s.Gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	rw.Header().Set(RequestIDHeader, id)
	s.router.ServeHTTP(rw, r.WithContext(calculator.WithRequestID(r.Context(), id)))
}

// errorResponse for marshalling errors returned to clients
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// calculate produces HTTP handler for one formula
func (s *Server) calculate(formula domain.Formula) http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients.
	// Fields stay untyped so non-numbers reach interest.Parse.
	type request struct {
		Principal interface{} `json:"principal"`
		Rate      interface{} `json:"rate"`
		Period    interface{} `json:"period"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Amount     *domain.Amount `json:"amount,omitempty"`
		Interest   *domain.Amount `json:"interest,omitempty"`
		Difference *domain.Amount `json:"difference,omitempty"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			rw.Header().Set("Allow", http.MethodPost)
			s.writeJSON(rw, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		var request request
		dec := json.NewDecoder(http.MaxBytesReader(rw, r.Body, maxBodyBytes))
		dec.UseNumber()
		if err := dec.Decode(&request); err != nil {
			s.reject(r, formula, "json", err)
			s.writeJSON(rw, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		in, err := interest.Parse(formula, request.Principal, request.Rate, request.Period)
		if err != nil {
			s.reject(r, formula, errorKind(err), err)
			s.writeError(rw, err)
			return
		}

		var response response
		ctx := r.Context()
		switch formula {
		case domain.FormulaSimple:
			amount, err := s.Service.Simple(ctx, in)
			if err != nil {
				s.writeError(rw, err)
				return
			}
			response.Amount = &amount
		case domain.FormulaCompound:
			result, err := s.Service.Compound(ctx, in)
			if err != nil {
				s.writeError(rw, err)
				return
			}
			response.Interest = &result.Interest
			response.Amount = &result.Amount
		case domain.FormulaDifference:
			difference, err := s.Service.Difference(ctx, in)
			if err != nil {
				s.writeError(rw, err)
				return
			}
			response.Difference = &difference
		}

		s.writeJSON(rw, http.StatusOK, &response)
	}
}

func (s *Server) healthz() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = rw.Write([]byte("ok\n"))
	}
}

// errorKind "type" for non-numbers, "value" for out of range numbers, "" otherwise
func errorKind(err error) string {
	switch {
	case errors.Is(err, interest.ErrNotNumeric):
		return "type"
	case errors.Is(err, interest.ErrInvalidValue):
		return "value"
	}
	return ""
}

// reject logs and counts a request that never reaches Service
func (s *Server) reject(r *http.Request, formula domain.Formula, kind string, err error) {
	s.Rejected.WithLabelValues(string(formula), kind).Inc()
	level.Info(s.Logger).Log(
		"msg", "rejected request",
		"formula", formula,
		"kind", kind,
		"request_id", calculator.RequestID(r.Context()),
		"err", err,
	)
}

// writeError maps calculation errors to status codes: 400 for non-numbers, 422 for out of range
// numbers and 500 for anything else.
func (s *Server) writeError(rw http.ResponseWriter, err error) {
	switch kind := errorKind(err); kind {
	case "type":
		s.writeJSON(rw, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: kind})
	case "value":
		s.writeJSON(rw, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: kind})
	default:
		level.Error(s.Logger).Log("msg", "calculation failed", "err", err)
		s.writeJSON(rw, http.StatusInternalServerError, errorResponse{Error: "failed calculation"})
	}
}

// writeJSON encodes v before writing status, so an encoding failure still reaches the client as a 500
func (s *Server) writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		level.Error(s.Logger).Log("msg", "failed json encoding", "err", err)
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`{"error":"failed json encoding"}` + "\n"))
		return
	}
	rw.WriteHeader(status)
	_, _ = rw.Write(append(body, '\n'))
}
