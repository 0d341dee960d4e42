// Package api serves the engine over HTTP. It is a thin JSON layer on top
// of the grammar driver and the bridge, every request is handled fully
// synchronous — one derivation per request, nothing is shared between
// requests besides the read-only lexicons.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/voodooEntity/minigram/src/system/archivist"
	"github.com/voodooEntity/minigram/src/system/bridge"
	"github.com/voodooEntity/minigram/src/system/grammar"
	"github.com/voodooEntity/minigram/src/system/lexicon"
	"github.com/voodooEntity/minigram/src/system/pattern"
)

type Server struct {
	addr      string
	log       *archivist.Archivist
	resolver  LexiconResolver
	driver    *grammar.Driver
	validator *bridge.LogValidator
}

// LexiconResolver hands out named lexicons, the facade's memory store
// satisfies it
type LexiconResolver interface {
	RetrieveLexicon(name string) (lexicon.Lexicon, bool)
}

type parseRequest struct {
	Sentence string `json:"sentence"`
	Lexicon  string `json:"lexicon,omitempty"`
}

type parseResponse struct {
	RequestID  string `json:"request_id"`
	Status     string `json:"status"`
	Linearized string `json:"linearized,omitempty"`
	Steps      int    `json:"steps"`
	Error      string `json:"error,omitempty"`
}

type patternRequest struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

type patternResponse struct {
	RequestID string `json:"request_id"`
	Output    string `json:"output"`
	Error     string `json:"error,omitempty"`
}

type logRequest struct {
	Events []string `json:"events"`
}

type logResponse struct {
	RequestID string   `json:"request_id"`
	Anomalies []string `json:"anomalies"`
}

type telemetryRequest struct {
	Values []float64 `json:"values"`
}

type telemetryResponse struct {
	RequestID string `json:"request_id"`
	Nominal   bool   `json:"nominal"`
}

func New(addr string, resolver LexiconResolver, logger *archivist.Archivist) *Server {
	return &Server{
		addr:      addr,
		log:       logger,
		resolver:  resolver,
		driver:    grammar.NewDriver(logger),
		validator: bridge.NewLogValidator(logger),
	}
}

// ListenAndServe blocks serving the api until the listener fails
func (s *Server) ListenAndServe() error {
	s.log.Info("api listening on ", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler builds the route table, exposed separately for tests
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/parse", s.handleParse)
	mux.HandleFunc("/v1/pattern", s.handlePattern)
	mux.HandleFunc("/v1/validate/log", s.handleValidateLog)
	mux.HandleFunc("/v1/validate/telemetry", s.handleValidateTelemetry)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	requestID, ok := s.decode(w, r, &req)
	if !ok {
		return
	}

	lexiconName := req.Lexicon
	if lexiconName == "" {
		lexiconName = lexicon.LEXICON_LINGUISTIC
	}
	lex, found := s.resolver.RetrieveLexicon(lexiconName)
	if !found {
		s.reply(w, http.StatusNotFound, parseResponse{
			RequestID: requestID,
			Error:     "unknown lexicon: " + lexiconName,
		})
		return
	}

	workspace, err := s.driver.Seed(req.Sentence, lex.Items)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if !errors.Is(err, grammar.ErrUnknownToken) {
			status = http.StatusInternalServerError
		}
		s.reply(w, status, parseResponse{
			RequestID: requestID,
			Error:     err.Error(),
		})
		return
	}

	obj, err := s.driver.Derive(workspace, grammar.DEFAULT_MAX_STEPS)
	response := parseResponse{
		RequestID: requestID,
		Status:    string(workspace.Status),
		Steps:     workspace.StepCount,
	}
	if err != nil {
		response.Error = err.Error()
		s.reply(w, http.StatusUnprocessableEntity, response)
		return
	}
	response.Linearized = obj.Linearize()
	s.reply(w, http.StatusOK, response)
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	var req patternRequest
	requestID, ok := s.decode(w, r, &req)
	if !ok {
		return
	}

	output, err := pattern.Generate(req.Name, req.N)
	if err != nil {
		s.reply(w, http.StatusUnprocessableEntity, patternResponse{
			RequestID: requestID,
			Error:     err.Error(),
		})
		return
	}
	s.reply(w, http.StatusOK, patternResponse{
		RequestID: requestID,
		Output:    output,
	})
}

func (s *Server) handleValidateLog(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	requestID, ok := s.decode(w, r, &req)
	if !ok {
		return
	}

	anomalies := s.validator.Validate(req.Events)
	if anomalies == nil {
		anomalies = []string{}
	}
	s.reply(w, http.StatusOK, logResponse{
		RequestID: requestID,
		Anomalies: anomalies,
	})
}

func (s *Server) handleValidateTelemetry(w http.ResponseWriter, r *http.Request) {
	var req telemetryRequest
	requestID, ok := s.decode(w, r, &req)
	if !ok {
		return
	}

	s.reply(w, http.StatusOK, telemetryResponse{
		RequestID: requestID,
		Nominal:   bridge.ValidateTelemetrySequence(req.Values),
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, target interface{}) (string, bool) {
	requestID := uuid.NewString()
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return requestID, false
	}
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		s.log.Debug(archivist.DEBUG_LEVEL_TRACE, "api request=", requestID, " bad payload error=", err)
		http.Error(w, "invalid json payload", http.StatusBadRequest)
		return requestID, false
	}
	s.log.Debug(archivist.DEBUG_LEVEL_TRACE, "api request=", requestID, " path=", r.URL.Path)
	return requestID, true
}

func (s *Server) reply(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("api failed encoding response ", err)
	}
}
