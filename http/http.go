package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RoanBrand/CelluloseDS/ds"
	"github.com/RoanBrand/CelluloseDS/log"
	"github.com/RoanBrand/CelluloseDS/sample"
)

// Server exposes the DS engine and the latest measured samples as JSON.
type Server struct {
	engine      *ds.Engine
	method      ds.Method
	substituent string
	resultFunc  func() ([]sample.Record, error)
	mux         *http.ServeMux
}

// NewServer sets up the endpoints. method and substituent are used when a
// request does not name them. resultGetter may be nil when no data sources are
// configured; staticFilesPath may be empty.
func NewServer(engine *ds.Engine, method ds.Method, substituent string, resultGetter func() ([]sample.Record, error), staticFilesPath string) *Server {
	s := &Server{
		engine:      engine,
		method:      method,
		substituent: substituent,
		resultFunc:  resultGetter,
		mux:         http.NewServeMux(),
	}

	if staticFilesPath != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(staticFilesPath)))
	}
	s.mux.HandleFunc("/formula", s.formulaEndpoint)
	s.mux.HandleFunc("/ds", s.dsEndpoint)
	s.mux.HandleFunc("/mw", s.mwEndpoint)
	s.mux.HandleFunc("/composition", s.compositionEndpoint)
	s.mux.HandleFunc("/results", s.resultEndpoint)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) Start(port string) error {
	log.Println("Starting CelluloseDS service on port", port)
	return http.ListenAndServe(":"+port, s)
}

type formulaResponse struct {
	Formula   string                 `json:"formula"`
	MolarMass float64                `json:"molar_mass"`
	Ratios    []sample.ElementResult `json:"ratios"`
}

func (s *Server) formulaEndpoint(w http.ResponseWriter, r *http.Request) {
	f, err := s.engine.Parse(r.URL.Query().Get("f"))
	if err != nil {
		badRequest(w, err)
		return
	}

	res := formulaResponse{Formula: f.String()}
	calc := s.engine.Calculator()
	if res.MolarMass, err = calc.MolarMass(f); err != nil {
		badRequest(w, err)
		return
	}
	if res.Ratios, err = calc.Ratios(f); err != nil {
		badRequest(w, err)
		return
	}

	writeJSON(w, res)
}

type dsResponse struct {
	Method      ds.Method `json:"method"`
	Substituent string    `json:"substituent"`
	Value       float64   `json:"value"` // measured mass %
	DS          float64   `json:"ds"`
}

// dsEndpoint computes a DS from a measured mass percentage:
// /ds?method=carbon&subst=Cl&value=45.2[&guess=1]
func (s *Server) dsEndpoint(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	method := s.method
	if m := q.Get("method"); m != "" {
		var err error
		if method, err = ds.ParseMethod(m); err != nil {
			badRequest(w, err)
			return
		}
	}

	value, err := floatParam(q.Get("value"), "value", nil)
	if err != nil {
		badRequest(w, err)
		return
	}
	zero := 0.0
	guess, err := floatParam(q.Get("guess"), "guess", &zero)
	if err != nil {
		badRequest(w, err)
		return
	}

	res := dsResponse{Method: method, Substituent: s.substituentParam(r), Value: value}
	if res.DS, err = s.engine.Compute(method, res.Substituent, value/100, guess); err != nil {
		badRequest(w, err)
		return
	}

	writeJSON(w, res)
}

type mwResponse struct {
	Substituent string  `json:"substituent"`
	DS          float64 `json:"ds"`
	MolarMass   float64 `json:"molar_mass"`
}

func (s *Server) mwEndpoint(w http.ResponseWriter, r *http.Request) {
	dsValue, err := floatParam(r.URL.Query().Get("ds"), "ds", nil)
	if err != nil {
		badRequest(w, err)
		return
	}

	res := mwResponse{Substituent: s.substituentParam(r), DS: dsValue}
	if res.MolarMass, err = s.engine.MolarMassByDS(res.Substituent, dsValue); err != nil {
		badRequest(w, err)
		return
	}

	writeJSON(w, res)
}

type compositionResponse struct {
	Substituent string                 `json:"substituent"`
	DS          float64                `json:"ds"`
	Formula     string                 `json:"formula"`
	Ratios      []sample.ElementResult `json:"ratios"`
}

func (s *Server) compositionEndpoint(w http.ResponseWriter, r *http.Request) {
	dsValue, err := floatParam(r.URL.Query().Get("ds"), "ds", nil)
	if err != nil {
		badRequest(w, err)
		return
	}

	res := compositionResponse{Substituent: s.substituentParam(r), DS: dsValue}
	res.Formula = ds.CompositionFormula(dsValue, res.Substituent)
	if res.Ratios, err = s.engine.CompositionByDS(dsValue, res.Substituent); err != nil {
		badRequest(w, err)
		return
	}

	writeJSON(w, res)
}

// SampleResult is a measured sample with the DS evaluated from it.
type SampleResult struct {
	sample.Record
	Evaluation *ds.Evaluation `json:"evaluation,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (s *Server) resultEndpoint(w http.ResponseWriter, r *http.Request) {
	if s.resultFunc == nil {
		http.Error(w, "no data sources configured", http.StatusNotFound)
		return
	}

	recs, err := s.resultFunc()
	if err != nil {
		errMsg := "Error querying results: " + err.Error()
		log.Println(errMsg)
		http.Error(w, errMsg, http.StatusInternalServerError)
		return
	}

	method := s.method
	if m := r.URL.Query().Get("method"); m != "" {
		if method, err = ds.ParseMethod(m); err != nil {
			badRequest(w, err)
			return
		}
	}
	req := ds.Request{Method: method, Substituent: s.substituentParam(r)}

	results := make([]SampleResult, len(recs))
	for i, rec := range recs {
		results[i].Record = rec
		ev, err := s.engine.Evaluate(rec, req)
		if err != nil {
			results[i].Error = err.Error()
			continue
		}
		results[i].Evaluation = &ev
	}

	writeJSON(w, results)
}

func (s *Server) substituentParam(r *http.Request) string {
	if sub := r.URL.Query().Get("subst"); sub != "" {
		return sub
	}
	return s.substituent
}

// floatParam parses v. Empty v yields def, or an error when def is nil.
func floatParam(v, name string, def *float64) (float64, error) {
	if v == "" {
		if def == nil {
			return 0, errors.New("missing parameter " + name)
		}
		return *def, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New("invalid " + name + ": " + v)
	}
	return f, nil
}

func badRequest(w http.ResponseWriter, err error) {
	log.Debugf("bad request: %v", err)
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
