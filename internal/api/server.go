package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"SKCCTracker/internal/report"
	"SKCCTracker/internal/roster"
	"SKCCTracker/internal/tracker"
)

// Server exposes award progress and roster state to the logging frontend.
type Server struct {
	aggregator *tracker.Aggregator
	store      *roster.Store
}

func NewServer(agg *tracker.Aggregator, store *roster.Store) *Server {
	return &Server{aggregator: agg, store: store}
}

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/api/health", s.health).Methods("GET")
	router.HandleFunc("/api/awards", s.awards).Methods("GET")
	router.HandleFunc("/api/awards/{award}/application", s.application).Methods("GET")
	router.HandleFunc("/api/report", s.report).Methods("GET")
	router.HandleFunc("/api/rosters", s.rosters).Methods("GET")
	router.HandleFunc("/api/rosters/refresh", s.refreshRosters).Methods("POST")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})
	return corsHandler.Handler(router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// awards recomputes the full progress snapshot on demand; it is never
// cached, matching the "Refresh Awards" button semantics.
func (s *Server) awards(w http.ResponseWriter, r *http.Request) {
	reports, err := s.aggregator.Refresh()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, reports)
}

// report serves the same snapshot as plain text for terminals and exports.
func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	reports, err := s.aggregator.Refresh()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithText(w, report.FormatProgress(reports)+"\n"+report.FormatRosterStatus(s.store.Info()))
}

// application serves the ordered qualifying-contact listing for one award.
func (s *Server) application(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["award"]
	contacts, err := s.aggregator.Application(name)
	if err != nil {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	respondWithText(w, report.FormatApplication(name, contacts))
}

func (s *Server) rosters(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.store.Info())
}

func (s *Server) refreshRosters(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "1"
	results := s.store.DownloadAll(force)

	errs := map[string]string{}
	for tier, err := range results {
		if err != nil {
			errs[string(tier)] = err.Error()
		}
	}
	// A roster that fell back to empty is a degraded state, not a request
	// failure; the caller reads per-tier status from the payload.
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"rosters": s.store.Info(),
		"errors":  errs,
	})
}

func respondWithText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
