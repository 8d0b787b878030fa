// Package jobstest provides an in-process fake of the jobs API for tests.
package jobstest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Response is a canned reply for one job id.
type Response struct {
	Status int
	Body   []byte
}

// Server is a fake jobs API. Unknown ids answer 404.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	holds     map[string]chan struct{}
	hits      map[string]int
	authz     []string
	token     string
}

// NewServer starts a fake API. When token is non-empty, requests whose
// Authorization header differs from "Bearer <token>" get 401.
func NewServer(token string) *Server {
	s := &Server{
		responses: make(map[string]Response),
		holds:     make(map[string]chan struct{}),
		hits:      make(map[string]int),
		token:     token,
	}

	r := chi.NewRouter()
	r.Get("/jobs/{id}", s.handleJob)
	s.Server = httptest.NewServer(r)
	return s
}

// Set registers the reply for id.
func (s *Server) Set(id string, status int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[id] = Response{Status: status, Body: body}
}

// Hold blocks requests for id until the returned release func is called.
func (s *Server) Hold(id string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.holds[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// Hits returns how many requests were received for id.
func (s *Server) Hits(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[id]
}

// AuthHeaders returns every Authorization header seen, in arrival order.
func (s *Server) AuthHeaders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.authz...)
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	authz := r.Header.Get("Authorization")

	s.mu.Lock()
	s.hits[id]++
	s.authz = append(s.authz, authz)
	hold := s.holds[id]
	resp, ok := s.responses[id]
	s.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-r.Context().Done():
			return
		}
	}

	if s.token != "" && authz != "Bearer "+s.token {
		writeError(w, http.StatusUnauthorized, "invalid jwt token")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error_msg": msg})
}
