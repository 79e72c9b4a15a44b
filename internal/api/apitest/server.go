// Package apitest provides an in-memory todo service for tests.
package apitest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
)

// Item mirrors the service's JSON item shape.
type Item struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// Request records one handled request.
type Request struct {
	Method string
	Path   string
	Query  string
	Status int
}

// Server is a fake todo service. It is safe for concurrent use.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	items    map[int64]Item
	nextID   int64
	failures map[string][]int
	requests []Request
	logger   *slog.Logger
}

// NewServer starts a fake service seeded with items.
func NewServer(seed ...Item) *Server {
	s := &Server{
		items:    make(map[int64]Item),
		nextID:   1,
		failures: make(map[string][]int),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, it := range seed {
		s.put(it)
	}

	r := mux.NewRouter()
	r.Use(s.record)
	r.Methods(http.MethodGet).Path("/getalltodos").HandlerFunc(s.list)
	r.Methods(http.MethodPost).Path("/posttodo").HandlerFunc(s.create)
	r.Methods(http.MethodPatch).Path("/todos/{id:[0-9]+}").HandlerFunc(s.update)
	r.Methods(http.MethodDelete).Path("/todos/{id:[0-9]+}").HandlerFunc(s.delete)

	s.Server = httptest.NewServer(r)
	return s
}

// SetLogger routes request logs to l.
func (s *Server) SetLogger(l *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = l
}

// FailNext makes the next request with the given method answer with status.
// Calls queue up.
func (s *Server) FailNext(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = append(s.failures[method], status)
}

// Items returns the stored items ordered by identity.
func (s *Server) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted()
}

// Requests returns the handled requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests matched method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := next
		if status, ok := s.takeFailure(r.Method); ok {
			h = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "injected failure", status)
			})
		}
		m := httpsnoop.CaptureMetrics(h, w, r)

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Status: m.Code,
		})
		logger := s.logger
		s.mu.Unlock()

		logger.Info("handled", "method", r.Method, "url", r.URL, "duration", m.Duration, "status", m.Code)
	})
}

func (s *Server) takeFailure(method string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	queue := s.failures[method]
	if len(queue) == 0 {
		return 0, false
	}
	s.failures[method] = queue[1:]
	return queue[0], true
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	items := s.sorted()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	it := s.put(Item{Title: body.Title})
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	q := r.URL.Query()

	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		http.Error(w, "todo not found", http.StatusNotFound)
		return
	}
	if q.Has("title") {
		it.Title = q.Get("title")
	}
	if q.Has("completed") {
		completed, err := strconv.ParseBool(q.Get("completed"))
		if err != nil {
			http.Error(w, "invalid completed", http.StatusUnprocessableEntity)
			return
		}
		it.Completed = completed
	}
	s.items[id] = it
	writeJSON(w, http.StatusOK, map[string]string{"message": "todo updated"})
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		http.Error(w, "todo not found", http.StatusNotFound)
		return
	}
	delete(s.items, id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "todo deleted"})
}

// put stores it, assigning identity and creation time when missing. Callers hold mu.
func (s *Server) put(it Item) Item {
	if it.ID == 0 {
		it.ID = s.nextID
	}
	if it.ID >= s.nextID {
		s.nextID = it.ID + 1
	}
	if it.CreatedAt == "" {
		it.CreatedAt = time.Now().UTC().Format("2006-01-02T15:04:05.000000")
	}
	s.items[it.ID] = it
	return it
}

func (s *Server) sorted() []Item {
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
