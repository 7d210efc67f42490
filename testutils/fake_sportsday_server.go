package testutils

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

//go:embed sportsdaydata
var sportsdaydata embed.FS

// FakeSportsDayServer serves the sports-day API from the json files in sportsdaydata.
// A GET for /games/10/matches is answered with sportsdaydata/games/10/matches.json.
// Writes are echoed back and are not persisted.
type FakeSportsDayServer struct {
	s *httptest.Server

	mu                sync.Mutex
	requests          map[string]int
	failures          map[string]int
	lastAuthorization string
}

func NewFakeSportsDayServer() *FakeSportsDayServer {
	f := &FakeSportsDayServer{
		requests: make(map[string]int),
		failures: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(f.record)
	r.Get("/*", f.getHandler)
	r.Post("/*", f.writeHandler)
	r.Put("/*", f.writeHandler)
	r.Delete("/*", f.deleteHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeSportsDayServer) Close() {
	f.s.Close()
}

func (f *FakeSportsDayServer) URL() string {
	return f.s.URL
}

// Requests returns how many times method and path were requested.
func (f *FakeSportsDayServer) Requests(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[method+" "+path]
}

// LastAuthorization returns the Authorization header of the latest request.
func (f *FakeSportsDayServer) LastAuthorization() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAuthorization
}

// Fail makes every request for path answer with status until Recover is called.
func (f *FakeSportsDayServer) Fail(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = status
}

func (f *FakeSportsDayServer) Recover(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failures, path)
}

func (f *FakeSportsDayServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests[r.Method+" "+r.URL.Path]++
		f.lastAuthorization = r.Header.Get("Authorization")
		status, failing := f.failures[r.URL.Path]
		f.mu.Unlock()

		if failing {
			w.WriteHeader(status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeSportsDayServer) getHandler(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(r.URL.Path, "/")
	b, err := sportsdaydata.ReadFile(fmt.Sprintf("sportsdaydata/%s.json", name))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (f *FakeSportsDayServer) writeHandler(w http.ResponseWriter, r *http.Request) {
	body := make(map[string]any)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Printf("error decoding request body for %s: %v", r.URL.Path, err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// POST /sports creates id 999, PUT /sports/1 keeps 1. Relationship writes such
	// as POST /microsoft-accounts/me/link answer without data.
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	status := http.StatusOK
	switch {
	case r.Method == http.MethodPost && len(parts) == 1:
		body["id"] = 999
		status = http.StatusCreated
	case r.Method == http.MethodPut && len(parts) == 2:
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body["id"] = id
	case r.Method == http.MethodPut && len(parts) == 3 && parts[2] == "role":
		body["id"] = 1
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
	now := time.Date(2024, time.May, 24, 9, 0, 0, 0, time.UTC)
	body["createdAt"] = now
	body["updatedAt"] = now

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"data": body})
}

func (f *FakeSportsDayServer) deleteHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
