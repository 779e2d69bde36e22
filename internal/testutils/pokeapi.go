package testutils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// APIPrefix is the path every fake PokeAPI route lives under
const APIPrefix = "/api/v2"

// PokeAPIServer is an httptest-backed PokeAPI serving JSON fixtures.
// Fixture bodies may contain {{base}}, which is replaced with BaseURL so
// embedded links point back at the fake server.
type PokeAPIServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]string
	failures map[string]int
	gates    map[string]chan struct{}
	hits     map[string]int
	order    []string
}

// NewPokeAPIServer starts a fake PokeAPI loaded with DefaultFixtures.
// The server is closed when the test ends.
func NewPokeAPIServer(t *testing.T) *PokeAPIServer {
	t.Helper()

	s := &PokeAPIServer{
		routes:   make(map[string]string, len(DefaultFixtures)),
		failures: make(map[string]int),
		gates:    make(map[string]chan struct{}),
		hits:     make(map[string]int),
	}
	for path, body := range DefaultFixtures {
		s.routes[normalize(path)] = body
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root to hand to the client
func (s *PokeAPIServer) BaseURL() string {
	return s.URL + APIPrefix
}

// Link returns the absolute link of a fixture path such as "/pokemon/25/"
func (s *PokeAPIServer) Link(path string) string {
	return s.BaseURL() + normalize(path)
}

// Set installs or replaces the body served for path
func (s *PokeAPIServer) Set(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[normalize(path)] = body
}

// Fail makes path answer with status until cleared with Fail(path, 0)
func (s *PokeAPIServer) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, normalize(path))
		return
	}
	s.failures[normalize(path)] = status
}

// Block holds requests for path until the returned release is called
func (s *PokeAPIServer) Block(path string) (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gates[normalize(path)] = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.gates, normalize(path))
			s.mu.Unlock()
			close(gate)
		})
	}
}

// Hits returns how many requests reached path
func (s *PokeAPIServer) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[normalize(path)]
}

// Requests returns every requested path in arrival order
func (s *PokeAPIServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

func (s *PokeAPIServer) serve(w http.ResponseWriter, r *http.Request) {
	path := normalize(strings.TrimPrefix(r.URL.Path, APIPrefix))

	s.mu.Lock()
	s.hits[path]++
	s.order = append(s.order, path)
	gate := s.gates[path]
	status := s.failures[path]
	body, ok := s.routes[path]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{base}}", s.BaseURL())))
}

func normalize(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}
