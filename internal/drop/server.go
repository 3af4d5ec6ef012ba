package drop

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cachet/internal/domain"
)

// DefaultMaxQueue bounds each recipient's queue when no limit is configured.
const DefaultMaxQueue = 1024

// Server holds per-recipient parcel queues in memory.
type Server struct {
	mu       sync.Mutex
	queues   map[domain.Fingerprint][]domain.Parcel
	maxQueue int
	log      *logrus.Logger
}

// NewServer returns a drop server with per-recipient queues bounded at
// maxQueue parcels; maxQueue <= 0 selects DefaultMaxQueue.
func NewServer(maxQueue int, log *logrus.Logger) *Server {
	if maxQueue <= 0 {
		maxQueue = DefaultMaxQueue
	}
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		queues:   make(map[domain.Fingerprint][]domain.Parcel),
		maxQueue: maxQueue,
		log:      log,
	}
}

// Handler returns the HTTP handler serving the drop API with access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/parcel/", s.route)
	return s.logged(mux)
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/parcel/")
	if rest == "" {
		http.Error(w, "missing recipient", http.StatusNotFound)
		return
	}

	if fp, ok := strings.CutSuffix(rest, "/ack"); ok {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		to := domain.Fingerprint(fp)
		if !to.Valid() {
			http.Error(w, "bad fingerprint", http.StatusBadRequest)
			return
		}
		s.handleAck(w, r, to)
		return
	}
	if strings.Contains(rest, "/") {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	to := domain.Fingerprint(rest)
	if !to.Valid() {
		http.Error(w, "bad fingerprint", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodPost:
		s.handlePost(w, r, to)
	case http.MethodGet:
		s.handleFetch(w, r, to)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request, to domain.Fingerprint) {
	defer r.Body.Close()
	var p domain.Parcel
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !p.From.Valid() {
		http.Error(w, "bad sender fingerprint", http.StatusBadRequest)
		return
	}
	p.To = to
	if p.Timestamp == 0 {
		p.Timestamp = time.Now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queues[to]) >= s.maxQueue {
		http.Error(w, "queue full", http.StatusTooManyRequests)
		return
	}
	s.queues[to] = append(s.queues[to], p)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request, to domain.Fingerprint) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	s.mu.Lock()
	queued := s.queues[to]
	if limit > 0 && limit < len(queued) {
		queued = queued[:limit]
	}
	out := append([]domain.Parcel(nil), queued...)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) handleAck(w http.ResponseWriter, r *http.Request, to domain.Fingerprint) {
	defer r.Body.Close()
	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Count < 0 {
		http.Error(w, "bad count", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	q := s.queues[to]
	if body.Count >= len(q) {
		delete(s.queues, to)
	} else {
		s.queues[to] = q[body.Count:]
	}
	s.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}

// logged records method, path, remote, status and duration per request.
func (s *Server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"remote":   r.RemoteAddr,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
