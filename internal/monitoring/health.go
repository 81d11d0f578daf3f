package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker reports liveness of a running composition. A run is
// considered stalled when no generation has completed for a while, which in
// practice means the scoring workers are wedged.
type HealthChecker struct {
	mu             sync.RWMutex
	lastGeneration time.Time
	generations    int
}

type HealthStatus struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	Generations    int       `json:"generations"`
	LastGeneration time.Time `json:"last_generation"`
	Uptime         string    `json:"uptime"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{}
}

// MarkGeneration records that a generation just completed.
func (h *HealthChecker) MarkGeneration() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastGeneration = time.Now()
	h.generations++
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if h.generations > 0 && time.Since(h.lastGeneration) > time.Minute {
		status = "stalled"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	health := HealthStatus{
		Status:         status,
		Timestamp:      time.Now(),
		Generations:    h.generations,
		LastGeneration: h.lastGeneration,
		Uptime:         time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
