package stats

import (
	"sync"
	"time"
)

// Stats is written by the render loop and read by the API.
type Stats struct {
	mu   sync.Mutex
	snap Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

type Snapshot struct {
	Frames         uint64  `json:"frames"`
	FPS            uint64  `json:"fps"`
	FrameTimeMs    float64 `json:"frame_time_ms"`
	Uptime         float64 `json:"uptime"`
	ProgramOK      bool    `json:"program_ok"`
	ProgramBuilds  int     `json:"program_builds"`
	LastDiagnostic string  `json:"last_diagnostic,omitempty"`
	Renderer       string  `json:"renderer,omitempty"`
	WsClients      int     `json:"ws_clients"`
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = s.start
	return s
}

// Update records one drawn frame that took dt since the previous one.
func (s *Stats) Update(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Frames++
	s.frameCounter++
	if time.Since(s.frameTimer) > 1*time.Second {
		s.snap.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
	}

	s.snap.FrameTimeMs = float64(dt.Microseconds()) / 1000
	s.snap.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
}

// ProgramBuilt records the outcome of a (re)build of the shader program.
func (s *Stats) ProgramBuilt(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.ProgramBuilds++
	s.snap.ProgramOK = err == nil
	if err != nil {
		s.snap.LastDiagnostic = err.Error()
	} else {
		s.snap.LastDiagnostic = ""
	}
}

func (s *Stats) SetRenderer(r string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Renderer = r
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.WsClients = n
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
