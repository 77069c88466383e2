package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesDrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glhello_frames_drawn_total",
		Help: "Total number of frames cleared and swapped",
	})
	Wakeups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glhello_event_wakeups_total",
		Help: "Total number of times the event wait returned",
	})
	ShaderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glhello_shader_failures_total",
		Help: "Total number of failed shader compiles and program links",
	}, []string{"stage"})
	ProgramBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glhello_program_builds_total",
		Help: "Total number of program builds, by result",
	}, []string{"result"})
)

func init() {
	for _, stage := range []string{"vertex shader", "fragment shader", "link"} {
		ShaderFailures.WithLabelValues(stage).Add(0)
	}
	ProgramBuilds.WithLabelValues("ok").Add(0)
	ProgramBuilds.WithLabelValues("failed").Add(0)
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
