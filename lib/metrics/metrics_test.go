package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderFailuresArePreinitialised(t *testing.T) {
	assert.Equal(t, 3, testutil.CollectAndCount(ShaderFailures))
	assert.Equal(t, 2, testutil.CollectAndCount(ProgramBuilds))
}

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(FramesDrawn)
	FramesDrawn.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(FramesDrawn))

	link := ShaderFailures.WithLabelValues("link")
	before = testutil.ToFloat64(link)
	link.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(link))
}

func TestHandlerExposesCounters(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "glhello_frames_drawn_total")
	assert.Contains(t, string(body), `glhello_shader_failures_total{stage="vertex shader"}`)
}
