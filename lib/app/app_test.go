package app

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/fosdem/glhello/lib/config"
	"github.com/fosdem/glhello/lib/metrics"
	"github.com/fosdem/glhello/lib/rendering/diag"
)

func TestRequestCloseBeforeRun(t *testing.T) {
	a := New(config.Defaults())
	assert.False(t, a.closeRequested.Load())

	a.RequestClose("test")
	assert.True(t, a.closeRequested.Load())
}

func TestRecordBuildFailureCountsStages(t *testing.T) {
	a := New(config.Defaults())
	vert := metrics.ShaderFailures.WithLabelValues("vertex shader")
	link := metrics.ShaderFailures.WithLabelValues("link")
	failed := metrics.ProgramBuilds.WithLabelValues("failed")
	vertBefore, linkBefore, failedBefore := testutil.ToFloat64(vert), testutil.ToFloat64(link), testutil.ToFloat64(failed)

	err := errors.Join(
		diag.Report{Where: "vertex shader", Log: "0:5: error"},
		diag.Report{Where: "link", Log: "Link Error."},
	)
	a.recordBuild(err)

	assert.Equal(t, vertBefore+1, testutil.ToFloat64(vert))
	assert.Equal(t, linkBefore+1, testutil.ToFloat64(link))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))

	snap := a.Stats.Snapshot()
	assert.False(t, snap.ProgramOK)
	assert.Contains(t, snap.LastDiagnostic, "vertex shader failed")
}

func TestRecordBuildSuccess(t *testing.T) {
	a := New(config.Defaults())
	ok := metrics.ProgramBuilds.WithLabelValues("ok")
	before := testutil.ToFloat64(ok)

	a.recordBuild(nil)

	assert.Equal(t, before+1, testutil.ToFloat64(ok))
	assert.True(t, a.Stats.Snapshot().ProgramOK)
}

func TestWatchShadersDisabledByDefault(t *testing.T) {
	a := New(config.Defaults())
	assert.Nil(t, a.watchShaders())
}
