package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateCountsFrames(t *testing.T) {
	s := New()
	s.Update(0)
	s.Update(16 * time.Millisecond)

	snap := s.Snapshot()
	assert.Equal(t, uint64(2), snap.Frames)
	assert.Equal(t, 16.0, snap.FrameTimeMs)
	assert.GreaterOrEqual(t, snap.Uptime, 0.0)
}

func TestFPSRollsOverAfterASecond(t *testing.T) {
	s := New()
	s.frameTimer = time.Now().Add(-2 * time.Second)
	s.Update(0)
	s.Update(0)
	s.frameTimer = time.Now().Add(-2 * time.Second)
	s.Update(0)

	assert.Equal(t, uint64(2), s.Snapshot().FPS)
}

func TestProgramBuilt(t *testing.T) {
	s := New()
	s.ProgramBuilt(errors.New("Link Error."))
	snap := s.Snapshot()
	assert.False(t, snap.ProgramOK)
	assert.Equal(t, "Link Error.", snap.LastDiagnostic)

	s.ProgramBuilt(nil)
	snap = s.Snapshot()
	assert.True(t, snap.ProgramOK)
	assert.Empty(t, snap.LastDiagnostic)
	assert.Equal(t, 2, snap.ProgramBuilds)
}
