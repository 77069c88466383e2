package shaders

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fosdem/glhello/lib/config"
	"github.com/jhenstridge/go-inotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateNames(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{VertexTemplate, FragmentTemplate}, s.TemplateNames())
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.Load(&config.Defaults().Shaders)
	require.NoError(t, err)

	assert.Equal(t, "#version 150 core\nin vec4 position;\nvoid main()\n{\n    gl_Position = position;\n}\n", src.Vertex)
	assert.Contains(t, src.Fragment, "#version 150 core\n")
	assert.Contains(t, src.Fragment, "out vec4 fragment;")
	assert.Contains(t, src.Fragment, "fragment = vec4(1.0000, 0.0000, 0.0000, 1.0000);")
}

func TestLoadUsesConfiguredVersionAndColour(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	cfg := config.Defaults().Shaders
	cfg.GLSLVersion = "330 core"
	cfg.Colour = "#00ff0080"

	src, err := s.Load(&cfg)
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "#version 330 core\n")
	assert.Contains(t, src.Fragment, "vec4(0.0000, 1.0000, 0.0000, 0.5020)")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "blue.frag")
	require.NoError(t, os.WriteFile(frag, []byte("#version {{.GLSLVersion}}\nout vec4 fragment;\nvoid main() { fragment = vec4(0, 0, 1, 1); }\n"), 0o644))

	s, err := NewShaderer()
	require.NoError(t, err)

	cfg := config.Defaults().Shaders
	cfg.Fragment = config.CfgPath(frag)

	src, err := s.Load(&cfg)
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "gl_Position = position;")
	assert.Equal(t, "#version 150 core\nout vec4 fragment;\nvoid main() { fragment = vec4(0, 0, 1, 1); }\n", src.Fragment)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	cfg := config.Defaults().Shaders
	cfg.Vertex = config.CfgPath(filepath.Join(t.TempDir(), "missing.vert"))

	_, err = s.Load(&cfg)
	assert.ErrorContains(t, err, "could not get vertex shader")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatcherRelevance(t *testing.T) {
	w := newWatcher([]string{"/srv/shaders/a.frag", "", "/srv/shaders/../shaders/b.vert"}, nil, discardLogger())
	dir := &inotify.Watch{Path: "/srv/shaders"}
	other := &inotify.Watch{Path: "/srv/other"}

	assert.True(t, w.relevant(inotify.Event{Watch: dir, Mask: inotify.IN_CLOSE_WRITE, Name: "a.frag"}))
	assert.True(t, w.relevant(inotify.Event{Watch: dir, Mask: inotify.IN_MOVED_TO, Name: "b.vert"}))
	assert.False(t, w.relevant(inotify.Event{Watch: dir, Mask: inotify.IN_MODIFY, Name: "a.frag"}))
	assert.False(t, w.relevant(inotify.Event{Watch: dir, Mask: inotify.IN_CLOSE_WRITE, Name: "c.frag"}))
	assert.False(t, w.relevant(inotify.Event{Watch: other, Mask: inotify.IN_CLOSE_WRITE, Name: "a.frag"}))
	assert.False(t, w.relevant(inotify.Event{Mask: inotify.IN_CLOSE_WRITE, Name: "a.frag"}))
	assert.False(t, w.relevant(inotify.Event{Watch: dir, Mask: inotify.IN_CLOSE_WRITE}))
	assert.Len(t, w.files, 2)
}

func TestWatchNoticesRewrite(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "red.frag")
	other := filepath.Join(dir, "unrelated.txt")
	require.NoError(t, os.WriteFile(frag, []byte("#version 150 core\n"), 0o644))

	var notified atomic.Int32
	w, err := Watch([]string{frag}, func() { notified.Add(1) }, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("#version 330 core\n"), 0o644))

	assert.Eventually(t, func() bool {
		return notified.Load() > 0
	}, 5*time.Second, 20*time.Millisecond)
	assert.True(t, w.Changed())
	assert.False(t, w.Changed())
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch([]string{filepath.Join(t.TempDir(), "gone", "a.frag")}, nil, discardLogger())
	assert.Error(t, err)
}

func TestWatcherChangedResets(t *testing.T) {
	w := newWatcher(nil, nil, discardLogger())
	assert.False(t, w.Changed())
	w.changed.Store(true)
	assert.True(t, w.Changed())
	assert.False(t, w.Changed())
	assert.NoError(t, w.Close())
}
