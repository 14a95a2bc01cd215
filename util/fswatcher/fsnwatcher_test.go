package fswatcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEvent(t *testing.T, w Watcher, fn func(*Event) bool) {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case <-timeout:
			t.Fatal("event timeout")
		case ev := <-w.Events():
			if err, ok := ev.(error); ok {
				t.Fatal(err)
			}
			if fn(ev.(*Event)) {
				return
			}
		}
	}
}

func TestFsnWatcherModify(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(name, []byte("a"), 0o644))

	w, err := NewFsnWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(dir))

	require.NoError(t, os.WriteFile(name, []byte("b"), 0o644))
	readEvent(t, w, func(ev *Event) bool {
		return ev.Op.HasAny(Modify) && ev.Path() == name
	})
}

func TestFsnWatcherCreate(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFsnWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(dir))

	name := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(name, nil, 0o644))
	readEvent(t, w, func(ev *Event) bool {
		if !ev.Op.HasAny(Create) {
			return false
		}
		return ev.SubName == "b.yaml" && ev.Path() == name
	})
}

func TestFsnWatcherRemove(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFsnWatcher()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Add(dir))
	require.NoError(t, w.Remove(dir))
	assert.Error(t, w.Remove(dir)) // not watched anymore
}

func TestFsnWatcherCloseWithPendingEvents(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFsnWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Add(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c"), nil, 0o644))
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		_ = w.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("close blocked")
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "create|modify", (Create | Modify).String())
	assert.Equal(t, "attrib|create|modify|remove|rename", AllOps.String())
	assert.Equal(t, "", Op(0).String())
}
