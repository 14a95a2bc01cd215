package fswatcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

type FsnWatcher struct {
	w      *fsnotify.Watcher
	events chan interface{}
	opMask Op

	closing chan struct{}
	done    chan struct{}
}

func NewFsnWatcher() (*FsnWatcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FsnWatcher{
		w:      w0,
		events: make(chan interface{}),
		opMask: AllOps,

		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.eventLoop()
	return w, nil
}

//----------

func (w *FsnWatcher) Close() error {
	close(w.closing)
	err := w.w.Close()
	<-w.done
	return err
}

func (w *FsnWatcher) OpMask() *Op {
	return &w.opMask
}

//----------

func (w *FsnWatcher) Add(name string) error {
	return w.w.Add(name)
}
func (w *FsnWatcher) Remove(name string) error {
	return w.w.Remove(name)
}

//----------

// Closed after Close().
func (w *FsnWatcher) Events() <-chan interface{} {
	return w.events
}

//----------

func (w *FsnWatcher) eventLoop() {
	defer close(w.done)
	defer close(w.events)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			if !w.send(err) {
				return
			}

		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if u, ok := w.convertEvent(ev); ok {
				if !w.send(u) {
					return
				}
			}
		}
	}
}

func (w *FsnWatcher) send(v interface{}) bool {
	select {
	case w.events <- v:
		return true
	case <-w.closing:
		return false
	}
}

func (w *FsnWatcher) convertEvent(ev fsnotify.Event) (*Event, bool) {
	name := ev.Name
	subName := ""

	var op Op
	if ev.Op&fsnotify.Create > 0 {
		op.Add(Create)
		// make event name dir, with subname file
		n, sn := filepath.Split(name)
		name, subName = filepath.Clean(n), sn
	}
	if ev.Op&fsnotify.Write > 0 {
		op.Add(Modify)
	}
	if ev.Op&fsnotify.Remove > 0 {
		op.Add(Remove)
	}
	if ev.Op&fsnotify.Rename > 0 {
		op.Add(Rename)
	}
	if ev.Op&fsnotify.Chmod > 0 {
		op.Add(Attrib)
	}

	if op&w.opMask == 0 {
		return nil, false
	}
	return &Event{Op: op, Name: name, SubName: subName}, true
}
