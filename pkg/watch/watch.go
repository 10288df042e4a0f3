// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"
)

// DefaultDebounceDelay groups bursts of events into one callback
const DefaultDebounceDelay = 100 * time.Millisecond

// Watcher monitors a set of files and calls back when they change
type Watcher struct {
	WatchedFiles  []string
	DebounceDelay time.Duration
}

// NewFileWatcher creates Watcher
func NewFileWatcher(files ...string) *Watcher {
	return &Watcher{
		WatchedFiles:  files,
		DebounceDelay: DefaultDebounceDelay,
	}
}

// Watch monitors WatchedFiles until ctx is done. onChange is invoked once
// per burst of write, create or rename events on the watched files. An
// error returned by onChange is logged and watching continues.
// Watched files may live in directories that do not exist yet. The
// nearest existing ancestor is watched until they are created.
func (w *Watcher) Watch(ctx context.Context, onChange func() error) error {
	if len(w.WatchedFiles) == 0 {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close() // nolint: errcheck

	// watch the parent directories so files replaced by editors with
	// rename-on-save are still seen
	files := map[string]struct{}{}
	dirs := map[string]struct{}{}
	// missing directories on the way to a watched file
	pending := map[string]struct{}{}
	for _, file := range w.WatchedFiles {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("could not watch %s: %w", file, err)
		}
		files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		for !exists(dir) {
			pending[dir] = struct{}{}
			dir = filepath.Dir(dir)
		}
		if dir != filepath.Dir(abs) {
			klog.Infof("%s does not exist yet, watching %s", filepath.Dir(abs), dir)
		}
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("could not watch %s: %w", file, err)
		}
		dirs[dir] = struct{}{}
		klog.V(6).Infof("watching %s", dir)
	}
	klog.V(6).Info("watching files started")
	defer klog.V(6).Info("watching files stopped")

	delay := w.DebounceDelay
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	var timerC <-chan time.Time
	for {
		select {
		case <-timerC:
			timerC = nil
			if err := onChange(); err != nil {
				klog.Errorf("handling change of %v failed: %v", w.WatchedFiles, err)
			}
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)
			if _, ok := pending[name]; ok && event.Op&fsnotify.Create != 0 {
				if err := addCreated(watcher, pending); err != nil {
					klog.Warningf("could not watch %s: %v", name, err)
				}
				// the file may have been written before its directory was watched
				for file := range files {
					if exists(file) {
						timerC = time.After(delay)
						break
					}
				}
				continue
			}
			if _, watched := files[name]; !watched {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				klog.V(6).Infof("%s: %s", event.Op, event.Name)
				timerC = time.After(delay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			klog.V(4).Infof("watcher error: %v", err)
		case <-ctx.Done():
			return nil
		}
	}
}

// addCreated watches the pending directories that exist by now, parents
// first, and drops them from pending
func addCreated(watcher *fsnotify.Watcher, pending map[string]struct{}) error {
	created := make([]string, 0, len(pending))
	for dir := range pending {
		if exists(dir) {
			created = append(created, dir)
		}
	}
	sort.Strings(created)
	for _, dir := range created {
		if err := watcher.Add(dir); err != nil {
			return err
		}
		delete(pending, dir)
		klog.V(6).Infof("watching %s", dir)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
