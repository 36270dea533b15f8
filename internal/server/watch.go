package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events editors emit per save.
const debounceDelay = 150 * time.Millisecond

// watch re-renders the page whenever the data source or assets change.
// Remote data sources are not watched.
func (s *Server) watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.log.WithError(err).Warn("file watching disabled")
		return
	}
	defer watcher.Close()

	watched := false
	if src := s.cfg.DataSource; src != "" && !isRemote(src) {
		// Watch the directory, not the file: editors replace files on
		// save and the inode-level watch would be lost.
		if err := watcher.Add(filepath.Dir(src)); err != nil {
			s.log.WithError(err).Warn("cannot watch data source")
		} else {
			watched = true
		}
	}
	if dir := s.cfg.Assets.Dir; dir != "" {
		if err := watcher.Add(dir); err == nil {
			watched = true
		}
	}
	if !watched {
		return
	}

	var timer *time.Timer
	rerender := func() {
		if err := s.Rerender(ctx); err != nil {
			s.log.WithError(err).Error("re-render failed")
			return
		}
		s.log.Info("page re-rendered")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !s.relevant(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, rerender)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.WithError(err).Warn("watch error")
		}
	}
}

// relevant filters watcher noise down to content-changing events on files
// we care about.
func (s *Server) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	if src := s.cfg.DataSource; src != "" && !isRemote(src) {
		srcAbs, _ := filepath.Abs(src)
		evAbs, _ := filepath.Abs(event.Name)
		if srcAbs == evAbs {
			return true
		}
	}
	if dir := s.cfg.Assets.Dir; dir != "" {
		dirAbs, _ := filepath.Abs(dir)
		evAbs, _ := filepath.Abs(event.Name)
		if rel, err := filepath.Rel(dirAbs, evAbs); err == nil && !filepath.IsAbs(rel) && rel != ".." && !hasDotDotPrefix(rel) {
			return true
		}
	}
	return false
}

func hasDotDotPrefix(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
