package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/AlostXD/police-lumos-rp/internal/dataset"
	"github.com/AlostXD/police-lumos-rp/internal/report"
	"github.com/AlostXD/police-lumos-rp/internal/services"
)

const watchDebounce = 300 * time.Millisecond

type seeder struct {
	svc    services.ReconcileService
	logger *zap.Logger
	out    io.Writer

	crimesPath string
	finesPath  string
	reportPath string
}

// run performs one seed pass. Either dataset failing to load aborts the
// run before anything is written.
func (s *seeder) run(ctx context.Context) error {
	crimes, err := dataset.Load(s.crimesPath)
	if err != nil {
		return err
	}
	fines, err := dataset.Load(s.finesPath)
	if err != nil {
		return err
	}

	result, runErr := s.svc.Run(ctx, crimes, fines)
	if s.reportPath != "" && result != nil {
		if err := s.writeReport(result, runErr); err != nil {
			s.logger.Warn("failed to write seed report", zap.String("path", s.reportPath), zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(s.out, "Seed complete. Upserts: %d\n", result.Upserted)
	return nil
}

func (s *seeder) writeReport(result *services.ReconcileResult, runErr error) error {
	if dir := filepath.Dir(s.reportPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(s.reportPath)
	if err != nil {
		return err
	}
	if err := report.WriteSeedReport(f, result, runErr); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// watch runs once, then again each time one of the dataset files settles
// after a change. Runs never overlap. A failed run is logged and the loop
// keeps watching.
func (s *seeder) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directories: editors often replace files by rename,
	// which drops a watch placed on the file itself.
	targets := map[string]bool{}
	dirs := map[string]bool{}
	for _, p := range []string{s.crimesPath, s.finesPath} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	s.runLogged(ctx)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			s.logger.Debug("dataset changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			debounce = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", zap.Error(err))
		case <-debounce:
			debounce = nil
			s.runLogged(ctx)
		}
	}
}

func (s *seeder) runLogged(ctx context.Context) {
	if err := s.run(ctx); err != nil {
		s.logger.Error("seed run failed", zap.Error(err))
	}
}
