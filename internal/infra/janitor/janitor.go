// Package janitor periodically removes stale files from the upload
// staging directory. Staged files are normally deleted as soon as
// extraction finishes; the janitor catches leftovers from crashes.
package janitor

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	// SweepSpec runs the sweep every ten minutes.
	SweepSpec = "*/10 * * * *"

	// DefaultMaxAge is how long a staged file may sit before it is
	// considered abandoned. Extraction takes seconds, so an hour is
	// generous.
	DefaultMaxAge = time.Hour
)

type Janitor struct {
	cron   *cron.Cron
	dir    string
	maxAge time.Duration
	log    *slog.Logger
}

func New(dir string, maxAge time.Duration, log *slog.Logger) *Janitor {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Janitor{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		dir:    dir,
		maxAge: maxAge,
		log:    log,
	}
}

func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc(SweepSpec, j.sweep); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

func (j *Janitor) Stop() {
	j.cron.Stop()
}

// sweep removes regular files in the staging directory whose modification
// time is older than maxAge. Subdirectories are left alone.
func (j *Janitor) sweep() {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			j.log.Warn("janitor: read staging dir failed",
				slog.String("dir", j.dir),
				slog.Any("error", err))
		}
		return
	}

	cutoff := time.Now().Add(-j.maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(j.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			j.log.Warn("janitor: remove stale file failed",
				slog.String("path", path),
				slog.Any("error", err))
			continue
		}
		removed++
	}

	if removed > 0 {
		j.log.Info("janitor: removed stale staged files",
			slog.String("dir", j.dir),
			slog.Int("removed", removed))
	}
}
