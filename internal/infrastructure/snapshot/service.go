// Package snapshot writes the layout back to storage once it stops changing.
package snapshot

import (
	"context"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// DefaultInterval is used when NewService is given a non-positive interval.
const DefaultInterval = 2 * time.Second

// DirtyEvents are the docker events after which the layout differs from
// what was last saved.
var DirtyEvents = []entity.EventType{
	entity.EventInit,
	entity.EventUpdated,
	entity.EventVisibilityChanged,
	entity.EventAttached,
	entity.EventDetached,
	entity.EventClosed,
	entity.EventEndDock,
}

// LayoutSource serializes the current layout.
type LayoutSource interface {
	Save() ([]byte, error)
}

// Service handles debounced layout snapshots. It is driven by the docker's
// scheduler, so every method must be called from the thread that drives
// the docker.
type Service struct {
	source    LayoutSource
	store     port.LayoutStore
	scheduler port.Scheduler
	interval  time.Duration

	timer port.Timer
	dirty bool
	saves int
	ctx   context.Context
}

// NewService creates a new snapshot service.
func NewService(source LayoutSource, store port.LayoutStore, scheduler port.Scheduler, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		source:    source,
		store:     store,
		scheduler: scheduler,
		interval:  interval,
	}
}

// Start begins saving. Changes marked before Start are scheduled now.
func (s *Service) Start(ctx context.Context) {
	s.ctx = ctx
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("layout autosave started")
	if s.dirty {
		s.schedule()
	}
}

// Stop cancels the pending save and writes any unsaved change.
func (s *Service) Stop(ctx context.Context) error {
	s.ctx = nil
	return s.SaveNow(ctx)
}

// MarkDirty signals that the layout changed. Saves are debounced: each
// change restarts the quiet period.
func (s *Service) MarkDirty() {
	s.dirty = true
	if s.ctx != nil {
		s.schedule()
	}
}

// Dirty reports whether a change is waiting to be saved.
func (s *Service) Dirty() bool { return s.dirty }

// Saves is the number of snapshots written.
func (s *Service) Saves() int { return s.saves }

// SaveNow cancels the pending save and writes immediately when dirty.
func (s *Service) SaveNow(ctx context.Context) error {
	s.stopTimer()
	if !s.dirty {
		return nil
	}
	return s.save(ctx)
}

func (s *Service) schedule() {
	s.stopTimer()
	s.timer = s.scheduler.AfterFunc(s.interval, func() {
		s.timer = nil
		ctx := s.ctx
		if ctx == nil {
			return
		}
		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save layout snapshot")
		}
	})
}

func (s *Service) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// save keeps the dirty flag when the write fails so the next change retries.
func (s *Service) save(ctx context.Context) error {
	data, err := s.source.Save()
	if err != nil {
		return err
	}
	if err := s.store.SaveLayout(ctx, data); err != nil {
		return err
	}
	s.dirty = false
	s.saves++
	logging.FromContext(ctx).Debug().Int("bytes", len(data)).Msg("layout snapshot saved")
	return nil
}
