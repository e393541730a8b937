// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dario.cat/mergo"
	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/models"
)

// DiffClass classifies one payload field of a history snapshot relative to
// the snapshot it is compared against.
type DiffClass string

const (
	DiffAdded    DiffClass = "added"
	DiffModified DiffClass = "modified"
	DiffSame     DiffClass = "same"
)

// ErrSessionClosed is returned by snapshot operations on a session that
// was never opened or has been closed.
var ErrSessionClosed = errors.New("time travel session is not active")

// TimeTravelSession lets the user walk an item's history and assemble a
// restore draft field by field. The session pins the timeline at open
// time; edits and syncs happening meanwhile do not shift the indices under
// the user.
//
// Each selected snapshot is diffed against its base: the next older
// snapshot, or the item's live payload when the selection is the oldest
// entry. Field overrides accumulate across selections; a nil override
// marks an explicit deletion in the draft.
type TimeTravelSession struct {
	history *ItemHistory
	log     *logger.Logger

	mu        sync.Mutex
	active    bool
	live      models.Payload
	timeline  []models.HistoryEntry
	index     int
	current   models.Payload
	base      models.Payload
	overrides map[string]any
}

func NewTimeTravelSession(history *ItemHistory, log *logger.Logger) *TimeTravelSession {
	return &TimeTravelSession{history: history, log: log}
}

// Open pins the timeline and selects its newest entry. live is the item's
// current payload; it anchors the diff of the oldest entry and seeds the
// restore draft.
func (s *TimeTravelSession) Open(ctx context.Context, live models.Payload) error {
	timeline := s.history.SortedTimeline()
	if len(timeline) == 0 {
		return errors.New("item has no history to travel through")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = true
	s.live = live
	s.timeline = timeline
	s.overrides = make(map[string]any)

	if err := s.selectLocked(ctx, len(timeline)-1); err != nil {
		s.closeLocked()
		return err
	}
	return nil
}

// Close ends the session and drops all accumulated state, including
// overrides.
func (s *TimeTravelSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *TimeTravelSession) closeLocked() {
	s.active = false
	s.live = nil
	s.timeline = nil
	s.current = nil
	s.base = nil
	s.overrides = nil
	s.index = 0
}

func (s *TimeTravelSession) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetIndex moves the selection to position index in the pinned timeline,
// where 0 is the oldest entry. Overrides survive the move.
func (s *TimeTravelSession) SetIndex(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrSessionClosed
	}
	return s.selectLocked(ctx, index)
}

func (s *TimeTravelSession) selectLocked(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.timeline) {
		return fmt.Errorf("history index %d out of range [0, %d)", index, len(s.timeline))
	}

	current, err := s.history.FetchPayload(ctx, s.timeline[index].Version)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", s.timeline[index].Version, err)
	}

	base := s.live
	if index > 0 {
		base, err = s.history.FetchPayload(ctx, s.timeline[index-1].Version)
		if err != nil {
			return fmt.Errorf("load base snapshot %s: %w", s.timeline[index-1].Version, err)
		}
	}

	s.index = index
	s.current = current
	s.base = base
	return nil
}

// Index returns the selected timeline position.
func (s *TimeTravelSession) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Entry returns the selected history entry.
func (s *TimeTravelSession) Entry() models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return models.HistoryEntry{}
	}
	return s.timeline[s.index]
}

// Snapshot returns the payload of the selected entry.
func (s *TimeTravelSession) Snapshot() models.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Diff classifies every field of the selected snapshot against its base.
// A field differing in type counts as modified just like one differing in
// value.
func (s *TimeTravelSession) Diff() map[string]DiffClass {
	s.mu.Lock()
	defer s.mu.Unlock()

	diff := make(map[string]DiffClass, len(s.current))
	for key, value := range s.current {
		baseValue, ok := s.base[key]
		switch {
		case !ok:
			diff[key] = DiffAdded
		case reflect.DeepEqual(value, baseValue):
			diff[key] = DiffSame
		default:
			diff[key] = DiffModified
		}
	}
	return diff
}

// DeletedFields returns the fields present in the base but absent from the
// selected snapshot, with their base values so the user can inspect what
// was removed.
func (s *TimeTravelSession) DeletedFields() models.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := models.Payload{}
	for key, value := range s.base {
		if _, ok := s.current[key]; !ok {
			deleted[key] = value
		}
	}
	return deleted
}

// ApplyFieldOverride copies a field into the restore draft, taking the
// value from the selected snapshot or, for fields the snapshot no longer
// has, from its base.
func (s *TimeTravelSession) ApplyFieldOverride(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrSessionClosed
	}

	if value, ok := s.current[key]; ok {
		s.overrides[key] = value
		return nil
	}
	if value, ok := s.base[key]; ok {
		s.overrides[key] = value
		return nil
	}
	return fmt.Errorf("field %q is not present in the selected snapshot", key)
}

// MarkFieldDeleted records an explicit deletion in the restore draft.
func (s *TimeTravelSession) MarkFieldDeleted(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrSessionClosed
	}
	s.overrides[key] = nil
	return nil
}

// RemoveFieldOverride undoes a single override, returning the field to
// whatever the live payload has.
func (s *TimeTravelSession) RemoveFieldOverride(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		delete(s.overrides, key)
	}
}

// Overrides returns a copy of the accumulated overrides. Nil values stand
// for explicit deletions.
func (s *TimeTravelSession) Overrides() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]any, len(s.overrides))
	for key, value := range s.overrides {
		out[key] = value
	}
	return out
}

// Draft assembles the restore payload: the live payload with every non-nil
// override applied on top and every nil override removed. The session's
// own state is left untouched, so a draft can be previewed repeatedly.
func (s *TimeTravelSession) Draft() (models.Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrSessionClosed
	}

	draft := models.Payload{}
	if err := mergo.Merge(&draft, s.live); err != nil {
		return nil, fmt.Errorf("copy live payload: %w", err)
	}

	applied := models.Payload{}
	deletions := make([]string, 0, len(s.overrides))
	for key, value := range s.overrides {
		if value == nil {
			deletions = append(deletions, key)
			continue
		}
		applied[key] = value
	}

	if len(applied) > 0 {
		if err := mergo.Merge(&draft, applied, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("apply field overrides: %w", err)
		}
	}
	for _, key := range deletions {
		delete(draft, key)
	}
	return draft, nil
}
