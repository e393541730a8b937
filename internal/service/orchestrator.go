// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"
	"sync"
	"time"

	"github.com/constXife/zann-sub000/internal/adapter"
	"github.com/constXife/zann-sub000/internal/config"
	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/internal/store"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

// backoffLadder is the retry delay for consecutive retryable failures,
// indexed by the shared backoff counter. The counter saturates at the last
// step; while it is zero the base interval applies instead.
var backoffLadder = []time.Duration{
	2 * time.Second,
	5 * time.Second,
	10 * time.Second,
	30 * time.Second,
	60 * time.Second,
}

// SyncOrchestrator serializes all sync activity. At most one attempt runs
// at a time; triggers arriving mid-flight collapse into a single follow-up
// slot where the most recent request wins. Failures never propagate to
// callers: they land in the status registry, and only the session-expired
// and fatal hooks escalate beyond it.
type SyncOrchestrator struct {
	remote    RemoteSyncer
	storages  store.StorageRepository
	registry  *StatusRegistry
	netmon    *ReachabilityMonitor
	session   SessionState
	callbacks SyncCallbacks
	hooks     SyncHooks
	log       *logger.Logger

	debounceWindow time.Duration
	baseInterval   time.Duration

	mu       sync.Mutex
	inFlight bool
	followUp *uuid.UUID
	deferred *uuid.UUID
	backoff  int
	debounce *time.Timer

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSyncOrchestrator(
	remote RemoteSyncer,
	storages store.StorageRepository,
	registry *StatusRegistry,
	netmon *ReachabilityMonitor,
	session SessionState,
	cfg config.Sync,
	callbacks SyncCallbacks,
	hooks SyncHooks,
	log *logger.Logger,
) *SyncOrchestrator {
	o := &SyncOrchestrator{
		remote:         remote,
		storages:       storages,
		registry:       registry,
		netmon:         netmon,
		session:        session,
		callbacks:      callbacks,
		hooks:          hooks,
		log:            log,
		debounceWindow: cfg.DebounceWindow,
		baseInterval:   cfg.BaseInterval,
	}
	netmon.OnReconnect(o.flushDeferred)
	return o
}

// RunSync performs one synchronous sync attempt for storageID, or for all
// remote storages when storageID is uuid.Nil. It returns true only when
// every targeted storage synced cleanly. If another attempt is already in
// flight the request is parked in the follow-up slot and false is returned
// immediately; the parked scope runs right after the current attempt.
func (o *SyncOrchestrator) RunSync(ctx context.Context, storageID uuid.UUID) bool {
	o.mu.Lock()
	if o.inFlight {
		target := storageID
		o.followUp = &target
		o.mu.Unlock()
		return false
	}
	o.inFlight = true
	o.mu.Unlock()

	ok := o.runAttempt(ctx, storageID)

	o.mu.Lock()
	o.inFlight = false
	next := o.followUp
	o.followUp = nil
	o.mu.Unlock()

	if next != nil {
		o.RunSync(ctx, *next)
	}
	return ok
}

func (o *SyncOrchestrator) runAttempt(ctx context.Context, requested uuid.UUID) bool {
	o.registry.ClearSyncErrors(requested)

	if !o.session.Unlocked() {
		o.log.Debug().Msg("sync skipped, session locked")
		return false
	}

	targets, err := o.resolveTargets(ctx, requested)
	if err != nil {
		o.log.Err(err).Msg("failed to resolve sync targets")
		return false
	}
	if len(targets) == 0 {
		return false
	}

	// Only the OS-level flag short-circuits. A sticky server-unreachable
	// mark lets the attempt through: the probe is what clears the mark.
	if o.netmon.systemOffline() {
		for _, target := range targets {
			o.registry.setError(target.ID, MsgServerUnreachable)
		}
		o.deferSync(requested)
		o.log.Debug().Msg("sync deferred, network offline")
		return false
	}

	allOK := true
	anyOK := false
	for _, target := range targets {
		if o.syncStorage(ctx, target, requested) {
			anyOK = true
		} else {
			allOK = false
		}
	}

	if anyOK {
		o.notifyReloaded(ctx)
	}
	return allOK
}

// resolveTargets expands the requested scope into concrete remote
// storages. Local-only storages never sync.
func (o *SyncOrchestrator) resolveTargets(ctx context.Context, requested uuid.UUID) ([]models.Storage, error) {
	all, err := o.storages.ListStorages(ctx)
	if err != nil {
		return nil, err
	}

	targets := make([]models.Storage, 0, len(all))
	for _, storage := range all {
		if !storage.IsRemote() {
			continue
		}
		if requested != uuid.Nil && storage.ID != requested {
			continue
		}
		targets = append(targets, storage)
	}
	return targets, nil
}

func (o *SyncOrchestrator) syncStorage(ctx context.Context, storage models.Storage, requested uuid.UUID) bool {
	o.registry.setSyncing(storage.ID)

	result, err := o.remote.RemoteSync(ctx, storage.ID)
	if err != nil {
		o.handleFailure(storage, requested, err)
		return false
	}

	o.netmon.markReachable()
	o.registry.setSynced(storage.ID, len(result.LockedVaults) > 0)
	o.resetBackoff()

	o.log.Info().
		Str("storage_id", storage.ID.String()).
		Int("applied", result.Applied).
		Int("locked_vaults", len(result.LockedVaults)).
		Msg("sync completed")
	return true
}

func (o *SyncOrchestrator) handleFailure(storage models.Storage, requested uuid.UUID, err error) {
	class := classifySyncError(err)

	switch class {
	case classSessionExpired:
		o.registry.setError(storage.ID, MsgSessionExpired)
		o.resetBackoff()
		if o.hooks.OnSessionExpired != nil {
			o.hooks.OnSessionExpired(storage.ServerURL)
		}
	case classNetwork:
		o.netmon.markServerUnreachable()
		o.registry.setError(storage.ID, MsgServerUnreachable)
		o.bumpBackoff()
		o.deferSync(requested)
	case classIdentity:
		o.registry.setError(storage.ID, errorDetail(err))
		o.resetBackoff()
	case classRetryable:
		o.registry.setError(storage.ID, errorDetail(err))
		o.bumpBackoff()
	default:
		o.registry.setError(storage.ID, errorDetail(err))
		o.resetBackoff()
		if o.hooks.OnFatalError != nil {
			o.hooks.OnFatalError(err)
		}
	}

	o.log.Err(err).
		Str("storage_id", storage.ID.String()).
		Int("class", int(class)).
		Msg("sync failed")
}

// errorDetail extracts the message surfaced to the user. Structured remote
// errors keep their raw detail so identity and clock-skew problems stay
// diagnosable.
func errorDetail(err error) string {
	if re, ok := adapter.AsRemoteError(err); ok && re.Message != "" {
		return re.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return MsgSyncFailed
}

// ScheduleSync requests a sync after the debounce window. Rapid repeated
// calls collapse into one attempt: each call replaces the previous timer,
// and the last requested scope wins.
func (o *SyncOrchestrator) ScheduleSync(ctx context.Context, storageID uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.debounce != nil {
		o.debounce.Stop()
	}
	target := storageID
	o.debounce = time.AfterFunc(o.debounceWindow, func() {
		o.RunSync(ctx, target)
	})
}

// ClearSyncErrors drops transient error state so banners disappear, e.g.
// after the user re-authenticates.
func (o *SyncOrchestrator) ClearSyncErrors(storageID uuid.UUID) {
	o.registry.ClearSyncErrors(storageID)
}

// StartAutoSync launches the periodic full-scope sync loop. Starting an
// already running loop is a no-op.
func (o *SyncOrchestrator) StartAutoSync(ctx context.Context) {
	o.jobMu.Lock()
	defer o.jobMu.Unlock()

	if o.cancel != nil {
		return
	}

	jobCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.wg.Add(1)
	go o.autoSyncLoop(jobCtx)
}

// StopAutoSync cancels the loop and waits for the current tick to finish.
func (o *SyncOrchestrator) StopAutoSync() {
	o.jobMu.Lock()
	cancel := o.cancel
	o.cancel = nil
	o.jobMu.Unlock()

	if cancel != nil {
		cancel()
		o.wg.Wait()
	}
}

func (o *SyncOrchestrator) autoSyncLoop(ctx context.Context) {
	defer o.wg.Done()

	timer := time.NewTimer(o.nextInterval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			o.RunSync(ctx, uuid.Nil)
			timer.Reset(o.nextInterval())
		}
	}
}

// nextInterval picks the delay before the next automatic attempt. A zero
// backoff counter means the steady base cadence; otherwise the ladder
// shortens the wait so transient failures recover quickly.
func (o *SyncOrchestrator) nextInterval() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.backoff == 0 {
		return o.baseInterval
	}
	idx := o.backoff
	if idx > len(backoffLadder) {
		idx = len(backoffLadder)
	}
	return backoffLadder[idx-1]
}

func (o *SyncOrchestrator) bumpBackoff() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.backoff < len(backoffLadder) {
		o.backoff++
	}
}

func (o *SyncOrchestrator) resetBackoff() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.backoff = 0
}

func (o *SyncOrchestrator) deferSync(requested uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	target := requested
	o.deferred = &target
}

// flushDeferred re-runs the scope parked while the server was unreachable.
// Fired by the reachability monitor on reconnect.
func (o *SyncOrchestrator) flushDeferred() {
	o.mu.Lock()
	deferred := o.deferred
	o.deferred = nil
	o.mu.Unlock()

	if deferred == nil {
		return
	}
	go o.RunSync(context.Background(), *deferred)
}

func (o *SyncOrchestrator) notifyReloaded(ctx context.Context) {
	if o.callbacks.ReloadStorages != nil {
		o.callbacks.ReloadStorages(ctx)
	}
	if o.callbacks.ReloadVaults != nil {
		o.callbacks.ReloadVaults(ctx)
	}
	if o.callbacks.ReloadItems != nil {
		o.callbacks.ReloadItems(ctx)
	}
}
