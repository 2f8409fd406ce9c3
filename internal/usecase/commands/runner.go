package commands

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"marketplace-core/internal/domain/reputation"
	"marketplace-core/internal/pkg/clock"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/telemetry"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Runner executes every command inside one unit of work. It owns the post-commit effects:
// publishing status events, transition metrics and the deferred reputation recompute.
type Runner struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
	telemetry *telemetry.Provider
	policies  Policies
}

func NewRunner(uow shared.UnitOfWork, clk clock.Clock, publisher shared.EventPublisher, tel *telemetry.Provider, policies Policies) *Runner {
	return &Runner{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
		telemetry: tel,
		policies:  policies,
	}
}

// txScope is the per-attempt state of one transaction. A retried transaction gets a fresh scope.
type txScope struct {
	tx        shared.Tx
	now       time.Time
	events    []shared.StatusEvent
	dirty     map[uuid.UUID]struct{}
	rejection error
}

func newTxScope(tx shared.Tx, now time.Time) *txScope {
	return &txScope{tx: tx, now: now, dirty: make(map[uuid.UUID]struct{})}
}

// record appends the status event to the audit log and queues it for publishing.
func (s *txScope) record(ctx context.Context, entity string, id uuid.UUID, from, to string, actorID *uuid.UUID) error {
	ev := shared.NewStatusEvent(entity, id, from, to, actorID, s.now)
	if err := s.tx.Events().Append(ctx, s.tx.DB(), ev); err != nil {
		return err
	}
	s.events = append(s.events, ev)
	return nil
}

// touch marks users whose reputation must be recomputed before commit.
func (s *txScope) touch(ids ...uuid.UUID) {
	for _, id := range ids {
		s.dirty[id] = struct{}{}
	}
}

// reject keeps the work done so far (lazy reconciliation) and fails the command after commit.
// Only call it before the command's own writes.
func (s *txScope) reject(err error) error {
	s.rejection = err
	return nil
}

func (r *Runner) run(ctx context.Context, op string, fn func(ctx context.Context, s *txScope) error) error {
	ctx, end := r.telemetry.StartOperation(ctx, op, attribute.String("operation", op))

	var scope *txScope
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		scope = newTxScope(tx, r.clock.Now())
		if err := fn(ctx, scope); err != nil {
			return err
		}
		return r.flushReputation(ctx, scope)
	})
	if err == nil {
		r.afterCommit(ctx, scope.events)
		err = scope.rejection
	}
	if err != nil {
		if category := errs.Category(err); category != nil {
			r.telemetry.RecordRejection(ctx, op, category.Error())
		}
	}
	end(err)
	return err
}

func (r *Runner) afterCommit(ctx context.Context, events []shared.StatusEvent) {
	if len(events) == 0 {
		return
	}
	for _, ev := range events {
		r.telemetry.RecordTransition(ctx, ev.Entity, ev.From, ev.To)
	}
	// status_events already holds the audit trail; a publish failure only delays the messaging view
	if err := r.publisher.Publish(ctx, events); err != nil {
		slog.WarnContext(ctx, "failed to publish status events", "count", len(events), "error", err)
	}
}

// flushReputation recomputes every touched user in uuid order, after all other row locks.
func (r *Runner) flushReputation(ctx context.Context, s *txScope) error {
	if len(s.dirty) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(s.dirty))
	for id := range s.dirty {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	for _, id := range ids {
		if err := r.recomputeReputation(ctx, s, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) recomputeReputation(ctx context.Context, s *txScope, userID uuid.UUID) error {
	repo := s.tx.Reputation()
	if _, err := repo.FindForUpdate(ctx, s.tx.DB(), userID); err != nil {
		return err
	}
	samples, err := repo.Samples(ctx, s.tx.DB(), userID)
	if err != nil {
		return err
	}
	activity, err := repo.Activity(ctx, s.tx.DB(), userID)
	if err != nil {
		return err
	}
	stats, err := reputation.Recompute(userID, samples, activity, s.now)
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, s.tx.DB(), stats); err != nil {
		return err
	}
	return s.tx.Users().UpdateTrustScore(ctx, s.tx.DB(), userID, stats.TrustScore(), s.now)
}

func (r *Runner) requireUser(ctx context.Context, s *txScope, id uuid.UUID) error {
	_, err := s.tx.Users().FindByID(ctx, s.tx.DB(), id)
	return err
}
