package commands

import (
	"context"
	"encoding/json"
	"strings"

	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMissingEventID = errs.Validation("provider event id is required")

// PaymentEventRequest is the inbound provider outcome.
type PaymentEventRequest struct {
	Provider    string
	EventID     string
	OrderID     uuid.UUID
	Outcome     payment.Outcome
	AmountCents int64
	Refs        payment.Refs
	Raw         json.RawMessage
}

type PaymentCommands interface {
	// ApplyPaymentEvent reports applied=false for a replayed (provider, event id) pair.
	ApplyPaymentEvent(ctx context.Context, req PaymentEventRequest) (bool, error)
}

type paymentUseCaseImpl struct {
	*Runner
}

func NewPaymentUseCase(runner *Runner) PaymentCommands {
	return &paymentUseCaseImpl{Runner: runner}
}

func (uc *paymentUseCaseImpl) ApplyPaymentEvent(ctx context.Context, req PaymentEventRequest) (bool, error) {
	if strings.TrimSpace(req.EventID) == "" {
		return false, ErrMissingEventID
	}
	if _, err := payment.ParseOutcome(string(req.Outcome)); err != nil {
		return false, err
	}
	provider := req.Provider
	if provider == "" {
		provider = uc.policies.Provider
	}

	var applied bool
	err := uc.run(ctx, "payment.apply_event", func(ctx context.Context, s *txScope) error {
		applied = false
		first, err := s.tx.ProviderEvents().TryRecord(ctx, s.tx.DB(), shared.ProviderEvent{
			Provider:    provider,
			EventID:     req.EventID,
			OrderID:     req.OrderID,
			Outcome:     req.Outcome,
			ProcessedAt: s.now,
		})
		if err != nil || !first {
			return err
		}
		applied = true

		o, err := uc.lockOrder(ctx, s, req.OrderID)
		if err != nil {
			return err
		}
		p, err := s.tx.Payments().FindByOrder(ctx, s.tx.DB(), o.ID())
		if err != nil {
			return err
		}
		if p == nil {
			amount := req.AmountCents
			if amount == 0 {
				amount = o.Breakdown().TotalCents
			}
			if p, err = payment.NewPayment(o.ID(), provider, amount, o.Currency(), req.Refs, s.now); err != nil {
				return s.reject(orderState(err, o))
			}
		}

		nextOrder, orderChanged := o, false
		switch req.Outcome {
		case payment.OutcomeSucceeded:
			if nextOrder, err = o.MarkPaid(req.AmountCents, s.now); err != nil {
				return s.reject(orderState(err, o))
			}
			orderChanged = true
		case payment.OutcomeRefunded:
			if nextOrder, orderChanged, err = o.Refund(s.now); err != nil {
				return s.reject(orderState(err, o))
			}
		}

		nextPayment, err := p.Apply(req.Outcome, req.Refs, req.Raw, s.now)
		if err != nil {
			return s.reject(orderState(err, o))
		}
		if err := s.tx.Payments().Save(ctx, s.tx.DB(), nextPayment); err != nil {
			return err
		}
		if !orderChanged {
			return nil
		}
		return uc.commitOrder(ctx, s, o, nextOrder, nil)
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}
