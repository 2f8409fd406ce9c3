package commands

import (
	"context"

	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpenDisputeRequest struct {
	Reason  dispute.Reason
	Message string
}

type ResolveDisputeRequest struct {
	Outcome dispute.Outcome
	Note    string
}

type DisputeCommands interface {
	OpenDispute(ctx context.Context, orderID, openerID uuid.UUID, req OpenDisputeRequest) (uuid.UUID, error)
	// ResolveDispute is the only way an order leaves dispute.
	ResolveDispute(ctx context.Context, disputeID, resolverID uuid.UUID, req ResolveDisputeRequest) error
}

type disputeUseCaseImpl struct {
	*Runner
}

func NewDisputeUseCase(runner *Runner) DisputeCommands {
	return &disputeUseCaseImpl{Runner: runner}
}

func (uc *disputeUseCaseImpl) OpenDispute(ctx context.Context, orderID, openerID uuid.UUID, req OpenDisputeRequest) (uuid.UUID, error) {
	if _, err := dispute.ParseReason(string(req.Reason)); err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err := uc.run(ctx, "dispute.open", func(ctx context.Context, s *txScope) error {
		o, err := uc.lockOrder(ctx, s, orderID)
		if err != nil {
			return err
		}
		existing, err := s.tx.Disputes().FindOpenByOrder(ctx, s.tx.DB(), o.ID())
		if err != nil {
			return err
		}
		d, disputed, err := dispute.Open(o, openerID, req.Reason, req.Message, existing != nil, s.now)
		if err != nil {
			return s.reject(orderState(err, o))
		}
		if err := s.tx.Disputes().Create(ctx, s.tx.DB(), d); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return orderState(dispute.ErrAlreadyOpen, o)
			}
			return err
		}
		if err := s.record(ctx, shared.EntityDispute, d.ID(), "", disputeOpen, &openerID); err != nil {
			return err
		}
		createdID = d.ID()
		return uc.commitOrder(ctx, s, o, disputed, &openerID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *disputeUseCaseImpl) ResolveDispute(ctx context.Context, disputeID, resolverID uuid.UUID, req ResolveDisputeRequest) error {
	if _, err := dispute.ParseOutcome(string(req.Outcome)); err != nil {
		return err
	}

	return uc.run(ctx, "dispute.resolve", func(ctx context.Context, s *txScope) error {
		d, err := s.tx.Disputes().FindForUpdate(ctx, s.tx.DB(), disputeID)
		if err != nil {
			return err
		}
		o, err := s.tx.Orders().FindForUpdate(ctx, s.tx.DB(), d.OrderID())
		if err != nil {
			return err
		}

		resolved, settled, err := d.Resolve(o, req.Outcome, req.Note, resolverID, s.now)
		if err != nil {
			if d.IsResolved() {
				return s.reject(disputeState(err, d))
			}
			return s.reject(orderState(err, o))
		}
		ok, err := s.tx.Disputes().MarkResolved(ctx, s.tx.DB(), resolved)
		if err != nil {
			return err
		}
		if !ok {
			return disputeState(dispute.ErrAlreadyResolved, resolved)
		}
		if err := s.record(ctx, shared.EntityDispute, d.ID(), disputeOpen, disputeResolved, &resolverID); err != nil {
			return err
		}
		return uc.commitOrder(ctx, s, o, settled, &resolverID)
	})
}
