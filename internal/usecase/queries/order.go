package queries

import (
	"context"

	"marketplace-core/internal/infra"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.NotFound("order not found")
	ErrOrderAccess   = errs.Denied("only the parties of an order or an admin can read it")
)

// OrderReconciler applies an order's lapsed deadlines before it is read.
type OrderReconciler interface {
	ReconcileOrder(ctx context.Context, orderID uuid.UUID) error
}

type OrderReadStore interface {
	FindOrderView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*OrderView, error)
	FindPaymentView(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (*PaymentView, error)
	ListDisputeViews(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]DisputeView, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, id uuid.UUID, viewer Viewer) (*OrderView, error)
	ListDisputes(ctx context.Context, orderID uuid.UUID, viewer Viewer) ([]DisputeView, error)
}

type orderQueriesImpl struct {
	uow        shared.UnitOfWork
	reconciler OrderReconciler
	readStore  OrderReadStore
}

func NewOrderQueries(uow shared.UnitOfWork, reconciler OrderReconciler, readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{uow: uow, reconciler: reconciler, readStore: readStore}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, id uuid.UUID, viewer Viewer) (*OrderView, error) {
	if err := q.reconcile(ctx, id); err != nil {
		return nil, err
	}

	var view *OrderView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.readStore.FindOrderView(ctx, db, id)
		if err != nil {
			return err
		}
		if err := authorize(v, viewer); err != nil {
			return err
		}
		if v.Payment, err = q.readStore.FindPaymentView(ctx, db, id); err != nil {
			return err
		}
		if v.Disputes, err = q.readStore.ListDisputeViews(ctx, db, id); err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, mapOrderErr(err)
	}

	if viewer.UserID != view.BuyerID && !viewer.IsAdmin() {
		view.HandoverCode = nil
	}
	return view, nil
}

func (q *orderQueriesImpl) ListDisputes(ctx context.Context, orderID uuid.UUID, viewer Viewer) ([]DisputeView, error) {
	if err := q.reconcile(ctx, orderID); err != nil {
		return nil, err
	}

	var disputes []DisputeView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.readStore.FindOrderView(ctx, db, orderID)
		if err != nil {
			return err
		}
		if err := authorize(v, viewer); err != nil {
			return err
		}
		disputes, err = q.readStore.ListDisputeViews(ctx, db, orderID)
		return err
	})
	if err != nil {
		return nil, mapOrderErr(err)
	}
	return disputes, nil
}

func (q *orderQueriesImpl) reconcile(ctx context.Context, id uuid.UUID) error {
	if err := q.reconciler.ReconcileOrder(ctx, id); err != nil {
		return mapOrderErr(err)
	}
	return nil
}

func authorize(v *OrderView, viewer Viewer) error {
	if viewer.UserID == v.BuyerID || viewer.UserID == v.SellerID || viewer.IsAdmin() {
		return nil
	}
	return ErrOrderAccess
}

func mapOrderErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) || errs.Is(err, errs.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}
