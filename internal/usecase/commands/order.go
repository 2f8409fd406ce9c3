package commands

import (
	"context"
	"time"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingNotPurchasable = errs.InvalidTransition("listing is not published")
	ErrListingHeld           = errs.Conflict("listing is held by another buyer or order")
	ErrPaymentNotDue         = errs.InvalidTransition("order is not awaiting payment")
)

type CreateOrderRequest struct {
	ListingID        uuid.UUID
	Mode             order.FulfillmentMode
	BuyerAddressRef  *string
	SellerAddressRef *string
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, buyerID uuid.UUID, req CreateOrderRequest) (uuid.UUID, error)
	// InitiatePayment calls the provider outside any transaction and records the intent afterwards.
	InitiatePayment(ctx context.Context, orderID, actorID uuid.UUID) (*payment.Payment, error)
	ScheduleMeetup(ctx context.Context, orderID, actorID uuid.UUID, at time.Time) error
	ConfirmHandover(ctx context.Context, orderID, actorID uuid.UUID, code string) error
	MarkLabelReady(ctx context.Context, orderID, actorID uuid.UUID) error
	Ship(ctx context.Context, orderID, actorID uuid.UUID, trackingNumber string) error
	MarkDelivered(ctx context.Context, orderID, actorID uuid.UUID) error
	ConfirmReceipt(ctx context.Context, orderID, actorID uuid.UUID) error
	// CancelOrder reports changed=false when the order was already cancelled, expired or refunded.
	CancelOrder(ctx context.Context, orderID, actorID uuid.UUID) (bool, error)
	// ReconcileOrder applies lapsed deadlines; the read side calls it before every order read.
	ReconcileOrder(ctx context.Context, orderID uuid.UUID) error
}

type orderUseCaseImpl struct {
	*Runner
	gateway shared.PaymentGateway
}

func NewOrderUseCase(runner *Runner, gateway shared.PaymentGateway) OrderCommands {
	return &orderUseCaseImpl{Runner: runner, gateway: gateway}
}

func (uc *orderUseCaseImpl) CreateOrder(ctx context.Context, buyerID uuid.UUID, req CreateOrderRequest) (uuid.UUID, error) {
	if !req.Mode.IsValid() {
		return uuid.Nil, order.ErrInvalidFulfillment
	}

	var createdID uuid.UUID
	err := uc.run(ctx, "order.create", func(ctx context.Context, s *txScope) error {
		if err := uc.requireUser(ctx, s, buyerID); err != nil {
			return err
		}
		av, err := uc.syncListing(ctx, s, req.ListingID, nil)
		if err != nil {
			return err
		}
		l := av.listing
		if err := purchasable(av, buyerID, req.Mode); err != nil {
			return s.reject(listingState(err, l))
		}

		o, err := order.NewOrder(order.NewOrderInput{
			ListingID:        l.ID(),
			SellerID:         l.SellerID(),
			BuyerID:          buyerID,
			Mode:             req.Mode,
			ItemCents:        l.Price().Cents(),
			Currency:         l.Price().Currency(),
			BuyerAddressRef:  req.BuyerAddressRef,
			SellerAddressRef: req.SellerAddressRef,
		}, uc.policies.Fees, uc.policies.Order, s.now)
		if err != nil {
			return s.reject(err)
		}
		if err := s.tx.Orders().Create(ctx, s.tx.DB(), o); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return listingState(ErrListingHeld, l)
			}
			return err
		}
		if err := s.record(ctx, shared.EntityOrder, o.ID(), "", o.Status().String(), &buyerID); err != nil {
			return err
		}

		if next, changed := l.WithAvailability(true, s.now); changed {
			if err := uc.saveListing(ctx, s, l, next, &buyerID); err != nil {
				return err
			}
		}
		createdID = o.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

// purchasable allows a published listing, or a reserved one whose only hold is the buyer's own reservation,
// when the seller accepts the requested fulfillment mode.
func purchasable(av *availability, buyerID uuid.UUID, mode order.FulfillmentMode) error {
	l := av.listing
	if l.SellerID() == buyerID {
		return order.ErrSelfPurchase
	}
	if av.order != nil {
		return ErrListingHeld
	}
	switch l.Status() {
	case listing.StatusPublished:
	case listing.StatusReserved:
		if av.reservation == nil || av.reservation.BuyerID() != buyerID {
			return ErrListingHeld
		}
	default:
		return ErrListingNotPurchasable
	}
	if !acceptsMode(l.Details().Fulfillment, mode) {
		return order.ErrWrongFulfillment
	}
	return nil
}

func acceptsMode(f listing.Fulfillment, mode order.FulfillmentMode) bool {
	switch mode {
	case order.FulfillmentShipping:
		return f.Shipping()
	case order.FulfillmentInPerson:
		return f.InPerson()
	default:
		return false
	}
}

func (uc *orderUseCaseImpl) InitiatePayment(ctx context.Context, orderID, actorID uuid.UUID) (*payment.Payment, error) {
	var req shared.PaymentIntentRequest
	err := uc.run(ctx, "order.payment_check", func(ctx context.Context, s *txScope) error {
		o, err := uc.lockOrder(ctx, s, orderID)
		if err != nil {
			return err
		}
		if err := payable(o, actorID); err != nil {
			return s.reject(orderState(err, o))
		}
		req = shared.PaymentIntentRequest{
			OrderID:     o.ID(),
			AmountCents: o.Breakdown().TotalCents,
			Currency:    o.Currency(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	refs, err := uc.gateway.CreateIntent(ctx, req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}

	var result *payment.Payment
	err = uc.run(ctx, "order.initiate_payment", func(ctx context.Context, s *txScope) error {
		o, err := uc.lockOrder(ctx, s, orderID)
		if err != nil {
			return err
		}
		if err := payable(o, actorID); err != nil {
			return s.reject(orderState(err, o))
		}
		existing, err := s.tx.Payments().FindByOrder(ctx, s.tx.DB(), o.ID())
		if err != nil {
			return err
		}
		var p *payment.Payment
		if existing == nil {
			p, err = payment.NewPayment(o.ID(), uc.gateway.Provider(), req.AmountCents, req.Currency, refs, s.now)
		} else {
			p, err = existing.Reinitiate(req.AmountCents, refs, s.now)
		}
		if err != nil {
			return s.reject(orderState(err, o))
		}
		if err := s.tx.Payments().Save(ctx, s.tx.DB(), p); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func payable(o *order.Order, actorID uuid.UUID) error {
	if o.Role(actorID) != order.PartyBuyer {
		return order.ErrNotBuyer
	}
	if o.Status() != order.StatusCreated {
		return ErrPaymentNotDue
	}
	return nil
}

func (uc *orderUseCaseImpl) ScheduleMeetup(ctx context.Context, orderID, actorID uuid.UUID, at time.Time) error {
	return uc.step(ctx, "order.schedule_meetup", orderID, actorID, func(o *order.Order, now time.Time) (*order.Order, error) {
		return o.ScheduleMeetup(actorID, at, uc.policies.Order, now)
	})
}

func (uc *orderUseCaseImpl) ConfirmHandover(ctx context.Context, orderID, actorID uuid.UUID, code string) error {
	return uc.step(ctx, "order.confirm_handover", orderID, actorID, func(o *order.Order, now time.Time) (*order.Order, error) {
		return o.ConfirmHandover(actorID, code, uc.policies.Order, now)
	})
}

func (uc *orderUseCaseImpl) MarkLabelReady(ctx context.Context, orderID, actorID uuid.UUID) error {
	return uc.step(ctx, "order.label_ready", orderID, actorID, func(o *order.Order, now time.Time) (*order.Order, error) {
		return o.MarkLabelReady(actorID, now)
	})
}

func (uc *orderUseCaseImpl) Ship(ctx context.Context, orderID, actorID uuid.UUID, trackingNumber string) error {
	return uc.step(ctx, "order.ship", orderID, actorID, func(o *order.Order, now time.Time) (*order.Order, error) {
		return o.Ship(actorID, trackingNumber, now)
	})
}

func (uc *orderUseCaseImpl) MarkDelivered(ctx context.Context, orderID, actorID uuid.UUID) error {
	return uc.step(ctx, "order.mark_delivered", orderID, actorID, func(o *order.Order, now time.Time) (*order.Order, error) {
		return o.MarkDelivered(actorID, uc.policies.Order, now)
	})
}

func (uc *orderUseCaseImpl) ConfirmReceipt(ctx context.Context, orderID, actorID uuid.UUID) error {
	return uc.step(ctx, "order.confirm_receipt", orderID, actorID, func(o *order.Order, now time.Time) (*order.Order, error) {
		return o.ConfirmReceipt(actorID, now)
	})
}

func (uc *orderUseCaseImpl) CancelOrder(ctx context.Context, orderID, actorID uuid.UUID) (bool, error) {
	var changed bool
	err := uc.run(ctx, "order.cancel", func(ctx context.Context, s *txScope) error {
		changed = false
		o, err := uc.lockOrder(ctx, s, orderID)
		if err != nil {
			return err
		}
		next, ok, err := o.Cancel(actorID, s.now)
		if err != nil {
			return s.reject(orderState(err, o))
		}
		if !ok {
			return nil
		}
		changed = true
		return uc.commitOrder(ctx, s, o, next, &actorID)
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (uc *orderUseCaseImpl) ReconcileOrder(ctx context.Context, orderID uuid.UUID) error {
	return uc.run(ctx, "order.reconcile", func(ctx context.Context, s *txScope) error {
		_, err := uc.lockOrder(ctx, s, orderID)
		return err
	})
}

// step runs one fulfillment transition against the reconciled order.
func (uc *orderUseCaseImpl) step(
	ctx context.Context,
	op string,
	orderID, actorID uuid.UUID,
	apply func(o *order.Order, now time.Time) (*order.Order, error),
) error {
	return uc.run(ctx, op, func(ctx context.Context, s *txScope) error {
		o, err := uc.lockOrder(ctx, s, orderID)
		if err != nil {
			return err
		}
		next, err := apply(o, s.now)
		if err != nil {
			return s.reject(orderState(err, o))
		}
		return uc.commitOrder(ctx, s, o, next, &actorID)
	})
}
