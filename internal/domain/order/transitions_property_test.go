//go:build property

package order_test

import (
	"testing"
	"time"

	"marketplace-core/internal/domain/order"
	"marketplace-core/tests/common/builder"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genStatus() gopter.Gen {
	statuses := order.Statuses()
	values := make([]interface{}, len(statuses))
	for i, s := range statuses {
		values[i] = s
	}
	return gen.OneConstOf(values...)
}

// Property: any sequence of attempted transitions only ever reaches completed through a table edge,
// and a rejected attempt leaves the status unchanged.
func TestTransitionWalks(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	at := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	properties.Property("illegal attempts never change status", prop.ForAll(
		func(walk []order.Status) bool {
			o := builder.NewOrderBuilder().BuildDomain()
			for _, to := range walk {
				from := o.Status()
				var next *order.Order
				var err error
				if from == order.StatusDispute {
					next, err = o.Settle(to, at)
				} else {
					next, err = o.Transition(to, at)
				}
				if err != nil {
					if o.Status() != from {
						return false
					}
					continue
				}
				if !order.CanTransition(from, to) {
					return false
				}
				if next.Status() == order.StatusCompleted &&
					from != order.StatusAwaitingConfirmation && from != order.StatusDispute {
					return false
				}
				o = next
			}
			return true
		},
		gen.SliceOf(genStatus()),
	))

	properties.Property("terminal statuses have no exit", prop.ForAll(
		func(from, to order.Status) bool {
			if !from.IsTerminal() {
				return true
			}
			o := builder.NewOrderBuilder().WithStatus(from).BuildDomain()
			_, err1 := o.Transition(to, at)
			_, err2 := o.Settle(to, at)
			return err1 != nil && err2 != nil
		},
		genStatus(),
		genStatus(),
	))

	properties.TestingRun(t)
}

// step applies one named order operation; a rejected operation returns the receiver.
func step(o *order.Order, op int, at time.Time) *order.Order {
	var next *order.Order
	var err error
	switch op {
	case 0:
		next, err = o.MarkPaid(o.Breakdown().TotalCents, at)
	case 1:
		next, err = o.ScheduleMeetup(o.SellerID(), at.Add(time.Hour), builder.DefaultPolicy, at)
	case 2:
		next, err = o.ConfirmHandover(o.SellerID(), "123456", builder.DefaultPolicy, at)
	case 3:
		next, err = o.MarkLabelReady(o.SellerID(), at)
	case 4:
		next, err = o.Ship(o.SellerID(), "TRK-1", at)
	case 5:
		next, err = o.MarkDelivered(o.BuyerID(), builder.DefaultPolicy, at)
	case 6:
		next, err = o.ConfirmReceipt(o.BuyerID(), at)
	case 7:
		next, _, err = o.Cancel(o.BuyerID(), at)
	case 8:
		next, err = o.EnterDispute(at)
	default:
		next, _, _ = o.Reconcile(at, builder.DefaultPolicy)
	}
	if err != nil {
		return o
	}
	return next
}

// Property: no sequence of operations moves an in-person order onto the shipping path,
// and a shipping order never schedules a meetup.
func TestFulfillmentPathsStaySeparate(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("operations keep to the fulfillment path", prop.ForAll(
		func(inPerson bool, ops []int) bool {
			b := builder.NewOrderBuilder().Shipping()
			if inPerson {
				b = b.InPerson()
			}
			o := b.BuildDomain()
			at := o.CreatedAt()
			for _, op := range ops {
				at = at.Add(10 * time.Minute)
				if op == 9 {
					at = at.Add(50 * time.Hour)
				}
				from := o.Status()
				o = step(o, op, at)
				if from == order.StatusMeetupScheduled && o.Status() == order.StatusInTransit {
					return false
				}
				switch o.Status() {
				case order.StatusLabelReady, order.StatusInTransit:
					if inPerson {
						return false
					}
				case order.StatusMeetupScheduled:
					if !inPerson {
						return false
					}
				}
			}
			return true
		},
		gen.Bool(),
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}
