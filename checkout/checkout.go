package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/lvdark77/Online-Store/models"
	"github.com/lvdark77/Online-Store/store"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrNotAtReview = errors.New("checkout is not at the review step")
	ErrNoAddress   = errors.New("no delivery address selected")
)

// Step is the wizard position. The flow is strictly linear:
// address and delivery, then payment, then review.
type Step int

const (
	StepAddress Step = iota + 1
	StepPayment
	StepReview
)

// Workflow walks a session's cart through the three checkout steps and, on
// confirmation, commits it as an order. Selections made along the way stay
// local to the workflow until ConfirmOrder.
type Workflow struct {
	mu    sync.Mutex
	cart  *store.CartStore
	users *store.UserStore

	step      Step
	delivery  models.DeliveryMethod
	payment   models.PaymentMethod
	addressID string
}

// Selections is a read-only view of the workflow state.
type Selections struct {
	Step      Step                  `json:"step"`
	Delivery  models.DeliveryMethod `json:"delivery"`
	Payment   models.PaymentMethod  `json:"payment"`
	AddressID string                `json:"addressId"`
}

func New(cart *store.CartStore, users *store.UserStore) *Workflow {
	w := &Workflow{cart: cart, users: users}
	w.reset()
	return w
}

func (w *Workflow) reset() {
	w.step = StepAddress
	w.delivery = models.DeliveryCourier
	w.payment = models.PaymentCard
	w.addressID = ""
	if user, ok := w.users.User(); ok {
		if def, ok := user.DefaultAddress(); ok {
			w.addressID = def.ID
		}
	}
}

// State reports the current step and selections.
func (w *Workflow) State() Selections {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Selections{Step: w.step, Delivery: w.delivery, Payment: w.payment, AddressID: w.addressID}
}

// Next advances one step. Review is the last step; confirming the order is a
// separate explicit action, so Next past Review is a no-op.
func (w *Workflow) Next() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step < StepReview {
		w.step++
	}
	return w.step
}

// Back moves one step towards the start. At the first step it instead
// cancels the whole checkout: selections are discarded, cart and user state
// are untouched, and cancelled is reported to the caller.
func (w *Workflow) Back() (step Step, cancelled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepAddress {
		w.step--
		return w.step, false
	}
	w.reset()
	return w.step, true
}

// SelectAddress picks one of the user's saved addresses for delivery.
func (w *Workflow) SelectAddress(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	user, ok := w.users.User()
	if !ok {
		return store.ErrNotAuthenticated
	}
	if _, ok := user.FindAddress(id); !ok {
		return store.ErrAddressNotFound
	}
	w.addressID = id
	return nil
}

func (w *Workflow) SelectDelivery(method models.DeliveryMethod) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.delivery = method
}

func (w *Workflow) SelectPayment(method models.PaymentMethod) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.payment = method
}

// ConfirmOrder commits the cart as an order. Only valid at the review step,
// with a logged-in user and a non-empty cart. On success the order is added
// to the user's history, the cart is emptied and the wizard resets to the
// first step; on failure nothing changes.
func (w *Workflow) ConfirmOrder(ctx context.Context) (models.Order, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepReview {
		return models.Order{}, ErrNotAtReview
	}
	user, ok := w.users.User()
	if !ok {
		return models.Order{}, store.ErrNotAuthenticated
	}
	address, ok := user.FindAddress(w.addressID)
	if !ok {
		if address, ok = user.DefaultAddress(); !ok {
			return models.Order{}, ErrNoAddress
		}
	}

	// Take the cart in one step: snapshot, total and the emptied cart must
	// all see the same state, even with concurrent edits on the session.
	items := w.cart.TakeAll()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var total int64
	snapshot := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
		snapshot = append(snapshot, models.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}

	order := w.users.AddOrder(ctx, models.Order{
		Status:          models.OrderStatusPending,
		Items:           snapshot,
		Total:           total,
		DeliveryFee:     w.delivery.Fee(),
		DeliveryMethod:  w.delivery.Label(),
		DeliveryAddress: address,
		TrackingNumber:  NewTrackingNumber(),
	})
	w.reset()
	return order, nil
}
