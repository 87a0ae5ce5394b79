package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/lvdark77/Online-Store/models"
	"github.com/lvdark77/Online-Store/persist"
	"github.com/lvdark77/Online-Store/store"
)

func newTestWorkflow(t *testing.T) (*Workflow, *store.CartStore, *store.UserStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cart := store.NewCartStore()
	users := store.NewUserStore(context.Background(), persist.NewMemory(), "test-session", logger)
	return New(cart, users), cart, users
}

func fillCart(cart *store.CartStore) {
	cart.Add(models.CartItem{ID: "1", Name: "a", Price: 1000})
	cart.UpdateQuantity("1", 2)
	cart.Add(models.CartItem{ID: "2", Name: "b", Price: 500})
}

func advanceToReview(w *Workflow) {
	w.Next()
	w.Next()
}

func TestNext_StopsAtReview(t *testing.T) {
	w, _, _ := newTestWorkflow(t)

	if step := w.Next(); step != StepPayment {
		t.Errorf("expected payment step, got %d", step)
	}
	if step := w.Next(); step != StepReview {
		t.Errorf("expected review step, got %d", step)
	}
	if step := w.Next(); step != StepReview {
		t.Errorf("next past review must be a no-op, got %d", step)
	}
}

func TestBack_AtFirstStepCancels(t *testing.T) {
	w, cart, users := newTestWorkflow(t)
	fillCart(cart)
	users.Login(context.Background(), "a@x.com")
	w.SelectDelivery(models.DeliveryPost)
	ordersBefore := len(users.Orders())

	step, cancelled := w.Back()

	if !cancelled {
		t.Errorf("expected back at step 1 to cancel")
	}
	if step != StepAddress {
		t.Errorf("expected step to stay at 1, got %d", step)
	}
	if len(users.Orders()) != ordersBefore {
		t.Errorf("cancel must not create an order")
	}
	if len(cart.Items()) != 2 {
		t.Errorf("cancel must not touch the cart")
	}
	if w.State().Delivery != models.DeliveryCourier {
		t.Errorf("cancel must discard the delivery selection")
	}
}

func TestBack_WalksTowardsStart(t *testing.T) {
	w, _, _ := newTestWorkflow(t)
	advanceToReview(w)

	step, cancelled := w.Back()
	if cancelled || step != StepPayment {
		t.Errorf("expected payment step without cancel, got %d cancelled=%v", step, cancelled)
	}
	step, cancelled = w.Back()
	if cancelled || step != StepAddress {
		t.Errorf("expected address step without cancel, got %d cancelled=%v", step, cancelled)
	}
}

func TestConfirm_EndToEnd(t *testing.T) {
	w, cart, users := newTestWorkflow(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")
	fillCart(cart)
	if cart.TotalPrice() != 2500 {
		t.Fatalf("fixture: expected cart total 2500, got %d", cart.TotalPrice())
	}
	w.SelectDelivery(models.DeliveryPost)
	advanceToReview(w)

	order, err := w.ConfirmOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Status != models.OrderStatusPending {
		t.Errorf("expected pending status, got %q", order.Status)
	}
	if order.Total != 2500 {
		t.Errorf("expected total 2500, got %d", order.Total)
	}
	if order.DeliveryFee != 200 {
		t.Errorf("expected post surcharge 200, got %d", order.DeliveryFee)
	}
	if order.DeliveryMethod != "Почта России" {
		t.Errorf("expected the post label, got %q", order.DeliveryMethod)
	}
	if len(order.Items) != 2 {
		t.Errorf("expected 2 order items, got %d", len(order.Items))
	}
	if !strings.HasPrefix(order.TrackingNumber, "RU") || len(order.TrackingNumber) != 11 {
		t.Errorf("unexpected tracking number %q", order.TrackingNumber)
	}
	if order.DeliveryAddress.Street == "" {
		t.Errorf("expected the delivery address to be copied onto the order")
	}

	if len(cart.Items()) != 0 {
		t.Errorf("expected the cart to be emptied")
	}
	if w.State().Step != StepAddress {
		t.Errorf("expected the wizard to reset to step 1, got %d", w.State().Step)
	}
	orders := users.Orders()
	if orders[0].ID != order.ID {
		t.Errorf("expected the order to be prepended to the history")
	}
}

func TestConfirm_SnapshotIsDecoupledFromCart(t *testing.T) {
	w, cart, users := newTestWorkflow(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")
	cart.Add(models.CartItem{ID: "1", Name: "a", Price: 1000})
	advanceToReview(w)

	order, err := w.ConfirmOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart.Add(models.CartItem{ID: "1", Name: "a", Price: 1000})
	cart.UpdateQuantity("1", 50)

	if got := users.Orders()[0]; got.Items[0].Quantity != order.Items[0].Quantity {
		t.Errorf("later cart edits must not change order history")
	}
}

func TestConfirm_TotalMatchesItemsUnderConcurrentEdits(t *testing.T) {
	w, cart, users := newTestWorkflow(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")

	for trial := 0; trial < 200; trial++ {
		cart.Add(models.CartItem{ID: "1", Name: "a", Price: 1000})
		cart.Add(models.CartItem{ID: "2", Name: "b", Price: 500})
		advanceToReview(w)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 50; i++ {
				cart.UpdateQuantity("1", i%5+1)
				cart.Add(models.CartItem{ID: "3", Name: "c", Price: 99})
			}
		}()

		order, err := w.ConfirmOrder(ctx)
		<-done
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}

		// The committed total must always be the sum of the committed
		// items, whatever the concurrent edits did to the live cart.
		var sum int64
		for _, it := range order.Items {
			sum += it.Price * int64(it.Quantity)
		}
		if order.Total != sum {
			t.Fatalf("trial %d: order total %d but its items sum to %d", trial, order.Total, sum)
		}

		cart.Clear()
	}
}

func TestConfirm_RequiresLogin(t *testing.T) {
	w, cart, users := newTestWorkflow(t)
	fillCart(cart)
	advanceToReview(w)
	ordersBefore := len(users.Orders())

	_, err := w.ConfirmOrder(context.Background())
	if !errors.Is(err, store.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if len(users.Orders()) != ordersBefore {
		t.Errorf("failed confirm must not create an order")
	}
	if w.State().Step != StepReview {
		t.Errorf("failed confirm must not move the wizard, got step %d", w.State().Step)
	}
	if len(cart.Items()) == 0 {
		t.Errorf("failed confirm must not clear the cart")
	}
}

func TestConfirm_RequiresNonEmptyCart(t *testing.T) {
	w, _, users := newTestWorkflow(t)
	users.Login(context.Background(), "a@x.com")
	advanceToReview(w)

	if _, err := w.ConfirmOrder(context.Background()); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}
}

func TestConfirm_OnlyFromReview(t *testing.T) {
	w, cart, users := newTestWorkflow(t)
	users.Login(context.Background(), "a@x.com")
	fillCart(cart)

	if _, err := w.ConfirmOrder(context.Background()); !errors.Is(err, ErrNotAtReview) {
		t.Errorf("expected ErrNotAtReview at step 1, got %v", err)
	}
	w.Next()
	if _, err := w.ConfirmOrder(context.Background()); !errors.Is(err, ErrNotAtReview) {
		t.Errorf("expected ErrNotAtReview at step 2, got %v", err)
	}
}

func TestSelectAddress(t *testing.T) {
	w, _, users := newTestWorkflow(t)
	ctx := context.Background()

	if err := w.SelectAddress("any"); !errors.Is(err, store.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}

	users.Login(ctx, "a@x.com")
	if err := w.SelectAddress("missing"); !errors.Is(err, store.ErrAddressNotFound) {
		t.Errorf("expected ErrAddressNotFound, got %v", err)
	}

	added, _ := users.AddAddress(ctx, models.Address{Name: "Работа", Street: "s", City: "c"})
	if err := w.SelectAddress(added.ID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if w.State().AddressID != added.ID {
		t.Errorf("expected the selection to stick")
	}
}

func TestConfirm_FallsBackToDefaultAddress(t *testing.T) {
	w, cart, users := newTestWorkflow(t)
	ctx := context.Background()

	// Login after the workflow was created, so no address is preselected.
	users.Login(ctx, "a@x.com")
	fillCart(cart)
	advanceToReview(w)

	order, err := w.ConfirmOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, _ := users.User()
	def, _ := user.DefaultAddress()
	if order.DeliveryAddress.ID != def.ID {
		t.Errorf("expected fallback to the default address")
	}
}

func TestNewTrackingNumber_Shape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := NewTrackingNumber()
		if !strings.HasPrefix(code, "RU") {
			t.Fatalf("expected RU prefix, got %q", code)
		}
		if len(code) != 11 {
			t.Fatalf("expected 11 characters, got %q", code)
		}
		for _, r := range code[2:] {
			if !strings.ContainsRune(trackingAlphabet, r) {
				t.Fatalf("unexpected character %q in %q", r, code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected varied codes, got %d distinct", len(seen))
	}
}
