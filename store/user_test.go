package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/lvdark77/Online-Store/models"
	"github.com/lvdark77/Online-Store/persist"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUserStore(t *testing.T) (*UserStore, *persist.Memory) {
	t.Helper()
	records := persist.NewMemory()
	return NewUserStore(context.Background(), records, "test-session", testLogger()), records
}

func TestLogin_FabricatesProfile(t *testing.T) {
	users, _ := newTestUserStore(t)

	user := users.Login(context.Background(), "a@x.com")

	if user.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %q", user.Email)
	}
	if len(user.Addresses) != 1 {
		t.Fatalf("expected 1 seeded address, got %d", len(user.Addresses))
	}
	if !user.Addresses[0].IsDefault {
		t.Errorf("expected the seeded address to be the default")
	}
}

func TestLogout_ClearsUser(t *testing.T) {
	users, records := newTestUserStore(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")

	users.Logout(ctx)

	if _, ok := users.User(); ok {
		t.Errorf("expected no user after logout")
	}
	if _, ok, _ := records.Load(ctx, persist.UserKey("test-session")); ok {
		t.Errorf("expected the persisted user record to be gone after logout")
	}
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	users, _ := newTestUserStore(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")

	name := "Пётр Иванов"
	updated, err := users.UpdateProfile(ctx, ProfileUpdate{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != name {
		t.Errorf("expected name %q, got %q", name, updated.Name)
	}
	if updated.Email != "a@x.com" {
		t.Errorf("partial update must not clobber email, got %q", updated.Email)
	}
	if updated.Phone == "" {
		t.Errorf("partial update must not clobber phone")
	}
}

func TestUpdateProfile_RequiresLogin(t *testing.T) {
	users, _ := newTestUserStore(t)

	name := "x"
	if _, err := users.UpdateProfile(context.Background(), ProfileUpdate{Name: &name}); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestAddAddress_UniqueIDs(t *testing.T) {
	users, _ := newTestUserStore(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")

	seen := make(map[string]bool)
	user, _ := users.User()
	for _, a := range user.Addresses {
		seen[a.ID] = true
	}
	for i := 0; i < 100; i++ {
		addr, err := users.AddAddress(ctx, models.Address{Name: "Работа", Street: "s", City: "c"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[addr.ID] {
			t.Fatalf("duplicate address id %q after %d adds", addr.ID, i+1)
		}
		seen[addr.ID] = true
	}
}

func TestAddAddress_DefaultExclusivity(t *testing.T) {
	users, _ := newTestUserStore(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")

	added, err := users.AddAddress(ctx, models.Address{Name: "Работа", Street: "s", City: "c", IsDefault: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, _ := users.User()
	defaults := 0
	for _, a := range user.Addresses {
		if a.IsDefault {
			defaults++
			if a.ID != added.ID {
				t.Errorf("expected the new address to hold the default flag")
			}
		}
	}
	if defaults != 1 {
		t.Errorf("expected exactly one default address, got %d", defaults)
	}
}

func TestRemoveAddress_PromotesNewDefault(t *testing.T) {
	users, _ := newTestUserStore(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")
	users.AddAddress(ctx, models.Address{Name: "Работа", Street: "s", City: "c"})

	user, _ := users.User()
	def, _ := user.DefaultAddress()
	if err := users.RemoveAddress(ctx, def.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, _ = users.User()
	if len(user.Addresses) != 1 {
		t.Fatalf("expected 1 remaining address, got %d", len(user.Addresses))
	}
	if !user.Addresses[0].IsDefault {
		t.Errorf("expected the remaining address to be promoted to default")
	}
}

func TestRemoveAddress_AbsentIDIsNoop(t *testing.T) {
	users, _ := newTestUserStore(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")

	if err := users.RemoveAddress(ctx, "missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, _ := users.User()
	if len(user.Addresses) != 1 {
		t.Errorf("expected addresses untouched, got %d", len(user.Addresses))
	}
}

func TestUpdateAddress_SetDefaultUnsetsOthers(t *testing.T) {
	users, _ := newTestUserStore(t)
	ctx := context.Background()
	users.Login(ctx, "a@x.com")
	work, _ := users.AddAddress(ctx, models.Address{Name: "Работа", Street: "s", City: "c"})

	isDefault := true
	if _, err := users.UpdateAddress(ctx, work.ID, AddressUpdate{IsDefault: &isDefault}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, _ := users.User()
	for _, a := range user.Addresses {
		if a.ID != work.ID && a.IsDefault {
			t.Errorf("expected address %q to lose the default flag", a.Name)
		}
	}
}

func TestOrders_SeededAndNewestFirst(t *testing.T) {
	users, _ := newTestUserStore(t)
	ctx := context.Background()

	orders := users.Orders()
	if len(orders) != 1 || orders[0].ID != "demo-order-1" {
		t.Fatalf("expected the seeded demo order, got %+v", orders)
	}

	added := users.AddOrder(ctx, models.Order{
		Status: models.OrderStatusPending,
		Items:  []models.OrderItem{{ID: "1", Name: "a", Price: 100, Quantity: 1}},
		Total:  100,
	})
	if added.ID == "" || added.Date.IsZero() {
		t.Errorf("expected AddOrder to assign id and date")
	}

	orders = users.Orders()
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != added.ID {
		t.Errorf("expected the new order first, got %q", orders[0].ID)
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	records := persist.NewMemory()
	ctx := context.Background()

	first := NewUserStore(ctx, records, "s1", testLogger())
	first.Login(ctx, "a@x.com")
	first.AddAddress(ctx, models.Address{Name: "Работа", Street: "s", City: "c"})
	first.AddOrder(ctx, models.Order{
		Status: models.OrderStatusPending,
		Items:  []models.OrderItem{{ID: "1", Name: "a", Price: 100, Quantity: 2}},
		Total:  200,
	})

	// A second store over the same records must see identical values.
	second := NewUserStore(ctx, records, "s1", testLogger())

	wantUser, _ := first.User()
	gotUser, ok := second.User()
	if !ok {
		t.Fatalf("expected the reloaded store to be logged in")
	}
	if !reflect.DeepEqual(wantUser, gotUser) {
		t.Errorf("reloaded user differs:\nwant %+v\ngot  %+v", wantUser, gotUser)
	}

	wantRaw, _ := json.Marshal(first.Orders())
	gotRaw, _ := json.Marshal(second.Orders())
	if string(wantRaw) != string(gotRaw) {
		t.Errorf("reloaded orders differ:\nwant %s\ngot  %s", wantRaw, gotRaw)
	}
}

// failingStore rejects every save so the warning path can be exercised.
type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (failingStore) Save(context.Context, string, []byte) error {
	return errors.New("storage unavailable")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("storage unavailable") }

func TestPersistenceFailure_IsNonFatal(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(ctx, failingStore{}, "s1", testLogger())

	user := users.Login(ctx, "a@x.com")
	if user.Email != "a@x.com" {
		t.Errorf("login must succeed in memory even when saving fails")
	}
	if _, ok := users.User(); !ok {
		t.Errorf("in-memory state must stay authoritative after a failed save")
	}
}
