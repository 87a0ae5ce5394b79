package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lvdark77/Online-Store/models"
	"github.com/lvdark77/Online-Store/persist"
)

// ProfileUpdate carries the profile fields a caller wants to change. Nil
// fields are left untouched, so a partial update can never clobber the rest
// of the profile.
type ProfileUpdate struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// AddressUpdate is the field-level counterpart for saved addresses.
type AddressUpdate struct {
	Name       *string `json:"name"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	PostalCode *string `json:"postalCode"`
	IsDefault  *bool   `json:"isDefault"`
}

// UserStore holds the session's profile, saved addresses and order history.
// The in-memory value is authoritative; every mutation is mirrored to the
// persistence store, and a failed save only logs a warning.
type UserStore struct {
	mu     sync.Mutex
	user   *models.User
	orders []models.Order

	records   persist.Store
	userKey   string
	ordersKey string
	log       *slog.Logger
}

// NewUserStore loads the session's user and orders records. A missing orders
// record seeds the demo order; a missing user record means logged out. Load
// failures are non-fatal and leave the store in its initial state.
func NewUserStore(ctx context.Context, records persist.Store, sessionID string, log *slog.Logger) *UserStore {
	s := &UserStore{
		records:   records,
		userKey:   persist.UserKey(sessionID),
		ordersKey: persist.OrdersKey(sessionID),
		log:       log,
	}

	if raw, ok, err := records.Load(ctx, s.userKey); err != nil {
		log.Warn("failed to load user record", "key", s.userKey, "error", err)
	} else if ok {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			log.Warn("corrupt user record", "key", s.userKey, "error", err)
		} else {
			s.user = &u
		}
	}

	if raw, ok, err := records.Load(ctx, s.ordersKey); err != nil {
		log.Warn("failed to load orders record", "key", s.ordersKey, "error", err)
	} else if ok {
		if err := json.Unmarshal(raw, &s.orders); err != nil {
			log.Warn("corrupt orders record", "key", s.ordersKey, "error", err)
			s.orders = nil
		}
	}
	if s.orders == nil {
		s.orders = []models.Order{demoOrder()}
		s.saveOrders(ctx)
	}
	return s
}

// demoOrder is the seeded order shown to fresh sessions.
func demoOrder() models.Order {
	return models.Order{
		ID:     "demo-order-1",
		Date:   time.Now().Add(-3 * 24 * time.Hour),
		Status: models.OrderStatusDelivered,
		Items: []models.OrderItem{
			{
				ID:       "1",
				Name:     "Беспроводные наушники Sony WH-1000XM4",
				Price:    24990,
				Quantity: 1,
				Image:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=400",
			},
		},
		Total:          24990,
		DeliveryFee:    500,
		DeliveryMethod: models.DeliveryCourier.Label(),
		TrackingNumber: "RU123456789",
		DeliveryAddress: models.Address{
			ID:         "demo-address-1",
			Name:       "Дом",
			Street:     "ул. Тверская, д. 10, кв. 25",
			City:       "Москва",
			PostalCode: "125009",
			IsDefault:  true,
		},
	}
}

// Login replaces the session user with a canned profile carrying the given
// email. There are no credentials; this is a stand-in for a real auth
// collaborator.
func (s *UserStore) Login(ctx context.Context, email string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  "Иван Петров",
		Phone: "+7 (999) 123-45-67",
		Addresses: []models.Address{
			{
				ID:         uuid.NewString(),
				Name:       "Дом",
				Street:     "ул. Тверская, д. 10, кв. 25",
				City:       "Москва",
				PostalCode: "125009",
				IsDefault:  true,
			},
		},
	}
	s.saveUser(ctx)
	return *s.user
}

// Logout forgets the session user and drops the persisted record. The cart
// is deliberately untouched.
func (s *UserStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.records.Delete(ctx, s.userKey); err != nil {
		s.log.Warn("failed to delete user record", "key", s.userKey, "error", err)
	}
}

// User returns a copy of the current user, if logged in.
func (s *UserStore) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return s.snapshotUser(), true
}

// UpdateProfile applies the non-nil fields to the current user.
func (s *UserStore) UpdateProfile(ctx context.Context, update ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, ErrNotAuthenticated
	}
	if update.Email != nil {
		s.user.Email = *update.Email
	}
	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Phone != nil {
		s.user.Phone = *update.Phone
	}
	s.saveUser(ctx)
	return s.snapshotUser(), nil
}

// AddAddress appends a new address with a fresh id. A new default unsets the
// flag on every other address; the user's first address becomes the default
// regardless.
func (s *UserStore) AddAddress(ctx context.Context, addr models.Address) (models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.Address{}, ErrNotAuthenticated
	}
	addr.ID = uuid.NewString()
	if len(s.user.Addresses) == 0 {
		addr.IsDefault = true
	}
	if addr.IsDefault {
		s.clearDefault()
	}
	s.user.Addresses = append(s.user.Addresses, addr)
	s.saveUser(ctx)
	return addr, nil
}

// UpdateAddress applies the non-nil fields to the matching address.
func (s *UserStore) UpdateAddress(ctx context.Context, id string, update AddressUpdate) (models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.Address{}, ErrNotAuthenticated
	}
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID != id {
			continue
		}
		if update.IsDefault != nil && *update.IsDefault {
			s.clearDefault()
		}
		addr := &s.user.Addresses[i]
		if update.Name != nil {
			addr.Name = *update.Name
		}
		if update.Street != nil {
			addr.Street = *update.Street
		}
		if update.City != nil {
			addr.City = *update.City
		}
		if update.PostalCode != nil {
			addr.PostalCode = *update.PostalCode
		}
		if update.IsDefault != nil {
			addr.IsDefault = *update.IsDefault
		}
		s.saveUser(ctx)
		return *addr, nil
	}
	return models.Address{}, ErrAddressNotFound
}

// RemoveAddress deletes an address; removing the default promotes the first
// remaining address. Unknown ids are a no-op.
func (s *UserStore) RemoveAddress(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotAuthenticated
	}
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID != id {
			continue
		}
		wasDefault := s.user.Addresses[i].IsDefault
		s.user.Addresses = append(s.user.Addresses[:i], s.user.Addresses[i+1:]...)
		if wasDefault && len(s.user.Addresses) > 0 {
			s.user.Addresses[0].IsDefault = true
		}
		s.saveUser(ctx)
		return nil
	}
	return nil
}

// AddOrder assigns a fresh id and timestamp and prepends the order to the
// history. Consumers rely on newest-first ordering.
func (s *UserStore) AddOrder(ctx context.Context, order models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = uuid.NewString()
	order.Date = time.Now()
	s.orders = append([]models.Order{order}, s.orders...)
	s.saveOrders(ctx)
	return order
}

// Orders returns a copy of the order history, newest first.
func (s *UserStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *UserStore) clearDefault() {
	for i := range s.user.Addresses {
		s.user.Addresses[i].IsDefault = false
	}
}

func (s *UserStore) snapshotUser() models.User {
	u := *s.user
	u.Addresses = make([]models.Address, len(s.user.Addresses))
	copy(u.Addresses, s.user.Addresses)
	return u
}

// saveUser and saveOrders mirror state to the persistence store. Callers
// hold the mutex. Failures keep the in-memory value authoritative.
func (s *UserStore) saveUser(ctx context.Context) {
	raw, err := json.Marshal(s.user)
	if err == nil {
		err = s.records.Save(ctx, s.userKey, raw)
	}
	if err != nil {
		s.log.Warn("failed to save user record", "key", s.userKey, "error", err)
	}
}

func (s *UserStore) saveOrders(ctx context.Context) {
	raw, err := json.Marshal(s.orders)
	if err == nil {
		err = s.records.Save(ctx, s.ordersKey, raw)
	}
	if err != nil {
		s.log.Warn("failed to save orders record", "key", s.ordersKey, "error", err)
	}
}
