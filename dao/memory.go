package dao

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kanchiweaves/storefront.api/models"
)

type memoryRecord[T any] struct {
	value T
	seq   uint64
}

// MemoryStore keeps every record in process memory. Records are lost on
// restart, so it is only suitable for tests and local runs.
type MemoryStore struct {
	mutex sync.RWMutex
	seq   uint64
	now   func() time.Time

	users              map[string]memoryRecord[models.User]
	admins             map[string]memoryRecord[models.Admin]
	orders             map[string]memoryRecord[models.Order]
	wishlists          map[string]memoryRecord[models.Wishlist]
	contactSubmissions map[string]memoryRecord[models.ContactSubmission]
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:                time.Now,
		users:              make(map[string]memoryRecord[models.User]),
		admins:             make(map[string]memoryRecord[models.Admin]),
		orders:             make(map[string]memoryRecord[models.Order]),
		wishlists:          make(map[string]memoryRecord[models.Wishlist]),
		contactSubmissions: make(map[string]memoryRecord[models.ContactSubmission]),
	}
}

// stamp must be called with the write lock held
func (m *MemoryStore) stamp(id *string, createdAt *time.Time) uint64 {
	*id = uuid.NewString()
	*createdAt = m.now()
	m.seq++
	return m.seq
}

// newestFirst sorts by creation time descending, falling back to insertion
// order when two records share a timestamp.
func newestFirst[T any](records map[string]memoryRecord[T], createdAt func(T) time.Time, keep func(T) bool) []T {
	matched := make([]memoryRecord[T], 0, len(records))
	for _, r := range records {
		if keep == nil || keep(r.value) {
			matched = append(matched, r)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		ti, tj := createdAt(matched[i].value), createdAt(matched[j].value)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return matched[i].seq > matched[j].seq
	})

	out := make([]T, 0, len(matched))
	for _, r := range matched {
		out = append(out, r.value)
	}
	return out
}

func copyOrder(order models.Order) models.Order {
	order.Items = append([]models.OrderItem(nil), order.Items...)
	return order
}

// GetUser returns the user with the given id
func (m *MemoryStore) GetUser(id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	r, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	user := r.value
	return &user, nil
}

// GetUserByUsername returns the user with the given username
func (m *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, r := range m.users {
		if r.value.Username == username {
			user := r.value
			return &user, nil
		}
	}
	return nil, nil
}

// CreateUser stores a new user
func (m *MemoryStore) CreateUser(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	seq := m.stamp(&user.ID, &user.CreatedAt)
	m.users[user.ID] = memoryRecord[models.User]{value: *user, seq: seq}
	return nil
}

// GetAllUsers lists every user
func (m *MemoryStore) GetAllUsers() ([]models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return newestFirst(m.users, func(u models.User) time.Time { return u.CreatedAt }, nil), nil
}

// DeleteUser removes a user. Deleting an unknown id is not an error.
func (m *MemoryStore) DeleteUser(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.users, id)
	return nil
}

// GetAdminByUsername returns the admin with the given username
func (m *MemoryStore) GetAdminByUsername(username string) (*models.Admin, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, r := range m.admins {
		if r.value.Username == username {
			admin := r.value
			return &admin, nil
		}
	}
	return nil, nil
}

// CreateAdmin stores a new admin, defaulting the role
func (m *MemoryStore) CreateAdmin(admin *models.Admin) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if admin.Role == "" {
		admin.Role = models.DefaultAdminRole
	}
	seq := m.stamp(&admin.ID, &admin.CreatedAt)
	m.admins[admin.ID] = memoryRecord[models.Admin]{value: *admin, seq: seq}
	return nil
}

// CreateOrder stores a new order, defaulting the status and payment method
func (m *MemoryStore) CreateOrder(order *models.Order) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PaymentMethodPhonePe
	}
	seq := m.stamp(&order.ID, &order.CreatedAt)
	m.orders[order.ID] = memoryRecord[models.Order]{value: copyOrder(*order), seq: seq}
	return nil
}

// GetOrder returns the order with the given id
func (m *MemoryStore) GetOrder(id string) (*models.Order, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	r, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	order := copyOrder(r.value)
	return &order, nil
}

func (m *MemoryStore) findOrder(match func(models.Order) bool) *models.Order {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, r := range m.orders {
		if match(r.value) {
			order := copyOrder(r.value)
			return &order
		}
	}
	return nil
}

// GetOrderByPaymentReference returns the order a gateway merchant order id
// was issued for
func (m *MemoryStore) GetOrderByPaymentReference(reference string) (*models.Order, error) {
	return m.findOrder(func(o models.Order) bool { return o.PaymentReference == reference }), nil
}

// GetOrderByRefundReference returns the order a merchant refund id was
// issued for
func (m *MemoryStore) GetOrderByRefundReference(reference string) (*models.Order, error) {
	return m.findOrder(func(o models.Order) bool { return o.RefundReference == reference }), nil
}

func (m *MemoryStore) listOrders(keep func(models.Order) bool) []models.Order {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	orders := newestFirst(m.orders, func(o models.Order) time.Time { return o.CreatedAt }, keep)
	for i := range orders {
		orders[i] = copyOrder(orders[i])
	}
	return orders
}

// GetAllOrders lists every order
func (m *MemoryStore) GetAllOrders() ([]models.Order, error) {
	return m.listOrders(nil), nil
}

// GetOrdersByUserID lists the orders placed by a user
func (m *MemoryStore) GetOrdersByUserID(userID string) ([]models.Order, error) {
	return m.listOrders(func(o models.Order) bool { return o.UserID == userID }), nil
}

// GetOrdersByStatus lists the orders currently in a status
func (m *MemoryStore) GetOrdersByStatus(status string) ([]models.Order, error) {
	return m.listOrders(func(o models.Order) bool { return o.Status == status }), nil
}

// UpdateOrder replaces a stored order. ID and CreatedAt are kept.
func (m *MemoryStore) UpdateOrder(order *models.Order) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	r, ok := m.orders[order.ID]
	if !ok {
		return ErrNotFound
	}
	order.CreatedAt = r.value.CreatedAt
	m.orders[order.ID] = memoryRecord[models.Order]{value: copyOrder(*order), seq: r.seq}
	return nil
}

// UpdateOrderStatus moves an order from one status to another. It reports
// false when the order is no longer in the from status.
func (m *MemoryStore) UpdateOrderStatus(id, from, to string) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	r, ok := m.orders[id]
	if !ok || r.value.Status != from {
		return false, nil
	}
	r.value.Status = to
	m.orders[id] = r
	return true, nil
}

// DeleteOrder removes an order. Deleting an unknown id is not an error.
func (m *MemoryStore) DeleteOrder(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.orders, id)
	return nil
}

// CreateWishlist stores a new wishlist entry
func (m *MemoryStore) CreateWishlist(wishlist *models.Wishlist) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	seq := m.stamp(&wishlist.ID, &wishlist.CreatedAt)
	m.wishlists[wishlist.ID] = memoryRecord[models.Wishlist]{value: *wishlist, seq: seq}
	return nil
}

// GetUserWishlists lists a user's wishlist entries
func (m *MemoryStore) GetUserWishlists(userID string) ([]models.Wishlist, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return newestFirst(m.wishlists,
		func(w models.Wishlist) time.Time { return w.CreatedAt },
		func(w models.Wishlist) bool { return w.UserID == userID }), nil
}

// DeleteWishlist removes a wishlist entry. Deleting an unknown id is not an
// error.
func (m *MemoryStore) DeleteWishlist(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.wishlists, id)
	return nil
}

// CreateContactSubmission stores a contact form message
func (m *MemoryStore) CreateContactSubmission(submission *models.ContactSubmission) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	seq := m.stamp(&submission.ID, &submission.CreatedAt)
	m.contactSubmissions[submission.ID] = memoryRecord[models.ContactSubmission]{value: *submission, seq: seq}
	return nil
}

// GetAllContactSubmissions lists every contact form message
func (m *MemoryStore) GetAllContactSubmissions() ([]models.ContactSubmission, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return newestFirst(m.contactSubmissions, func(c models.ContactSubmission) time.Time { return c.CreatedAt }, nil), nil
}
