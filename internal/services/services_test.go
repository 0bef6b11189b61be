package services

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/store"
	"github.com/example/geprek/internal/utils"
)

func TestMain(m *testing.M) {
	utils.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// memStore is an in-memory stand-in for the PostgreSQL store.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*models.User
	products map[uuid.UUID]*models.Product
	orders   map[uuid.UUID]*models.Order
	profile  *models.StoreProfile

	createOrderErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uuid.UUID]*models.User{},
		products: map[uuid.UUID]*models.Product{},
		orders:   map[uuid.UUID]*models.Order{},
	}
}

func (s *memStore) addUser(username string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{Username: username, Phone: fmt.Sprintf("08120000%04d", len(s.users)+1), Email: username + "@mail.com", Role: models.RoleUser}
	u.ID = uuid.New()
	s.users[u.ID] = u
	return u
}

func (s *memStore) addProduct(name string, price int64) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &models.Product{Name: name, Price: price, Category: models.CategoryMakanan}
	p.ID = uuid.New()
	s.products[p.ID] = p
	return p
}

func (s *memStore) points(id uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id].Points
}

func (s *memStore) UserExists(_ context.Context, field, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		switch {
		case field == store.UserFieldUsername && u.Username == value,
			field == store.UserFieldEmail && u.Email == value,
			field == store.UserFieldPhone && u.Phone == value:
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return store.ErrDuplicate
		}
	}
	user.ID = uuid.New()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memStore) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *memStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memStore) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []models.User{}
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (s *memStore) UpdateUser(_ context.Context, id uuid.UUID, updates map[string]interface{}) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for field, value := range updates {
		switch field {
		case "password":
			u.PasswordHash = value.(string)
		case "phone":
			u.Phone = value.(string)
		case "address":
			if value == nil {
				u.Address = nil
			} else {
				address := value.(string)
				u.Address = &address
			}
		}
	}
	copied := *u
	return &copied, nil
}

func (s *memStore) DeleteUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	for oid, o := range s.orders {
		if o.UserID == id {
			delete(s.orders, oid)
		}
	}
	return nil
}

func (s *memStore) ListProducts(_ context.Context, filter store.ProductFilter) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := []models.Product{}
	for _, p := range s.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.PromotionOnly && !p.IsPromotion {
			continue
		}
		if filter.NewOnly && !p.IsNew {
			continue
		}
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (s *memStore) GetProduct(_ context.Context, id uuid.UUID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *memStore) CreateProduct(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product.ID = uuid.New()
	copied := *product
	s.products[product.ID] = &copied
	return nil
}

func (s *memStore) UpdateProduct(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return store.ErrNotFound
	}
	copied := *product
	s.products[product.ID] = &copied
	return nil
}

func (s *memStore) DeleteProduct(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.products, id)
	for _, o := range s.orders {
		for i := range o.Items {
			if o.Items[i].ProductID != nil && *o.Items[i].ProductID == id {
				o.Items[i].ProductID = nil
			}
		}
	}
	return nil
}

func (s *memStore) CreateOrder(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createOrderErr != nil {
		return s.createOrderErr
	}
	for _, item := range order.Items {
		if _, ok := s.products[*item.ProductID]; !ok {
			return store.ErrInvalidReference
		}
	}
	order.ID = uuid.New()
	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
		order.Items[i].Position = i
	}
	copied := *order
	copied.Items = append([]models.OrderItem(nil), order.Items...)
	s.orders[order.ID] = &copied
	return nil
}

// hydrate returns a copy of the order with owner and products attached.
// Callers hold s.mu.
func (s *memStore) hydrate(o *models.Order) models.Order {
	copied := *o
	copied.Items = append([]models.OrderItem(nil), o.Items...)
	for i := range copied.Items {
		if id := copied.Items[i].ProductID; id != nil {
			if p, ok := s.products[*id]; ok {
				product := *p
				copied.Items[i].Product = &product
			}
		}
	}
	if u, ok := s.users[o.UserID]; ok {
		user := *u
		copied.User = &user
	}
	return copied
}

func (s *memStore) ListOrders(_ context.Context, userID *uuid.UUID) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []models.Order{}
	for _, o := range s.orders {
		if userID != nil && o.UserID != *userID {
			continue
		}
		orders = append(orders, s.hydrate(o))
	}
	return orders, nil
}

func (s *memStore) GetOrder(_ context.Context, id uuid.UUID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	order := s.hydrate(o)
	return &order, nil
}

func (s *memStore) TransitionOrder(_ context.Context, id uuid.UUID, fn store.TransitionFunc) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	working := *o
	delta, err := fn(&working)
	if err != nil {
		return nil, err
	}
	o.Status = working.Status
	if delta != 0 {
		s.users[o.UserID].Points += delta
	}

	order := s.hydrate(o)
	return &order, nil
}

func (s *memStore) GetStoreProfile(_ context.Context) (*models.StoreProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, store.ErrNotFound
	}
	copied := *s.profile
	return &copied, nil
}

func (s *memStore) SaveStoreProfile(_ context.Context, profile *models.StoreProfile) (*models.StoreProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := s.profile == nil
	saved := *profile
	if created {
		saved.ID = uuid.New()
	} else {
		saved.ID = s.profile.ID
	}
	s.profile = &saved
	copied := saved
	return &copied, created, nil
}

func (s *memStore) DashboardStats(_ context.Context) (*store.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &store.DashboardStats{
		TotalUsers:     int64(len(s.users)),
		TotalProducts:  int64(len(s.products)),
		TotalOrders:    int64(len(s.orders)),
		OrdersByStatus: map[models.OrderStatus]int64{},
	}
	for _, o := range s.orders {
		stats.OrdersByStatus[o.Status]++
		if o.Status != models.StatusCancelled {
			stats.TotalRevenue += o.TotalAmount
		}
	}
	for _, u := range s.users {
		stats.OutstandingPoints += u.Points
	}
	return stats, nil
}

func (s *memStore) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	orders, err := s.ListOrders(ctx, nil)
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, err
}

type notification struct {
	kind     string
	orderID  uuid.UUID
	status   models.OrderStatus
	previous models.OrderStatus
	points   int64
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notification
}

func (r *recordingNotifier) OrderCreated(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, notification{kind: "created", orderID: order.ID, status: order.Status})
	return nil
}

func (r *recordingNotifier) OrderStatusChanged(_ context.Context, order *models.Order, previous models.OrderStatus, points int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, notification{kind: "status", orderID: order.ID, status: order.Status, previous: previous, points: points})
	return nil
}

func (r *recordingNotifier) kinds() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]string, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.kind)
	}
	return strings.Join(kinds, ",")
}
