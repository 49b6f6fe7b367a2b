package usecase

import (
	"context"
	"sync"
	"time"

	"textile-store/internal/data/entity"
	"textile-store/internal/data/repository"
	"textile-store/pkg/utils"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. Error fields inject
// failures; zero values behave like an empty healthy store.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User

	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return nil
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.EmailVerified = true
	}
	return nil
}

func (f *fakeUserRepo) SetResetToken(ctx context.Context, id uuid.UUID, resetToken string, expiry time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.ResetToken = &resetToken
		u.ResetExpiry = &expiry
	}
	return nil
}

func (f *fakeUserRepo) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.PasswordHash = passwordHash
		u.ResetToken = nil
		u.ResetExpiry = nil
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*entity.Order
	lines  map[int64]*entity.OrderLine

	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		nextID: 1,
		orders: make(map[int64]*entity.Order),
		lines:  make(map[int64]*entity.OrderLine),
	}
}

func (f *fakeOrderRepo) CreateWithLine(ctx context.Context, order *entity.Order, line *entity.OrderLine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = f.nextID
	f.nextID++
	line.OrderID = order.ID
	orderClone := *order
	lineClone := *line
	f.orders[order.ID] = &orderClone
	f.lines[order.ID] = &lineClone
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (f *fakeOrderRepo) summaries(match func(*entity.Order) bool) []*entity.OrderSummary {
	var out []*entity.OrderSummary
	for id, o := range f.orders {
		if !match(o) {
			continue
		}
		line := f.lines[id]
		out = append(out, &entity.OrderSummary{
			OrderID:     o.ID,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			NoOfEnds:    line.NoOfEnds,
			CreelType:   line.CreelType,
			CreelPitch:  line.CreelPitch,
			BobinLength: line.BobinLength,
		})
	}
	return out
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.summaries(func(o *entity.Order) bool { return o.UserID == userID }), nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*entity.OrderSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.summaries(func(*entity.Order) bool { return true }), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.orders, id)
	delete(f.lines, id)
	return nil
}

func (f *fakeOrderRepo) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[entity.OrderStatus]int64)
	for _, o := range f.orders {
		counts[o.Status]++
	}
	return counts, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]*entity.Product

	updateErr error
	deleteErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: make(map[int64]*entity.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	product.ID = f.nextID
	f.nextID++
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.products[product.ID]; ok {
		clone := *product
		f.products[product.ID] = &clone
	}
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.products, id)
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	nextID     int64
	categories map[int64]*entity.Category

	updateErr error
	deleteErr error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{nextID: 1, categories: make(map[int64]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	category.ID = f.nextID
	f.nextID++
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.categories[category.ID]; ok {
		clone := *category
		f.categories[category.ID] = &clone
	}
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.categories, id)
	return nil
}

type fakeFeedbackRepo struct {
	mu        sync.Mutex
	nextID    int64
	feedbacks []*entity.Feedback

	createErr error
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{nextID: 1}
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	feedback.ID = f.nextID
	f.nextID++
	clone := *feedback
	f.feedbacks = append(f.feedbacks, &clone)
	return nil
}

func (f *fakeFeedbackRepo) FindByProductID(ctx context.Context, productID int64) ([]*entity.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Feedback
	for _, fb := range f.feedbacks {
		if fb.ProductID == productID {
			clone := *fb
			out = append(out, &clone)
		}
	}
	return out, nil
}

// stubMailer records outbound mail on buffered channels so tests can wait
// for the async sends.
type stubMailer struct {
	verifyLinks chan string
	resetLinks  chan string
}

func newStubMailer() *stubMailer {
	return &stubMailer{
		verifyLinks: make(chan string, 4),
		resetLinks:  make(chan string, 4),
	}
}

func (m *stubMailer) SendVerificationEmail(to, link string) error {
	m.verifyLinks <- link
	return nil
}

func (m *stubMailer) SendResetEmail(to, link string) error {
	m.resetLinks <- link
	return nil
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:      "textile-store-test",
			PublicURL: "http://localhost:3000",
		},
		JWT: utils.JWTConfig{
			Secret:             "usecase-test-secret",
			SessionExpiryHours: 168,
			VerifyExpiryHours:  24,
			ResetExpiryMinutes: 60,
		},
		WhatsApp: utils.WhatsAppConfig{
			OwnerNumber: "919876543210",
		},
	}
}

func testRepository(users *fakeUserRepo, products *fakeProductRepo, orders *fakeOrderRepo) *repository.Repository {
	return &repository.Repository{
		User:     users,
		Category: newFakeCategoryRepo(),
		Product:  products,
		Feedback: newFakeFeedbackRepo(),
		Order:    orders,
	}
}
