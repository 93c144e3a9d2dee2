package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// stubSweetRepo is an in-memory SweetRepository shared by the catalog and
// inventory service tests. Quantity mutations hold the mutex for the whole
// check-and-write, mirroring the atomicity the real store provides.
type stubSweetRepo struct {
	mu         sync.Mutex
	sweets     map[string]*domain.Sweet
	nextID     int
	lastFilter ports.SearchFilter
	lastFields ports.UpdateSweetFields
}

func newStubSweetRepo() *stubSweetRepo {
	return &stubSweetRepo{sweets: make(map[string]*domain.Sweet), nextID: 1}
}

func cloneSweet(s *domain.Sweet) *domain.Sweet {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (r *stubSweetRepo) Create(_ context.Context, s *domain.Sweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = "sweet-" + strconv.Itoa(r.nextID)
	r.nextID++
	r.sweets[s.ID] = cloneSweet(s)
	return nil
}

func (r *stubSweetRepo) FindAll(_ context.Context) ([]*domain.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Sweet, 0, len(r.sweets))
	for _, s := range r.sweets {
		out = append(out, cloneSweet(s))
	}
	return out, nil
}

func (r *stubSweetRepo) FindByID(_ context.Context, id string) (*domain.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sweets[id]; ok {
		return cloneSweet(s), nil
	}
	return nil, domain.ErrSweetNotFound
}

func (r *stubSweetRepo) Update(_ context.Context, id string, fields ports.UpdateSweetFields) (*domain.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFields = fields
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	if fields.Name != nil {
		s.Name = *fields.Name
	}
	if fields.Category != nil {
		s.Category = *fields.Category
	}
	if fields.Price != nil {
		s.Price = *fields.Price
	}
	if fields.Quantity != nil {
		s.Quantity = *fields.Quantity
	}
	return cloneSweet(s), nil
}

func (r *stubSweetRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sweets[id]; !ok {
		return domain.ErrSweetNotFound
	}
	delete(r.sweets, id)
	return nil
}

func (r *stubSweetRepo) Search(_ context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = filter
	out := make([]*domain.Sweet, 0)
	for _, s := range r.sweets {
		if filter.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && s.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && s.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, cloneSweet(s))
	}
	return out, nil
}

func (r *stubSweetRepo) IncrementQuantity(_ context.Context, id string, delta int64) (*domain.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	s.Quantity += delta
	return cloneSweet(s), nil
}

func (r *stubSweetRepo) DecrementIfAvailable(_ context.Context, id string) (*domain.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	if s.Quantity <= 0 {
		return nil, domain.ErrOutOfStock
	}
	s.Quantity--
	return cloneSweet(s), nil
}

func seedSweet(t *testing.T, repo *stubSweetRepo, name, category string, price float64, quantity int64) *domain.Sweet {
	t.Helper()
	s := &domain.Sweet{Name: name, Category: category, Price: price, Quantity: quantity}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("seed sweet: %v", err)
	}
	return s
}

func ptrStr(s string) *string   { return &s }
func ptrF64(f float64) *float64 { return &f }
func ptrI64(i int64) *int64     { return &i }

func TestCatalogService_Create_Success(t *testing.T) {
	repo := newStubSweetRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	sweet, err := svc.Create(context.Background(), ports.CreateSweetInput{
		Name: "Gulab Jamun", Category: "indian", Price: 2.50, Quantity: 12,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sweet.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if sweet.Quantity != 12 {
		t.Fatalf("expected quantity 12, got %d", sweet.Quantity)
	}
}

func TestCatalogService_Create_Validation(t *testing.T) {
	repo := newStubSweetRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateSweetInput{Name: "x", Category: "y", Price: 0, Quantity: 1}); err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice for zero price, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateSweetInput{Name: "x", Category: "y", Price: -1, Quantity: 1}); err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice for negative price, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateSweetInput{Name: "x", Category: "y", Price: 1, Quantity: -1}); err != domain.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCatalogService_Search_PassesFilter(t *testing.T) {
	repo := newStubSweetRepo()
	svc := NewCatalogService(repo, zerolog.Nop())
	seedSweet(t, repo, "Fudge", "chocolate", 3.00, 5)
	seedSweet(t, repo, "Lollipop", "hard candy", 0.50, 20)

	results, err := svc.Search(context.Background(), ports.SearchSweetsInput{
		Name:     "fud",
		MinPrice: ptrF64(1.00),
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Fudge" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if repo.lastFilter.Name != "fud" || repo.lastFilter.MinPrice == nil {
		t.Fatalf("filter not passed through: %+v", repo.lastFilter)
	}
}

func TestCatalogService_Search_EmptyFilterMatchesGetAll(t *testing.T) {
	repo := newStubSweetRepo()
	svc := NewCatalogService(repo, zerolog.Nop())
	seedSweet(t, repo, "Fudge", "chocolate", 3.00, 5)
	seedSweet(t, repo, "Lollipop", "hard candy", 0.50, 20)
	seedSweet(t, repo, "Gulab Jamun", "indian", 2.50, 12)

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	found, err := svc.Search(context.Background(), ports.SearchSweetsInput{})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if len(found) != len(all) {
		t.Fatalf("expected %d results, got %d", len(all), len(found))
	}
	ids := make(map[string]bool, len(all))
	for _, s := range all {
		ids[s.ID] = true
	}
	for _, s := range found {
		if !ids[s.ID] {
			t.Fatalf("search returned sweet %s not in GetAll", s.ID)
		}
	}
}

func TestCatalogService_Search_NegativeBounds(t *testing.T) {
	repo := newStubSweetRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.Search(context.Background(), ports.SearchSweetsInput{MinPrice: ptrF64(-1)}); err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if _, err := svc.Search(context.Background(), ports.SearchSweetsInput{MaxPrice: ptrF64(-0.01)}); err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestCatalogService_Update_PartialMask(t *testing.T) {
	repo := newStubSweetRepo()
	svc := NewCatalogService(repo, zerolog.Nop())
	seed := seedSweet(t, repo, "Toffee", "caramel", 1.25, 8)

	updated, err := svc.Update(context.Background(), seed.ID, ports.UpdateSweetInput{
		Price: ptrF64(1.75),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 1.75 {
		t.Fatalf("expected price 1.75, got %f", updated.Price)
	}
	// untouched fields keep their stored values
	if updated.Name != "Toffee" || updated.Category != "caramel" || updated.Quantity != 8 {
		t.Fatalf("unexpected mutation outside mask: %+v", updated)
	}
	if repo.lastFields.Name != nil || repo.lastFields.Quantity != nil {
		t.Fatalf("mask wider than request: %+v", repo.lastFields)
	}
}

func TestCatalogService_Update_Validation(t *testing.T) {
	repo := newStubSweetRepo()
	svc := NewCatalogService(repo, zerolog.Nop())
	seed := seedSweet(t, repo, "Toffee", "caramel", 1.25, 8)

	if _, err := svc.Update(context.Background(), seed.ID, ports.UpdateSweetInput{Price: ptrF64(0)}); err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if _, err := svc.Update(context.Background(), seed.ID, ports.UpdateSweetInput{Quantity: ptrI64(-5)}); err != domain.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	repo := newStubSweetRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateSweetInput{Name: ptrStr("x")}); err != domain.ErrSweetNotFound {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestCatalogService_Delete(t *testing.T) {
	repo := newStubSweetRepo()
	svc := NewCatalogService(repo, zerolog.Nop())
	seed := seedSweet(t, repo, "Nougat", "chewy", 2.00, 3)

	if err := svc.Delete(context.Background(), seed.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), seed.ID); err != domain.ErrSweetNotFound {
		t.Fatalf("expected ErrSweetNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), seed.ID); err != domain.ErrSweetNotFound {
		t.Fatalf("expected ErrSweetNotFound for second delete, got %v", err)
	}
}
