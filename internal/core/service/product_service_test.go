package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pimcentral/pim-api/internal/core/domain"
	"github.com/pimcentral/pim-api/internal/core/ports"
)

// --- In-memory fixtures ---

type stubCatalogStore struct {
	products      []domain.Product
	localizations []domain.Localization
	variants      []domain.Variant
	images        []domain.Image
	categories    map[string]domain.Category
	countries     map[string]domain.Country
	nextID        int
}

func newStubCatalogStore() *stubCatalogStore {
	return &stubCatalogStore{
		categories: make(map[string]domain.Category),
		countries:  make(map[string]domain.Country),
		nextID:     1,
	}
}

func (s *stubCatalogStore) id(prefix string) string {
	id := prefix + "-" + strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func (s *stubCatalogStore) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	created := *p
	created.ID = s.id("prod")
	s.products = append(s.products, created)
	return &created, nil
}

func (s *stubCatalogStore) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubCatalogStore) FindBySKU(_ context.Context, sku string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.SKU == sku {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubCatalogStore) FindAll(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), s.products...), nil
}

type stubLocalizationRepo struct{ store *stubCatalogStore }

func (r stubLocalizationRepo) FindByProductIDs(_ context.Context, _ []string) ([]domain.Localization, error) {
	return r.store.localizations, nil
}

type stubVariantRepo struct{ store *stubCatalogStore }

func (r stubVariantRepo) FindByProductIDs(_ context.Context, _ []string) ([]domain.Variant, error) {
	return r.store.variants, nil
}

type stubImageRepo struct{ store *stubCatalogStore }

func (r stubImageRepo) Create(_ context.Context, img *domain.Image) (*domain.Image, error) {
	created := *img
	created.ID = r.store.id("img")
	r.store.images = append(r.store.images, created)
	return &created, nil
}

type stubCategoryRepo struct{ store *stubCatalogStore }

func (r stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.store.categories[id]; ok {
		return &c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.store.categories {
		if c.Name == name {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r stubCategoryRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Category, error) {
	var out []domain.Category
	for _, id := range ids {
		if c, ok := r.store.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	created := *c
	created.ID = r.store.id("cat")
	r.store.categories[created.ID] = created
	return &created, nil
}

type stubCountryRepo struct{ store *stubCatalogStore }

func (r stubCountryRepo) FindByCode(_ context.Context, code string) (*domain.Country, error) {
	if c, ok := r.store.countries[code]; ok {
		return &c, nil
	}
	return nil, domain.ErrCountryNotFound
}

func (r stubCountryRepo) Create(_ context.Context, c *domain.Country) (*domain.Country, error) {
	created := *c
	created.ID = r.store.id("country")
	r.store.countries[created.Code] = created
	return &created, nil
}

type stubImageStore struct {
	saved map[string][]byte
	fail  bool
}

func (s *stubImageStore) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	if s.fail {
		return "", errors.New("disk full")
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[filename] = data
	return "/static/images/" + filename, nil
}

func newProductService(store *stubCatalogStore, imgStore *stubImageStore) *ProductService {
	return NewProductService(ProductServiceDeps{
		Products:      store,
		Localizations: stubLocalizationRepo{store},
		Variants:      stubVariantRepo{store},
		Images:        stubImageRepo{store},
		Categories:    stubCategoryRepo{store},
		Countries:     stubCountryRepo{store},
		Store:         imgStore,
		Logger:        zerolog.Nop(),
	})
}

func seedListingFixture(t *testing.T, store *stubCatalogStore) (gt, sv domain.Country, product domain.Product) {
	t.Helper()
	ctx := context.Background()

	gtPtr, _ := stubCountryRepo{store}.Create(ctx, &domain.Country{Code: "GT", Name: "Guatemala"})
	svPtr, _ := stubCountryRepo{store}.Create(ctx, &domain.Country{Code: "SV", Name: "El Salvador"})

	category, _ := stubCategoryRepo{store}.Create(ctx, &domain.Category{Name: "Industrial"})

	p, err := store.Create(ctx, &domain.Product{SKU: "X1", DefaultName: "Cement Bag", CategoryID: category.ID})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}

	store.localizations = append(store.localizations, domain.Localization{
		ProductID: p.ID, CountryID: gtPtr.ID, LocalizedName: "Saco de Cemento",
	})
	store.variants = append(store.variants, domain.Variant{
		ProductID: p.ID, Color: "gray", StockQuantity: 10, Price: 9.99,
	})

	return *gtPtr, *svPtr, *p
}

// --- List ---

func TestProductService_List_LocalizedName(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{})
	seedListingFixture(t, store)

	items, err := svc.List(context.Background(), "GT")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Saco de Cemento" {
		t.Fatalf("expected localized name, got %q", items[0].Name)
	}
	if items[0].Category != "Industrial" {
		t.Fatalf("expected category name, got %q", items[0].Category)
	}
	if len(items[0].Variants) != 1 || items[0].Variants[0].Color != "gray" {
		t.Fatalf("unexpected variants: %+v", items[0].Variants)
	}
}

func TestProductService_List_FallbackName(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{})
	seedListingFixture(t, store)

	items, err := svc.List(context.Background(), "SV")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items[0].Name != "Cement Bag" {
		t.Fatalf("expected default name for SV, got %q", items[0].Name)
	}
}

func TestProductService_List_LowercaseCode(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{})
	seedListingFixture(t, store)

	items, err := svc.List(context.Background(), "gt")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items[0].Name != "Saco de Cemento" {
		t.Fatalf("expected localized name for lowercase code, got %q", items[0].Name)
	}
}

func TestProductService_List_UnknownCountry(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{})
	seedListingFixture(t, store)

	if _, err := svc.List(context.Background(), "XX"); !errors.Is(err, domain.ErrCountryNotFound) {
		t.Fatalf("expected ErrCountryNotFound, got %v", err)
	}
}

func TestProductService_List_UncategorizedPlaceholder(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{})
	_, _ = stubCountryRepo{store}.Create(context.Background(), &domain.Country{Code: "GT", Name: "Guatemala"})
	_, _ = store.Create(context.Background(), &domain.Product{SKU: "N1", DefaultName: "Loose Item"})

	items, err := svc.List(context.Background(), "GT")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items[0].Category != domain.UncategorizedName {
		t.Fatalf("expected placeholder category, got %q", items[0].Category)
	}
}

func TestProductService_List_Empty(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{})
	_, _ = stubCountryRepo{store}.Create(context.Background(), &domain.Country{Code: "GT", Name: "Guatemala"})

	items, err := svc.List(context.Background(), "GT")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

// --- Create ---

func TestProductService_Create_DuplicateSKU(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{})

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{SKU: "X1", DefaultName: "First"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), ports.CreateProductInput{SKU: "X1", DefaultName: "Second"})
	if !errors.Is(err, domain.ErrSKUExists) {
		t.Fatalf("expected ErrSKUExists, got %v", err)
	}
	if len(store.products) != 1 {
		t.Fatalf("duplicate create must not mutate state; have %d products", len(store.products))
	}
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{})

	_, err := svc.Create(context.Background(), ports.CreateProductInput{
		SKU: "X2", DefaultName: "Thing", CategoryID: "missing",
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

// --- AttachImage ---

func TestProductService_AttachImage_Success(t *testing.T) {
	store := newStubCatalogStore()
	imgStore := &stubImageStore{}
	svc := newProductService(store, imgStore)

	product, _ := store.Create(context.Background(), &domain.Product{SKU: "X1", DefaultName: "Cement"})

	result, err := svc.AttachImage(context.Background(), product.ID, ports.ImageUpload{
		Filename:    "photo.PNG",
		ContentType: "image/png",
		Content:     bytes.NewReader([]byte("fake-png")),
	})
	if err != nil {
		t.Fatalf("AttachImage returned error: %v", err)
	}
	if !strings.HasSuffix(result.Filename, ".png") {
		t.Fatalf("expected lowered extension preserved, got %q", result.Filename)
	}
	if result.URL != "/static/images/"+result.Filename {
		t.Fatalf("unexpected URL %q", result.URL)
	}
	if len(store.images) != 1 || store.images[0].ProductID != product.ID {
		t.Fatalf("image row not recorded: %+v", store.images)
	}
	if store.images[0].Primary {
		t.Fatalf("uploaded images must not be primary by default")
	}
}

func TestProductService_AttachImage_UnknownProduct(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{})

	_, err := svc.AttachImage(context.Background(), "missing", ports.ImageUpload{
		Filename:    "photo.png",
		ContentType: "image/png",
		Content:     bytes.NewReader(nil),
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_AttachImage_NotAnImage(t *testing.T) {
	store := newStubCatalogStore()
	imgStore := &stubImageStore{}
	svc := newProductService(store, imgStore)

	product, _ := store.Create(context.Background(), &domain.Product{SKU: "X1", DefaultName: "Cement"})

	_, err := svc.AttachImage(context.Background(), product.ID, ports.ImageUpload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Content:     bytes.NewReader([]byte("hello")),
	})
	if !errors.Is(err, domain.ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
	if len(imgStore.saved) != 0 || len(store.images) != 0 {
		t.Fatalf("rejected upload must not store anything")
	}
}

func TestProductService_AttachImage_StoreFailure(t *testing.T) {
	store := newStubCatalogStore()
	svc := newProductService(store, &stubImageStore{fail: true})

	product, _ := store.Create(context.Background(), &domain.Product{SKU: "X1", DefaultName: "Cement"})

	_, err := svc.AttachImage(context.Background(), product.ID, ports.ImageUpload{
		Filename:    "photo.png",
		ContentType: "image/png",
		Content:     bytes.NewReader([]byte("fake")),
	})
	if err == nil {
		t.Fatalf("expected store failure to propagate")
	}
	if len(store.images) != 0 {
		t.Fatalf("failed upload must not record an image row")
	}
}
