package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/packerp/backend/internal/application/catalog"
	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/packerp/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActiveByPackage(ctx context.Context, packageID uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveWithLock(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) CountActive(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPackageRepository implements catalog.PackageRepository for testing
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

func (m *MockPackageRepository) FindAllActive(ctx context.Context, filter shared.Filter) ([]catalog.Package, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Package), args.Error(1)
}

func (m *MockPackageRepository) ExistsActiveByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPackageRepository) Save(ctx context.Context, pkg *catalog.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) SaveWithLock(ctx context.Context, pkg *catalog.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) CountActive(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// newProductTestRouter wires a ProductHandler backed by mocks into a test engine
func newProductTestRouter(productRepo *MockProductRepository, packageRepo *MockPackageRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewProductHandler(catalogapp.NewProductService(productRepo, packageRepo))
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)
	return engine
}

func testPackageFixture(t *testing.T) *catalog.Package {
	t.Helper()
	pkg, err := catalog.NewPackage("cream jar 50ml", "50ml", decimal.NewFromFloat(0.80), 70, 12, uuid.New(), uuid.New())
	require.NoError(t, err)
	return pkg
}

func testProductFixture(t *testing.T, packageID uuid.UUID) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("face cream 50ml", decimal.NewFromFloat(9.90), 100, packageID)
	require.NoError(t, err)
	return product
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		packageRepo := new(MockPackageRepository)
		engine := newProductTestRouter(productRepo, packageRepo)

		pkg := testPackageFixture(t)
		packageRepo.On("FindActiveByID", mock.Anything, pkg.ID).Return(pkg, nil).Once()
		productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil).Once()

		body, _ := json.Marshal(gin.H{
			"name":               "face cream 50ml",
			"price":              "9.90",
			"available_quantity": 100,
			"package_id":         pkg.ID,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/product", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		productRepo.AssertExpectations(t)
		packageRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown package", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		packageRepo := new(MockPackageRepository)
		engine := newProductTestRouter(productRepo, packageRepo)

		packageID := uuid.New()
		packageRepo.On("FindActiveByID", mock.Anything, packageID).Return(nil, shared.ErrNotFound).Once()

		body, _ := json.Marshal(gin.H{
			"name":               "face cream 50ml",
			"price":              "9.90",
			"available_quantity": 100,
			"package_id":         packageID,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/product", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		packageRepo := new(MockPackageRepository)
		engine := newProductTestRouter(productRepo, packageRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/product", bytes.NewReader([]byte(`{"name":`)))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_GetByID(t *testing.T) {
	t.Run("returns product", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		packageRepo := new(MockPackageRepository)
		engine := newProductTestRouter(productRepo, packageRepo)

		pkg := testPackageFixture(t)
		product := testProductFixture(t, pkg.ID)
		productRepo.On("FindActiveByID", mock.Anything, product.ID).Return(product, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/product/"+product.ID.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("maps missing product to 404", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		packageRepo := new(MockPackageRepository)
		engine := newProductTestRouter(productRepo, packageRepo)

		id := uuid.New()
		productRepo.On("FindActiveByID", mock.Anything, id).Return(nil, shared.ErrNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/product/"+id.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		packageRepo := new(MockPackageRepository)
		engine := newProductTestRouter(productRepo, packageRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/product/not-a-uuid", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	t.Run("maps version conflict to 409", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		packageRepo := new(MockPackageRepository)
		engine := newProductTestRouter(productRepo, packageRepo)

		pkg := testPackageFixture(t)
		product := testProductFixture(t, pkg.ID)
		productRepo.On("FindActiveByID", mock.Anything, product.ID).Return(product, nil).Once()
		productRepo.On("SaveWithLock", mock.Anything, product).Return(shared.ErrConcurrencyConflict).Once()

		body, _ := json.Marshal(gin.H{
			"name":               "face cream 50ml",
			"price":              "10.50",
			"available_quantity": 90,
			"package_id":         pkg.ID,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/product/"+product.ID.String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeConcurrencyConflict, resp.Error.Code)
	})
}

func TestProductHandler_List(t *testing.T) {
	productRepo := new(MockProductRepository)
	packageRepo := new(MockPackageRepository)
	engine := newProductTestRouter(productRepo, packageRepo)

	pkg := testPackageFixture(t)
	products := []catalog.Product{*testProductFixture(t, pkg.ID), *testProductFixture(t, pkg.ID)}
	productRepo.On("FindAllActive", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(products, nil).Once()
	productRepo.On("CountActive", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/product?page=1&page_size=20", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.Page)
}
