package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/securecookie"
	"github.com/partsbay/catalog-api/app/models"
	"github.com/partsbay/catalog-api/app/models/migrations"
	"github.com/partsbay/catalog-api/app/utils/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiTest struct {
	db     *gorm.DB
	router http.Handler
	admin  *http.Cookie
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migrations.AutoMigrate(db))

	sessions.InitStore(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))

	admin := &models.User{
		FirstName: "Ada",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Password:  "x",
		Role:      models.RoleAdmin,
	}
	require.NoError(t, db.Create(admin).Error)

	return &apiTest{
		db:     db,
		router: NewRouter(db),
		admin:  mintSessionCookie(t, admin.ID),
	}
}

func mintSessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	session, err := sessions.Store.Get(req, sessions.SessionName)
	require.NoError(t, err)
	session.Values[sessions.SessionUserIDKey] = userID
	require.NoError(t, session.Save(req, rec))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func (a *apiTest) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoints(t *testing.T) {
	a := newAPITest(t)

	for _, path := range []string{"/health", "/api/health"} {
		rec := a.do(t, http.MethodGet, path, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "healthy", decodeBody(t, rec)["status"])
	}

	rec := a.do(t, http.MethodGet, "/api/status", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "online", decodeBody(t, rec)["status"])
}

func TestMutationsRequireAdmin(t *testing.T) {
	a := newAPITest(t)

	rec := a.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Brakes"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	customer := &models.User{FirstName: "Cal", LastName: "Customer", Email: "cal@example.com", Password: "x", Role: models.RoleCustomer}
	require.NoError(t, a.db.Create(customer).Error)

	rec = a.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Brakes"}, mintSessionCookie(t, customer.ID))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCategoryLifecycleOverHTTP(t *testing.T) {
	a := newAPITest(t)

	rec := a.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Brakes"}, a.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	categoryID := decodeBody(t, rec)["id"].(string)

	// Duplicate name is a 400.
	rec = a.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Brakes"}, a.admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["detail"], "already exists")

	// Product under the category blocks the delete and reports the count.
	rec = a.do(t, http.MethodPost, "/api/products", map[string]interface{}{
		"category_id": categoryID,
		"name":        "Front pads",
		"sku":         "BRK-001",
		"price":       49.90,
	}, a.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	productID := decodeBody(t, rec)["id"].(string)

	rec = a.do(t, http.MethodDelete, "/api/categories/"+categoryID, nil, a.admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["detail"], "1 products")

	// Reassignment is the only way out; soft-deleting the product still
	// leaves the reference in place.
	other := a.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Filters"}, a.admin)
	require.Equal(t, http.StatusOK, other.Code)
	otherID := decodeBody(t, other)["id"].(string)

	rec = a.do(t, http.MethodPut, "/api/products/"+productID, map[string]string{"category_id": otherID}, a.admin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodDelete, "/api/categories/"+categoryID, nil, a.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Category deleted successfully", decodeBody(t, rec)["message"])

	// The soft-deleted category is gone from the public listing but still
	// addressable by id.
	rec = a.do(t, http.MethodGet, "/api/categories", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Filters", list[0]["name"])

	rec = a.do(t, http.MethodGet, "/api/categories/"+categoryID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["is_active"])
}

func TestProductEndpoints(t *testing.T) {
	a := newAPITest(t)

	rec := a.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Brakes"}, a.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	categoryID := decodeBody(t, rec)["id"].(string)

	for i := 0; i < 3; i++ {
		rec = a.do(t, http.MethodPost, "/api/products", map[string]interface{}{
			"category_id": categoryID,
			"name":        fmt.Sprintf("Pad set %d", i),
			"sku":         fmt.Sprintf("BRK-%03d", i),
			"price":       19.99,
			"is_featured": i == 0,
		}, a.admin)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = a.do(t, http.MethodGet, "/api/products?limit=2", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 2)
	assert.NotEmpty(t, products[0]["price_display"])

	rec = a.do(t, http.MethodGet, "/api/products/featured", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 1)

	rec = a.do(t, http.MethodGet, "/api/products/category/"+categoryID+"?limit=100", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 3)

	rec = a.do(t, http.MethodGet, "/api/products/search?q=pad+set", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 3)
}

func TestSearchValidation(t *testing.T) {
	a := newAPITest(t)

	rec := a.do(t, http.MethodGet, "/api/products/search?q=", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/products/search", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPaginationValidation(t *testing.T) {
	a := newAPITest(t)

	rec := a.do(t, http.MethodGet, "/api/products?limit=0", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/products?limit=101", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/products?skip=-1", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/products/featured?limit=51", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetSoftDeletedProductIs404(t *testing.T) {
	a := newAPITest(t)

	rec := a.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Brakes"}, a.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	categoryID := decodeBody(t, rec)["id"].(string)

	rec = a.do(t, http.MethodPost, "/api/products", map[string]interface{}{
		"category_id": categoryID,
		"name":        "Front pads",
		"price":       10,
	}, a.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	productID := decodeBody(t, rec)["id"].(string)

	rec = a.do(t, http.MethodDelete, "/api/products/"+productID, nil, a.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted successfully", decodeBody(t, rec)["message"])

	rec = a.do(t, http.MethodGet, "/api/products/"+productID, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decodeBody(t, rec)["detail"])

	// Still reachable for admin mutation by id.
	rec = a.do(t, http.MethodPut, "/api/products/"+productID, map[string]string{"brand": "Brembo"}, a.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Brembo", decodeBody(t, rec)["brand"])
}

func TestCreateProductValidation(t *testing.T) {
	a := newAPITest(t)

	rec := a.do(t, http.MethodPost, "/api/products", map[string]interface{}{"name": "No category"}, a.admin)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
