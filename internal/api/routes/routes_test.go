package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elyse-t/ecormmerce-api/internal/store"
)

const testSecret = "routes-test-secret"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	st, err := store.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return SetupRoutes(st, testSecret)
}

func do(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestServer(t)

	rec := do(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "online")
}

func TestProductsRequireAuth(t *testing.T) {
	router := newTestServer(t)

	rec := do(router, http.MethodGet, "/api/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(router, http.MethodGet, "/api/products", "forged-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// Full journey: signup, login, then walk a product through every verb.
func TestSignupLoginProductFlow(t *testing.T) {
	router := newTestServer(t)

	rec := do(router, http.MethodPost, "/api/signup", "",
		`{"username":"alice","email":"a@x.com","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(router, http.MethodPost, "/api/login", "",
		`{"username":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	token := login.Token

	rec = do(router, http.MethodPost, "/api/products", token,
		`{"productName":"Widget","description":"d","quantity":5,"price":9.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created store.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)

	rec = do(router, http.MethodGet, "/api/products/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched store.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	rec = do(router, http.MethodPatch, "/api/products/1", token, `{"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"quantity":3}`, rec.Body.String())

	rec = do(router, http.MethodDelete, "/api/products/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodGet, "/api/products/1", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router := newTestServer(t)

	rec := do(router, http.MethodPost, "/api/signup", "",
		`{"username":"alice","email":"a@x.com","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(router, http.MethodPost, "/api/login", "",
		`{"username":"alice","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
