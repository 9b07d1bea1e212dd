package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"vibe-shop/controllers"
	"vibe-shop/models"
	"vibe-shop/routes"
	"vibe-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCatalog struct {
	products map[int]models.Product
}

func (m *memCatalog) ListProducts(_ context.Context) ([]models.Product, error) {
	products := []models.Product{}
	for _, p := range m.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (m *memCatalog) PricesByIDs(_ context.Context, ids []int) (map[int]float64, error) {
	prices := map[int]float64{}
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			prices[id] = p.Price
		}
	}
	return prices, nil
}

type memCart struct {
	catalog *memCatalog
	lines   map[int64]*models.CartLine
	nextID  int64
}

func (m *memCart) ListLines(_ context.Context) ([]models.CartItem, error) {
	items := []models.CartItem{}
	for _, line := range m.lines {
		p := m.catalog.products[line.ProductID]
		items = append(items, models.CartItem{
			CartID: line.ID, ProductID: line.ProductID,
			Name: p.Name, Price: p.Price, Qty: line.Qty,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CartID < items[j].CartID })
	return items, nil
}

func (m *memCart) Upsert(_ context.Context, productID, qty int, addedAt time.Time) (int64, int, error) {
	for _, line := range m.lines {
		if line.ProductID == productID {
			line.Qty += qty
			line.AddedAt = addedAt
			return line.ID, line.Qty, nil
		}
	}
	id := m.nextID
	m.nextID++
	m.lines[id] = &models.CartLine{ID: id, ProductID: productID, Qty: qty, AddedAt: addedAt}
	return id, qty, nil
}

func (m *memCart) SetQty(_ context.Context, id int64, qty int) (bool, error) {
	line, ok := m.lines[id]
	if !ok {
		return false, nil
	}
	line.Qty = qty
	return true, nil
}

func (m *memCart) Remove(_ context.Context, id int64) (bool, error) {
	if _, ok := m.lines[id]; !ok {
		return false, nil
	}
	delete(m.lines, id)
	return true, nil
}

func (m *memCart) Clear(_ context.Context) error {
	m.lines = map[int64]*models.CartLine{}
	return nil
}

func newTestRouter(products ...models.Product) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := &memCatalog{products: map[int]models.Product{}}
	for _, p := range products {
		catalog.products[p.ID] = p
	}
	cart := &memCart{catalog: catalog, lines: map[int64]*models.CartLine{}, nextID: 1}

	router := gin.New()
	routes.SetupRoutes(router, routes.Controllers{
		Product:  controllers.NewProductController(services.NewCatalogService(catalog, nil)),
		Cart:     controllers.NewCartController(services.NewCartService(cart, catalog)),
		Checkout: controllers.NewCheckoutController(services.NewCheckoutService(cart, catalog, nil)),
	}, "testdata/does-not-exist")

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestShoppingFlow(t *testing.T) {
	router := newTestRouter(models.Product{ID: 1, Name: "Vibe T-shirt", Price: 100.00, Image: "/images/tshirt_1.png"})

	// Add twice: second add merges into the same line.
	w := doJSON(t, router, http.MethodPost, "/cart", models.AddToCartRequest{ProductID: 1, Qty: 2})
	require.Equal(t, 200, w.Code, w.Body.String())
	var added models.AddToCartResponse
	decode(t, w, &added)
	assert.Equal(t, "added", added.Message)
	assert.Equal(t, int64(1), added.CartID)
	assert.Equal(t, 2, added.Qty)

	w = doJSON(t, router, http.MethodPost, "/cart", models.AddToCartRequest{ProductID: 1, Qty: 3})
	require.Equal(t, 200, w.Code)
	var merged models.AddToCartResponse
	decode(t, w, &merged)
	assert.Equal(t, "updated", merged.Message)
	assert.Equal(t, added.CartID, merged.CartID)
	assert.Equal(t, 5, merged.Qty)

	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, 200, w.Code)
	var cart models.Cart
	decode(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Qty)
	assert.Equal(t, 500.00, cart.Items[0].Subtotal)
	assert.Equal(t, 500.00, cart.Total)

	w = doJSON(t, router, http.MethodPost, "/checkout", models.CheckoutRequest{
		CartItems: []models.CheckoutItem{{CartID: added.CartID, ProductID: 1, Qty: 5}},
		Name:      "Ada",
		Email:     "ada@example.com",
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	var checkout models.CheckoutResponse
	decode(t, w, &checkout)
	assert.Equal(t, 500.00, checkout.Receipt.Total)
	assert.NotEmpty(t, checkout.Receipt.ID)

	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, 200, w.Code)
	var after models.Cart
	decode(t, w, &after)
	assert.Empty(t, after.Items)
	assert.Equal(t, 0.0, after.Total)
}

func TestAddToCart_BadRequests(t *testing.T) {
	router := newTestRouter(models.Product{ID: 1, Price: 100.00})

	w := doJSON(t, router, http.MethodPost, "/cart", models.AddToCartRequest{ProductID: 1, Qty: 0})
	assert.Equal(t, 400, w.Code)

	w = doJSON(t, router, http.MethodPost, "/cart", models.AddToCartRequest{ProductID: 999, Qty: 1})
	assert.Equal(t, 400, w.Code)

	w = doJSON(t, router, http.MethodPost, "/cart", nil)
	assert.Equal(t, 400, w.Code)
}

func TestUpdateQuantity_StatusCodes(t *testing.T) {
	router := newTestRouter(models.Product{ID: 1, Price: 100.00})

	w := doJSON(t, router, http.MethodPost, "/cart", models.AddToCartRequest{ProductID: 1, Qty: 2})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/cart/1", models.UpdateQtyRequest{Qty: 4})
	require.Equal(t, 200, w.Code)
	var updated models.UpdateQtyResponse
	decode(t, w, &updated)
	assert.Equal(t, "updated", updated.Message)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, 4, updated.Qty)

	w = doJSON(t, router, http.MethodPatch, "/cart/1", models.UpdateQtyRequest{Qty: 0})
	assert.Equal(t, 400, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/cart/42", models.UpdateQtyRequest{Qty: 4})
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/cart/abc", models.UpdateQtyRequest{Qty: 4})
	assert.Equal(t, 404, w.Code)
}

func TestRemoveLine_TwiceIsNotFound(t *testing.T) {
	router := newTestRouter(models.Product{ID: 1, Price: 100.00})

	w := doJSON(t, router, http.MethodPost, "/cart", models.AddToCartRequest{ProductID: 1, Qty: 2})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/cart/1", nil)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/cart/1", nil)
	assert.Equal(t, 404, w.Code)
}

func TestCheckout_IgnoresForgedClientPrices(t *testing.T) {
	router := newTestRouter(models.Product{ID: 1, Price: 100.00})

	w := doJSON(t, router, http.MethodPost, "/cart", models.AddToCartRequest{ProductID: 1, Qty: 5})
	require.Equal(t, 200, w.Code)

	// A tampered client claims a price of 0.01 per unit.
	payload := []byte(`{"cartItems":[{"cartId":1,"productId":1,"qty":5,"price":0.01}],"name":"Eve","email":"eve@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code, rec.Body.String())
	var checkout models.CheckoutResponse
	decode(t, rec, &checkout)
	assert.Equal(t, 500.00, checkout.Receipt.Total, "catalog price must win over the client's")
}

func TestCheckout_BadRequests(t *testing.T) {
	router := newTestRouter(models.Product{ID: 1, Price: 100.00})

	w := doJSON(t, router, http.MethodPost, "/checkout", models.CheckoutRequest{
		Name: "Ada", Email: "ada@example.com",
	})
	assert.Equal(t, 400, w.Code)

	w = doJSON(t, router, http.MethodPost, "/checkout", models.CheckoutRequest{
		CartItems: []models.CheckoutItem{{ProductID: 1, Qty: 1}},
	})
	assert.Equal(t, 400, w.Code)

	w = doJSON(t, router, http.MethodPost, "/checkout", models.CheckoutRequest{
		CartItems: []models.CheckoutItem{{ProductID: 999, Qty: 1}},
		Name:      "Ada", Email: "ada@example.com",
	})
	assert.Equal(t, 400, w.Code)
}

func TestCheckout_UnknownProductLeavesCartIntact(t *testing.T) {
	router := newTestRouter(models.Product{ID: 1, Price: 100.00})

	w := doJSON(t, router, http.MethodPost, "/cart", models.AddToCartRequest{ProductID: 1, Qty: 2})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodPost, "/checkout", models.CheckoutRequest{
		CartItems: []models.CheckoutItem{{CartID: 1, ProductID: 999, Qty: 1}},
		Name:      "Ada", Email: "ada@example.com",
	})
	require.Equal(t, 400, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, 200, w.Code)
	var cart models.Cart
	decode(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 200.00, cart.Total)
}

func TestGetProducts(t *testing.T) {
	router := newTestRouter(
		models.Product{ID: 2, Name: "B", Price: 2.00},
		models.Product{ID: 1, Name: "A", Price: 1.00},
	)

	w := doJSON(t, router, http.MethodGet, "/products", nil)
	require.Equal(t, 200, w.Code)

	var products []models.Product
	decode(t, w, &products)
	require.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 2, products[1].ID)
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, 200, w.Code)

	var health struct {
		OK bool  `json:"ok"`
		TS int64 `json:"ts"`
	}
	decode(t, w, &health)
	assert.True(t, health.OK)
	assert.Greater(t, health.TS, int64(0))
}
