package services

import (
	"context"
	"sort"
	"time"

	"vibe-shop/models"
)

// mockCatalogRepo implements CatalogRepository over a map for testing.
type mockCatalogRepo struct {
	products  map[int]models.Product
	pricesErr error
	listErr   error
}

func (m *mockCatalogRepo) ListProducts(_ context.Context) ([]models.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	products := []models.Product{}
	for _, p := range m.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (m *mockCatalogRepo) PricesByIDs(_ context.Context, ids []int) (map[int]float64, error) {
	if m.pricesErr != nil {
		return nil, m.pricesErr
	}
	prices := map[int]float64{}
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			prices[id] = p.Price
		}
	}
	return prices, nil
}

// mockCartRepo implements CartRepository in memory, including the
// merge-on-conflict behavior of the real upsert.
type mockCartRepo struct {
	catalog  *mockCatalogRepo
	lines    map[int64]*models.CartLine
	nextID   int64
	clearErr error
	cleared  bool
}

func newMockCartRepo(catalog *mockCatalogRepo) *mockCartRepo {
	return &mockCartRepo{catalog: catalog, lines: map[int64]*models.CartLine{}, nextID: 1}
}

func (m *mockCartRepo) ListLines(_ context.Context) ([]models.CartItem, error) {
	items := []models.CartItem{}
	for _, line := range m.lines {
		p := m.catalog.products[line.ProductID]
		items = append(items, models.CartItem{
			CartID:    line.ID,
			ProductID: line.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       line.Qty,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CartID < items[j].CartID })
	return items, nil
}

func (m *mockCartRepo) Upsert(_ context.Context, productID, qty int, addedAt time.Time) (int64, int, error) {
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

func (m *mockCartRepo) SetQty(_ context.Context, id int64, qty int) (bool, error) {
	line, ok := m.lines[id]
	if !ok {
		return false, nil
	}
	line.Qty = qty
	return true, nil
}

func (m *mockCartRepo) Remove(_ context.Context, id int64) (bool, error) {
	if _, ok := m.lines[id]; !ok {
		return false, nil
	}
	delete(m.lines, id)
	return true, nil
}

func (m *mockCartRepo) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.lines = map[int64]*models.CartLine{}
	m.cleared = true
	return nil
}

// mockMailer captures the receipt passed to SendReceipt.
type mockMailer struct {
	sent    *models.Receipt
	sendErr error
}

func (m *mockMailer) SendReceipt(receipt *models.Receipt) error {
	m.sent = receipt
	return m.sendErr
}
