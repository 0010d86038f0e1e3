package state

import (
	"shopfront/internal/domain"
	"shopfront/internal/ui/input/types"
)

// AppState contains all the application state
type AppState struct {
	// Routing
	Page      types.Page // current page
	ProductID string     // product shown on the product page

	// Catalog data
	Products     []domain.Product // catalog order
	productIndex map[string]int   // id -> position in Products
	Loaded       bool             // products have been read at least once

	// Selection state
	SelectedIndex  int // selected product card
	HoveredIndex   int // card under the mouse, -1 when none
	ViewportOffset int // first visible card row

	// Login form state
	LoginError   string
	LoginPending bool

	// UI state
	StatusMessage string // status bar message
	StatusError   bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Page:         types.PageLogin,
		productIndex: make(map[string]int),
		HoveredIndex: -1,
	}
}

// Product operations

// SetProducts replaces the catalog and keeps the selection in range
func (s *AppState) SetProducts(products []domain.Product) {
	s.Products = products
	s.productIndex = make(map[string]int, len(products))
	for i, p := range products {
		s.productIndex[p.ID] = i
	}
	s.Loaded = true
	s.ClampSelection()
}

// Product returns the product with id
func (s *AppState) Product(id string) (domain.Product, bool) {
	i, ok := s.productIndex[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.Products[i], true
}

// UpdateProduct replaces a known product, e.g. after a reload
func (s *AppState) UpdateProduct(p domain.Product) bool {
	i, ok := s.productIndex[p.ID]
	if !ok {
		return false
	}
	s.Products[i] = p
	return true
}

// CurrentProduct returns the product of the product page
func (s *AppState) CurrentProduct() (domain.Product, bool) {
	if s.ProductID == "" {
		return domain.Product{}, false
	}
	return s.Product(s.ProductID)
}

// SelectedProduct returns the selected card's product
func (s *AppState) SelectedProduct() (domain.Product, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Products) {
		return domain.Product{}, false
	}
	return s.Products[s.SelectedIndex], true
}

// Selection operations

// ClampSelection keeps the selected index inside the catalog
func (s *AppState) ClampSelection() {
	if s.SelectedIndex >= len(s.Products) {
		s.SelectedIndex = len(s.Products) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.HoveredIndex >= len(s.Products) {
		s.HoveredIndex = -1
	}
}

// Status operations

// SetStatus shows an informational message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusError = false
}

// SetError shows an error message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusError = true
}

// ClearStatus removes the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusError = false
}

// Reset forgets everything tied to the signed in user
func (s *AppState) Reset() {
	s.Page = types.PageLogin
	s.ProductID = ""
	s.SelectedIndex = 0
	s.HoveredIndex = -1
	s.ViewportOffset = 0
	s.LoginPending = false
	s.ClearStatus()
}
