package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/pawelier/internal/catalog"
)

// GetCategoriesHandler godoc
// @Summary List catalog categories
// @Tags catalog
// @Produce json
// @Success 200 {object} CategoriesResult
// @Router /catalog/categories [get]
func (s *Server) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, CategoriesResult{Data: s.catalog.Categories()})
}

// GetProductsHandler godoc
// @Summary List products, optionally by category and name
// @Tags catalog
// @Produce json
// @Param category query string false "Category tag (WEAR, WALK, LIVING, TRAVEL)"
// @Param q query string false "Name contains"
// @Success 200 {object} ProductsResult
// @Router /catalog/products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products := s.catalog.Search(q.Get("category"), q.Get("q"))
	s.writeJSON(w, http.StatusOK, ProductsResult{Data: products, Meta: Meta{TotalCount: len(products)}})
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /catalog/products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := s.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, product)
}
