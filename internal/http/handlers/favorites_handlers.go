package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/pawelier/internal/catalog"
	"github.com/rogerio-castellano/pawelier/internal/models"
)

// GetFavoritesHandler godoc
// @Summary List favorite products
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProductsResult
// @Router /me/favorites [get]
func (s *Server) GetFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	_, sess := s.session(r)
	favs := sess.Favorites.Favorites()
	s.writeJSON(w, http.StatusOK, ProductsResult{Data: favs, Meta: Meta{TotalCount: len(favs)}})
}

// ToggleFavoriteHandler godoc
// @Summary Toggle favorite state of a product
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} FavoriteResult
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Product not found"
// @Router /me/favorites/{id}/toggle [post]
func (s *Server) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	product, ok := s.productFromPath(w, r)
	if !ok {
		return
	}
	_, sess := s.session(r)
	fav := sess.Favorites.ToggleFavorite(product)
	s.writeJSON(w, http.StatusOK, FavoriteResult{ProductID: product.ID, Favorite: fav})
}

// AddFavoriteHandler godoc
// @Summary Mark a product as favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} FavoriteResult
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Product not found"
// @Router /me/favorites/{id} [put]
func (s *Server) AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	product, ok := s.productFromPath(w, r)
	if !ok {
		return
	}
	_, sess := s.session(r)
	sess.Favorites.AddFavorite(product)
	s.writeJSON(w, http.StatusOK, FavoriteResult{ProductID: product.ID, Favorite: true})
}

// RemoveFavoriteHandler godoc
// @Summary Unmark a favorite product
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} FavoriteResult
// @Failure 400 {string} string "Invalid ID"
// @Router /me/favorites/{id} [delete]
func (s *Server) RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	_, sess := s.session(r)
	sess.Favorites.RemoveFavorite(id)
	s.writeJSON(w, http.StatusOK, FavoriteResult{ProductID: id, Favorite: false})
}

// productFromPath resolves the {id} path parameter against the catalog,
// writing the error response itself when it fails.
func (s *Server) productFromPath(w http.ResponseWriter, r *http.Request) (models.Product, bool) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return models.Product{}, false
	}
	product, err := s.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
		} else {
			http.Error(w, "could not fetch product", http.StatusInternalServerError)
		}
		return models.Product{}, false
	}
	return product, true
}
