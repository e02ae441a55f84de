package store

import (
	"slices"
	"sync"

	"github.com/rogerio-castellano/pawelier/internal/models"
)

type FavoritesStore struct {
	mu       sync.RWMutex
	products map[int]models.Product
	events   Publisher
}

func NewFavoritesStore(events Publisher) *FavoritesStore {
	return &FavoritesStore{
		products: make(map[int]models.Product),
		events:   events,
	}
}

func (s *FavoritesStore) IsFavorite(productID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.products[productID]
	return ok
}

// ToggleFavorite flips membership and reports whether the product is now a favorite.
func (s *FavoritesStore) ToggleFavorite(product models.Product) bool {
	s.mu.Lock()
	_, present := s.products[product.ID]
	if present {
		delete(s.products, product.ID)
	} else {
		s.products[product.ID] = product
	}
	s.mu.Unlock()

	kind := FavoriteAdded
	if present {
		kind = FavoriteRemoved
	}
	e := newEvent(kind)
	e.ProductID = product.ID
	publish(s.events, e)

	return !present
}

func (s *FavoritesStore) AddFavorite(product models.Product) {
	s.mu.Lock()
	_, present := s.products[product.ID]
	s.products[product.ID] = product
	s.mu.Unlock()

	if !present {
		e := newEvent(FavoriteAdded)
		e.ProductID = product.ID
		publish(s.events, e)
	}
}

func (s *FavoritesStore) RemoveFavorite(productID int) {
	s.mu.Lock()
	_, present := s.products[productID]
	delete(s.products, productID)
	s.mu.Unlock()

	if present {
		e := newEvent(FavoriteRemoved)
		e.ProductID = productID
		publish(s.events, e)
	}
}

// Favorites returns a snapshot ordered by product id.
func (s *FavoritesStore) Favorites() []models.Product {
	s.mu.RLock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Product) int { return a.ID - b.ID })
	return out
}

func (s *FavoritesStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
