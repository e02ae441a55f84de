package store

import (
	"testing"

	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFavoritesStore_ToggleRoundTrip(t *testing.T) {
	favs := NewFavoritesStore(nil)
	favs.AddFavorite(models.Product{ID: 1})
	before := favs.Favorites()

	p := models.Product{ID: 2, Name: "Premium Leash"}
	assert.True(t, favs.ToggleFavorite(p))
	assert.True(t, favs.IsFavorite(2))
	assert.False(t, favs.ToggleFavorite(p))

	assert.Equal(t, before, favs.Favorites())
	assert.False(t, favs.IsFavorite(2))
}

func TestFavoritesStore_AddRemoveIdempotent(t *testing.T) {
	favs := NewFavoritesStore(nil)
	p := models.Product{ID: 7}

	favs.AddFavorite(p)
	favs.AddFavorite(p)
	assert.Equal(t, 1, favs.Count())

	favs.RemoveFavorite(7)
	favs.RemoveFavorite(7)
	assert.Equal(t, 0, favs.Count())
	assert.Empty(t, favs.Favorites())
}

func TestFavoritesStore_PublishesOnlyOnChange(t *testing.T) {
	b := NewBroker()
	events, cancel := b.Subscribe(10)
	defer cancel()
	favs := NewFavoritesStore(b)
	p := models.Product{ID: 4}

	favs.AddFavorite(p)
	favs.AddFavorite(p)
	favs.RemoveFavorite(4)
	favs.RemoveFavorite(4)

	assert.Equal(t, FavoriteAdded, (<-events).Kind)
	assert.Equal(t, FavoriteRemoved, (<-events).Kind)
	assert.Empty(t, events)
}
