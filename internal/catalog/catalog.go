// Package catalog exposes the static, compiled-in product list.
package catalog

import (
	"errors"
	"slices"
	"strings"

	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/rogerio-castellano/pawelier/internal/money"
	"github.com/sirupsen/logrus"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// New parses the built-in product table. Prices that cannot be parsed are
// kept at zero and reported as warnings.
func New(log *logrus.Logger) *Catalog {
	return build(entries, log)
}

func build(src []entry, log *logrus.Logger) *Catalog {
	c := &Catalog{
		products: make([]models.Product, 0, len(src)),
		byID:     make(map[int]models.Product, len(src)),
	}
	for _, e := range src {
		price, err := money.ParsePrice(e.price, money.LKR)
		if err != nil && log != nil {
			log.WithFields(logrus.Fields{"product_id": e.id, "price": e.price}).
				Warn("catalog price unparseable, using zero")
		}
		p := models.Product{
			ID:          e.id,
			Name:        e.name,
			Price:       price,
			Description: e.description,
			Image:       e.image,
			Category:    e.category,
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c
}

// All returns every product ordered by id.
func (c *Catalog) All() []models.Product {
	return slices.Clone(c.products)
}

func (c *Catalog) GetByID(id int) (models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Categories lists category tags in display order.
func (c *Catalog) Categories() []string {
	return slices.Clone(categoryOrder)
}

// ByCategory matches the tag case-insensitively.
func (c *Catalog) ByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search filters by category (when non-empty) and a case-insensitive name substring.
func (c *Catalog) Search(category, name string) []models.Product {
	out := []models.Product{}
	for _, p := range c.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			continue
		}
		out = append(out, p)
	}
	return out
}
