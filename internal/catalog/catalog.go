package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"cafenate-cart/internal/shopping_cart"
	myErr "cafenate-cart/internal/types/errors"
)

const (
	Size16oz = "16oz"
	Size22oz = "22oz"
)

// variantSuffix код размера, который дописывается к id товара
var variantSuffix = map[string]int{
	Size16oz: 1,
	Size22oz: 2,
}

// Product товар меню с ценами по размерам
type Product struct {
	ID     int                        `yaml:"id" json:"id"`
	Name   string                     `yaml:"name" json:"name"`
	Image  string                     `yaml:"image" json:"image,omitempty"`
	Prices map[string]decimal.Decimal `yaml:"prices" json:"prices"`
}

// Catalog статичное меню. Корзина его не валидирует
type Catalog struct {
	Products []Product `yaml:"products"`
	Logger   *zap.SugaredLogger
}

func NewCatalog(products []Product, logger *zap.SugaredLogger) *Catalog {
	return &Catalog{
		Products: products,
		Logger:   logger,
	}
}

// Load читает меню из yaml, при пустом пути отдает меню по умолчанию
func Load(path string, logger *zap.SugaredLogger) (*Catalog, error) {
	if path == "" {
		return NewCatalog(Default(), logger), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var raw struct {
		Products []struct {
			ID     int               `yaml:"id"`
			Name   string            `yaml:"name"`
			Image  string            `yaml:"image"`
			Prices map[string]string `yaml:"prices"`
		} `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	products := make([]Product, 0, len(raw.Products))
	for _, p := range raw.Products {
		prices := make(map[string]decimal.Decimal, len(p.Prices))
		for size, price := range p.Prices {
			d, err := decimal.NewFromString(price)
			if err != nil {
				return nil, fmt.Errorf("product %d size %s: bad price %q: %w", p.ID, size, price, err)
			}
			prices[size] = d
		}
		products = append(products, Product{ID: p.ID, Name: p.Name, Image: p.Image, Prices: prices})
	}

	logger.Infof("catalog loaded from %s: %d products", path, len(products))
	return NewCatalog(products, logger), nil
}

// Get ищет товар по id
func (c *Catalog) Get(productID int) (Product, error) {
	for _, p := range c.Products {
		if p.ID == productID {
			return p, nil
		}
	}

	c.Logger.Debugw("product not found in catalog", "product_id", productID)
	return Product{}, myErr.ErrUnknownProduct
}

// Variant собирает позицию корзины для товара в нужном размере.
// Размер зашивается в id: productID*100 + код размера
func (c *Catalog) Variant(productID int, size string) (shopping_cart.LineItem, error) {
	p, err := c.Get(productID)
	if err != nil {
		return shopping_cart.LineItem{}, err
	}

	id, ok := VariantID(productID, size)
	if !ok {
		return shopping_cart.LineItem{}, myErr.ErrUnknownSize
	}
	price, ok := p.Prices[size]
	if !ok {
		return shopping_cart.LineItem{}, myErr.ErrUnknownSize
	}

	return shopping_cart.LineItem{
		ID:        id,
		Name:      fmt.Sprintf("%s (%s)", p.Name, size),
		UnitPrice: price,
		Size:      size,
		Quantity:  1,
	}, nil
}

// VariantID id позиции корзины для пары (товар, размер)
func VariantID(productID int, size string) (int, bool) {
	suffix, ok := variantSuffix[size]
	if !ok {
		return 0, false
	}

	return productID*100 + suffix, true
}

// Default меню кофейни
func Default() []Product {
	p := func(id int, name, image string, small, large int64) Product {
		return Product{
			ID:    id,
			Name:  name,
			Image: image,
			Prices: map[string]decimal.Decimal{
				Size16oz: decimal.NewFromInt(small),
				Size22oz: decimal.NewFromInt(large),
			},
		}
	}

	return []Product{
		p(1, "Iced Caramel Macchiato", "caramel.jpg", 100, 130),
		p(2, "Iced Spanish Latte", "spanish.jpg", 110, 140),
		p(3, "Iced Matcha Latte", "matcha.jpg", 100, 130),
		p(4, "Iced White Mocha", "mocha.jpg", 105, 135),
		p(5, "Iced Americano", "americano.jpg", 80, 100),
		p(6, "Flat White", "flat white.jpg", 100, 120),
		p(7, "Cafénate special", "special.jpg", 150, 180),
		p(8, "Special Kohi", "kohi.jpg", 130, 160),
	}
}
