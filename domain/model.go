package domain

import (
	"context"
	"github.com/reuben-baek/go-northwind/data"
	"github.com/shopspring/decimal"
	"unicode/utf8"
)

const (
	CategoryNameMaxLength = 15
	ProductNameMaxLength  = 40
)

// Category owns zero or more products. Products is a navigation set only;
// the authoritative link is Product.CategoryID.
type Category struct {
	CategoryID   int32
	CategoryName string
	Description  *string
	Products     ProductSet
}

func NewCategory(id int32, name string) *Category {
	return &Category{
		CategoryID:   id,
		CategoryName: name,
		Products:     NewProductSet(),
	}
}

// Adopt makes p a product of c, setting both sides of the relationship.
func (c *Category) Adopt(p *Product) {
	p.CategoryID = c.CategoryID
	p.Category = data.LazyLoadValue(*c)
	c.Products.Add(p)
}

func (c Category) Validate() error {
	return validateLength("Category", "CategoryName", c.CategoryName, CategoryNameMaxLength)
}

// Product belongs to exactly one category through CategoryID.
// Category is loaded on demand and is nil when not materialized.
type Product struct {
	ProductID    int32
	ProductName  string
	UnitPrice    decimal.NullDecimal
	UnitsInStock *int16
	Discontinued bool
	CategoryID   int32
	Category     data.Lazy[Category]
}

func (p Product) Validate() error {
	return validateLength("Product", "ProductName", p.ProductName, ProductNameMaxLength)
}

// CategoryConsistent reports whether a materialized Category reference points at CategoryID.
// A reference that is unset, not yet loaded or failed to load has nothing to contradict.
func (p Product) CategoryConsistent() bool {
	category, ok := data.Materialized(p.Category)
	if !ok {
		return true
	}
	return category.CategoryID == p.CategoryID
}

// Describable is the shape of anything exposing an optional textual description.
type Describable interface {
	Description() *string
	SetDescription(description *string)
}

func validateLength(entity, field, value string, limit int) error {
	if length := utf8.RuneCountInString(value); length > limit {
		return &LengthError{Entity: entity, Field: field, Limit: limit, Length: length}
	}
	return nil
}

type CategoryRepository interface {
	data.Repository[Category, int32]
	// FindOneWithProducts loads the category with Products holding every product that references it.
	FindOneWithProducts(ctx context.Context, id int32) (Category, error)
}

type ProductRepository interface {
	data.Repository[Product, int32]
	FindByCategory(ctx context.Context, category Category) ([]Product, error)
}
