package infra

import (
	"github.com/reuben-baek/go-northwind/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Money is a nullable fixed-point amount stored in the dialect's monetary column type.
type Money struct {
	decimal.NullDecimal
}

func (Money) GormDataType() string {
	return "money"
}

func (Money) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "sqlserver":
		return "money"
	case "postgres":
		// pg money is locale formatted on output and does not scan into a decimal
		return "numeric(19,4)"
	default:
		return "numeric"
	}
}

type Category struct {
	CategoryID   int32   `gorm:"column:CategoryId;primaryKey" data:"id"`
	CategoryName string  `gorm:"column:CategoryName;size:15;not null"`
	Description  *string `gorm:"column:Description;type:text"`
}

func (Category) TableName() string {
	return "Category"
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	return c.Validate()
}

func (c Category) Validate() error {
	return c.To().Validate()
}

func (c Category) To() domain.Category {
	return domain.Category{
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		Description:  c.Description,
		Products:     domain.NewProductSet(),
	}
}

func (c Category) From(m domain.Category) any {
	c.CategoryID = m.CategoryID
	c.CategoryName = m.CategoryName
	c.Description = m.Description
	return c
}

type Product struct {
	ProductID    int32     `gorm:"column:ProductId;primaryKey" data:"id"`
	ProductName  string    `gorm:"column:ProductName;size:40;not null"`
	UnitPrice    Money     `gorm:"column:UnitPrice"`
	UnitsInStock *int16    `gorm:"column:UnitsInStock"`
	Discontinued bool      `gorm:"column:Discontinued;not null;default:false"`
	CategoryID   int32     `gorm:"column:CategoryId;not null;index"`
	Category     *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (Product) TableName() string {
	return "Product"
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}

func (p Product) Validate() error {
	return p.To().Validate()
}

// To leaves the Category navigation unset; ProductRepository attaches it.
func (p Product) To() domain.Product {
	return domain.Product{
		ProductID:    p.ProductID,
		ProductName:  p.ProductName,
		UnitPrice:    p.UnitPrice.NullDecimal,
		UnitsInStock: p.UnitsInStock,
		Discontinued: p.Discontinued,
		CategoryID:   p.CategoryID,
	}
}

func (p Product) From(m domain.Product) any {
	p.ProductID = m.ProductID
	p.ProductName = m.ProductName
	p.UnitPrice = Money{NullDecimal: m.UnitPrice}
	p.UnitsInStock = m.UnitsInStock
	p.Discontinued = m.Discontinued
	p.CategoryID = m.CategoryID
	return p
}

// AutoMigrate creates or updates the Category and Product tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Category{}, &Product{})
}
