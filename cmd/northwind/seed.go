package main

import (
	"context"
	"errors"
	"github.com/reuben-baek/go-northwind/data"
	"github.com/reuben-baek/go-northwind/domain"
	"github.com/reuben-baek/go-northwind/infra"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type seedProduct struct {
	id           int32
	name         string
	unitPrice    string
	unitsInStock int16
	discontinued bool
}

type seedCategory struct {
	id          int32
	name        string
	description string
	products    []seedProduct
}

var northwind = []seedCategory{
	{1, "Beverages", "Soft drinks, coffees, teas, beers, and ales", []seedProduct{
		{1, "Chai", "18.00", 39, false},
		{2, "Chang", "19.00", 17, false},
		{24, "Guaraná Fantástica", "4.50", 20, true},
	}},
	{2, "Condiments", "Sweet and savory sauces, relishes, spreads, and seasonings", []seedProduct{
		{3, "Aniseed Syrup", "10.00", 13, false},
		{5, "Chef Anton's Gumbo Mix", "21.35", 0, true},
	}},
}

// seed writes the sample catalog in one transaction. Categories that already exist are skipped.
func seed(ctx context.Context, transactionManager data.TransactionManager, repositories *infra.Repositories) error {
	return transactionManager.Do(ctx, func(ctx context.Context) error {
		for _, c := range northwind {
			if _, err := repositories.Categories.FindOne(ctx, c.id); err == nil {
				logrus.WithField("category", c.name).Info("already seeded")
				continue
			} else if !errors.Is(err, data.NotFoundError) {
				return err
			}

			category := domain.NewCategory(c.id, c.name)
			description := c.description
			category.Description = &description
			created, err := repositories.Categories.Create(ctx, *category)
			if err != nil {
				return err
			}

			for _, p := range c.products {
				stock := p.unitsInStock
				product := &domain.Product{
					ProductID:    p.id,
					ProductName:  p.name,
					UnitPrice:    decimal.NewNullDecimal(decimal.RequireFromString(p.unitPrice)),
					UnitsInStock: &stock,
					Discontinued: p.discontinued,
				}
				created.Adopt(product)
				if _, err := repositories.Products.Create(ctx, *product); err != nil {
					return err
				}
			}
			logrus.WithFields(logrus.Fields{
				"category": created.CategoryName,
				"products": created.Products.Len(),
			}).Info("seeded")
		}
		return nil
	})
}
