package infra

import (
	"context"
	"github.com/reuben-baek/go-northwind/data"
	"github.com/reuben-baek/go-northwind/domain"
)

type CategoryRepository struct {
	data.Repository[domain.Category, int32]
	productBelongToRepository data.FindByRepository[domain.Product, domain.Category]
}

func NewCategoryRepository(
	repository data.Repository[domain.Category, int32],
	productBelongToRepository data.FindByRepository[domain.Product, domain.Category],
) *CategoryRepository {
	return &CategoryRepository{
		Repository:                repository,
		productBelongToRepository: productBelongToRepository,
	}
}

// FindOneWithProducts fills Products with every product whose CategoryId is id.
// Each product's Category points back at the returned category.
func (c *CategoryRepository) FindOneWithProducts(ctx context.Context, id int32) (domain.Category, error) {
	category, err := c.Repository.FindOne(ctx, id)
	if err != nil {
		return category, err
	}
	products, err := c.productBelongToRepository.FindBy(ctx, "Category", category)
	if err != nil {
		return category, err
	}

	category.Products = domain.NewProductSet()
	owner := data.LazyLoadValue(category)
	for i := range products {
		products[i].Category = owner
		category.Products.Add(&products[i])
	}
	return category, nil
}

// Delete fails with a *domain.ForeignKeyError while products still reference the category.
func (c *CategoryRepository) Delete(ctx context.Context, category domain.Category) error {
	return productCategoryError(c.Repository.Delete(ctx, category), category.CategoryID)
}
