package infra

import (
	"context"
	"github.com/reuben-baek/go-northwind/data"
	"github.com/reuben-baek/go-northwind/domain"
)

// ProductRepository attaches a lazily loaded Category to every product it returns.
// The category is loaded with the ctx of the call that returned the product.
type ProductRepository struct {
	repository                 data.Repository[domain.Product, int32]
	categoryBelongToRepository data.FindByRepository[domain.Product, domain.Category]
	categoryRepository         data.Repository[domain.Category, int32]
}

func NewProductRepository(
	repository data.Repository[domain.Product, int32],
	categoryBelongToRepository data.FindByRepository[domain.Product, domain.Category],
	categoryRepository data.Repository[domain.Category, int32],
) *ProductRepository {
	return &ProductRepository{
		repository:                 repository,
		categoryBelongToRepository: categoryBelongToRepository,
		categoryRepository:         categoryRepository,
	}
}

func (p *ProductRepository) FindOne(ctx context.Context, id int32) (domain.Product, error) {
	found, err := p.repository.FindOne(ctx, id)
	if err != nil {
		return found, err
	}
	return p.withCategory(ctx, found), nil
}

func (p *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := checkCategory(product); err != nil {
		return product, err
	}
	created, err := p.repository.Create(ctx, product)
	if err != nil {
		return product, productCategoryError(err, product.CategoryID)
	}
	return p.withCategory(ctx, created), nil
}

func (p *ProductRepository) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := checkCategory(product); err != nil {
		return product, err
	}
	updated, err := p.repository.Update(ctx, product)
	if err != nil {
		return product, productCategoryError(err, product.CategoryID)
	}
	return p.withCategory(ctx, updated), nil
}

func (p *ProductRepository) Delete(ctx context.Context, product domain.Product) error {
	return p.repository.Delete(ctx, product)
}

func (p *ProductRepository) FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	products, err := p.categoryBelongToRepository.FindBy(ctx, "Category", category)
	if err != nil {
		return nil, err
	}
	owner := data.LazyLoadValue(category)
	for i := range products {
		products[i].Category = owner
	}
	return products, nil
}

func (p *ProductRepository) withCategory(ctx context.Context, product domain.Product) domain.Product {
	categoryID := product.CategoryID
	product.Category = data.LazyLoadFn(func() (domain.Category, error) {
		return p.categoryRepository.FindOne(ctx, categoryID)
	})
	return product
}

func checkCategory(product domain.Product) error {
	if product.CategoryConsistent() {
		return nil
	}
	category, _ := data.Materialized(product.Category)
	return &domain.ReferenceMismatchError{
		Entity: "Product",
		Field:  "Category",
		Want:   product.CategoryID,
		Got:    category.CategoryID,
	}
}
