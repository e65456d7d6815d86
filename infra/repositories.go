package infra

import (
	"github.com/reuben-baek/go-northwind/data"
	"github.com/reuben-baek/go-northwind/domain"
)

type Repositories struct {
	Categories *CategoryRepository
	Products   *ProductRepository
}

func NewRepositories(transactionManager *data.GormTransactionManager) *Repositories {
	productGormRepository := data.NewGormRepository[Product, int32](transactionManager)
	return newRepositories(
		data.NewGormRepository[Category, int32](transactionManager),
		productGormRepository,
		data.NewGormFindByRepository[Product, Category, int32](productGormRepository),
	)
}

// NewInMemoryRepositories keeps the catalog in maps. Name lengths are validated
// and ids must be set by the caller. Foreign keys are not enforced.
func NewInMemoryRepositories(transactionManager *data.DummyTransactionManager) *Repositories {
	productInMemoryRepository := data.NewInMemoryRepository[Product, int32](transactionManager)
	return newRepositories(
		data.NewInMemoryRepository[Category, int32](transactionManager),
		productInMemoryRepository,
		data.NewInMemoryFindByRepository[Product, Category, int32](productInMemoryRepository),
	)
}

func newRepositories(
	categories data.Repository[Category, int32],
	products data.Repository[Product, int32],
	productsByCategory data.FindByRepository[Product, Category],
) *Repositories {
	categoryRepository := data.NewDtoWrapRepository[Category, domain.Category, int32](categories)
	productByCategoryRepository := data.NewDtoWrapFindByRepository[Product, domain.Product, Category, domain.Category](productsByCategory)

	return &Repositories{
		Categories: NewCategoryRepository(categoryRepository, productByCategoryRepository),
		Products: NewProductRepository(
			data.NewDtoWrapRepository[Product, domain.Product, int32](products),
			productByCategoryRepository,
			categoryRepository,
		),
	}
}

var (
	_ domain.CategoryRepository = (*CategoryRepository)(nil)
	_ domain.ProductRepository  = (*ProductRepository)(nil)
)
