package infra

import (
	"errors"
	"github.com/reuben-baek/go-northwind/data"
	"github.com/reuben-baek/go-northwind/domain"
)

func productCategoryError(err error, categoryID int32) error {
	if errors.Is(err, data.ForeignKeyViolatedError) {
		return &domain.ForeignKeyError{
			Entity:     "Product",
			ForeignKey: "CategoryId",
			References: "Category.CategoryId",
			Value:      categoryID,
			Err:        err,
		}
	}
	return err
}
