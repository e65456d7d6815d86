package data

import (
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
	"reflect"
)

// GormRepository persists T through gorm. Writes only touch T's own columns;
// associations are omitted and must be saved through their own repository.
type GormRepository[T any, ID comparable] struct {
	transactionManager *GormTransactionManager
}

func NewGormRepository[T any, ID comparable](transactionManager *GormTransactionManager) *GormRepository[T, ID] {
	return &GormRepository[T, ID]{transactionManager: transactionManager}
}

func (u *GormRepository[T, ID]) db(ctx context.Context) *gorm.DB {
	return u.transactionManager.session(ctx)
}

func (u *GormRepository[T, ID]) FindOne(ctx context.Context, id ID) (T, error) {
	var entity T
	if err := u.db(ctx).First(&entity, id).Error; err != nil {
		return entity, translateError(err)
	}
	return entity, nil
}

func (u *GormRepository[T, ID]) Create(ctx context.Context, entity T) (T, error) {
	var created T
	if err := u.db(ctx).Omit(clause.Associations).Create(&entity).Error; err != nil {
		logrus.Debugf("GormRepository.Create: %T - %v", entity, err)
		return created, translateError(err)
	}
	created = entity
	return created, nil
}

func (u *GormRepository[T, ID]) Update(ctx context.Context, entity T) (T, error) {
	db := u.db(ctx)
	if err := u.checkPrimaryKey(ctx, db, entity); err != nil {
		return entity, err
	}
	// Select("*") so that zero values such as false or NULL are written too.
	result := db.Model(&entity).Select("*").Omit(clause.Associations).Updates(&entity)
	if result.Error != nil {
		logrus.Debugf("GormRepository.Update: %T - %v", entity, result.Error)
		return entity, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity, NotFoundError
	}
	return entity, nil
}

func (u *GormRepository[T, ID]) Delete(ctx context.Context, entity T) error {
	db := u.db(ctx)
	if err := u.checkPrimaryKey(ctx, db, entity); err != nil {
		return err
	}
	result := db.Delete(&entity)
	if result.Error != nil {
		logrus.Debugf("GormRepository.Delete: %T - %v", entity, result.Error)
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return NotFoundError
	}
	return nil
}

func (u *GormRepository[T, ID]) parse(db *gorm.DB) (*schema.Schema, error) {
	var entity T
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&entity); err != nil {
		return nil, err
	}
	return stmt.Schema, nil
}

func (u *GormRepository[T, ID]) checkPrimaryKey(ctx context.Context, db *gorm.DB, entity T) error {
	s, err := u.parse(db)
	if err != nil {
		return err
	}
	if len(s.PrimaryFields) == 0 {
		panic(fmt.Sprintf("entity '%s' has no primary key", s.Name))
	}
	value := reflect.ValueOf(entity)
	for _, field := range s.PrimaryFields {
		if _, zero := field.ValueOf(ctx, value); zero {
			return MissingIDError
		}
	}
	return nil
}

// GormFindByRepository finds T through a belongs-to association on T.
type GormFindByRepository[T any, S any, ID comparable] struct {
	*GormRepository[T, ID]
}

func NewGormFindByRepository[T any, S any, ID comparable](gormRepository *GormRepository[T, ID]) *GormFindByRepository[T, S, ID] {
	return &GormFindByRepository[T, S, ID]{GormRepository: gormRepository}
}

// FindBy returns every T whose foreign key for association name references owner.
func (u *GormFindByRepository[T, S, ID]) FindBy(ctx context.Context, name string, owner S) ([]T, error) {
	db := u.db(ctx)
	s, err := u.parse(db)
	if err != nil {
		return nil, err
	}
	relationship, ok := s.Relationships.Relations[name]
	if !ok || relationship.Type != schema.BelongsTo {
		panic(fmt.Sprintf("FindBy: %s has no belongs-to association %s", s.Name, name))
	}

	ownerValue := reflect.ValueOf(owner)
	conditions := make(map[string]any, len(relationship.References))
	for _, reference := range relationship.References {
		value, zero := reference.PrimaryKey.ValueOf(ctx, ownerValue)
		if zero {
			return nil, MissingIDError
		}
		conditions[reference.ForeignKey.DBName] = value
	}
	logrus.Debugf("GormFindByRepository.FindBy: %s by %s %v", s.Name, name, conditions)

	var entities []T
	if err := db.Where(conditions).Order(clause.OrderByColumn{Column: clause.PrimaryColumn}).Find(&entities).Error; err != nil {
		return nil, translateError(err)
	}
	return entities, nil
}
