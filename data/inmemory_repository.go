package data

import (
	"cmp"
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
	"reflect"
	"slices"
	"sync"
)

// InMemoryRepository keeps entities in a map keyed by their identity field.
// Every method works on copies, so callers never share state with the store.
// Entities with a Validate method are validated on Create and Update.
type InMemoryRepository[T any, ID comparable] struct {
	m                  sync.RWMutex
	database           map[ID]T
	transactionManager TransactionManager
}

func NewInMemoryRepository[T any, ID comparable](transactionManager TransactionManager) *InMemoryRepository[T, ID] {
	return &InMemoryRepository[T, ID]{
		database:           make(map[ID]T),
		transactionManager: transactionManager,
	}
}

type validator interface {
	Validate() error
}

func validate(entity any) error {
	if v, ok := entity.(validator); ok {
		return v.Validate()
	}
	return nil
}

func (u *InMemoryRepository[T, ID]) FindOne(ctx context.Context, id ID) (T, error) {
	u.m.RLock()
	defer u.m.RUnlock()
	if v, ok := u.database[id]; ok {
		return v, nil
	}
	var v T
	return v, NotFoundError
}

func (u *InMemoryRepository[T, ID]) Create(ctx context.Context, entity T) (T, error) {
	var v T
	logrus.Debugf("InMemoryRepository.Create: transaction [%v] entity [%+v]", u.transactionManager.Get(ctx), entity)
	id, zero := findID[T, ID](entity)
	if zero {
		return v, MissingIDError
	}
	if err := validate(entity); err != nil {
		return v, err
	}
	u.m.Lock()
	defer u.m.Unlock()
	if _, ok := u.database[id]; ok {
		return v, DuplicatedKeyError
	}
	u.database[id] = entity
	return entity, nil
}

func (u *InMemoryRepository[T, ID]) Update(ctx context.Context, entity T) (T, error) {
	var v T
	logrus.Debugf("InMemoryRepository.Update: transaction [%v] entity [%+v]", u.transactionManager.Get(ctx), entity)
	id, zero := findID[T, ID](entity)
	if zero {
		return v, MissingIDError
	}
	if err := validate(entity); err != nil {
		return v, err
	}
	u.m.Lock()
	defer u.m.Unlock()
	if _, ok := u.database[id]; !ok {
		return v, NotFoundError
	}
	u.database[id] = entity
	return entity, nil
}

func (u *InMemoryRepository[T, ID]) Delete(ctx context.Context, entity T) error {
	logrus.Debugf("InMemoryRepository.Delete: transaction [%v] entity [%+v]", u.transactionManager.Get(ctx), entity)
	id, zero := findID[T, ID](entity)
	if zero {
		return MissingIDError
	}
	u.m.Lock()
	defer u.m.Unlock()
	if _, ok := u.database[id]; !ok {
		return NotFoundError
	}
	delete(u.database, id)
	return nil
}

// InMemoryFindByRepository finds T through the field named after the association
// plus "ID", the same naming gorm uses for belongs-to foreign keys.
// Results are ordered by T's identity.
type InMemoryFindByRepository[T any, S any, ID cmp.Ordered] struct {
	*InMemoryRepository[T, ID]
}

func NewInMemoryFindByRepository[T any, S any, ID cmp.Ordered](repository *InMemoryRepository[T, ID]) *InMemoryFindByRepository[T, S, ID] {
	return &InMemoryFindByRepository[T, S, ID]{InMemoryRepository: repository}
}

func (u *InMemoryFindByRepository[T, S, ID]) FindBy(ctx context.Context, name string, owner S) ([]T, error) {
	entityType := reflect.TypeFor[T]()
	foreignKey, ok := entityType.FieldByName(name + "ID")
	if !ok {
		panic(fmt.Sprintf("FindBy: %s has no foreign key %sID", entityType, name))
	}
	ownerValue := reflect.Indirect(reflect.ValueOf(owner))
	ownerID := ownerValue.FieldByIndex(idFieldIndex(ownerValue.Type()))
	if ownerID.IsZero() {
		return nil, MissingIDError
	}

	u.m.RLock()
	defer u.m.RUnlock()
	ids := make([]ID, 0)
	for id, entity := range u.database {
		if reflect.ValueOf(entity).FieldByIndex(foreignKey.Index).Equal(ownerID) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	entities := make([]T, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, u.database[id])
	}
	return entities, nil
}
