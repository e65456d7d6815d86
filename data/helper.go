package data

import (
	"fmt"
	"reflect"
)

const idTag = "data"

// findID returns the value of the entity's identity field and whether it is zero.
// The identity field is the one tagged `data:"id"`, or else the field named ID.
func findID[T any, ID comparable](entity T) (ID, bool) {
	valueOfEntity := reflect.ValueOf(entity)
	if valueOfEntity.Kind() == reflect.Pointer {
		valueOfEntity = reflect.Indirect(valueOfEntity)
	}
	if valueOfEntity.Kind() != reflect.Struct {
		panic(fmt.Sprintf("entity '%s' is not struct type", valueOfEntity.Type()))
	}
	value := valueOfEntity.FieldByIndex(idFieldIndex(valueOfEntity.Type()))
	if !value.Comparable() {
		panic(fmt.Sprintf("ID field type '%s' of '%s' is not comparable", value.Type(), valueOfEntity.Type()))
	}
	id, ok := value.Interface().(ID)
	if !ok {
		panic(fmt.Sprintf("ID field type '%s' of '%s' is different from ID type constraint", value.Type(), valueOfEntity.Type()))
	}
	return id, value.IsZero()
}

func idFieldIndex(entityType reflect.Type) []int {
	for i := 0; i < entityType.NumField(); i++ {
		field := entityType.Field(i)
		if field.Tag.Get(idTag) == "id" {
			return field.Index
		}
	}
	if field, ok := entityType.FieldByName("ID"); ok {
		return field.Index
	}
	panic(fmt.Sprintf("entity '%s' has no ID field", entityType))
}
