package data

import "context"

// DTO maps a persistence type to its domain model M and back.
// From returns the DTO built from m; it is any because Go has no self type.
type DTO[M any] interface {
	To() M
	From(m M) any
}

type DtoWrapRepository[D DTO[M], M any, ID comparable] struct {
	dtoRepository Repository[D, ID]
}

func NewDtoWrapRepository[D DTO[M], M any, ID comparable](dtoRepository Repository[D, ID]) *DtoWrapRepository[D, M, ID] {
	return &DtoWrapRepository[D, M, ID]{
		dtoRepository: dtoRepository,
	}
}

func (d *DtoWrapRepository[D, M, ID]) FindOne(ctx context.Context, id ID) (M, error) {
	dto, err := d.dtoRepository.FindOne(ctx, id)
	if err != nil {
		var m M
		return m, err
	}
	return dto.To(), nil
}

func (d *DtoWrapRepository[D, M, ID]) Create(ctx context.Context, entity M) (M, error) {
	created, err := d.dtoRepository.Create(ctx, toDTO[D](entity))
	if err != nil {
		return entity, err
	}
	return created.To(), nil
}

func (d *DtoWrapRepository[D, M, ID]) Update(ctx context.Context, entity M) (M, error) {
	updated, err := d.dtoRepository.Update(ctx, toDTO[D](entity))
	if err != nil {
		return entity, err
	}
	return updated.To(), nil
}

func (d *DtoWrapRepository[D, M, ID]) Delete(ctx context.Context, entity M) error {
	return d.dtoRepository.Delete(ctx, toDTO[D](entity))
}

type DtoWrapFindByRepository[D DTO[M], M any, SD DTO[S], S any] struct {
	findByRepository FindByRepository[D, SD]
}

func NewDtoWrapFindByRepository[D DTO[M], M any, SD DTO[S], S any](findByRepository FindByRepository[D, SD]) *DtoWrapFindByRepository[D, M, SD, S] {
	return &DtoWrapFindByRepository[D, M, SD, S]{findByRepository: findByRepository}
}

func (d *DtoWrapFindByRepository[D, M, SD, S]) FindBy(ctx context.Context, name string, owner S) ([]M, error) {
	dtos, err := d.findByRepository.FindBy(ctx, name, toDTO[SD](owner))
	if err != nil {
		return nil, err
	}
	models := make([]M, 0, len(dtos))
	for _, v := range dtos {
		models = append(models, v.To())
	}
	return models, nil
}

func toDTO[D DTO[M], M any](m M) D {
	var dto D
	return dto.From(m).(D)
}
