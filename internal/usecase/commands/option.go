package commands

import (
	"context"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/infra"
	"kantine-order-api/internal/pkg/errs"
	"kantine-order-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateOptionParams struct {
	Name             string
	PriceOere        int64
	Availability     int
	MaxOrderQuantity int
}

type OptionPatch struct {
	Name             *string
	PriceOere        *int64
	Availability     *int
	MaxOrderQuantity *int
}

type OptionCommands interface {
	Create(ctx context.Context, params CreateOptionParams) (*catalog.Option, error)
	Update(ctx context.Context, id uuid.UUID, p OptionPatch) (*catalog.Option, error)
	Delete(ctx context.Context, id uuid.UUID, confirm bool) error
}

type optionCommandsImpl struct {
	repo OptionRepository
}

func NewOptionCommands(repo OptionRepository) OptionCommands {
	return &optionCommandsImpl{repo: repo}
}

func (u *optionCommandsImpl) Create(ctx context.Context, params CreateOptionParams) (*catalog.Option, error) {
	entity, err := catalog.NewOption(params.Name, params.PriceOere, params.Availability, params.MaxOrderQuantity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.repo.Insert(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateName
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return u.reload(ctx, entity.ID())
}

func (u *optionCommandsImpl) Update(ctx context.Context, id uuid.UUID, p OptionPatch) (*catalog.Option, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	merged, err := existing.Apply(
		patch.Coalesce(p.Name, existing.Name()),
		patch.Coalesce(p.PriceOere, existing.PriceOere()),
		patch.Coalesce(p.Availability, existing.Availability()),
		patch.Coalesce(p.MaxOrderQuantity, existing.MaxOrderQuantity()),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.repo.Update(ctx, merged); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrOptionNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateName
		default:
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	return u.reload(ctx, id)
}

func (u *optionCommandsImpl) Delete(ctx context.Context, id uuid.UUID, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	if err := u.repo.DeleteByID(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrOptionNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrReferencedByOrders
		default:
			return errs.Mark(err, ErrStoreUnavailable)
		}
	}
	return nil
}

func (u *optionCommandsImpl) reload(ctx context.Context, id uuid.UUID) (*catalog.Option, error) {
	stored, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return stored, nil
}
