package commands

import (
	"context"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/infra"
	"kantine-order-api/internal/pkg/errs"
	"kantine-order-api/internal/pkg/patch"

	"github.com/google/uuid"
)

// WindowParams carries a product's daily order window as raw clock fields.
type WindowParams struct {
	FromHour   int
	FromMinute int
	ToHour     int
	ToMinute   int
}

func (w WindowParams) toDomain() (catalog.OrderWindow, error) {
	from, err := catalog.NewWindowTime(w.FromHour, w.FromMinute)
	if err != nil {
		return catalog.OrderWindow{}, err
	}
	to, err := catalog.NewWindowTime(w.ToHour, w.ToMinute)
	if err != nil {
		return catalog.OrderWindow{}, err
	}
	return catalog.NewOrderWindow(from, to)
}

func windowParamsOf(w catalog.OrderWindow) WindowParams {
	return WindowParams{
		FromHour:   w.From().Hour(),
		FromMinute: w.From().Minute(),
		ToHour:     w.To().Hour(),
		ToMinute:   w.To().Minute(),
	}
}

type CreateProductParams struct {
	Name             string
	PriceOere        int64
	Availability     int
	MaxOrderQuantity int
	OrderWindow      WindowParams
}

type ProductPatch struct {
	Name             *string
	PriceOere        *int64
	Availability     *int
	MaxOrderQuantity *int
	OrderWindow      *WindowParams
}

type ProductCommands interface {
	Create(ctx context.Context, params CreateProductParams) (*catalog.Product, error)
	Update(ctx context.Context, id uuid.UUID, p ProductPatch) (*catalog.Product, error)
	Delete(ctx context.Context, id uuid.UUID, confirm bool) error
}

type productCommandsImpl struct {
	repo ProductRepository
}

func NewProductCommands(repo ProductRepository) ProductCommands {
	return &productCommandsImpl{repo: repo}
}

func (u *productCommandsImpl) Create(ctx context.Context, params CreateProductParams) (*catalog.Product, error) {
	window, err := params.OrderWindow.toDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := catalog.NewProduct(params.Name, params.PriceOere, params.Availability, params.MaxOrderQuantity, window)
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

func (u *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, p ProductPatch) (*catalog.Product, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	window, err := patch.Coalesce(p.OrderWindow, windowParamsOf(existing.OrderWindow())).toDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	merged, err := existing.Apply(
		patch.Coalesce(p.Name, existing.Name()),
		patch.Coalesce(p.PriceOere, existing.PriceOere()),
		patch.Coalesce(p.Availability, existing.Availability()),
		patch.Coalesce(p.MaxOrderQuantity, existing.MaxOrderQuantity()),
		window,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.repo.Update(ctx, merged); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrProductNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateName
		default:
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	return u.reload(ctx, id)
}

func (u *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	if err := u.repo.DeleteByID(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrProductNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrReferencedByOrders
		default:
			return errs.Mark(err, ErrStoreUnavailable)
		}
	}
	return nil
}

func (u *productCommandsImpl) reload(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	stored, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return stored, nil
}
