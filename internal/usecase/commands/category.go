package commands

import (
	"context"

	"laundryhub/internal/domain/category"
	"laundryhub/internal/domain/user"
	reqdto "laundryhub/internal/handler/dto/request"
	"laundryhub/internal/infra"
	"laundryhub/internal/pkg/errs"
	"laundryhub/internal/pkg/money"
	"laundryhub/internal/usecase/queries"
	"laundryhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotCategoryOwner    = errs.New("category belongs to another provider")
	ErrInvalidCategory     = errs.New("invalid category")
	ErrProviderNotApproved = errs.New("provider is not approved")
)

type CategoryCommands interface {
	Create(ctx context.Context, providerID uuid.UUID, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error)
	Update(ctx context.Context, providerID, categoryID uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error)
	Delete(ctx context.Context, providerID, categoryID uuid.UUID) error
}

type categoryCommandsImpl struct {
	uow             shared.UnitOfWork
	categoryQueries queries.CategoryQueries
}

func NewCategoryCommands(uow shared.UnitOfWork, categoryQueries queries.CategoryQueries) CategoryCommands {
	return &categoryCommandsImpl{
		uow:             uow,
		categoryQueries: categoryQueries,
	}
}

func (c *categoryCommandsImpl) Create(ctx context.Context, providerID uuid.UUID, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error) {
	if err := c.requireApprovedProvider(ctx, providerID); err != nil {
		return nil, err
	}

	cat, err := buildCategory(providerID, req.Name, req.PricingType, req.Price, req.MinKilo, req.MaxKilo)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Create(ctx, tx.DB(), cat)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.categoryQueries.GetByID(ctx, cat.ID())
}

func (c *categoryCommandsImpl) Update(ctx context.Context, providerID, categoryID uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error) {
	snap, err := c.loadOwnedCategory(ctx, categoryID, providerID)
	if err != nil {
		return nil, err
	}

	cat, err := buildCategory(providerID, req.Name, req.PricingType, req.Price, req.MinKilo, req.MaxKilo)
	if err != nil {
		return nil, err
	}
	cat = category.Reconstruct(snap.ID, snap.ProviderID, cat.Name(), cat.PricingType(), cat.UnitPrice(), cat.MinKilo(), cat.MaxKilo(), snap.CreatedAt)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Update(ctx, tx.DB(), cat)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.categoryQueries.GetByID(ctx, categoryID)
}

func (c *categoryCommandsImpl) Delete(ctx context.Context, providerID, categoryID uuid.UUID) error {
	if _, err := c.loadOwnedCategory(ctx, categoryID, providerID); err != nil {
		return err
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Delete(ctx, tx.DB(), categoryID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrInvalidCategory
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *categoryCommandsImpl) requireApprovedProvider(ctx context.Context, providerID uuid.UUID) error {
	snap, err := c.uow.CommandReads().UserByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProviderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.Role != user.RoleProvider.String() {
		return ErrNotProvider
	}
	if snap.ProviderStatus == nil || *snap.ProviderStatus != user.ProviderApproved.String() {
		return ErrProviderNotApproved
	}
	return nil
}

func (c *categoryCommandsImpl) loadOwnedCategory(ctx context.Context, categoryID, providerID uuid.UUID) (*shared.CategorySnapshot, error) {
	snap, err := c.uow.CommandReads().CategoryByID(ctx, categoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.ProviderID != providerID {
		return nil, ErrNotCategoryOwner
	}
	return snap, nil
}

func buildCategory(providerID uuid.UUID, name, pricingTypeRaw string, price decimal.Decimal, minKilo, maxKilo *decimal.Decimal) (*category.Category, error) {
	pricingType, err := category.NewPricingType(pricingTypeRaw)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCategory)
	}
	unitPrice, err := money.FromDecimal(price)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCategory)
	}
	cat, err := category.NewCategory(providerID, name, pricingType, unitPrice, minKilo, maxKilo)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCategory)
	}
	return cat, nil
}
