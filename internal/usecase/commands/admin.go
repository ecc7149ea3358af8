package commands

import (
	"context"
	"log/slog"

	"laundryhub/internal/domain/notification"
	"laundryhub/internal/domain/user"
	"laundryhub/internal/infra"
	"laundryhub/internal/pkg/errs"
	"laundryhub/internal/usecase/queries"
	"laundryhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrCannotModerateAdmin = errs.New("admin accounts cannot be moderated")

type AdminCommands interface {
	ApproveProvider(ctx context.Context, providerID uuid.UUID) (*queries.UserView, error)
	RejectProvider(ctx context.Context, providerID uuid.UUID) (*queries.UserView, error)
	BanUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error)
	UnbanUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error)
}

type adminCommandsImpl struct {
	uow           shared.UnitOfWork
	notifications NotificationWriter
	userQueries   queries.UserQueries
}

func NewAdminCommands(uow shared.UnitOfWork, notifications NotificationWriter, userQueries queries.UserQueries) AdminCommands {
	return &adminCommandsImpl{
		uow:           uow,
		notifications: notifications,
		userQueries:   userQueries,
	}
}

func (a *adminCommandsImpl) ApproveProvider(ctx context.Context, providerID uuid.UUID) (*queries.UserView, error) {
	if err := a.setProviderStatus(ctx, providerID, user.ProviderApproved); err != nil {
		return nil, err
	}
	a.notifyAccount(ctx, providerID, "Your provider account has been approved. You can now publish services")
	return a.userQueries.GetCurrentUser(ctx, providerID)
}

func (a *adminCommandsImpl) RejectProvider(ctx context.Context, providerID uuid.UUID) (*queries.UserView, error) {
	if err := a.setProviderStatus(ctx, providerID, user.ProviderRejected); err != nil {
		return nil, err
	}
	a.notifyAccount(ctx, providerID, "Your provider application was rejected")
	return a.userQueries.GetCurrentUser(ctx, providerID)
}

func (a *adminCommandsImpl) BanUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	if err := a.setBanned(ctx, userID, true); err != nil {
		return nil, err
	}
	return a.loadUnscoped(ctx, userID)
}

func (a *adminCommandsImpl) UnbanUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	if err := a.setBanned(ctx, userID, false); err != nil {
		return nil, err
	}
	a.notifyAccount(ctx, userID, "Your account has been reinstated")
	return a.loadUnscoped(ctx, userID)
}

func (a *adminCommandsImpl) setProviderStatus(ctx context.Context, providerID uuid.UUID, status user.ProviderStatus) error {
	snap, err := a.uow.CommandReads().UserByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.Role != user.RoleProvider.String() {
		return ErrNotProvider
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetProviderStatus(ctx, tx.DB(), providerID, status)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (a *adminCommandsImpl) setBanned(ctx context.Context, userID uuid.UUID, banned bool) error {
	snap, err := a.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.Role == user.RoleAdmin.String() {
		return ErrCannotModerateAdmin
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().SetBanned(ctx, tx.DB(), userID, banned); err != nil {
			return err
		}
		// Banned providers also lose their approved listing
		if snap.Role == user.RoleProvider.String() {
			status := user.ProviderBanned
			if !banned {
				status = user.ProviderApproved
			}
			return tx.Users().SetProviderStatus(ctx, tx.DB(), userID, status)
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// loadUnscoped reads through the snapshot store so banned accounts are still
// visible to admins.
func (a *adminCommandsImpl) loadUnscoped(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	snap, err := a.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var view queries.UserView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &view, nil
}

func (a *adminCommandsImpl) notifyAccount(ctx context.Context, userID uuid.UUID, message string) {
	n := notification.New(userID, notification.TypeAccountUpdated, message)
	if err := a.notifications.Create(ctx, n); err != nil {
		slog.Warn("failed to write notification", "user_id", userID, "error", err)
	}
}
