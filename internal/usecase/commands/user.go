package commands

import (
	"context"

	"laundryhub/internal/domain/user"
	reqdto "laundryhub/internal/handler/dto/request"
	"laundryhub/internal/infra"
	"laundryhub/internal/pkg/errs"
	"laundryhub/internal/pkg/password"
	"laundryhub/internal/usecase/queries"
	"laundryhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken           = errs.New("email is already registered")
	ErrInvalidInput         = errs.New("invalid input")
	ErrNotProvider          = errs.New("account is not a provider")
	ErrWrongPassword        = errs.New("current password is incorrect")
	ErrNotificationNotFound = errs.New("notification not found")
)

type UserCommands interface {
	RegisterCustomer(ctx context.Context, req reqdto.RegisterCustomerRequest) (*queries.UserView, error)
	RegisterProvider(ctx context.Context, req reqdto.RegisterProviderRequest) (*queries.UserView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.UserView, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req reqdto.ChangePasswordRequest) error
	ToggleAvailability(ctx context.Context, userID uuid.UUID) (*queries.UserView, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

type userCommandsImpl struct {
	uow           shared.UnitOfWork
	notifications NotificationWriter
	userQueries   queries.UserQueries
}

func NewUserCommands(uow shared.UnitOfWork, notifications NotificationWriter, userQueries queries.UserQueries) UserCommands {
	return &userCommandsImpl{
		uow:           uow,
		notifications: notifications,
		userQueries:   userQueries,
	}
}

func (u *userCommandsImpl) RegisterCustomer(ctx context.Context, req reqdto.RegisterCustomerRequest) (*queries.UserView, error) {
	email, contact, hash, err := validateRegistration(req.Email, req.ContactNumber, req.Password)
	if err != nil {
		return nil, err
	}

	account := user.NewCustomer(email, hash, contact, req.FullName, req.Address)
	if err := u.createUser(ctx, account); err != nil {
		return nil, err
	}
	return u.userQueries.GetCurrentUser(ctx, account.ID())
}

func (u *userCommandsImpl) RegisterProvider(ctx context.Context, req reqdto.RegisterProviderRequest) (*queries.UserView, error) {
	email, contact, hash, err := validateRegistration(req.Email, req.ContactNumber, req.Password)
	if err != nil {
		return nil, err
	}

	account := user.NewProvider(email, hash, contact, req.ShopName, req.ShopAddress)
	if err := u.createUser(ctx, account); err != nil {
		return nil, err
	}
	return u.userQueries.GetCurrentUser(ctx, account.ID())
}

func (u *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.UserView, error) {
	snap, err := u.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	account, err := userFromSnapshot(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	contact, err := user.NewContactNumber(req.ContactNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	if account.Role() == user.RoleProvider {
		account.UpdateShop(req.ShopName, req.ShopAddress, contact)
	} else {
		account.UpdateProfile(req.FullName, req.Address, contact)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateProfile(ctx, tx.DB(), account)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.userQueries.GetCurrentUser(ctx, userID)
}

func (u *userCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, req reqdto.ChangePasswordRequest) error {
	snap, err := u.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(snap.PasswordHash, req.CurrentPassword); err != nil {
		return ErrWrongPassword
	}

	if _, err := user.NewPassword(req.NewPassword); err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}
	hash, err := password.HashPassword(req.NewPassword)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdatePassword(ctx, tx.DB(), userID, hash)
	})
}

func (u *userCommandsImpl) ToggleAvailability(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	snap, err := u.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.Role != user.RoleProvider.String() {
		return nil, ErrNotProvider
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetAvailability(ctx, tx.DB(), userID, !snap.IsAvailable)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.userQueries.GetCurrentUser(ctx, userID)
}

func (u *userCommandsImpl) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	snap, err := u.uow.CommandReads().NotificationByID(ctx, notificationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotificationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.UserID != userID {
		return ErrNotificationNotFound
	}
	return u.notifications.MarkRead(ctx, notificationID)
}

func (u *userCommandsImpl) createUser(ctx context.Context, account *user.User) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), account)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrEmailTaken
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func validateRegistration(rawEmail, rawContact, rawPassword string) (user.Email, user.ContactNumber, string, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return user.Email{}, user.ContactNumber{}, "", errs.Mark(err, ErrInvalidInput)
	}
	contact, err := user.NewContactNumber(rawContact)
	if err != nil {
		return user.Email{}, user.ContactNumber{}, "", errs.Mark(err, ErrInvalidInput)
	}
	if _, err := user.NewPassword(rawPassword); err != nil {
		return user.Email{}, user.ContactNumber{}, "", errs.Mark(err, ErrInvalidInput)
	}
	hash, err := password.HashPassword(rawPassword)
	if err != nil {
		return user.Email{}, user.ContactNumber{}, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return email, contact, hash, nil
}
