package commands

import (
	"context"

	"laundryhub/internal/domain/user"
	reqdto "laundryhub/internal/handler/dto/request"
	"laundryhub/internal/infra"
	"laundryhub/internal/pkg/errs"
	"laundryhub/internal/pkg/password"
	"laundryhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserBanned           = errs.New("account is banned")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	snap, err := a.uow.CommandReads().UserByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if snap.Banned {
		return nil, ErrUserBanned
	}

	if err := password.ComparePassword(snap.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.tokens.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      snap.ID,
		Role:        snap.Role,
		AccessToken: token,
	}, nil
}
