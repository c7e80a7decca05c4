package commands

import (
	"context"
	"log/slog"

	"innkeeper/internal/domain/staff"
	reqdto "innkeeper/internal/handler/dto/request"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/readstore"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/pkg/jwt"
	"innkeeper/internal/pkg/password"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound        = errs.New("staff user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrStaffInactive        = errs.New("staff user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	StaffID   uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	staffStore *readstore.StaffReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, staffStore *readstore.StaffReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		staffStore: staffStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	row, err := a.validateStaff(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(row.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(row.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(row.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Staff().UpdateLastLogin(ctx, tx.DB(), row.ID); updateErr != nil {
			slog.Warn("failed to update last login", "staff_id", row.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "staff_id", row.ID, "error", err.Error())
	}

	return &LoginResult{
		StaffID: row.ID,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	view, err := a.staffStore.FindAuthorizedByID(ctx, claims.StaffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStaffNotFound)
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrStaffInactive
	}

	role, err := staff.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	newRefreshToken, err := a.jwtService.GenerateRefreshToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateStaff(ctx context.Context, credentials staff.Credentials) (*readstore.CredentialsRow, error) {
	row, err := a.staffStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	if !row.IsActive {
		return nil, ErrStaffInactive
	}

	if err := password.ComparePassword(row.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return row, nil
}
