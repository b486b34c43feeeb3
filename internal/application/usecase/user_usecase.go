package usecase

import (
	"context"

	"github.com/jhoicas/logistics-api/internal/application/auth"
	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio sobre el usuario autenticado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile devuelve el perfil del usuario. Si su unidad ya no existe unit_name queda vacío.
func (uc *UserUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}

// ChangePassword valida la contraseña anterior y guarda el hash de la nueva.
func (uc *UserUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if in.OldPassword == "" || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	// bcrypt no acepta más de 72 bytes.
	if len(in.NewPassword) > 72 {
		return domain.ErrInvalidInput
	}
	if in.OldPassword == in.NewPassword {
		return domain.ErrSamePassword
	}
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !auth.CheckPassword(user.PasswordHash, in.OldPassword) {
		return domain.ErrWrongPassword
	}
	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(ctx, userID, hash)
}
