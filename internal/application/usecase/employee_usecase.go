package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logistics-api/internal/application/auth"
	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

// EmployeeUseCase gestión de empleados de una unidad (lo usa el supervisor).
type EmployeeUseCase struct {
	userRepo repository.UserRepository
	unitRepo repository.UnitRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(userRepo repository.UserRepository, unitRepo repository.UnitRepository) *EmployeeUseCase {
	return &EmployeeUseCase{userRepo: userRepo, unitRepo: unitRepo}
}

func (uc *EmployeeUseCase) unit(ctx context.Context, unitID string) (*entity.Unit, error) {
	if unitID == "" {
		return nil, domain.ErrUnitNotFound
	}
	unit, err := uc.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrUnitNotFound
	}
	return unit, nil
}

// Create crea un empleado en la unidad. El rol siempre es employee.
// Devuelve ErrDuplicate si el username ya existe en la unidad.
func (uc *EmployeeUseCase) Create(ctx context.Context, unitID string, in dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	surname := strings.TrimSpace(in.Surname)
	username := auth.NormalizeUsername(in.Username)
	password := strings.TrimSpace(in.Password)
	if name == "" || surname == "" || username == "" || password == "" || len(password) > 72 {
		return nil, domain.ErrInvalidInput
	}
	unit, err := uc.unit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Surname:      surname,
		Username:     username,
		PasswordHash: hash,
		UnitID:       unit.ID,
		Role:         entity.RoleEmployee,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	user.UnitName = unit.Name
	out := dto.FromUser(user)
	return &out, nil
}

// ListByUnit lista los empleados (solo rol employee) de la unidad.
func (uc *EmployeeUseCase) ListByUnit(ctx context.Context, unitID string, limit, offset int) (*dto.EmployeeListResponse, error) {
	if _, err := uc.unit(ctx, unitID); err != nil {
		return nil, err
	}
	list, err := uc.userRepo.ListByUnitAndRole(ctx, unitID, entity.RoleEmployee, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.FromUser(u))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Get obtiene un empleado de la unidad. Otro rol u otra unidad se reporta como no encontrado.
func (uc *EmployeeUseCase) Get(ctx context.Context, unitID, employeeID string) (*dto.UserResponse, error) {
	if _, err := uc.unit(ctx, unitID); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.UnitID != unitID || user.Role != entity.RoleEmployee {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}

// Delete elimina un empleado de la unidad.
func (uc *EmployeeUseCase) Delete(ctx context.Context, unitID, employeeID string) error {
	if _, err := uc.unit(ctx, unitID); err != nil {
		return err
	}
	deleted, err := uc.userRepo.DeleteInUnit(ctx, employeeID, unitID, entity.RoleEmployee)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}
	return nil
}
