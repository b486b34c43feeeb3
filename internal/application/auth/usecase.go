package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
	"github.com/jhoicas/logistics-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, logout y alta del admin.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	unitRepo  repository.UnitRepository
	blacklist repository.TokenBlacklist
	jwtCfg    JWTConfig
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	unitRepo repository.UnitRepository,
	blacklist repository.TokenBlacklist,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, unitRepo: unitRepo, blacklist: blacklist, jwtCfg: jwtCfg, now: time.Now}
}

// NormalizeUsername recorta espacios y normaliza a NFC ("José" con tilde combinada == precompuesta).
func NormalizeUsername(username string) string {
	return norm.NFC.String(strings.TrimSpace(username))
}

// HashPassword hashea con bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compara el hash con la contraseña en texto.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login verifica username/password/unit_id, genera JWT y retorna token + perfil.
// Cualquier combinación que no coincida devuelve ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := NormalizeUsername(in.Username)
	unitID := strings.TrimSpace(in.UnitID)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if unitID != "" {
		unit, err := uc.unitRepo.GetByID(ctx, unitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.ErrInvalidCredentials
		}
	}
	user, err := uc.userRepo.GetByUsernameAndUnit(ctx, username, unitID)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	// Sin unidad solo puede entrar el admin.
	if unitID == "" && !user.IsAdmin() {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := entity.ParseRole(user.Role); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.UnitID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      dto.FromUser(user),
	}, nil
}

// Logout revoca el jti del token por el tiempo que le quede de vida.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" {
		return domain.ErrUnauthorized
	}
	ttl := claims.TTL(uc.now())
	if ttl <= 0 {
		return nil
	}
	return uc.blacklist.Revoke(ctx, claims.ID, ttl)
}

// IsRevoked indica si un token fue cerrado con logout.
func (uc *AuthUseCase) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return uc.blacklist.IsRevoked(ctx, jti)
}

// EnsureAdmin crea el admin si no existe. Un admin ya existente no es error.
// Devuelve true si lo creó.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	username = NormalizeUsername(username)
	if username == "" || password == "" {
		return false, domain.ErrInvalidInput
	}
	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	now := uc.now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Admin",
		Surname:      "",
		Username:     username,
		PasswordHash: hash,
		UnitID:       "",
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
