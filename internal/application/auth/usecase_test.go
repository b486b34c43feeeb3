package auth_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistics-api/internal/application/auth"
	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/infrastructure/memory"
	"github.com/jhoicas/logistics-api/pkg/jwt"
)

const testSecret = "test-secret"

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Units().Create(ctx, &entity.Unit{ID: "u1", Name: "Norte", Volume: decimal.NewFromInt(100)}))
	hash, err := auth.HashPassword("12")
	require.NoError(t, err)
	require.NoError(t, s.Users().Create(ctx, &entity.User{
		ID: "e1", Name: "John", Surname: "Smith", Username: "js", PasswordHash: hash, UnitID: "u1", Role: entity.RoleEmployee,
	}))
	uc := auth.NewAuthUseCase(s.Users(), s.Units(), memory.NewTokenBlacklist(),
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"})
	return uc, s
}

func TestLogin_EmpleadoEnSuUnidad(t *testing.T) {
	uc, _ := newAuth(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: " js ", Password: "12", UnitID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Norte", out.User.UnitName)
	assert.Equal(t, entity.RoleEmployee, out.User.Role)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "e1", claims.UserID)
	assert.Equal(t, "u1", claims.UnitID)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuth(t)
	cases := []dto.LoginRequest{
		{Username: "js", Password: "13", UnitID: "u1"},
		{Username: "js", Password: "12", UnitID: "u9"},
		{Username: "js", Password: "12", UnitID: ""},
		{Username: "nadie", Password: "12", UnitID: "u1"},
		{Username: "", Password: "", UnitID: "u1"},
	}
	for _, in := range cases {
		_, err := uc.Login(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "%+v", in)
	}
}

func TestLogin_RolInvalido(t *testing.T) {
	uc, s := newAuth(t)
	hash, _ := auth.HashPassword("pw")
	require.NoError(t, s.Users().Create(context.Background(), &entity.User{
		ID: "x1", Username: "raro", PasswordHash: hash, UnitID: "u1", Role: "manager",
	}))
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "raro", Password: "pw", UnitID: "u1"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestEnsureAdmin_IdempotenteYLogin(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()
	created, err := uc.EnsureAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureAdmin(ctx, "admin", "otra")
	require.NoError(t, err)
	assert.False(t, created)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Empty(t, out.User.UnitID)
}

func TestLogout_RevocaElJTI(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()
	out, err := uc.Login(ctx, dto.LoginRequest{Username: "js", Password: "12", UnitID: "u1"})
	require.NoError(t, err)
	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, claims))
	revoked, err := uc.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, uc.Logout(ctx, nil), domain.ErrUnauthorized)
}

func TestNormalizeUsername_NFC(t *testing.T) {
	combinada := "Jose\u0301"
	precompuesta := "Jos\u00e9"
	assert.Equal(t, precompuesta, auth.NormalizeUsername("  "+combinada+" "))
}
