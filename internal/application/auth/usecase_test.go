package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/docstore/memory"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/service"
	"github.com/jhoicas/retail-pos-api/pkg/jwt"
)

func newAuthUseCase(t *testing.T) *AuthUseCase {
	t.Helper()
	store := memory.New()
	t.Cleanup(store.Close)
	return NewAuthUseCase(service.NewUsers(store), JWTConfig{
		Secret:     "secreto-de-prueba",
		ExpMinutes: 60,
		Issuer:     "retail-pos-api-test",
	})
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "supersegura1",
		Role:     "Admin",
	}
}

func TestAuth_RegisterNoExponeElHash(t *testing.T) {
	uc := newAuthUseCase(t)
	out, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ana", out.Username)
	assert.True(t, out.IsActive)
}

func TestAuth_RegisterDuplicadoFalla(t *testing.T) {
	uc := newAuthUseCase(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	in := registerRequest()
	in.Email = "otra@example.com" // username repetido basta
	_, err = uc.Register(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuth_PasswordCortoFalla(t *testing.T) {
	uc := newAuthUseCase(t)
	in := registerRequest()
	in.Password = "corta"
	_, err := uc.Register(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuth_LoginDevuelveTokenValido(t *testing.T) {
	uc := newAuthUseCase(t)
	reg, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "supersegura1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := jwt.Parse("secreto-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, "Admin", role)
}

func TestAuth_LoginPorEmail(t *testing.T) {
	uc := newAuthUseCase(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana@example.com", Password: "supersegura1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestAuth_PasswordIncorrectoFalla(t *testing.T) {
	uc := newAuthUseCase(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "incorrecta!"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_UsuarioInactivoFalla(t *testing.T) {
	uc := newAuthUseCase(t)
	reg, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NoError(t, uc.DeactivateUser(context.Background(), reg.ID))

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "supersegura1"})
	require.ErrorIs(t, err, domain.ErrForbidden)
}
