package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var testJWT = auth.JWTConfig{Secret: "secreto-de-pruebas", ExpMinutes: 60, Issuer: "almacen-api"}

func newAuthUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return auth.NewAuthUseCase(repo, testJWT), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioYDevuelveToken(t *testing.T) {
	uc, _ := newAuthUseCase()

	resp, err := uc.Register(dto.RegisterRequest{
		Email:    "jefe@almacen.pe",
		Password: "clave-segura-123",
		Name:     "Jefa de almacén",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.Equal(t, "active", resp.User.Status)

	userID, role, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err, "el token emitido debe ser verificable")
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegister_RolPorDefectoEsStaff(t *testing.T) {
	uc, _ := newAuthUseCase()

	resp, err := uc.Register(dto.RegisterRequest{
		Email:    "mecanico@almacen.pe",
		Password: "clave-segura-123",
		Name:     "Mecánico",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, resp.User.Role)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "clave-segura-123", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email vacío debe rechazarse")

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "corta", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "contraseña de menos de 8 caracteres debe rechazarse")

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "clave-segura-123", Name: "x", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol desconocido debe rechazarse")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "clave-segura-123", Name: "uno"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "otra-clave-456", Name: "dos"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "clave-segura-123", Name: "uno"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "clave-segura-123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_NoFiltraQueEmailsExisten(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "clave-segura-123", Name: "uno"})
	require.NoError(t, err)

	_, errInexistente := uc.Login(dto.LoginRequest{Email: "nadie@b.c", Password: "clave-segura-123"})
	_, errClaveMala := uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "clave-equivocada"})

	assert.ErrorIs(t, errInexistente, domain.ErrUnauthorized)
	assert.ErrorIs(t, errClaveMala, domain.ErrUnauthorized,
		"email inexistente y contraseña incorrecta deben responder igual")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, repo := newAuthUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "clave-segura-123", Name: "uno"})
	require.NoError(t, err)
	repo.users["a@b.c"].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "clave-segura-123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
