package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository/mocks"
	"github.com/vfg2006/launch-planner-api/internal/config"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{SecretKey: "segredo-de-teste"},
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           1,
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "maria@exemplo.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       1,
	}
}

func TestLoginUser(t *testing.T) {
	t.Run("Login válido gera token aceito pelo ValidateToken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, testConfig())

		user := activeUser(t, "Senha@Forte1")
		userRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(user, nil)

		token, err := service.LoginUser(" Maria@Exemplo.com ", "Senha@Forte1")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "maria@exemplo.com", claims.UserEmail)
		assert.Equal(t, 1, claims.UserRoleID)
	})

	t.Run("Senha incorreta retorna credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, testConfig())

		user := activeUser(t, "Senha@Forte1")
		userRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(user, nil)

		token, err := service.LoginUser("maria@exemplo.com", "errada")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário inativo não pode autenticar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, testConfig())

		user := activeUser(t, "Senha@Forte1")
		user.Active = false
		userRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(user, nil)

		_, err := service.LoginUser("maria@exemplo.com", "Senha@Forte1")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Usuário inexistente retorna não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, testConfig())

		userRepo.EXPECT().GetUserByEmail("fantasma@exemplo.com").Return(nil, nil)

		_, err := service.LoginUser("fantasma@exemplo.com", "qualquer")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Novo usuário nasce inativo com senha com hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, testConfig())

		userRepo.EXPECT().GetUserByEmail("novo@exemplo.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.False(t, u.Active)
			assert.Equal(t, 3, u.RoleID)
			assert.NotEqual(t, "Senha@Forte1", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Senha@Forte1")))
			return u, nil
		})

		created, err := service.CreateUser(&domain.User{
			Name:         "João",
			Lastname:     "Souza",
			Email:        "Novo@Exemplo.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "novo@exemplo.com", created.Email)
	})

	t.Run("Email duplicado é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, testConfig())

		userRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(activeUser(t, "Senha@Forte1"), nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@exemplo.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Falha ao consultar email retorna erro de banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, testConfig())

		userRepo.EXPECT().GetUserByEmail("novo@exemplo.com").Return(nil, assert.AnError)

		_, err := service.CreateUser(&domain.User{
			Name:         "João",
			Lastname:     "Souza",
			Email:        "novo@exemplo.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service := NewService(nil, testConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Senha forte passa", "Senha@Forte1", false},
		{"Curta demais falha", "S@f1", true},
		{"Sem maiúscula falha", "senha@forte1", true},
		{"Sem número falha", "Senha@Forte", true},
		{"Sem caractere especial falha", "SenhaForte1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
