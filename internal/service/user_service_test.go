// internal/service/user_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"finledger/internal/auth"
	"finledger/internal/domain"
	"finledger/internal/util"
	"finledger/pkg/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userFixture struct {
	userRepo     *MockUserRepository
	dbBeginner   *MockDBBeginner
	dbExecutor   *MockDBExecutor
	txController *MockTxController
	tokens       *auth.TokenManager
	service      UserService
}

func newUserFixture() *userFixture {
	f := &userFixture{
		userRepo:     new(MockUserRepository),
		dbBeginner:   new(MockDBBeginner),
		dbExecutor:   new(MockDBExecutor),
		txController: new(MockTxController),
		tokens:       auth.NewTokenManager("test-secret", time.Hour),
	}
	f.service = NewUserService(
		f.dbBeginner,
		f.dbExecutor,
		f.userRepo,
		f.tokens,
		func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return f.txController, nil
		},
		func(tx db.TxController) error {
			return f.txController.Commit()
		},
		func(tx db.TxController) {
			_ = f.txController.Rollback()
		},
	)
	return f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newUserFixture()

		f.userRepo.On("GetUserByEmail", ctx, mock.Anything, "fake@mail.com").Return(nil, util.ErrNotFound).Once()
		f.userRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()
		f.txController.On("Commit").Return(nil).Once()
		f.txController.On("Rollback").Return(nil).Maybe()

		user, err := f.service.Register(ctx, "fake valid user", "fake@mail.com", "fake_password")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "fake@mail.com", user.Email)
		// The stored credential is a hash of the supplied password, not the password itself.
		assert.NotEqual(t, "fake_password", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("fake_password")))

		mock.AssertExpectationsForObjects(t, f.userRepo, f.txController)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		f := newUserFixture()
		existing := domain.NewUser("fake valid user", "fake@mail.com", "fake_password_hash")

		f.userRepo.On("GetUserByEmail", ctx, mock.Anything, "fake@mail.com").Return(existing, nil).Once()
		f.txController.On("Rollback").Return(nil).Once()

		user, err := f.service.Register(ctx, "fake valid user", "fake@mail.com", "fake_password")

		assert.ErrorIs(t, err, util.ErrDuplicateEntry)
		assert.Nil(t, user)
		f.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
		f.txController.AssertNotCalled(t, "Commit")
	})

	t.Run("MissingFields", func(t *testing.T) {
		f := newUserFixture()

		user, err := f.service.Register(ctx, "", "fake@mail.com", "fake_password")

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, user)
		f.userRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newUserFixture()
		hashed, err := bcrypt.GenerateFromPassword([]byte("fake_password"), bcrypt.MinCost)
		require.NoError(t, err)
		user := domain.NewUser("fake valid user", "fake@mail.com", string(hashed))

		f.userRepo.On("GetUserByEmail", ctx, f.dbExecutor, "fake@mail.com").Return(user, nil).Once()

		got, token, err := f.service.Authenticate(ctx, "fake@mail.com", "fake_password")

		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		require.NotEmpty(t, token)

		// The token must verify and carry the user identifier.
		subject, err := f.tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, subject)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		f := newUserFixture()
		hashed, err := bcrypt.GenerateFromPassword([]byte("fake_password"), bcrypt.MinCost)
		require.NoError(t, err)
		user := domain.NewUser("fake valid user", "fake@mail.com", string(hashed))

		f.userRepo.On("GetUserByEmail", ctx, f.dbExecutor, "fake@mail.com").Return(user, nil).Once()

		got, token, err := f.service.Authenticate(ctx, "fake@mail.com", "wrong_password")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Nil(t, got)
		assert.Empty(t, token)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		f := newUserFixture()

		f.userRepo.On("GetUserByEmail", ctx, f.dbExecutor, "nobody@mail.com").Return(nil, util.ErrNotFound).Once()

		got, token, err := f.service.Authenticate(ctx, "nobody@mail.com", "fake_password")

		// Identical failure for unknown email and wrong password.
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Nil(t, got)
		assert.Empty(t, token)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newUserFixture()
		user := domain.NewUser("fake valid user", "fake@mail.com", "fake_password_hash")

		f.userRepo.On("GetUserByID", ctx, f.dbExecutor, user.ID).Return(user, nil).Once()

		got, err := f.service.GetProfile(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		f := newUserFixture()

		f.userRepo.On("GetUserByID", ctx, f.dbExecutor, "missing-user").Return(nil, util.ErrNotFound).Once()

		got, err := f.service.GetProfile(ctx, "missing-user")

		assert.ErrorIs(t, err, util.ErrUserNotFound)
		assert.Nil(t, got)
	})
}
