package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	"handloom/internal/domain/service"
	mockRepo "handloom/internal/mocks/repository"
	mockSvc "handloom/internal/mocks/service"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      *userService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	sessionStore *mockSvc.MockSessionStore
	now          time.Time
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	sessionStore := mockSvc.NewMockSessionStore(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		SessionStore: sessionStore,
		Config:       newTestConfig(2 * time.Hour),
		Logger:       newDiscardLogger(),
	}).(*userService)
	svc.now = fixedClock(now)

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		sessionStore: sessionStore,
		now:          now,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:        "asha",
		Email:           "asha@example.com",
		Password:        "handwoven123",
		PasswordConfirm: "handwoven123",
		Role:            entity.RoleWeaver,
		Address:         "Varanasi",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("handwoven123").Return("bcrypt-hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "asha" && u.PasswordHash == "bcrypt-hash" && u.Role == entity.RoleWeaver
		})).
		Return(nil)

	out, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
	assert.Equal(t, fx.now, out.User.DateJoined)

	body, err := json.Marshal(out.User)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "bcrypt-hash")
	assert.NotContains(t, string(body), "password")
	assert.Contains(t, string(body), `"user_type":"weaver"`)
}

func TestUserService_Register_DefaultsToCustomer(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := validRegisterInput()
	input.Role = ""

	fx.hasher.EXPECT().Hash(mock.Anything).Return("bcrypt-hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleCustomer })).
		Return(nil)

	out, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
}

func TestUserService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestUserService(t)

	input := validRegisterInput()
	input.PasswordConfirm = "different"

	out, err := fx.service.Register(context.Background(), input)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Register_AdminNotSelfRegistrable(t *testing.T) {
	fx := createTestUserService(t)

	input := validRegisterInput()
	input.Role = entity.RoleAdmin

	_, err := fx.service.Register(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("bcrypt-hash", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserConflict)

	_, err := fx.service.Register(ctx, validRegisterInput())
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_DatabaseFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("bcrypt-hash", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := fx.service.Register(ctx, validRegisterInput())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "asha", PasswordHash: "bcrypt-hash", Role: entity.RoleWeaver}
	expiresAt := fx.now.Add(2 * time.Hour)

	fx.userRepo.EXPECT().FindByUsername(ctx, "asha").Return(user, nil)
	fx.hasher.EXPECT().Check("handwoven123", "bcrypt-hash").Return(true)
	fx.sessionStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(s *entity.Session) bool {
			return s.UserID == user.ID && s.ExpiresAt.Equal(expiresAt) && s.ID != ""
		}), 2*time.Hour).
		Return(nil)
	fx.tokenService.EXPECT().
		IssueSessionToken(mock.AnythingOfType("string"), user.ID, "weaver", expiresAt).
		Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "asha", Password: "handwoven123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "asha", PasswordHash: "bcrypt-hash"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Check("whatever", dummyPasswordHash).Return(false)
	fx.userRepo.EXPECT().FindByUsername(ctx, "asha").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "bcrypt-hash").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "asha", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUserService_Login_SessionStoreDown(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "asha", PasswordHash: "bcrypt-hash", Role: entity.RoleCustomer}

	fx.userRepo.EXPECT().FindByUsername(ctx, "asha").Return(user, nil)
	fx.hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(true)
	fx.sessionStore.EXPECT().Save(ctx, mock.Anything, mock.Anything).Return(errors.New("redis: connection refused"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "asha", Password: "handwoven123"})
	assert.ErrorIs(t, err, domainerrors.ErrSessionFailed)
}

func TestUserService_Logout(t *testing.T) {
	t.Run("anonymous is a no-op", func(t *testing.T) {
		fx := createTestUserService(t)

		assert.NoError(t, fx.service.Logout(context.Background(), nil))
	})

	t.Run("deletes the session", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		principal := newPrincipal(entity.RoleCustomer)

		fx.sessionStore.EXPECT().Delete(ctx, principal.SessionID).Return(nil)

		assert.NoError(t, fx.service.Logout(ctx, principal))
	})

	t.Run("store outage still logs out", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		principal := newPrincipal(entity.RoleCustomer)

		fx.sessionStore.EXPECT().Delete(ctx, principal.SessionID).Return(errors.New("dial tcp: connection refused"))

		assert.NoError(t, fx.service.Logout(ctx, principal))
	})
}

func TestUserService_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "asha", Role: entity.RoleDesigner}

	t.Run("live session", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ParseSessionToken("tok").
			Return(&service.SessionClaims{SessionID: "sid", UserID: user.ID}, nil)
		fx.sessionStore.EXPECT().Find(ctx, "sid").
			Return(&entity.Session{ID: "sid", UserID: user.ID, Role: user.Role}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		principal, err := fx.service.Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, &entity.Principal{UserID: user.ID, Username: "asha", Role: entity.RoleDesigner, SessionID: "sid"}, principal)
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ParseSessionToken("forged").Return(nil, errors.New("signature is invalid"))

		_, err := fx.service.Authenticate(context.Background(), "forged")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("logged out session", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ParseSessionToken("tok").
			Return(&service.SessionClaims{SessionID: "sid", UserID: user.ID}, nil)
		fx.sessionStore.EXPECT().Find(ctx, "sid").Return(nil, service.ErrSessionNotFound)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("session belongs to another user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ParseSessionToken("tok").
			Return(&service.SessionClaims{SessionID: "sid", UserID: user.ID}, nil)
		fx.sessionStore.EXPECT().Find(ctx, "sid").
			Return(&entity.Session{ID: "sid", UserID: uuid.New()}, nil)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("own profile", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		principal := newPrincipal(entity.RoleCustomer)
		user := &entity.User{ID: principal.UserID, Username: principal.Username, Bio: "old"}

		fx.userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(user, nil)
		fx.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Bio == "new bio" })).
			Return(nil)

		updated, err := fx.service.UpdateProfile(ctx, principal, principal.UserID, &entity.UserProfilePatch{Bio: stringPtr("new bio")})
		require.NoError(t, err)
		assert.Equal(t, "new bio", updated.Bio)
		assert.Equal(t, fx.now, updated.UpdatedAt)
	})

	t.Run("someone else's profile", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateProfile(context.Background(), newPrincipal(entity.RoleWeaver), uuid.New(), &entity.UserProfilePatch{})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestUserService_RequiresPrincipal(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.ListUsers(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.GetUser(ctx, nil, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, newPrincipal(entity.RoleCustomer), userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
