package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"handloom/config"
	deliverycontext "handloom/internal/delivery/context"
	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	"handloom/internal/domain/service"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 24 * time.Hour

// dummyPasswordHash is checked against when the username is unknown so both
// login failure paths cost one bcrypt comparison.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	sessionStore service.SessionStore
	sessionTTL   time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	SessionStore service.SessionStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	sessionTTL := defaultSessionTTL
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		sessionTTL = params.Config.Session.TTL
	}

	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		sessionStore: params.SessionStore,
		sessionTTL:   sessionTTL,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the sign-up form, hashes the password and stores the account.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Password != input.PasswordConfirm {
		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	role := input.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !role.IsSelfRegistrable() {
		return nil, validationError("user_type must be one of customer, weaver, designer")
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" {
		return nil, validationError("username and email are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()
	user := &entity.User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		PasswordHash:   hashedPassword,
		Role:           role,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Phone:          input.Phone,
		Address:        input.Address,
		ProfilePicture: input.ProfilePicture,
		Bio:            input.Bio,
		DateJoined:     now,
		UpdatedAt:      now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			srv.log(ctx).Info("Registration rejected, username or email taken", slog.String("username", username))

			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, databaseError(err, "create user")
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID), slog.String("role", role.String()))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login checks credentials and opens a session. Unknown users and wrong
// passwords produce the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		srv.hasher.Check(input.Password, dummyPasswordHash)

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	case err != nil:
		return nil, databaseError(err, "find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Any("user_id", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	now := srv.now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(srv.sessionTTL),
	}

	if err := srv.sessionStore.Save(ctx, session, srv.sessionTTL); err != nil {
		srv.log(ctx).Error("Failed to store session", slog.Any("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSessionFailed, err.Error())
	}

	token, err := srv.tokenService.IssueSessionToken(session.ID, user.ID, user.Role.String(), session.ExpiresAt)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSessionFailed, err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return &usecase.LoginOutput{
		User:      user,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout drops the caller's session. It never fails: when the store cannot be
// reached, the session still lapses at its TTL and the cookie is cleared anyway.
func (srv *userService) Logout(ctx context.Context, principal *entity.Principal) error {
	if principal == nil || principal.SessionID == "" {
		return nil
	}

	if err := srv.sessionStore.Delete(ctx, principal.SessionID); err != nil {
		srv.log(ctx).Warn("Failed to delete session on logout",
			slog.Any("user_id", principal.UserID),
			slog.String("session_id", principal.SessionID),
			slog.Any("error", err),
		)

		return nil
	}

	srv.log(ctx).Info("User logged out", slog.Any("user_id", principal.UserID))

	return nil
}

// Authenticate resolves a token to a live session and its user.
func (srv *userService) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := srv.tokenService.ParseSessionToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	session, err := srv.sessionStore.Find(ctx, claims.SessionID)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	case err != nil:
		return nil, errors.Wrap(domainerrors.ErrSessionFailed, err.Error())
	}

	if session.UserID != claims.UserID {
		srv.log(ctx).Warn("Session token does not match stored session", slog.String("session_id", session.ID))

		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	case err != nil:
		return nil, databaseError(err, "find session user")
	}

	return &entity.Principal{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: session.ID,
	}, nil
}

func (srv *userService) GetUser(ctx context.Context, principal *entity.Principal, userID uuid.UUID) (*entity.User, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	return srv.findUser(ctx, userID)
}

func (srv *userService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, databaseError(err, "find user")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, principal *entity.Principal) ([]*entity.User, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, databaseError(err, "list users")
	}

	return users, nil
}

// UpdateProfile edits profile fields. Only the user themself or an admin may do so.
func (srv *userService) UpdateProfile(ctx context.Context, principal *entity.Principal, userID uuid.UUID, patch *entity.UserProfilePatch) (*entity.User, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if principal.UserID != userID && !principal.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}
	if patch != nil && patch.Email != nil && isBlank(*patch.Email) {
		return nil, validationError("email cannot be empty")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)
	user.UpdatedAt = srv.now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, databaseError(err, "update user")
	}

	srv.log(ctx).Info("User profile updated", slog.Any("user_id", user.ID))

	return user, nil
}
