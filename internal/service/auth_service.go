package service

import (
	"context"
	"errors"

	"skyhi-pos/internal/auth"
	"skyhi-pos/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenSigner issues access tokens for authenticated users.
type TokenSigner interface {
	Sign(userID uint, role model.Role) (string, error)
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// AuthService handles registration, login and role resolution. The admin
// allow-list is re-evaluated on every authentication event so that adding an
// email retroactively promotes an existing account. The upgrade is one-way;
// removal from the list never demotes anyone automatically.
type AuthService struct {
	users  UserRepo
	hasher PasswordHasher
	tokens TokenSigner
	admins *auth.AdminList
	log    *zap.Logger
}

func NewAuthService(users UserRepo, hasher PasswordHasher, tokens TokenSigner, admins *auth.AdminList, log *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		admins: admins,
		log:    log,
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if in.Name == "" {
		return nil, "", validationf("name", "required")
	}
	email := auth.NormalizeEmail(in.Email)
	if email == "" {
		return nil, "", validationf("email", "required")
	}
	if len(in.Password) < 4 {
		return nil, "", validationf("password", "must be at least 4 characters")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	role := model.RoleUser
	if s.admins.Contains(email) {
		role = model.RoleAdmin
	}
	user := &model.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        in.Phone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, auth.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	if err := s.promote(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves verified claims to the stored account. Called by the
// bearer middleware on every request, which is also where allow-list
// promotion picks up accounts added to the list after registration.
func (s *AuthService) Authenticate(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if err := s.promote(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// promote applies the allow-list upgrade when needed. Idempotent.
func (s *AuthService) promote(ctx context.Context, user *model.User) error {
	if user.Role == model.RoleAdmin || !s.admins.Contains(user.Email) {
		return nil
	}
	user.Role = model.RoleAdmin
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}
	s.log.Info("user promoted to admin via allow-list", zap.Uint("user_id", user.ID))
	return nil
}

// MakeAdmin manually promotes an account by email. Admin only; the router
// gates it.
func (s *AuthService) MakeAdmin(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, validationf("email", "required")
	}
	user, err := s.users.GetByEmail(ctx, auth.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != model.RoleAdmin {
		user.Role = model.RoleAdmin
		if err := s.users.Save(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// ListUsers returns all accounts, newest first.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
