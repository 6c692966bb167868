package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jaiswalarts/artshop/internal/events"
	"github.com/jaiswalarts/artshop/internal/models"
	"github.com/jaiswalarts/artshop/internal/repo"
	"github.com/jaiswalarts/artshop/internal/transport"
	pkghash "github.com/jaiswalarts/artshop/pkg/hash"
	"github.com/jaiswalarts/artshop/pkg/logging"
	"github.com/jaiswalarts/artshop/pkg/tokens"
)

type AccountService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Issuer
	Events events.Publisher
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

func (s *AccountService) RegisterUser(ctx context.Context, in transport.UserCreate) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "accounts.register_user")

	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if _, err := s.Repo.GetUserByEmail(ctx, in.Email); err == nil {
		l.Warn("register_error", "status", 409, "reason", "email already registered")
		return nil, fmt.Errorf("%w: user email", ErrConflict)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	pwHash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.Repo.CreateUser(ctx, &models.User{
		Firstname:      in.Firstname,
		Lastname:       in.Lastname,
		Email:          in.Email,
		HashedPassword: pwHash,
	})
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, fmt.Errorf("%w: user email", ErrConflict)
		}
		l.Error("register_error", "status", 500, "reason", "cannot create user", "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.publish(ctx, "user_registered", user.ID, user.Email)
	l.Info("register_success", "user_id", user.ID)
	return user, nil
}

func (s *AccountService) RegisterAdmin(ctx context.Context, in transport.AdminCreate) (*models.Admin, error) {
	l := logging.FromContext(ctx).With("svc", "accounts.register_admin")

	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if _, err := s.Repo.GetAdminByEmail(ctx, in.Email); err == nil {
		l.Warn("register_error", "status", 409, "reason", "admin email already registered")
		return nil, fmt.Errorf("%w: admin email", ErrConflict)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	pwHash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	admin, err := s.Repo.CreateAdmin(ctx, &models.Admin{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		HashedPassword: pwHash,
	})
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, fmt.Errorf("%w: admin email", ErrConflict)
		}
		l.Error("register_error", "status", 500, "reason", "cannot create admin", "error", err)
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.publish(ctx, "admin_registered", admin.ID, admin.Email)
	l.Info("register_success", "admin_id", admin.ID)
	return admin, nil
}

// LoginUser returns ErrInvalidCredentials both for an unknown email and for
// a wrong password.
func (s *AccountService) LoginUser(ctx context.Context, in transport.Login) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "accounts.login_user")

	user, err := s.Repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !pkghash.CheckPassword(user.HashedPassword, in.Password) {
		l.Warn("login_failed", "status", 401, "reason", "password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return s.issue(user.Email, tokens.RoleUser, user.ID)
}

func (s *AccountService) LoginAdmin(ctx context.Context, in transport.Login) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "accounts.login_admin")

	admin, err := s.Repo.GetAdminByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if !pkghash.CheckPassword(admin.HashedPassword, in.Password) {
		l.Warn("login_failed", "status", 401, "reason", "password mismatch", "admin_id", admin.ID)
		return nil, ErrInvalidCredentials
	}

	return s.issue(admin.Email, tokens.RoleAdmin, admin.ID)
}

func (s *AccountService) User(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *AccountService) Admin(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := s.Repo.GetAdmin(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return admin, err
}

// hashPassword reports passwords bcrypt cannot take as ErrValidation.
func hashPassword(password string) (string, error) {
	h, err := pkghash.HashPassword(password)
	switch {
	case errors.Is(err, pkghash.ErrEmptyPassword), errors.Is(err, pkghash.ErrPasswordTooLong):
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	case err != nil:
		return "", fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}

func (s *AccountService) issue(email, role string, id uint) (*LoginResult, error) {
	token, exp, err := s.Tokens.Issue(email, role, id)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{AccessToken: token, ExpiresAt: exp}, nil
}

func (s *AccountService) publish(ctx context.Context, typ string, id uint, email string) {
	if s.Events == nil {
		return
	}
	key := strconv.FormatUint(uint64(id), 10)
	ev := events.Event{Type: typ, Key: key, Data: map[string]any{"id": id, "email": email}}
	if err := s.Events.Publish(ctx, events.TopicAccounts, ev); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", events.TopicAccounts, "type", typ, "error", err)
	}
}
