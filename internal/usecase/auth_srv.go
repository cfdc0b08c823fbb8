package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientInfo describes where a login came from. It is stored on the session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest, client ClientInfo) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error)
	Logout(ctx context.Context, token uuid.UUID) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest, client ClientInfo) (*response.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email %s: %w", email, apperr.ErrDuplicateKey)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleGuest
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.NewBase(now),

		Email:        email,
		PasswordHash: hashedPassword,
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	// Auto login setelah register
	resp, err := s.startSession(ctx, user, client)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}

	resp, err := s.startSession(ctx, user, client)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, token uuid.UUID) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Warn("Failed to revoke session", zap.Error(err))
		return err
	}

	s.log.Info("User logged out")
	return nil
}

// sessionRetention keeps expired sessions around for a week before purging.
const sessionRetention = 7 * 24 * time.Hour

func (s *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.repo.Session.PurgeExpired(ctx, time.Now().Add(-sessionRetention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("Expired sessions purged", zap.Int64("count", n))
	}
	return n, nil
}

// ==================== HELPER METHODS ====================

// startSession stores a session row and signs a JWT naming it.
func (s *authService) startSession(ctx context.Context, user *entity.User, client ClientInfo) (*response.AuthResponse, error) {
	expiryHours := s.config.JWT.ExpiryHours
	if expiryHours <= 0 {
		expiryHours = 24
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.NewBaseSimple(now),

		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		UserAgent: optional(client.UserAgent),
		IPAddress: optional(client.IPAddress),
		ExpiresAt: now.Add(time.Duration(expiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	token, err := utils.IssueToken(s.config.JWT.Secret, user.ID, session.Token, string(user.Role), session.ExpiresAt)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	resp := response.AuthToResponse(user, token, session.ExpiresAt)
	return &resp, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
