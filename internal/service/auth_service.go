package service

import (
	"context"
	"errors"
	"time"

	"storehub/internal/apierror"
	"storehub/internal/config"
	"storehub/internal/dto"
	"storehub/internal/metrics"
	"storehub/internal/model"
	"storehub/internal/repository"
	"storehub/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the session/auth gate: it validates credentials, issues the
// token pair, and persists the session snapshot that later requests hydrate
// from. Logout revokes by deleting the snapshot.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionKey string) error
	Me(ctx context.Context, userID int) (*dto.UserResponse, error)
}

type authService struct {
	users    repository.UserRepository
	sessions session.Store
	cfg      *config.Config
}

func NewAuthService(users repository.UserRepository, sessions session.Store, cfg *config.Config) AuthService {
	return &authService{users: users, sessions: sessions, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	metrics.AuthAttempts.Inc()

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		metrics.AuthFailures.Inc()
		return nil, apierror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		metrics.AuthFailures.Inc()
		return nil, apierror.ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// Refresh rotates both tokens: the presented refresh token must match the
// persisted snapshot, which is then replaced under a fresh session key.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, apierror.ErrInvalidCredentials
	}

	rec, err := s.sessions.Load(ctx, claims.ID)
	if err != nil || rec.RefreshToken != refreshToken {
		return nil, apierror.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, rec.UserID)
	if err != nil {
		return nil, apierror.ErrInvalidCredentials
	}

	_ = s.sessions.Clear(ctx, claims.ID)
	return s.issueSession(ctx, user)
}

func (s *authService) Logout(ctx context.Context, sessionKey string) error {
	return s.sessions.Clear(ctx, sessionKey)
}

func (s *authService) Me(ctx context.Context, userID int) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (s *authService) issueSession(ctx context.Context, user *model.User) (*dto.LoginResponse, error) {
	jti := uuid.NewString()
	accessDur := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	refreshDur := time.Duration(s.cfg.JWTRefreshHours) * time.Hour

	accessToken, err := s.generateToken(user, jti, accessDur)
	if err != nil {
		return nil, err
	}
	refreshTok, err := s.generateToken(user, jti, refreshDur)
	if err != nil {
		return nil, err
	}

	rec := session.Record{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		BranchID:     user.BranchID,
		AccessToken:  accessToken,
		RefreshToken: refreshTok,
		IssuedAt:     time.Now().UTC(),
	}
	// Snapshot lives as long as the refresh token — afterwards the state is
	// anonymous even if a token resurfaces.
	if err := s.sessions.Save(ctx, jti, rec, refreshDur); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTok,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         userToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.User, jti string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"role":      user.Role,
		"branch_id": user.BranchID,
		"jti":       jti,
		"exp":       time.Now().Add(duration).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

type tokenClaims struct {
	UserID   int    `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	BranchID *int   `json:"branch_id"`
	jwt.RegisteredClaims
}

func (s *authService) parseToken(tokenStr string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

func userToResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		BranchID: u.BranchID,
	}
}
