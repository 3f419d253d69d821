package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type LoginAttempt struct {
	UserID    int64
	IP        string
	UserAgent string
	Success   bool
}

type UserRepository interface {
	GetPasswordForEmail(ctx context.Context, email string) (passwordHash string, userID int64, active bool, err error)
	GetUserWithPermissions(ctx context.Context, userID int64) (*User, error)
	RecordLogin(ctx context.Context, attempt LoginAttempt) error
	TouchLastLogin(ctx context.Context, userID int64) error
}

type TokenGenerator interface {
	GenerateAccessToken(userID int64, email, profile string) (string, error)
	GenerateRefreshToken(userID int64, email, profile string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO, ip, userAgent string) (AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUserWithPermissions(ctx context.Context, userID int64) (*User, error)
	HashPassword(password string) (string, error)
}

type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

func NewJWTTokenGenerator(secret string, accessTTL time.Duration) *JWTTokenGenerator {
	if accessTTL == 0 {
		accessTTL = 15 * time.Minute
	}
	return &JWTTokenGenerator{
		Secret:          []byte(secret),
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * 7 * time.Hour,
	}
}

func (s *Service) Authenticate(ctx context.Context, dto LoginDTO, ip, userAgent string) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	storedHash, userID, active, err := s.userRepo.GetPasswordForEmail(ctx, dto.Email)
	if err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		// failure events keep enough trail for the admin login audit
		_ = s.userRepo.RecordLogin(ctx, LoginAttempt{UserID: userID, IP: ip, UserAgent: userAgent, Success: false})
		return AuthTokens{}, ErrInvalidCredentials
	}

	if !active {
		return AuthTokens{}, ErrUserInactive
	}

	u, err := s.userRepo.GetUserWithPermissions(ctx, userID)
	if err != nil {
		return AuthTokens{}, err
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(u.ID, u.Email, u.Profile)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(u.ID, u.Email, u.Profile)
	if err != nil {
		return AuthTokens{}, err
	}

	_ = s.userRepo.RecordLogin(ctx, LoginAttempt{UserID: u.ID, IP: ip, UserAgent: userAgent, Success: true})
	_ = s.userRepo.TouchLastLogin(ctx, u.ID)

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	userID, err := parseUserID(claims.UserID)
	if err != nil {
		return AuthTokens{}, ErrInvalidToken
	}

	u, err := s.userRepo.GetUserWithPermissions(ctx, userID)
	if err != nil {
		return AuthTokens{}, ErrInvalidToken
	}
	if !u.IsActive {
		return AuthTokens{}, ErrUserInactive
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(u.ID, u.Email, u.Profile)
	if err != nil {
		return AuthTokens{}, err
	}

	newRefreshToken, err := s.tokenGenerator.GenerateRefreshToken(u.ID, u.Email, u.Profile)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

func (s *Service) GetUserWithPermissions(ctx context.Context, userID int64) (*User, error) {
	return s.userRepo.GetUserWithPermissions(ctx, userID)
}

func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID int64, email, profile string) (string, error) {
	return j.signToken(userID, email, profile, j.AccessTokenTTL)
}

func (j *JWTTokenGenerator) GenerateRefreshToken(userID int64, email, profile string) (string, error) {
	return j.signToken(userID, email, profile, j.RefreshTokenTTL)
}

func (j *JWTTokenGenerator) signToken(userID int64, email, profile string, ttl time.Duration) (string, error) {
	now := time.Now()
	subject := fmt.Sprintf("%d", userID)

	claims := &Claims{
		UserID:  subject,
		Email:   email,
		Profile: profile,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

func parseUserID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
