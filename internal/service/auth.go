package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

const tokenTTL = 24 * time.Hour

// revokedKeyPrefix namespaces denylisted token IDs in Redis.
const revokedKeyPrefix = "revoked_token:"

// AuthService owns registration, credential verification and the session
// token lifecycle. The Redis client is optional; without it tokens simply
// expire on their own and logout is client-side only.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	redis     *redis.Client
}

func NewAuthService(db *gorm.DB, jwtSecret string, redisClient *redis.Client) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		redis:     redisClient,
	}
}

// Register creates an account and its blank profile in one transaction and
// returns a session token for it. Uniqueness of username and email is
// checked explicitly before the write so callers get a friendly conflict
// instead of a bare constraint violation.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error) {
	if fieldErrs := validateRegistration(req); len(fieldErrs) > 0 {
		return nil, "", fieldErrs
	}

	var existing models.User
	if err := s.db.WithContext(ctx).Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, "", ErrUsernameTaken
	}
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{
			UserID: user.ID,
			Role:   models.RoleUser,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(&user, models.RoleUser)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login resolves the identifier against both the username and email
// columns, verifies the password, and checks the caller's claimed role
// against the role stored on the profile. Any mismatch yields no session.
func (s *AuthService) Login(ctx context.Context, identifier, password, claimedRole string) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// No profile row means the account never set one up: treat as "user".
	role := models.RoleUser
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		role = profile.Role
	}

	if claimedRole != role {
		return nil, "", fmt.Errorf("%w: logged in as %q but account role is %q", ErrRoleMismatch, claimedRole, role)
	}

	token, err := s.GenerateToken(&user, role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// GenerateToken issues a signed session token for the user.
func (s *AuthService) GenerateToken(user *models.User, role string) (string, error) {
	now := time.Now()
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a session token, rejecting tokens that
// were revoked at logout.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	var claims types.TokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if s.redis != nil && claims.ID != "" {
		n, err := s.redis.Exists(ctx, revokedKeyPrefix+claims.ID).Result()
		if err == nil && n > 0 {
			return nil, errors.New("token revoked")
		}
	}

	return &claims, nil
}

// RevokeToken ends a session by denylisting the token's ID until the token
// would have expired anyway. A no-op without Redis: the client discards
// the token and it ages out on its own.
func (s *AuthService) RevokeToken(ctx context.Context, tokenString string) error {
	if s.redis == nil {
		return nil
	}

	claims, err := s.ValidateToken(ctx, tokenString)
	if err != nil {
		return err
	}

	ttl := tokenTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	return s.redis.Set(ctx, revokedKeyPrefix+claims.ID, 1, ttl).Err()
}

func validateRegistration(req *types.RegisterRequest) FieldErrors {
	errs := FieldErrors{}
	if req.Username == "" {
		errs["username"] = "username is required"
	}
	if req.Email == "" {
		errs["email"] = "email is required"
	}
	if len(req.Password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	}
	if req.Password != req.PasswordConfirm {
		errs["password_confirm"] = "passwords do not match"
	}
	return errs
}
