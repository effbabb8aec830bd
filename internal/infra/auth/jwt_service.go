package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mart/config"
	"mart/internal/domain/service"
	"mart/internal/errors"
)

const accessTokenType = "access"

// ErrInvalidToken is returned for tokens that are malformed, expired, or not access tokens.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	issuer       string
	now          func() time.Time
}

// tokenClaims mirrors the map claims written by generateToken.
type tokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    time.Hour,
		now:          time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			svc.accessTTL = cfg.Auth.TokenTTL
		}
		svc.issuer = cfg.Auth.Issuer
	}

	return svc, nil
}

// GenerateAccessToken creates a signed access token for a given user.
func (s *jwtService) GenerateAccessToken(userID int64) (string, error) {
	return s.generateToken(userID, s.accessTTL, s.accessSecret, accessTokenType)
}

// ValidateToken parses an access token and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := new(tokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.Type != accessTokenType {
		return nil, errors.WithStack(ErrInvalidToken)
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected issuer %q", claims.Issuer)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, errors.Wrapf(ErrInvalidToken, "invalid subject %q", claims.Subject)
	}

	return &service.Claims{
		UserID:           userID,
		Type:             claims.Type,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID int64, ttl time.Duration, secret, tokenType string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"iat":  now.Unix(),                    // Issued At
		"exp":  now.Add(ttl).Unix(),           // Expiration Time
		"type": tokenType,
	}
	if s.issuer != "" {
		claims["iss"] = s.issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}
