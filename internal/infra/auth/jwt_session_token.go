package auth

import (
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultIssuer = "gatehouse"

// jwtSessionTokenService signs session references as HS256 JWTs.
type jwtSessionTokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTSessionTokenService is the constructor for jwtSessionTokenService.
func NewJWTSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	issuer := cfg.Env.ServiceName
	if issuer == "" {
		issuer = defaultIssuer
	}

	return &jwtSessionTokenService{
		secret: []byte(cfg.Session.Secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token whose jti claim is the session ID.
func (s *jwtSessionTokenService) Issue(sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sessionID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

// Parse validates the token and extracts the session ID.
func (s *jwtSessionTokenService) Parse(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse session token")
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid session id in token")
	}

	return sessionID, nil
}
