package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultTTL = 15 * time.Minute
)

var (
	ErrEmptySecret = errors.New("token secret is empty")
	ErrInvalid     = errors.New("invalid token")
)

// AccessClaims is the payload of a bearer token. Subject carries the account email.
type AccessClaims struct {
	Role string `json:"role"`
	UID  string `json:"uid"`
	jwt.RegisteredClaims
}

// AccountID returns the numeric id stored in the uid claim.
func (c *AccessClaims) AccountID() (uint, error) {
	id, err := strconv.ParseUint(c.UID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("uid claim: %w", err)
	}
	return uint(id), nil
}

type Issuer struct {
	Secret []byte
	TTL    time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{Secret: secret, TTL: ttl, now: time.Now}
}

// Issue signs an HS256 access token for the account.
func (i *Issuer) Issue(email, role string, id uint) (string, time.Time, error) {
	if len(i.Secret) == 0 {
		return "", time.Time{}, ErrEmptySecret
	}
	now := time.Now
	if i.now != nil {
		now = i.now
	}
	issuedAt := now().UTC()
	exp := issuedAt.Add(i.TTL)

	claims := AccessClaims{
		Role: role,
		UID:  strconv.FormatUint(uint64(id), 10),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (i *Issuer) Parse(tokenStr string) (*AccessClaims, error) {
	return AccessClaimsFromToken(tokenStr, i.Secret)
}

func AccessClaimsFromToken(tokenStr string, secret []byte) (*AccessClaims, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !tkn.Valid {
		return nil, ErrInvalid
	}
	return &claims, nil
}
