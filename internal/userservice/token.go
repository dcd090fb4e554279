package userservice

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const tokenIssuer = "blogpages"

var jwtSigningMethod = jwt.SigningMethodHS256

var jwtParser = jwt.NewParser(jwt.WithValidMethods([]string{jwtSigningMethod.Name}))

var (
	// ErrInvalidToken is returned if a token is in some way invalid.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned if a token is expired but otherwise valid.
	ErrExpiredToken = errors.New("expired token")
)

// issueToken signs a bearer token bound to the user id with the given expiry.
func issueToken(secret []byte, userID int, ttl time.Duration) (*Token, error) {
	now := time.Now()
	expiry := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}

	plain, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString(secret)
	if err != nil {
		return nil, err
	}

	return &Token{
		Plain:  plain,
		UserID: userID,
		Expiry: expiry,
	}, nil
}

// verifyToken checks the signature, expiry and issuer of a bearer token and
// returns the user id it is bound to.
func verifyToken(secret []byte, plain string) (int, error) {
	var claims jwt.RegisteredClaims
	tkn, err := jwtParser.ParseWithClaims(plain, &claims, func(_ *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrExpiredToken
		default:
			return 0, ErrInvalidToken
		}
	}

	if !tkn.Valid || claims.Issuer != tokenIssuer {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID < 1 {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
