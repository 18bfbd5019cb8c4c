package utils // package utils provides helpers for session tokens and password checks

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// SessionCookieName is the cookie that carries the admin session token.
const SessionCookieName = "session"

// SessionToken is a signed HS256 JWT kept in an httpOnly cookie.  The token
// is the whole session: there is no server-side session store and nothing to
// rotate, validity is checked statelessly on every request.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

var errInvalidSession = errors.New("invalid session token")

// NewSessionToken builds and signs a session JWT for the admin identified by
// email.  Claims are the subject (sub), expiration (exp) and issued at (iat).
func NewSessionToken(secret, email string, ttlHours int) (SessionToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
    claims := jwt.MapClaims{
        "sub": email,
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken validates a session JWT and returns its subject.  Any
// parse failure, signature mismatch, wrong signing method or expired token
// yields an error.
func ParseSessionToken(secret, raw string) (string, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, errInvalidSession
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return "", errInvalidSession
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return "", errInvalidSession
    }
    sub, ok := claims["sub"].(string)
    if !ok || sub == "" {
        return "", errInvalidSession
    }
    return sub, nil
}
