// Package session owns the console's admin session lifecycle: created on
// login, resolved on every privileged request, destroyed on logout or
// upstream 401. The browser only ever holds a signed session id; the upstream
// admin token stays server-side, encrypted at rest.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/thenewstale/admin-console/models"
)

// CookieName is the cookie carrying the signed session id.
const CookieName = "console_session"

// Claims is the JWT payload placed in the session cookie.
type Claims struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
	jwt.StandardClaims
}

// Manager creates, resolves and destroys console sessions.
type Manager struct {
	store     Store
	jwtSecret string
	encKey    string
	ttl       time.Duration
}

// NewManager wires a session manager over the given store.
func NewManager(store Store, jwtSecret, encKey string, ttl time.Duration) *Manager {
	return &Manager{
		store:     store,
		jwtSecret: jwtSecret,
		encKey:    encKey,
		ttl:       ttl,
	}
}

// Create stores a new session for the given admin and returns the session
// record plus the signed cookie value.
func (m *Manager) Create(ctx context.Context, email, upstreamToken string) (*models.Session, string, error) {
	now := time.Now()
	sess := &models.Session{
		ID:        uuid.NewString(),
		Email:     email,
		Token:     upstreamToken,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	encrypted, err := encryptSession(sess, m.encKey)
	if err != nil {
		return nil, "", err
	}

	if err := m.store.Set(ctx, sess.ID, encrypted, m.ttl); err != nil {
		return nil, "", err
	}

	claims := &Claims{
		SessionID: sess.ID,
		Email:     email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: sess.ExpiresAt.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.jwtSecret))
	if err != nil {
		return nil, "", err
	}

	return sess, signed, nil
}

// Resolve validates a cookie value and loads the session it points at.
func (m *Manager) Resolve(ctx context.Context, cookieValue string) (*models.Session, error) {
	claims, err := m.parseClaims(cookieValue)
	if err != nil {
		return nil, err
	}

	encrypted, err := m.store.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}

	sess, err := decryptSession(encrypted, m.encKey)
	if err != nil {
		return nil, err
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = m.store.Delete(ctx, sess.ID)
		return nil, ErrNotFound
	}

	return sess, nil
}

// Destroy removes the session referenced by the cookie value. A cookie that
// no longer parses is treated as already destroyed.
func (m *Manager) Destroy(ctx context.Context, cookieValue string) error {
	claims, err := m.parseClaims(cookieValue)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.SessionID)
}

// DestroyID removes a session by id, used when an upstream call reports 401.
func (m *Manager) DestroyID(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}

// TTL reports the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) parseClaims(cookieValue string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SessionID == "" {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}

func unixTime(ts int64) time.Time {
	return time.Unix(ts, 0)
}
