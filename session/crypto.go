package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"github.com/thenewstale/admin-console/models"
)

// normalizeKey pads or truncates the configured key to the 32 bytes AES-256
// requires.
func normalizeKey(key string) []byte {
	if key == "" {
		// Fallback to a default key (not recommended for production)
		key = "default-encryption-key-32-bytes-long"
	}
	if len(key) < 32 {
		key = key + "00000000000000000000000000000000"
	}
	return []byte(key[:32])
}

// encryptSession encrypts the session record before it is stored, so the
// upstream admin token never sits in Redis in the clear.
func encryptSession(sess *models.Session, key string) (string, error) {
	type record struct {
		ID        string `json:"sessionId"`
		Email     string `json:"email"`
		Token     string `json:"token"`
		CreatedAt int64  `json:"createdAt"`
		ExpiresAt int64  `json:"expiresAt"`
	}

	jsonData, err := json.Marshal(record{
		ID:        sess.ID,
		Email:     sess.Email,
		Token:     sess.Token,
		CreatedAt: sess.CreatedAt.Unix(),
		ExpiresAt: sess.ExpiresAt.Unix(),
	})
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(normalizeKey(key))
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, jsonData, nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// decryptSession reverses encryptSession.
func decryptSession(encrypted, key string) (*models.Session, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(normalizeKey(key))
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("invalid session ciphertext")
	}

	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	jsonData, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, err
	}

	var rec struct {
		ID        string `json:"sessionId"`
		Email     string `json:"email"`
		Token     string `json:"token"`
		CreatedAt int64  `json:"createdAt"`
		ExpiresAt int64  `json:"expiresAt"`
	}
	if err := json.Unmarshal(jsonData, &rec); err != nil {
		return nil, err
	}

	return &models.Session{
		ID:        rec.ID,
		Email:     rec.Email,
		Token:     rec.Token,
		CreatedAt: unixTime(rec.CreatedAt),
		ExpiresAt: unixTime(rec.ExpiresAt),
	}, nil
}
