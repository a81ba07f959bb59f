package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"lycia-backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL: oturum token'ının geçerlilik süresi. Sliding expiry yok,
// süre dolunca kullanıcı tekrar giriş yapar.
const TokenTTL = 7 * time.Hour

// NewSecret: 32 byte rastgele secret üretir (hex). Düz hali sadece
// cookie'de yaşar, veritabanında bcrypt hash'i durur.
func NewSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// SplitTokenValue: "<id>|<secret>" cookie değerini parçalar.
func SplitTokenValue(value string) (id, secret string, ok bool) {
	parts := strings.SplitN(value, "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// MintToken: kullanıcı için yeni bir oturum token'ı oluşturur ve
// cookie'ye yazılacak "<id>|<secret>" değerini döner.
func MintToken(db *gorm.DB, userID string) (string, error) {
	secret, err := NewSecret()
	if err != nil {
		return "", err
	}
	hash, err := HashSecret(secret)
	if err != nil {
		return "", err
	}

	token := models.AuthToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		Hash:      hash,
		ExpiresAt: time.Now().Add(TokenTTL),
	}
	if err := db.Create(&token).Error; err != nil {
		return "", err
	}

	return token.ID + "|" + secret, nil
}

// ResolveToken: token değerinden kullanıcıyı çözer. Token yoksa, süresi
// dolmuşsa veya secret tutmuyorsa nil döner; secret doğru bile olsa
// süresi dolmuş token asla kabul edilmez.
func ResolveToken(db *gorm.DB, value string) *models.User {
	id, secret, ok := SplitTokenValue(value)
	if !ok {
		return nil
	}

	var token models.AuthToken
	if err := db.First(&token, "id = ?", id).Error; err != nil {
		return nil
	}
	if token.Expired(time.Now()) {
		return nil
	}
	if !CheckSecret(token.Hash, secret) {
		return nil
	}

	var user models.User
	if err := db.First(&user, "id = ?", token.UserID).Error; err != nil {
		return nil
	}
	return &user
}
