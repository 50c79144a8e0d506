package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"event-partners-api/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// HeaderName 合作夥伴放 token 的 header
const HeaderName = "x-api-token"

// TokenVerifier 判斷 x-api-token 的值是否允許通過
type TokenVerifier interface {
	Verify(token string) bool
}

// StaticTokenVerifier 與設定的 token 做常數時間比對；沒設定 token 時一律拒絕
type StaticTokenVerifier struct {
	secret []byte
}

func NewStaticTokenVerifier(secret string) *StaticTokenVerifier {
	return &StaticTokenVerifier{secret: []byte(secret)}
}

func (v *StaticTokenVerifier) Verify(token string) bool {
	if len(v.secret) == 0 || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare(v.secret, []byte(token)) == 1
}

// BcryptTokenVerifier 設定檔只存 token 的 bcrypt hash
type BcryptTokenVerifier struct {
	hash []byte
}

func NewBcryptTokenVerifier(hash string) *BcryptTokenVerifier {
	return &BcryptTokenVerifier{hash: []byte(hash)}
}

func (v *BcryptTokenVerifier) Verify(token string) bool {
	if len(v.hash) == 0 || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(token)) == nil
}

// HashToken 產生 API_TOKEN_HASH 用的 hash
func HashToken(token string) (string, error) {
	if token == "" {
		return "", errors.New("empty token")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// JWTVerifier 接受以 HS256 簽章、sub 等於 partner 的 JWT
type JWTVerifier struct {
	secret  []byte
	partner string
}

func NewJWTVerifier(secret, partner string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), partner: partner}
}

func (v *JWTVerifier) Verify(token string) bool {
	if len(v.secret) == 0 || token == "" {
		return false
	}
	parsed, err := jwt.Parse(token,
		func(*jwt.Token) (interface{}, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(v.partner),
	)
	return err == nil && parsed.Valid
}

// SignPartnerToken 簽發給 partner 使用的 JWT；ttl <= 0 代表不設 exp
func SignPartnerToken(secret, partner string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty secret")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  partner,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// NewVerifier 依設定挑選驗證方式：JWT > bcrypt hash > 明文 token
func NewVerifier(cfg config.AuthConfig, partner string) TokenVerifier {
	switch {
	case cfg.JWTSecret != "":
		return NewJWTVerifier(cfg.JWTSecret, partner)
	case cfg.APITokenHash != "":
		return NewBcryptTokenVerifier(cfg.APITokenHash)
	default:
		return NewStaticTokenVerifier(cfg.APIToken)
	}
}
