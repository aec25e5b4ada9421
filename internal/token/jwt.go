package token

import (
	"errors"
	"time"

	"shopapp/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// 署名不正・期限切れ・形式不正をまとめた認証エラー
	ErrInvalidToken = errors.New("invalid token")
)

// HS256でアクセストークンを発行・検証するサービス。
// subjectは電話番号（ログインID）。
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue はユーザーのトークンを発行する。
func (s *Service) Issue(user *model.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"phoneNumber": user.PhoneNumber,
		"sub":         user.PhoneNumber,
		"iat":         now.Unix(),
		"exp":         now.Add(s.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// ExtractPhoneNumber はトークンを検証してsubject（電話番号）を返す。
// 署名不正・期限切れはすべて ErrInvalidToken。
func (s *Service) ExtractPhoneNumber(rawToken string) (string, error) {
	claims, err := s.parse(rawToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// Validate はトークンがそのユーザーのもので、期限内であることを確認する。
func (s *Service) Validate(rawToken string, user *model.User) error {
	sub, err := s.ExtractPhoneNumber(rawToken)
	if err != nil {
		return err
	}
	if sub != user.PhoneNumber {
		return ErrInvalidToken
	}
	return nil
}

// IsExpired は期限切れかどうかを返す。パース不能も期限切れ扱い。
func (s *Service) IsExpired(rawToken string) bool {
	claims, err := s.parseUnverifiedExpiry(rawToken)
	if err != nil {
		return true
	}
	return claims.Before(time.Now())
}

// パースして署名・expを検証し、claimsを返す
func (s *Service) parse(rawToken string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// 署名だけ検証してexpを取り出す（期限切れでもexpは読む）
func (s *Service) parseUnverifiedExpiry(rawToken string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	tok, err := parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return time.Time{}, ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, ErrInvalidToken
	}
	return time.Unix(int64(exp), 0), nil
}
