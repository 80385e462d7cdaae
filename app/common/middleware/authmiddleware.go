// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package middleware

import (
	stderrors "errors"
	"net/http"

	"AtelierAI/app/common/consts/biz"
	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/common/util"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

type jwtClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the access token locally and injects the user id
// into the request context.
type AuthMiddleware struct {
	Secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{Secret: secret}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := ""
		if cookie, err := r.Cookie(biz.ACCESSTOKEN); err == nil {
			accessToken = cookie.Value
		} else if headerToken := r.Header.Get(biz.ACCESSTOKEN); headerToken != "" {
			accessToken = headerToken
		}

		if accessToken == "" {
			httpx.Error(w, errors.New(int(errno.TokenEmpty), "token is null"))
			return
		}

		claims, err := m.parseToken(accessToken)
		if err != nil {
			if stderrors.Is(err, jwt.ErrTokenExpired) {
				httpx.Error(w, errors.New(int(errno.AccessTokenExpired), "token expired"))
				return
			}
			httpx.Error(w, errors.New(int(errno.TokenInvalid), "invalid token"))
			return
		}

		util.InjectUserId2Ctx(r, claims.UserID)
		next(w, r)
	}
}

func (m *AuthMiddleware) parseToken(tokenStr string) (*jwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(m.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
