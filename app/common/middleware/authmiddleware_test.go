package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"AtelierAI/app/common/consts/biz"
	"AtelierAI/app/common/util"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, uid int64, expiresIn time.Duration) string {
	t.Helper()
	claims := jwtClaims{
		UserID:   uid,
		Username: "tester",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddlewareInjectsUserId(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	var gotUserId int64
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		uid, err := util.UserIdFromCtx(r.Context())
		require.NoError(t, err)
		gotUserId = uid
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stylist/plan", nil)
	req.AddCookie(&http.Cookie{Name: biz.ACCESSTOKEN, Value: signToken(t, testSecret, 42, time.Hour)})
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserId)
}

func TestAuthMiddlewareHeaderFallback(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	called := false
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stylist/plan", nil)
	req.Header.Set(biz.ACCESSTOKEN, signToken(t, testSecret, 7, time.Hour))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.True(t, called)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stylist/plan", nil))

	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a bad token")
	})

	cases := []struct {
		name  string
		token string
	}{
		{"wrong secret", signToken(t, "some-other-secret", 42, time.Hour)},
		{"expired", signToken(t, testSecret, 42, -time.Hour)},
		{"garbage", "not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stylist/plan", nil)
			req.Header.Set(biz.ACCESSTOKEN, tc.token)
			rec := httptest.NewRecorder()
			handler(rec, req)
			assert.NotEqual(t, http.StatusOK, rec.Code)
		})
	}
}
