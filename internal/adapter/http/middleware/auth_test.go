package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gig_escrow/internal/domain/entities"
	mock_interfaces "gig_escrow/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newAuthRouter(dir *mock_interfaces.MockIDirectory) *gin.Engine {
	r := gin.New()
	r.GET("/me", Auth(testSecret, dir), func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id.UserID, "role": id.Role})
	})
	return r
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		header func(t *testing.T) string
		setup  func(dir *mock_interfaces.MockIDirectory)
		want   int
	}{
		{
			name:   "missing header",
			header: func(*testing.T) string { return "" },
			want:   http.StatusUnauthorized,
		},
		{
			name:   "not a bearer token",
			header: func(*testing.T) string { return "Basic abc" },
			want:   http.StatusUnauthorized,
		},
		{
			name:   "wrong secret",
			header: func(t *testing.T) string { return "Bearer " + signToken(t, "other", "alice@example.com", time.Hour) },
			want:   http.StatusUnauthorized,
		},
		{
			name:   "expired",
			header: func(t *testing.T) string { return "Bearer " + signToken(t, testSecret, "alice@example.com", -time.Minute) },
			want:   http.StatusUnauthorized,
		},
		{
			name:   "unknown user",
			header: func(t *testing.T) string { return "Bearer " + signToken(t, testSecret, "ghost@example.com", time.Hour) },
			setup: func(dir *mock_interfaces.MockIDirectory) {
				dir.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(entities.User{}, nil)
			},
			want: http.StatusUnauthorized,
		},
		{
			name:   "directory failure",
			header: func(t *testing.T) string { return "Bearer " + signToken(t, testSecret, "alice@example.com", time.Hour) },
			setup: func(dir *mock_interfaces.MockIDirectory) {
				dir.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(entities.User{}, errors.New("dynamodb down"))
			},
			want: http.StatusInternalServerError,
		},
		{
			name:   "resolved",
			header: func(t *testing.T) string { return "Bearer " + signToken(t, testSecret, "alice@example.com", time.Hour) },
			setup: func(dir *mock_interfaces.MockIDirectory) {
				dir.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").
					Return(entities.User{ID: "client-1", Email: "alice@example.com", Role: entities.RoleClient}, nil)
			},
			want: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := mock_interfaces.NewMockIDirectory(ctrl)
			if tc.setup != nil {
				tc.setup(dir)
			}

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if h := tc.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			newAuthRouter(dir).ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d body=%s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestParseSubject_RejectsOtherAlgorithms(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "alice@example.com"}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseSubject(token, testSecret); err == nil {
		t.Fatalf("expected HS512 token to be rejected")
	}
	if _, err := ParseSubject(token, ""); !errors.Is(err, ErrJWTSecretMissing) {
		t.Fatalf("expected ErrJWTSecretMissing, got %v", err)
	}
}

func TestIdentityFrom_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := IdentityFrom(c); ok {
		t.Fatalf("expected no identity")
	}
}
