package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
	httpx "github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/http"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/http/handlers"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/http/middleware"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/infrastructure/repositories"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/mocks"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/services"
)

const rbacModelText = `
[request_definition]
r = sub, role

[policy_definition]
p = sub, role

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, r.role) || r.sub == r.role
`

// TestStack wires the full service graph over in-memory infrastructure:
// miniredis, SQLite, an in-memory Casbin enforcer, and a recording SMS
// mock. The router is the production router; only the broker is absent,
// the guard runs over the in-process auth client.
type TestStack struct {
	Router   *gin.Engine
	Redis    *redis.Client
	Mini     *miniredis.Miniredis
	DB       *gorm.DB
	SMS      *mocks.MockNotificationService
	UserRepo domain.UserRepository
	OTPSvc   domain.OTPService
	TokenSvc domain.TokenService
	RoleSvc  domain.RoleService
	AuthSvc  domain.AuthService
}

func newTestStack(t *testing.T) *TestStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(func() { mr.Close() })
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite")
	require.NoError(t, db.AutoMigrate(&repositories.DBUser{}, &repositories.DBRefreshToken{}))

	m, err := model.NewModelFromString(rbacModelText)
	require.NoError(t, err)
	enforcer, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	_, err = enforcer.AddGroupingPolicy(domain.RoleSuperAdmin, domain.RoleAdmin)
	require.NoError(t, err)
	_, err = enforcer.AddGroupingPolicy(domain.RoleSuperAdmin, domain.RoleSystem)
	require.NoError(t, err)

	sms := mocks.NewMockNotificationService()
	userRepo := repositories.NewUserRepository(db)
	refreshRepo := repositories.NewRefreshTokenRepository(db)

	otpSvc := services.NewOTPService(sms, redisClient, services.OTPConfig{
		TTL:         5 * time.Minute,
		MaxRequests: 3,
		LockoutTTL:  2 * time.Hour,
	})
	tokenSvc := services.NewTokenService(redisClient, refreshRepo, 30*time.Minute, 7*24*time.Hour)
	roleSvc := services.NewRoleService(userRepo, enforcer)
	authSvc := services.NewAuthService(userRepo, otpSvc, tokenSvc)

	guard := middleware.NewGuard(services.NewLocalAuthClient(tokenSvc, roleSvc))
	router := httpx.BuildRouter(handlers.NewAuthHandlers(authSvc, otpSvc, roleSvc), guard)

	return &TestStack{
		Router:   router,
		Redis:    redisClient,
		Mini:     mr,
		DB:       db,
		SMS:      sms,
		UserRepo: userRepo,
		OTPSvc:   otpSvc,
		TokenSvc: tokenSvc,
		RoleSvc:  roleSvc,
		AuthSvc:  authSvc,
	}
}

// storedOTP reads the code for the combined flow straight out of Redis,
// standing in for the SMS the user would have received.
func (s *TestStack) storedOTP(t *testing.T, phone string) string {
	t.Helper()
	code, err := s.Redis.Get(context.Background(), "otp:signup_login:"+phone).Result()
	require.NoError(t, err, "expected an OTP for %s", phone)
	return code
}

func (s *TestStack) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// signIn runs the full OTP journey and returns the issued tokens.
func (s *TestStack) signIn(t *testing.T, phone string) (accessToken, refreshToken string) {
	t.Helper()

	w := s.do(t, "POST", "/auth/signup-login", "", map[string]string{"phoneNumber": phone})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, "POST", "/auth/signup-login-verify", "", map[string]string{
		"phoneNumber": phone,
		"otp":         s.storedOTP(t, phone),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]interface{})
	return data["access_token"].(string), data["refresh_token"].(string)
}
