package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/mocks"
)

func TestGuard_Authenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		setupClient    func(*mocks.MockAuthClient)
		expectedStatus int
		expectedError  string
		validateCtx    func(t *testing.T, c *gin.Context)
	}{
		{
			name:           "missing header",
			authHeader:     "",
			setupClient:    func(ac *mocks.MockAuthClient) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authorization header required",
		},
		{
			name:           "malformed header",
			authHeader:     "Token abc123",
			setupClient:    func(ac *mocks.MockAuthClient) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid authorization header format",
		},
		{
			name:           "missing scheme",
			authHeader:     "abc123",
			setupClient:    func(ac *mocks.MockAuthClient) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid authorization header format",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupClient: func(ac *mocks.MockAuthClient) {
				ac.ValidateTokenFunc = func(ctx context.Context, accessToken string) (*domain.TokenIdentity, error) {
					return nil, domain.ErrTokenInvalid
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:       "upstream timeout fails closed",
			authHeader: "Bearer some-token",
			setupClient: func(ac *mocks.MockAuthClient) {
				ac.ValidateTokenFunc = func(ctx context.Context, accessToken string) (*domain.TokenIdentity, error) {
					return nil, domain.ErrUpstreamTimeout
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:       "valid token attaches identity",
			authHeader: "Bearer good-token",
			setupClient: func(ac *mocks.MockAuthClient) {
				ac.ValidateTokenFunc = func(ctx context.Context, accessToken string) (*domain.TokenIdentity, error) {
					require.Equal(t, "good-token", accessToken)
					return &domain.TokenIdentity{UserID: 7, Roles: []string{domain.RoleMember}}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateCtx: func(t *testing.T, c *gin.Context) {
				userID, exists := c.Get(ContextUserID)
				require.True(t, exists)
				assert.Equal(t, uint(7), userID)

				roles, exists := c.Get(ContextRoles)
				require.True(t, exists)
				assert.Equal(t, []string{domain.RoleMember}, roles)

				token, exists := c.Get(ContextAccessToken)
				require.True(t, exists)
				assert.Equal(t, "good-token", token)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authClient := mocks.NewMockAuthClient()
			tt.setupClient(authClient)
			guard := NewGuard(authClient)

			var captured *gin.Context
			router := gin.New()
			router.GET("/protected", guard.Authenticate(), func(c *gin.Context) {
				captured = c
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.validateCtx != nil {
				require.NotNil(t, captured)
				tt.validateCtx(t, captured)
			}
		})
	}
}

func TestGuard_RequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	identity := func(ac *mocks.MockAuthClient) {
		ac.ValidateTokenFunc = func(ctx context.Context, accessToken string) (*domain.TokenIdentity, error) {
			return &domain.TokenIdentity{UserID: 7, Roles: []string{domain.RoleMember}}, nil
		}
	}

	tests := []struct {
		name           string
		required       []string
		setupClient    func(*mocks.MockAuthClient)
		expectedStatus int
	}{
		{
			name:     "no roles declared skips the check",
			required: nil,
			setupClient: func(ac *mocks.MockAuthClient) {
				identity(ac)
				ac.ValidateRolesFunc = func(ctx context.Context, userID uint, requiredRoles []string) (bool, error) {
					t.Error("ValidateRoles must not be called with no declared roles")
					return false, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "satisfied requirement",
			required: []string{domain.RoleMember, domain.RoleSoloProvider},
			setupClient: func(ac *mocks.MockAuthClient) {
				identity(ac)
				ac.ValidateRolesFunc = func(ctx context.Context, userID uint, requiredRoles []string) (bool, error) {
					assert.Equal(t, uint(7), userID)
					assert.Equal(t, []string{domain.RoleMember, domain.RoleSoloProvider}, requiredRoles)
					return true, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "unsatisfied requirement",
			required: []string{domain.RoleAdmin},
			setupClient: func(ac *mocks.MockAuthClient) {
				identity(ac)
				ac.ValidateRolesFunc = func(ctx context.Context, userID uint, requiredRoles []string) (bool, error) {
					return false, nil
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "role check failure fails closed",
			required: []string{domain.RoleAdmin},
			setupClient: func(ac *mocks.MockAuthClient) {
				identity(ac)
				ac.ValidateRolesFunc = func(ctx context.Context, userID uint, requiredRoles []string) (bool, error) {
					return false, domain.ErrUpstreamTimeout
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authClient := mocks.NewMockAuthClient()
			tt.setupClient(authClient)
			guard := NewGuard(authClient)

			router := gin.New()
			router.GET("/protected", guard.Authenticate(), guard.RequireRoles(tt.required...), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", "Bearer token")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGuard_RequireRoles_WithoutAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	guard := NewGuard(mocks.NewMockAuthClient())

	router := gin.New()
	// Misregistered route: RequireRoles without Authenticate has no
	// identity in the context and must deny.
	router.GET("/broken", guard.RequireRoles(domain.RoleMember), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest("GET", "/broken", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "User not authenticated")
}
