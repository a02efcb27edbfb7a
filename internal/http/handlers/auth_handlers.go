package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	otpSvc  domain.OTPService
	roleSvc domain.RoleService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, otpSvc domain.OTPService, roleSvc domain.RoleService) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		otpSvc:  otpSvc,
		roleSvc: roleSvc,
	}
}

// SignupLoginRequest represents the combined signup/login OTP request
type SignupLoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// SignupLoginVerifyRequest represents OTP verification for the combined flow
type SignupLoginVerifyRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}

// RefreshRequest represents token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// GrantRoleRequest represents an administrative role grant
type GrantRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SignupLogin handles OTP issuance for the combined signup/login flow
func (h *AuthHandlers) SignupLogin(c *gin.Context) {
	var req SignupLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.authSvc.SendSignupLoginOTP(c.Request.Context(), req.PhoneNumber); err != nil {
		if errors.Is(err, domain.ErrOTPRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Too many OTP requests. Try again later."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully"})
}

// SignupLoginVerify handles OTP verification and token issuance
func (h *AuthHandlers) SignupLoginVerify(c *gin.Context) {
	var req SignupLoginVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := h.authSvc.VerifySignupLogin(c.Request.Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP expired or not found"})
		case errors.Is(err, domain.ErrOTPInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"access_token":             result.Tokens.AccessToken,
			"refresh_token":            result.Tokens.RefreshToken,
			"expires_in":               result.Tokens.ExpiresIn,
			"refresh_token_expires_in": result.Tokens.RefreshExpiresIn,
		},
		"isNewUser": result.IsNewUser,
		"roles":     result.User.Roles,
	})
}

// Refresh handles access token renewal
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	grant, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrRefreshTokenInvalid) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired refresh token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Token refresh failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"access_token": grant.AccessToken,
			"expires_in":   grant.ExpiresIn,
		},
	})
}

// Logout revokes the presented access token (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	token, exists := c.Get(middleware.ContextAccessToken)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access token not found"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Me returns the identity resolved by the guard (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found in context"})
		return
	}
	roles, _ := c.Get(middleware.ContextRoles)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user_id": userID,
			"roles":   roles,
		},
	})
}

// RemoveBlock lifts the OTP lockout for a phone number (admin only)
func (h *AuthHandlers) RemoveBlock(c *gin.Context) {
	var req SignupLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.otpSvc.RemoveLockout(c.Request.Context(), req.PhoneNumber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove block"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Block removed"})
}

// GrantRole assigns a role tag to a user (admin only)
func (h *AuthHandlers) GrantRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
		return
	}

	var req GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.roleSvc.GrantRole(c.Request.Context(), uint(userID), req.Role); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownRole):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown or non-grantable role"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to grant role"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Role granted"})
}
