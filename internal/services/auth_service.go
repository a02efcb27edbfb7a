package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// AuthServiceImpl implements domain.AuthService: the combined
// signup/login flow over phone-number OTP.
type AuthServiceImpl struct {
	userRepo domain.UserRepository
	otpSvc   domain.OTPService
	tokenSvc domain.TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo domain.UserRepository, otpSvc domain.OTPService, tokenSvc domain.TokenService) domain.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		otpSvc:   otpSvc,
		tokenSvc: tokenSvc,
	}
}

// SendSignupLoginOTP implements domain.AuthService
func (s *AuthServiceImpl) SendSignupLoginOTP(ctx context.Context, phoneNumber string) error {
	return s.otpSvc.Send(ctx, phoneNumber, domain.PurposeSignupLogin)
}

// VerifySignupLogin implements domain.AuthService. A user record is
// created on first successful verification; the new user starts with an
// empty role set and is provisionally valid in the combined flow.
func (s *AuthServiceImpl) VerifySignupLogin(ctx context.Context, phoneNumber, code string) (*domain.AuthResult, error) {
	if err := s.otpSvc.Verify(ctx, phoneNumber, code, domain.PurposeSignupLogin); err != nil {
		return nil, err
	}

	isNewUser := false
	user, err := s.userRepo.FindByPhone(ctx, phoneNumber)
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &domain.User{
			PhoneNumber: phoneNumber,
			Roles:       []string{},
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		isNewUser = true
		log.Printf("USER_REGISTERED: user_id=%d phone=%s", user.ID, phoneNumber)
	} else if err != nil {
		return nil, err
	}

	tokens, err := s.tokenSvc.Issue(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Tokens:    tokens,
		IsNewUser: isNewUser,
	}, nil
}

// Refresh implements domain.AuthService
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AccessGrant, error) {
	return s.tokenSvc.Refresh(ctx, refreshToken)
}

// Logout implements domain.AuthService. Single-device: only the
// presented access token is revoked.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken string) error {
	return s.tokenSvc.RevokeAccess(ctx, accessToken)
}
