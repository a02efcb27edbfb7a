package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// OTPServiceImpl implements domain.OTPService using Redis persistence.
// Codes are 4-digit, short-lived, low-value secrets; a non-cryptographic
// uniform generator is an intentional simplification.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	config          OTPConfig
}

type OTPConfig struct {
	TTL         time.Duration
	MaxRequests int
	LockoutTTL  time.Duration
	// TestMode reserves TestPhone for integration runs: the fixed
	// TestCode is stored and no SMS leaves the system.
	TestMode  bool
	TestPhone string
	TestCode  string
}

// NewOTPService creates a new Redis-based OTP service
func NewOTPService(notificationSvc domain.NotificationService, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		config:          config,
	}
}

func otpKey(purpose domain.OTPPurpose, phone string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, phone)
}

func requestKey(phone string) string { return "otp:req:" + phone }
func lockoutKey(phone string) string { return "otp:block:" + phone }

// Send implements domain.OTPService. An active lockout blocks issuance
// outright; otherwise a fresh code overwrites any prior one for the
// same (purpose, phone) pair and the request counter window slides.
func (s *OTPServiceImpl) Send(ctx context.Context, phoneNumber string, purpose domain.OTPPurpose) error {
	blocked, err := s.redisClient.Exists(ctx, lockoutKey(phoneNumber)).Result()
	if err != nil {
		return fmt.Errorf("failed to check OTP lockout: %w", err)
	}
	if blocked > 0 {
		return domain.ErrOTPRateLimited
	}

	code := s.generateCode(phoneNumber)

	if err := s.redisClient.Set(ctx, otpKey(purpose, phoneNumber), code, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	// Atomic increment closes the read-modify-write race under
	// concurrent sends for the same phone number. EXPIRE resets the
	// window to a full TTL from now on every request.
	count, err := s.redisClient.Incr(ctx, requestKey(phoneNumber)).Result()
	if err != nil {
		return fmt.Errorf("failed to count OTP request: %w", err)
	}
	if err := s.redisClient.Expire(ctx, requestKey(phoneNumber), s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to reset OTP request window: %w", err)
	}

	// The request that reaches the limit still completes; the lockout
	// takes effect starting with the next one.
	if count == int64(s.config.MaxRequests) {
		if err := s.redisClient.Set(ctx, lockoutKey(phoneNumber), 1, s.config.LockoutTTL).Err(); err != nil {
			return fmt.Errorf("failed to set OTP lockout: %w", err)
		}
	}

	if s.isTestNumber(phoneNumber) {
		return nil
	}

	// Best-effort delivery: a failed dispatch is logged, not surfaced.
	if err := s.notificationSvc.SendSMS(phoneNumber, smsCopy(purpose, code, s.config.TTL)); err != nil {
		log.Printf("OTP_SMS_FAILED: phone=%s purpose=%s error=%v", phoneNumber, purpose, err)
	}

	return nil
}

// Verify implements domain.OTPService. A mismatch leaves the stored
// code in place so the caller may retry until it expires; a match
// consumes it.
func (s *OTPServiceImpl) Verify(ctx context.Context, phoneNumber, code string, purpose domain.OTPPurpose) error {
	key := otpKey(purpose, phoneNumber)

	stored, err := s.redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return domain.ErrOTPNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	if stored != code {
		return domain.ErrOTPInvalid
	}

	// Single use
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}

	return nil
}

// RemoveLockout implements domain.OTPService. Administrative override;
// idempotent.
func (s *OTPServiceImpl) RemoveLockout(ctx context.Context, phoneNumber string) error {
	if err := s.redisClient.Del(ctx, lockoutKey(phoneNumber)).Err(); err != nil {
		return fmt.Errorf("failed to remove OTP lockout: %w", err)
	}
	return nil
}

func (s *OTPServiceImpl) generateCode(phoneNumber string) string {
	if s.isTestNumber(phoneNumber) {
		return s.config.TestCode
	}
	return fmt.Sprintf("%d", 1000+rand.Intn(9000))
}

func (s *OTPServiceImpl) isTestNumber(phoneNumber string) bool {
	return s.config.TestMode && s.config.TestPhone != "" && phoneNumber == s.config.TestPhone
}

func smsCopy(purpose domain.OTPPurpose, code string, ttl time.Duration) string {
	minutes := int(ttl.Minutes())
	switch purpose {
	case domain.PurposeRegistration:
		return fmt.Sprintf("Your registration code is %s. It expires in %d minutes.", code, minutes)
	case domain.PurposeLogin:
		return fmt.Sprintf("Your login code is %s. It expires in %d minutes.", code, minutes)
	default:
		return fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, minutes)
	}
}
