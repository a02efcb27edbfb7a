package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/config"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/infrastructure/auth"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/infrastructure/database"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/infrastructure/notifications"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/infrastructure/repositories"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	UserRepo    domain.UserRepository
	RefreshRepo domain.RefreshTokenRepository

	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	TokenSvc        domain.TokenService
	RoleSvc         domain.RoleService
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	cas, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return nil, err
	}
	if err := cas.SeedRoleGraph(); err != nil {
		return nil, err
	}
	c.Casbin = cas

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	c.UserRepo = repositories.NewUserRepository(db)
	c.RefreshRepo = repositories.NewRefreshTokenRepository(db)

	c.NotificationSvc = notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.RedisClient, services.OTPConfig{
		TTL:         cfg.OTP_TTL,
		MaxRequests: cfg.OTP_MaxRequests,
		LockoutTTL:  cfg.OTP_LockoutTTL,
		TestMode:    cfg.OTP_TestMode,
		TestPhone:   cfg.OTP_TestPhone,
		TestCode:    cfg.OTP_TestCode,
	})
	c.TokenSvc = services.NewTokenService(c.RedisClient, c.RefreshRepo, cfg.AccessTTL, cfg.RefreshTTL)
	c.RoleSvc = services.NewRoleService(c.UserRepo, cas.E)
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.OTPSvc, c.TokenSvc)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
