package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/config"
	httpx "github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/http"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/http/handlers"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/http/middleware"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/rpc"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	// Answer authorization RPCs from guards in other services. The
	// broker being down only degrades remote guards, which fail closed
	// on their own; the local HTTP surface still serves.
	rpcServer, err := rpc.NewServer(cfg.RabbitURL, cfg.RabbitQueue, c.TokenSvc, c.RoleSvc)
	if err != nil {
		log.Printf("rpc: serving disabled, broker unavailable: %v", err)
	} else {
		defer rpcServer.Close()
		go func() {
			if err := rpcServer.Serve(context.Background()); err != nil {
				log.Printf("rpc: serve stopped: %v", err)
			}
		}()
	}

	guard := middleware.NewGuard(services.NewLocalAuthClient(c.TokenSvc, c.RoleSvc))
	authH := handlers.NewAuthHandlers(c.AuthSvc, c.OTPSvc, c.RoleSvc)

	r := httpx.BuildRouter(authH, guard)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
