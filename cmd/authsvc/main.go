package main

import (
	"log"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/app"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
