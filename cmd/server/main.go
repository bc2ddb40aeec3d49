package main

import (
	"log"

	"github.com/bilalahmed15/sales-navigator/internal/config"
	"github.com/bilalahmed15/sales-navigator/internal/web"
)

func main() {
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Export dir: %s", cfg.ExportDir)

	server := web.NewServer(cfg)

	log.Printf("Server listening on port %s", cfg.Port)
	if err := server.Router().Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
