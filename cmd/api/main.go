package main

import (
	"log"
	"os"

	"summarizer-backend/internal/shared/config"
	"summarizer-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir %s: %v", cfg.UploadDir, err)
	}

	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
