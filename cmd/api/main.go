package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/yt-topic-search/internal/api"
	"github.com/yt-topic-search/internal/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize YouTube API
	youtubeAPI, err := api.NewYouTubeAPI(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize YouTube API: %v", err)
	}

	server := api.NewServer(cfg, youtubeAPI)
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
