package main

import (
	"context"
	"log"
	"net/http"

	"feedcompose/internal/config"
	"feedcompose/internal/dbmongo"
	"feedcompose/internal/mediaserver"
)

func main() {
	cfg := config.LoadConfig()

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Close(context.Background())

	storage := dbmongo.NewMediaStorage(mongoClient)
	server := mediaserver.NewHTTPServer(storage)

	log.Printf("Media HTTP server starting on port %s", cfg.Media.Port)
	log.Printf("Serving files at: %s{fileId}", cfg.Media.BaseURL)

	if err := http.ListenAndServe(":"+cfg.Media.Port, server); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
