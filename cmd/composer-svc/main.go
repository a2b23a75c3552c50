package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedcompose/internal/di"
)

func main() {
	log.Println("Initializing application...")
	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Pick up whatever the author left unfinished last session.
	if err := app.Composer.RestoreDraft(context.Background()); err != nil {
		log.Printf("Draft restore skipped: %v", err)
	}

	log.Printf("Composer ready (ceiling=%d chars, %d attachments max)",
		app.Config.Composer.CharacterCeiling, app.Config.Composer.MaxAttachments)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	// Autosave before teardown so nothing typed is lost.
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Composer.SaveDraft(saveCtx); err != nil {
		log.Printf("Draft autosave failed: %v", err)
	}

	app.Shutdown(saveCtx)
	log.Println("Stopped")
}
