package di

import (
	"context"
	"log"
	"os"
	"strconv"

	"feedcompose/internal/common"
	"feedcompose/internal/composer"
	"feedcompose/internal/config"
	"feedcompose/internal/dbmongo"
	"feedcompose/internal/dbmysql"
	"feedcompose/internal/dispatch"
	"feedcompose/internal/ingest"
	"feedcompose/internal/linkpreview"
	"feedcompose/internal/notify"
)

// Application bundles everything a composer binary needs after wiring.
type Application struct {
	Config   *config.Config
	Queue    *dispatch.Queue
	Hub      *notify.Hub
	Mongo    *dbmongo.MongoClient
	Composer *composer.Composer
}

// Shutdown stops the dispatch queue and closes external connections.
func (a *Application) Shutdown(ctx context.Context) {
	if a.Composer != nil {
		a.Composer.Close()
	}
	if a.Queue != nil {
		a.Queue.Shutdown()
	}
	if a.Mongo != nil {
		if err := a.Mongo.Close(ctx); err != nil {
			log.Printf("MongoDB close failed: %v", err)
		}
	}
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideQueue() *dispatch.Queue {
	return dispatch.NewQueue()
}

func ProvideHub() *notify.Hub {
	hub := notify.NewHub()
	hub.Subscribe(notify.NewLogObserver())
	return hub
}

// ProvideDraftStore connects to MySQL for draft autosave. A missing database
// disables autosave instead of failing startup.
func ProvideDraftStore(cfg *config.Config) common.DraftStore {
	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Printf("MySQL unavailable, draft autosave disabled: %v", err)
		return nil
	}
	if err := db.AutoMigrate(&dbmysql.DraftRecord{}); err != nil {
		log.Printf("Migration warning: %v", err)
	}
	return dbmysql.NewDraftRepository(db)
}

// ProvideMongoConnection connects to MongoDB for GridFS media storage. A
// missing database falls back to inline media conversion.
func ProvideMongoConnection(cfg *config.Config) *dbmongo.MongoClient {
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Printf("MongoDB unavailable, media kept inline: %v", err)
		return nil
	}
	return client
}

func ProvideConverter(client *dbmongo.MongoClient, cfg *config.Config) ingest.Converter {
	if client == nil {
		return ingest.NewInlineConverter()
	}
	return dbmongo.NewGridFSConverter(dbmongo.NewMediaStorage(client), cfg.Media.BaseURL)
}

func ProvideResolver() linkpreview.Resolver {
	return linkpreview.NewSyntheticResolver()
}

func ProvidePostSink() common.PostSink {
	return &logPostSink{}
}

// logPostSink stands in for the feed backend and records accepted posts in
// the process log.
type logPostSink struct{}

func (s *logPostSink) CreatePost(ctx context.Context, payload *common.SubmissionPayload) error {
	log.Printf("Post accepted - %d chars, %d media, minted=%v",
		len([]rune(payload.Content)), len(payload.Media), payload.IsMinted)
	return nil
}

func ProvideWallet() common.WalletFunc {
	return func() float64 {
		v := os.Getenv("WALLET_BALANCE")
		if v == "" {
			return 0
		}
		balance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("Invalid WALLET_BALANCE %q: %v", v, err)
			return 0
		}
		return balance
	}
}

func ProvideComposerDeps(
	cfg *config.Config,
	queue *dispatch.Queue,
	hub *notify.Hub,
	store common.DraftStore,
	converter ingest.Converter,
	resolver linkpreview.Resolver,
	sink common.PostSink,
	wallet common.WalletFunc,
) composer.Deps {
	return composer.Deps{
		Config:    cfg.Composer,
		Queue:     queue,
		Sink:      sink,
		Notifier:  hub,
		Wallet:    wallet,
		Converter: converter,
		Resolver:  resolver,
		Store:     store,
		AuthorID:  getEnvOrDefault("COMPOSER_AUTHOR_ID", "local"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
