package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/cache"
	"axlas-recipes/infrastructure/clients/sanity"
	tiktokclient "axlas-recipes/infrastructure/clients/tiktok"
	"axlas-recipes/infrastructure/configuration"
	"axlas-recipes/infrastructure/logger"
	"axlas-recipes/infrastructure/mail"
	"axlas-recipes/infrastructure/persistence"
	"axlas-recipes/infrastructure/pubsub"
	httpHandler "axlas-recipes/interfaces/http"
	"axlas-recipes/server"
	"axlas-recipes/usecase"

	"golang.org/x/sync/errgroup"
)

const videoCacheTTL = 5 * time.Minute

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	psqlDb, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("PostgreSQL not available - discovery runs will not be recorded")
		psqlDb = nil
	}

	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - continuing without Mongo features")
		mongoDb = nil
	} else {
		if err := mongoDb.Ping(ctx, nil); err != nil {
			logger.GetLogger().WithField("error", err).Warn("MongoDB ping failed - continuing without Mongo features")
			mongoDb = nil
		} else {
			logger.GetLogger().Info("MongoDB connected successfully")
		}
	}

	redisClient, _ := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - continuing without contact events")
		pubSubClient = nil
	}

	// Video discovery pipeline
	tiktokCfg := configuration.C.TikTok
	strategies := []repository.ITikTokStrategy{
		tiktokclient.NewWebAPIStrategy(nil, tiktokCfg.WebBaseURL, tiktokCfg.Handle),
		tiktokclient.NewProfileScrapeStrategy(nil, tiktokCfg.WebBaseURL, tiktokCfg.Handle),
		tiktokclient.NewStaticFallbackStrategy(tiktokCfg.FallbackVideos),
	}
	oembedClient := tiktokclient.NewOEmbedClient(nil, tiktokCfg.OEmbedURL, tiktokCfg.Handle)
	videoURLCache := cache.NewVideoURLCache(videoCacheTTL)

	var discoveryLog repository.IDiscoveryLog
	if psqlDb != nil {
		if err := persistence.EnsureDiscoveryLogSchema(psqlDb); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed ensuring discovery log schema")
		}
		discoveryLog = persistence.NewDiscoveryLogRepository(psqlDb)
	}
	tiktokUsecase := usecase.NewTikTokUsecase(strategies, oembedClient, videoURLCache, discoveryLog)

	// Recipe content API
	sanityClient := sanity.NewClient(nil, sanity.Config{
		ProjectID:  configuration.C.Sanity.ProjectID,
		Dataset:    configuration.C.Sanity.Dataset,
		APIVersion: configuration.C.Sanity.APIVersion,
		Token:      configuration.C.Sanity.Token,
	})
	recipeUsecase := usecase.NewRecipeUsecase(sanityClient, cache.NewRecipeCache(redisClient))

	// Contact relay
	var mailer repository.IMailer
	if configuration.C.SMTP.Host != "" && configuration.C.SMTP.User != "" {
		mailer = mail.NewMailer(mail.Config{
			Host:     configuration.C.SMTP.Host,
			Port:     configuration.C.SMTP.Port,
			User:     configuration.C.SMTP.User,
			Password: configuration.C.SMTP.Password,
			To:       configuration.C.SMTP.To,
		})
	} else {
		logger.GetLogger().Warn("SMTP not configured - contact form will return an error")
	}
	var contactRepo repository.IContactMessage
	if mongoDb != nil {
		contactRepo = persistence.NewContactMessageRepository(mongoDb, configuration.C.Database.Mongo.Name)
	}
	var notifier repository.INotifier
	if pubSubClient != nil {
		topic := configuration.C.Pubsub.Topic
		if topic == "" {
			topic = "contact-received"
		}
		notifier = pubsub.NewContactNotifier(pubSubClient, topic)
	}
	contactUsecase := usecase.NewContactUsecase(contactRepo, mailer, notifier)

	tiktokHandler := httpHandler.NewTikTokHandler(tiktokUsecase)
	recipeHandler := httpHandler.NewRecipeHandler(recipeUsecase)
	contactHandler := httpHandler.NewContactHandler(contactUsecase)
	imageProxyHandler := httpHandler.NewImageProxyHandler(nil, configuration.C.ImageProxy.ExtraHosts)
	healthHandler := httpHandler.NewHealthHandler()

	router := server.InitiateRouter(
		tiktokHandler,
		recipeHandler,
		contactHandler,
		imageProxyHandler,
		healthHandler,
		configuration.C.Cors.Origins,
		app.SecretKey,
	)

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if app.TLSEnabled {
			cert := app.TLSCertFile
			key := app.TLSKeyFile
			if cert == "" || key == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			} else {
				logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
				if err := httpServer.ListenAndServeTLS(cert, key); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}
		} else {
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if psqlDb != nil {
		_ = psqlDb.Close()
	}
	if mongoDb != nil {
		_ = mongoDb.Disconnect(shutdownCtx)
	}
	if pubSubClient != nil {
		_ = pubSubClient.Close()
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
