package main

import (
	"alcyxob/exercise-tracker/internal/api"
	"alcyxob/exercise-tracker/internal/config"
	"alcyxob/exercise-tracker/internal/logging"
	"alcyxob/exercise-tracker/internal/repository"
	"alcyxob/exercise-tracker/internal/repository/breaker"
	"alcyxob/exercise-tracker/internal/repository/gormstore"
	"alcyxob/exercise-tracker/internal/repository/memory"
	"alcyxob/exercise-tracker/internal/repository/mongo"
	"alcyxob/exercise-tracker/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// stores bundles the repositories with whatever closes their connection.
type stores struct {
	users     repository.UserRepository
	exercises repository.ExerciseRepository
	close     func() error
}

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}

	log := logging.New(cfg.Log)
	log.Info("starting exercise tracker")

	// --- Store ---
	st, err := openStores(cfg.Database, log)
	if err != nil {
		log.Fatalf("could not open %s store: %v", cfg.Database.Driver, err)
	}
	defer func() {
		log.Info("closing store")
		if err := st.close(); err != nil {
			log.WithError(err).Error("failed to close store")
		}
	}()

	if cfg.Breaker.Enabled {
		cb := breaker.New(breaker.Settings{
			Name:        cfg.Database.Driver,
			MaxFailures: cfg.Breaker.MaxFailures,
			OpenTimeout: cfg.Breaker.OpenTimeout,
		}, log)
		st.users = breaker.WrapUsers(st.users, cb)
		st.exercises = breaker.WrapExercises(st.exercises, cb)
	}

	// --- Initialize Services ---
	opts := []service.Option{service.WithStoreTimeout(cfg.Database.Timeout), service.WithLogger(log)}
	userService := service.NewUserService(st.users, opts...)
	exerciseService := service.NewExerciseService(st.users, st.exercises, opts...)

	// --- Initialize Gin Engine ---
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, cfg, log, userService, exerciseService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("your app is listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("server exiting")
}

func openStores(cfg config.DatabaseConfig, log *logrus.Logger) (*stores, error) {
	switch cfg.Driver {
	case "mongo":
		client, err := mongo.ConnectDB(cfg.URI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Name)
		log.WithField("database", cfg.Name).Info("connected to mongodb")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			mongo.EnsureIndexes(ctx, db, log)
		}()

		return &stores{
			users:     mongo.NewMongoUserRepository(db),
			exercises: mongo.NewMongoExerciseRepository(db),
			close:     func() error { return mongo.DisconnectDB(client) },
		}, nil

	case gormstore.DriverMySQL, gormstore.DriverPostgres:
		db, err := gormstore.Open(cfg.Driver, cfg.URI)
		if err != nil {
			return nil, err
		}
		log.WithField("driver", cfg.Driver).Info("connected to sql database")
		return &stores{
			users:     gormstore.NewUserRepository(db),
			exercises: gormstore.NewExerciseRepository(db),
			close:     func() error { return gormstore.Close(db) },
		}, nil

	case "memory":
		log.Warn("using in-memory store; data is lost on exit")
		store := memory.NewStore()
		return &stores{
			users:     store.Users(),
			exercises: store.Exercises(),
			close:     func() error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}
