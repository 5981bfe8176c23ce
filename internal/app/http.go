package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Markosdlpz02/Practica4/internal/config"
	v1 "github.com/Markosdlpz02/Practica4/internal/delivery/http/v1"
	"github.com/Markosdlpz02/Practica4/internal/storage"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router *gin.Engine) {
	db := globalMongoClient.Database(config.Global().Mongo.Database)
	v1Handler := v1.New(
		globalLogger,
		storage.NewUserStore(globalLogger, db),
		storage.NewProjectStore(globalLogger, db),
		storage.NewTaskStore(globalLogger, db),
	)

	router.Use(v1Handler.HandleRequestLogger)
	router.NoRoute(v1Handler.HandleEndpointNotFound)

	router.GET("/users", v1Handler.HandleListUsers)
	router.POST("/users", v1Handler.HandleCreateUser)
	router.DELETE("/users", v1Handler.HandleDeleteUser)

	router.GET("/projects", v1Handler.HandleListProjects)
	router.GET("/projects/by-user", v1Handler.HandleProjectsByUser)
	router.POST("/projects", v1Handler.HandleCreateProject)
	router.DELETE("/projects", v1Handler.HandleDeleteProject)

	router.GET("/tasks", v1Handler.HandleListTasks)
	router.GET("/tasks/by-project", v1Handler.HandleTasksByProject)
	router.POST("/tasks", v1Handler.HandleCreateTask)
	router.POST("/tasks/move", v1Handler.HandleMoveTask)
	router.DELETE("/tasks", v1Handler.HandleDeleteTask)
}
