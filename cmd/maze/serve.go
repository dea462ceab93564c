package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/katalvlaran/labyrinth/api"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/solver"
	"github.com/katalvlaran/labyrinth/store"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve mazes over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTPAddr = addr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from HTTP_ADDR)")

	return cmd
}

// serve wires the configured repository into the HTTP API and runs it until
// ctx is cancelled.
func (a *app) serve(ctx context.Context) error {
	repo, closeRepo, err := a.openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	algorithm, err := generator.ParseKind(a.cfg.Algorithm)
	if err != nil {
		return err
	}
	solverKind, err := solver.ParseKind(a.cfg.Solver)
	if err != nil {
		return err
	}
	mc, err := api.NewMazeController(api.MazeControllerConfig{
		Repo:             repo,
		MaxCells:         a.cfg.MaxCells,
		DefaultAlgorithm: algorithm,
		DefaultSolver:    solverKind,
		Logger:           a.log.WithField("component", "mazes"),
	})
	if err != nil {
		return err
	}

	var auth gin.HandlerFunc
	if a.cfg.JWTSecret != "" {
		auth = api.Authorize(api.NewTokenizer(a.cfg.JWTSecret, a.cfg.JWTIssuer))
	} else {
		a.log.Warn("JWT_SECRET is empty; write routes are open")
	}

	gin.SetMode(a.cfg.GinMode)
	router := api.NewRouter(api.Config{
		Addr:                    a.cfg.HTTPAddr,
		Controllers:             []api.Controller{mc},
		AuthorizationMiddleware: auth,
		Logger:                  a.log.WithField("component", "http"),
	})

	return router.Serve(ctx)
}

// openRepository connects to the configured store backend. The returned
// function releases the connection.
func (a *app) openRepository(ctx context.Context) (store.Repository, func(), error) {
	log := a.log.WithField("store", a.cfg.Store)
	switch a.cfg.Store {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", a.cfg.RedisAddr, err)
		}
		log.WithField("addr", a.cfg.RedisAddr).Info("connected to redis")

		return store.NewRedis(client, a.cfg.RedisTTL), func() { _ = client.Close() }, nil

	case config.BackendMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.cfg.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("mongo connect: %w", err)
		}
		disconnect := func() { _ = client.Disconnect(context.Background()) }
		if err = client.Ping(ctx, nil); err != nil {
			disconnect()
			return nil, nil, fmt.Errorf("mongo ping: %w", err)
		}
		repo := store.NewMongo(client, a.cfg.MongoDB, "mazes")
		if err = repo.EnsureIndexes(ctx); err != nil {
			disconnect()
			return nil, nil, err
		}
		log.WithField("db", a.cfg.MongoDB).Info("connected to mongo")

		return repo, disconnect, nil

	default:
		log.Info("using in-memory store")
		return store.NewMemory(), func() {}, nil
	}
}
