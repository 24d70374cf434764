package container

import (
	"context"
	"fmt"
	"log"

	"blueprint-registry/internal/config"
	"blueprint-registry/internal/infrastructure/chainstore"
	"blueprint-registry/pkg/jwt"

	"blueprint-registry/internal/domains/auth"
	authHandler "blueprint-registry/internal/domains/auth/handler"
	authService "blueprint-registry/internal/domains/auth/service"
	"blueprint-registry/internal/domains/blueprint"
	bpHandler "blueprint-registry/internal/domains/blueprint/handler"
	bpRepo "blueprint-registry/internal/domains/blueprint/repository"
	bpService "blueprint-registry/internal/domains/blueprint/service"
	"blueprint-registry/internal/domains/reveal"
	revealHandler "blueprint-registry/internal/domains/reveal/handler"
)

// Container holds the application's dependency graph.
// Initialization order matters: config → store → repositories → services →
// handlers. Everything here is a singleton for the process lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	Store      chainstore.Store
	RedisStore *chainstore.RedisStore // nil when running on the memory store
	JWTManager *jwt.Manager

	// Repositories
	BlueprintRepo blueprint.Repository

	// Services
	BlueprintService blueprint.Service
	AuthService      auth.Service
	Authenticator    *reveal.Authenticator

	// Handlers
	BlueprintHandler *bpHandler.BlueprintHandler
	AuthHandler      *authHandler.AuthHandler
	RevealHandler    *revealHandler.RevealHandler
}

// NewContainer builds and initializes the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// 2. Chain store (redis stands in for the on-chain key/value contract)
	redisStore := chainstore.NewRedisStore(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisStore.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect chain store: %w", err)
	}
	c.RedisStore = redisStore
	c.Store = redisStore
	log.Printf("Chain store connected (%s)", cfg.Redis.Host)

	// 3. Session tokens
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.SessionExpiryHours)

	// 4. Repositories
	c.BlueprintRepo = bpRepo.NewKVRepository(c.Store)

	// 5. Services
	c.BlueprintService = bpService.NewBlueprintService(c.BlueprintRepo)
	c.AuthService = authService.NewAuthService(c.JWTManager)

	session, err := reveal.NewSessionParams(cfg.Chain.ContractAddress, cfg.Chain.ChainID, cfg.Reveal.DurationDays)
	if err != nil {
		return nil, fmt.Errorf("failed to start reveal session: %w", err)
	}
	c.Authenticator = reveal.NewAuthenticator(c.BlueprintRepo, session)

	// 6. Handlers
	c.BlueprintHandler = bpHandler.NewBlueprintHandler(c.BlueprintService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.RevealHandler = revealHandler.NewRevealHandler(c.Authenticator)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.RedisStore != nil {
		if err := c.RedisStore.Close(); err != nil {
			log.Printf("error closing chain store: %v", err)
		}
	}
}
