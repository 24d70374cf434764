package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint-registry/internal/config"
	authHandler "blueprint-registry/internal/domains/auth/handler"
	authService "blueprint-registry/internal/domains/auth/service"
	bpHandler "blueprint-registry/internal/domains/blueprint/handler"
	bpRepo "blueprint-registry/internal/domains/blueprint/repository"
	bpService "blueprint-registry/internal/domains/blueprint/service"
	"blueprint-registry/internal/domains/reveal"
	revealHandler "blueprint-registry/internal/domains/reveal/handler"
	"blueprint-registry/internal/infrastructure/chainstore"
	"blueprint-registry/pkg/container"
	"blueprint-registry/pkg/jwt"
)

func newTestContainer(t *testing.T, store chainstore.Store) *container.Container {
	t.Helper()

	manager := jwt.NewManager("test-secret", 1)
	repo := bpRepo.NewKVRepository(store)

	session, err := reveal.NewSessionParams("0x1111111111111111111111111111111111111111", 8009, 7)
	require.NoError(t, err)

	c := &container.Container{
		Config: &config.Config{
			App: config.AppConfig{Name: "Blueprint Registry API", Version: "test"},
		},
		Store:            store,
		JWTManager:       manager,
		BlueprintRepo:    repo,
		BlueprintService: bpService.NewBlueprintService(repo),
		AuthService:      authService.NewAuthService(manager),
		Authenticator:    reveal.NewAuthenticator(repo, session),
	}
	c.BlueprintHandler = bpHandler.NewBlueprintHandler(c.BlueprintService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.RevealHandler = revealHandler.NewRevealHandler(c.Authenticator)
	return c
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := chainstore.NewMemoryStore()
	router := SetupRouter(newTestContainer(t, store))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			StoreAvailable bool `json:"store_available"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.StoreAvailable)
}

func TestHealthEndpointStoreDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := chainstore.NewMemoryStore()
	store.SetAvailable(false)
	router := SetupRouter(newTestContainer(t, store))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Error.Code)
}
