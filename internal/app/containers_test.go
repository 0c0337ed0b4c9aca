//go:build integration

package app

import (
	"context"
	"log"
	"time"

	"github.com/hashicorp/vault/api"
	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

// InitDockerCompose starts the runtime dependencies declared in docker-compose.deps.yml.
type InitDockerCompose struct {
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose("../../docker-compose.deps.yml")
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	err = i.compose.
		WaitForService("postgres", wait.NewLogStrategy(
			"database system is ready to accept connections",
		)).
		WaitForService("vault", wait.NewLogStrategy(
			"Vault server started!",
		)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i InitDockerCompose) Close() {
	if i.compose != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		err := i.compose.Down(
			cancelCtx,
			compose.RemoveOrphans(true),
			compose.RemoveVolumes(true),
			compose.RemoveImages(compose.RemoveImagesLocal),
		)
		if err != nil {
			log.Printf("failed to stop docker compose: %v", err)
		}
	}
}

// initVaultSecret writes the runtime credentials into the dev Vault server
// before the configuration provider reads them.
type initVaultSecret struct {
	addr    string
	token   string
	secrets map[string]any
}

func (i initVaultSecret) Initialize(ctx context.Context) (context.Context, error) {
	cfg := api.DefaultConfig()
	cfg.Address = i.addr

	client, err := api.NewClient(cfg)
	if err != nil {
		return ctx, err
	}
	client.SetToken(i.token)

	if _, err := client.KVv2("secret").Put(ctx, "agentruntime", i.secrets); err != nil {
		return ctx, err
	}
	return ctx, nil
}
