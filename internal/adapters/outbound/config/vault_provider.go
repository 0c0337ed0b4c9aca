package config

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// disabledAddr turns the Vault provider off; configuration then comes from the environment only.
const disabledAddr = "-"

// VaultProvider provides configuration values from a HashiCorp Vault KV v2 secret.
// The secret is read once and memoized: the runtime reads credentials
// (JIRA_API_TOKEN, ANTHROPIC_API_KEY, DB_PASS) at startup only.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string

	once *sync.Once
	data map[string]any
	err  *error
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The mountPath is the mount point of the KV v2 engine (e.g., "secret") and the
// secretPath is the secret within the mount (e.g., "agentruntime").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	switch {
	case server == "":
		return VaultProvider{}, fmt.Errorf("server is required")
	case token == "":
		return VaultProvider{}, fmt.Errorf("token is required")
	case mountPath == "":
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	var loadErr error
	return VaultProvider{
		client:     client,
		mountPath:  strings.Trim(mountPath, "/"),
		secretPath: strings.Trim(secretPath, "/"),
		once:       &sync.Once{},
		err:        &loadErr,
	}, nil
}

// Get retrieves a configuration value from the secret.
// Returns an error if the secret or key is not found.
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	vp.once.Do(func() {
		secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
		if err != nil {
			*vp.err = err
			return
		}
		if secret == nil || secret.Data == nil {
			*vp.err = fmt.Errorf("vault secret %s not found", vp.secretPath)
			return
		}
		vp.data = secret.Data
	})
	if *vp.err != nil {
		return "", *vp.err
	}

	value, ok := vp.data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}

	return strValue, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider registers a composite configuration provider: environment
// variables first, then Vault. VAULT_ADDR set to "-" keeps the environment only.
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR" default:"-"`
	Token      string `config:"VAULT_TOKEN" default:"-"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"agentruntime"`
}

// Initialize sets up the VaultProvider and installs the global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == disabledAddr {
		config.SetGlobalProvider(config.EnvVarProvider{})
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			&vaultProvider,
		),
	)

	return ctx, nil
}
