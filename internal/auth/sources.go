package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/databricks/databricks-sdk-go/config"

	app_config "genie-relay/backend/internal/config"
)

// StaticSource returns fixed values, typically DATABRICKS_HOST and DATABRICKS_TOKEN
// as loaded into the application config.
type StaticSource struct {
	Label string
	Host  string
	Token string
}

func (s StaticSource) Name() string { return s.Label }

func (s StaticSource) Lookup(context.Context) (string, string, error) {
	return s.Host, s.Token, nil
}

// WorkspaceConfigSource asks the Databricks unified auth chain (CLI profile, OAuth, ...)
// for a host and an Authorization header.
type WorkspaceConfigSource struct {
	Profile string
}

func (s WorkspaceConfigSource) Name() string { return "workspace-config" }

func (s WorkspaceConfigSource) Lookup(ctx context.Context) (string, string, error) {
	cfg := &config.Config{Profile: s.Profile}
	if err := cfg.EnsureResolved(); err != nil {
		return "", "", fmt.Errorf("could not resolve workspace config: %w", err)
	}

	host := cfg.Host
	if host == "" {
		return "", "", errors.New("workspace config has no host")
	}

	// The SDK only exposes credentials by decorating a request.
	probe, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(host, "/"), nil)
	if err != nil {
		return host, "", fmt.Errorf("could not build auth probe request: %w", err)
	}
	if err := cfg.Authenticate(probe); err != nil {
		return host, "", fmt.Errorf("workspace config could not authenticate: %w", err)
	}

	return host, bearerToken(probe.Header.Get("Authorization")), nil
}

// EnvFileSource reads DATABRICKS_HOST and DATABRICKS_TOKEN from a local override
// file such as .env.local.
type EnvFileSource struct {
	Path string
}

func (s EnvFileSource) Name() string { return "env-file:" + s.Path }

func (s EnvFileSource) Lookup(context.Context) (string, string, error) {
	values, err := app_config.ReadEnvFile(s.Path)
	if err != nil {
		return "", "", err
	}
	return values["DATABRICKS_HOST"], values["DATABRICKS_TOKEN"], nil
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// DefaultSources builds the standard resolution chain: environment first, then the
// workspace configuration, then the override file.
func DefaultSources(cfg *app_config.Config) []Source {
	return []Source{
		StaticSource{Label: "environment", Host: cfg.DatabricksHost, Token: cfg.DatabricksToken},
		WorkspaceConfigSource{Profile: cfg.DatabricksProfile},
		EnvFileSource{Path: cfg.EnvOverrideFile},
	}
}
