// Package auth resolves the Databricks workspace host and bearer token used to talk to Genie.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	app_errors "genie-relay/backend/internal/errors"
)

// Credentials is a resolved workspace host and bearer token.
type Credentials struct {
	Host  string
	Token string
}

// Source yields a host and/or a token. Either value may be empty when the source
// only knows one of them.
type Source interface {
	Name() string
	Lookup(ctx context.Context) (host, token string, err error)
}

// Resolver walks its sources in order and keeps the first host and the first token
// it sees; the two may come from different sources.
type Resolver struct {
	sources []Source
	logger  *slog.Logger
}

func NewResolver(logger *slog.Logger, sources ...Source) *Resolver {
	return &Resolver{sources: sources, logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context) (*Credentials, error) {
	var host, token string

	for _, src := range r.sources {
		if host != "" && token != "" {
			break
		}
		h, t, err := src.Lookup(ctx)
		if err != nil {
			r.logger.Debug("Credential source unavailable", "source", src.Name(), "error", err)
			continue
		}
		if host == "" && strings.TrimSpace(h) != "" {
			host = h
			r.logger.Debug("Resolved workspace host", "source", src.Name())
		}
		if token == "" && strings.TrimSpace(t) != "" {
			token = strings.TrimSpace(t)
			r.logger.Debug("Resolved workspace token", "source", src.Name())
		}
	}

	switch {
	case host == "" && token == "":
		return nil, fmt.Errorf("%w: no Databricks host or token found; set DATABRICKS_HOST and DATABRICKS_TOKEN or configure a CLI profile", app_errors.ErrConfiguration)
	case host == "":
		return nil, fmt.Errorf("%w: no Databricks host found; set DATABRICKS_HOST", app_errors.ErrConfiguration)
	case token == "":
		return nil, fmt.Errorf("%w: no Databricks token found; set DATABRICKS_TOKEN", app_errors.ErrConfiguration)
	}

	return &Credentials{Host: NormalizeHost(host), Token: token}, nil
}

// NormalizeHost strips trailing slashes and adds https:// when no scheme is present.
func NormalizeHost(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" {
		return ""
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	return host
}
