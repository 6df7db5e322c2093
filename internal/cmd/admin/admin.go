// Package admin wires configuration and startup for the admin console.
package admin

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/chekout/admin/internal/platform/cmd"
	"github.com/chekout/admin/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr       string `env:"CHEKOUT_ADMIN_ADDR" envDefault:":8082"`
	GRPCAddr       string `env:"CHEKOUT_ADMIN_GRPC_ADDR"`
	StorefrontAddr string `env:"CHEKOUT_STOREFRONT_ADDR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC health listen address")
	fs.StringVar(&cfg.StorefrontAddr, "storefront-addr", cfg.StorefrontAddr, "storefront health plane address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin server.
func Run(ctx context.Context, cfg Config) error {
	authConfig, err := admin.LoadAuthConfigFromEnv(time.Now)
	if err != nil {
		return fmt.Errorf("load session config: %w", err)
	}

	server, err := admin.NewServer(ctx, admin.Config{
		HTTPAddr:       cfg.HTTPAddr,
		GRPCAddr:       cfg.GRPCAddr,
		StorefrontAddr: cfg.StorefrontAddr,
		AuthConfig:     authConfig,
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
}
