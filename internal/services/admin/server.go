package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chekout/admin/internal/platform/config"
	platformgrpc "github.com/chekout/admin/internal/platform/grpc"
	"github.com/chekout/admin/internal/platform/timeouts"
	adminsqlite "github.com/chekout/admin/internal/services/admin/storage/sqlite"
	"github.com/chekout/admin/internal/services/admin/watch"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// adminServerEnv captures startup defaults for the admin process.
type adminServerEnv struct {
	DBPath string `env:"CHEKOUT_ADMIN_DB_PATH"`
}

func loadAdminServerEnv() adminServerEnv {
	var cfg adminServerEnv
	_ = config.ParseEnv(&cfg)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "admin.db")
	}
	return cfg
}

// Config defines the inputs for the admin console process.
type Config struct {
	HTTPAddr string
	// GRPCAddr optionally exposes a gRPC health endpoint for deploy probes.
	GRPCAddr string
	// StorefrontAddr optionally points at the storefront health plane; when
	// set the server waits for it before accepting traffic.
	StorefrontAddr string
	// AuthConfig enables session-token authentication when set.
	AuthConfig *AuthConfig
}

// Server hosts the admin console over its own SQLite store.
type Server struct {
	httpAddr       string
	httpServer     *http.Server
	grpcListener   net.Listener
	grpcServer     *grpc.Server
	health         *health.Server
	store          *adminsqlite.Store
	hub            *watch.Hub
	storefrontConn *grpc.ClientConn
}

// NewServer builds a configured admin server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	serverEnv := loadAdminServerEnv()
	store, err := openAdminStore(serverEnv.DBPath)
	if err != nil {
		return nil, err
	}

	hub := watch.NewHub()
	store.SetChangeNotifier(hub.Notify)

	var storefrontConn *grpc.ClientConn
	if addr := strings.TrimSpace(cfg.StorefrontAddr); addr != "" {
		conn, err := platformgrpc.DialWithHealth(ctx, nil, addr, timeouts.GRPCDial, log.Printf, platformgrpc.DefaultClientDialOptions()...)
		if err != nil {
			// The console stays useful without the storefront; order rows
			// simply stop arriving.
			log.Printf("storefront health plane unavailable: %v", err)
		} else {
			storefrontConn = conn
		}
	}

	var grpcListener net.Listener
	var grpcServer *grpc.Server
	var healthServer *health.Server
	if addr := strings.TrimSpace(cfg.GRPCAddr); addr != "" {
		grpcListener, err = net.Listen("tcp", addr)
		if err != nil {
			if storefrontConn != nil {
				_ = storefrontConn.Close()
			}
			_ = store.Close()
			return nil, fmt.Errorf("listen on grpc addr %s: %w", addr, err)
		}
		grpcServer = grpc.NewServer(platformgrpc.DefaultServerOptions()...)
		healthServer = health.NewServer()
		grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	}

	handler := requireAuth(NewHandler(store, hub), cfg.AuthConfig)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:       httpAddr,
		httpServer:     httpServer,
		grpcListener:   grpcListener,
		grpcServer:     grpcServer,
		health:         healthServer,
		store:          store,
		hub:            hub,
		storefrontConn: storefrontConn,
	}, nil
}

// GRPCAddr returns the health plane listener address when one is configured.
func (s *Server) GRPCAddr() string {
	if s == nil || s.grpcListener == nil {
		return ""
	}
	return s.grpcListener.Addr().String()
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	grpcErr := make(chan error, 1)
	if s.grpcServer != nil && s.grpcListener != nil {
		log.Printf("admin health plane listening on %v", s.grpcListener.Addr())
		go func() {
			grpcErr <- s.grpcServer.Serve(s.grpcListener)
		}()
	}

	stopGRPC := func() {
		if s.grpcServer == nil {
			return
		}
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
	}

	select {
	case <-ctx.Done():
		stopGRPC()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		stopGRPC()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case err := <-grpcErr:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		_ = s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve grpc health plane: %w", err)
	}
}

// Close releases the store and any upstream connections.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
		s.grpcServer = nil
		s.grpcListener = nil
	} else if s.grpcListener != nil {
		_ = s.grpcListener.Close()
		s.grpcListener = nil
	}
	if s.storefrontConn != nil {
		if err := s.storefrontConn.Close(); err != nil {
			log.Printf("close storefront gRPC connection: %v", err)
		}
		s.storefrontConn = nil
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func openAdminStore(path string) (*adminsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create admin data dir: %w", err)
		}
	}
	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin store: %w", err)
	}
	return store, nil
}
