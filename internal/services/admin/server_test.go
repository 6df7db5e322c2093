package admin

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	platformgrpc "github.com/chekout/admin/internal/platform/grpc"
)

// TestListenAndServeNilServer verifies nil server returns an error.
func TestListenAndServeNilServer(t *testing.T) {
	var s *Server
	if err := s.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
}

// TestNewServerRequiresHTTPAddr ensures a blank HTTP address fails fast.
func TestNewServerRequiresHTTPAddr(t *testing.T) {
	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty HTTP address")
	}
}

// TestCloseNilServer verifies nil Close does not panic.
func TestCloseNilServer(t *testing.T) {
	var s *Server
	s.Close()
}

// TestHealthPlaneServes verifies the optional gRPC endpoint answers probes.
func TestHealthPlaneServes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Setenv("CHEKOUT_ADMIN_DB_PATH", filepath.Join(t.TempDir(), "admin.db"))

	server, err := NewServer(ctx, Config{HTTPAddr: "127.0.0.1:0", GRPCAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	addr := server.GRPCAddr()
	if addr == "" {
		t.Fatal("expected health plane address")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe(ctx)
	}()

	dialCtx, dialCancel := context.WithTimeout(ctx, 2*time.Second)
	defer dialCancel()
	conn, err := platformgrpc.DialWithHealth(dialCtx, nil, addr, 2*time.Second, t.Logf, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		t.Fatalf("dial health plane: %v", err)
	}
	_ = conn.Close()

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop on cancel")
	}
}

// TestListenAndServeStopsOnCancel verifies the server exits on context cancel.
func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Setenv("CHEKOUT_ADMIN_DB_PATH", filepath.Join(t.TempDir(), "admin.db"))

	server, err := NewServer(ctx, Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe(ctx)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop on cancel")
	}
}
