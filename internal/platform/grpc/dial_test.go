package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
)

func TestDialErrorMessage(t *testing.T) {
	err := &DialError{Stage: DialStageConnect, Err: errors.New("boom")}
	if err.Error() != "gRPC connect error: boom" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, err.Err) {
		t.Fatal("expected unwrap to expose cause")
	}
}

func TestDialWithHealthConnectFailure(t *testing.T) {
	dialer := DialerFunc(func(ctx context.Context, addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		return nil, errors.New("refused")
	})

	_, err := DialWithHealth(context.Background(), dialer, "localhost:0", 100*time.Millisecond, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var dialErr *DialError
	if !errors.As(err, &dialErr) {
		t.Fatalf("expected DialError, got %T", err)
	}
	if dialErr.Stage != DialStageConnect {
		t.Fatalf("expected connect stage, got %s", dialErr.Stage)
	}
}

func TestWaitForHealthNilConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}

func TestDefaultClientDialOptionsNonEmpty(t *testing.T) {
	if len(DefaultClientDialOptions()) == 0 {
		t.Fatal("expected dial options")
	}
	if len(DefaultServerOptions()) == 0 {
		t.Fatal("expected server options")
	}
}
