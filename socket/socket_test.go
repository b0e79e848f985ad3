// File: socket/socket_test.go
// Author: solarobot <solarobot@gmail.com>

package socket_test

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/solarobot/sockio/api"
	"github.com/solarobot/sockio/sockaddr"
	"github.com/solarobot/sockio/socket"
)

// newListener binds a fresh loopback listener on an ephemeral port.
func newListener(t *testing.T) (*socket.Socket, sockaddr.Addr) {
	t.Helper()
	la, err := sockaddr.Parse("127.0.0.1:0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ls := socket.New()
	if err := ls.Bind(la, true, false); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := ls.Listen(16); err != nil {
		t.Fatalf("listen: %v", err)
	}
	bound, err := ls.LocalAddr()
	if err != nil {
		t.Fatalf("local addr: %v", err)
	}
	t.Cleanup(func() { ls.Close() })
	return ls, bound
}

// newPair returns a connected (server, client) loopback stream pair.
func newPair(t *testing.T) (*socket.Socket, *socket.Socket) {
	t.Helper()
	ls, bound := newListener(t)
	client := socket.New()
	if err := client.Connect(bound); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	srv, _, err := ls.Accept()
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	t.Cleanup(func() { srv.Close() })
	return srv, client
}

func TestLifecycle(t *testing.T) {
	s := socket.New()
	if s.Ok() {
		t.Fatal("fresh handle must not own a descriptor")
	}
	if !s.Blocking() {
		t.Fatal("fresh handle must be blocking")
	}
	if err := s.Open(sockaddr.IPv4); err != nil {
		t.Fatalf("open: %v", err)
	}
	if !s.Ok() {
		t.Fatal("handle must own a descriptor after open")
	}
	if err := s.Open(sockaddr.IPv4); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("second open: got %v, want ErrInvalidArgument", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if s.Ok() {
		t.Fatal("handle must be unset after close")
	}
	// Close is idempotent.
	if err := s.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestOperationsOnUnsetHandle(t *testing.T) {
	s := socket.New()
	if err := s.Listen(1); !errors.Is(err, api.ErrInvalidSocket) {
		t.Fatalf("Listen: got %v, want ErrInvalidSocket", err)
	}
	if _, err := s.Send([]byte("x")); !errors.Is(err, api.ErrInvalidSocket) {
		t.Fatalf("Send: got %v, want ErrInvalidSocket", err)
	}
	if _, err := s.Recv(make([]byte, 1)); !errors.Is(err, api.ErrInvalidSocket) {
		t.Fatalf("Recv: got %v, want ErrInvalidSocket", err)
	}
	if _, err := s.LocalAddr(); !errors.Is(err, api.ErrInvalidSocket) {
		t.Fatalf("LocalAddr: got %v, want ErrInvalidSocket", err)
	}
	if err := s.Shutdown(); !errors.Is(err, api.ErrInvalidSocket) {
		t.Fatalf("Shutdown: got %v, want ErrInvalidSocket", err)
	}
}

func TestAdopt(t *testing.T) {
	src := socket.New()
	if err := src.Open(sockaddr.IPv4); err != nil {
		t.Fatalf("open: %v", err)
	}
	adopted := socket.New()
	if err := adopted.Adopt(src.Descriptor()); err != nil {
		t.Fatalf("adopt: %v", err)
	}
	if !adopted.Ok() {
		t.Fatal("adopted handle must own the descriptor")
	}
	if err := adopted.Adopt(src.Descriptor()); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("second adopt: got %v, want ErrInvalidArgument", err)
	}
	// The adopted handle owns the descriptor from here on.
	if err := adopted.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestAcceptYieldsPeer(t *testing.T) {
	ls, bound := newListener(t)
	client := socket.New()
	defer client.Close()
	if err := client.Connect(bound); err != nil {
		t.Fatalf("connect: %v", err)
	}
	srv, peer, err := ls.Accept()
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	defer srv.Close()

	clientLocal, err := client.LocalAddr()
	if err != nil {
		t.Fatalf("client local addr: %v", err)
	}
	if peer.Port() != clientLocal.Port() {
		t.Fatalf("peer port %d, client bound to %d", peer.Port(), clientLocal.Port())
	}
	srvPeer, err := srv.PeerAddr()
	if err != nil {
		t.Fatalf("peer addr: %v", err)
	}
	if srvPeer.Port() != clientLocal.Port() {
		t.Fatalf("PeerAddr port %d, client bound to %d", srvPeer.Port(), clientLocal.Port())
	}
}

func TestConnectRefused(t *testing.T) {
	ls, bound := newListener(t)
	ls.Close()

	s := socket.New()
	defer s.Close()
	err := s.Connect(bound)
	if !errors.Is(err, api.ErrConnectionRefused) {
		t.Fatalf("connect to closed port: got %v, want ErrConnectionRefused", err)
	}
}

func TestConnectTimeoutSuccess(t *testing.T) {
	ls, bound := newListener(t)
	s := socket.New()
	defer s.Close()
	if err := s.ConnectTimeout(bound, 2*time.Second); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if !s.Blocking() {
		t.Fatal("blocking mode must be restored after ConnectTimeout")
	}
	srv, _, err := ls.Accept()
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	srv.Close()
}

func TestConnectTimeoutRefusedRestoresBlocking(t *testing.T) {
	ls, bound := newListener(t)
	ls.Close()

	s := socket.New()
	defer s.Close()
	err := s.ConnectTimeout(bound, 2*time.Second)
	if err == nil {
		t.Fatal("connect to closed port must fail")
	}
	if !errors.Is(err, api.ErrConnectionRefused) {
		t.Fatalf("got %v, want ErrConnectionRefused", err)
	}
	if !s.Blocking() {
		t.Fatal("blocking mode must be restored on the failure path")
	}
}

func TestConnectNonBlockingLeavesNonBlocking(t *testing.T) {
	_, bound := newListener(t)
	s := socket.New()
	defer s.Close()
	if err := s.ConnectNonBlocking(bound); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if s.Blocking() {
		t.Fatal("handle must stay non-blocking after ConnectNonBlocking")
	}
}

func TestPollNotReady(t *testing.T) {
	srv, _ := newPair(t)
	ready, err := srv.Poll(0, api.PollRead)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if ready {
		t.Fatal("nothing was sent, must not be readable")
	}
}

func TestPollWriteReady(t *testing.T) {
	srv, _ := newPair(t)
	ready, err := srv.Poll(time.Second, api.PollWrite)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if !ready {
		t.Fatal("fresh connection must be writable")
	}
}

func TestFeatures(t *testing.T) {
	f := socket.Features()
	if f.OS != runtime.GOOS {
		t.Fatalf("OS = %q, want %q", f.OS, runtime.GOOS)
	}
	if f.PollStrategy == "" {
		t.Fatal("PollStrategy must be set")
	}
}
