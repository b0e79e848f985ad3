// File: socket/transfer_test.go
// Author: solarobot <solarobot@gmail.com>

package socket_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/solarobot/sockio/api"
	"github.com/solarobot/sockio/sockaddr"
	"github.com/solarobot/sockio/socket"
)

// sendAll pushes the whole buffer, looping over partial sends.
func sendAll(t *testing.T, s *socket.Socket, p []byte) {
	t.Helper()
	sent := 0
	for sent < len(p) {
		n, err := s.Send(p[sent:])
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		sent += n
	}
}

// recvAll reads exactly n bytes, looping over partial receives.
func recvAll(t *testing.T, s *socket.Socket, n int) []byte {
	t.Helper()
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		m, err := s.Recv(buf)
		if err != nil {
			t.Fatalf("recv: %v", err)
		}
		if m == 0 {
			t.Fatalf("peer shut down after %d of %d bytes", len(out), n)
		}
		out = append(out, buf[:m]...)
	}
	return out
}

func TestStreamRoundtrip(t *testing.T) {
	srv, client := newPair(t)
	msg := []byte("hello, transport")
	sendAll(t, client, msg)
	got := recvAll(t, srv, len(msg))
	if !bytes.Equal(got, msg) {
		t.Fatalf("got %q, want %q", got, msg)
	}
}

func TestRecvZeroAfterShutdownSend(t *testing.T) {
	srv, client := newPair(t)
	if err := client.ShutdownSend(); err != nil {
		t.Fatalf("shutdown send: %v", err)
	}
	n, err := srv.Recv(make([]byte, 8))
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if n != 0 {
		t.Fatalf("recv returned %d bytes, want 0 for graceful shutdown", n)
	}
}

func TestVectoredRoundtrip(t *testing.T) {
	srv, client := newPair(t)
	n, err := client.SendV([][]byte{[]byte("hel"), []byte("lo!")})
	if err != nil {
		t.Fatalf("sendv: %v", err)
	}
	if n != 6 {
		t.Fatalf("sendv queued %d bytes, want 6", n)
	}

	head := make([]byte, 3)
	tail := make([]byte, 3)
	got := 0
	for got < 6 {
		m, err := srv.RecvV([][]byte{head[min(got, 3):], tail[max(got-3, 0):]})
		if err != nil {
			t.Fatalf("recvv: %v", err)
		}
		got += m
	}
	if string(head)+string(tail) != "hello!" {
		t.Fatalf("got %q + %q, want hello!", head, tail)
	}
}

// fillPeer pushes chunks at a peer that never reads until the
// transport refuses more, returning the refusal and the bytes queued.
func fillPeer(t *testing.T, s *socket.Socket) (int, error) {
	t.Helper()
	chunk := make([]byte, 64*1024)
	total := 0
	for total < 1<<26 {
		n, err := s.Send(chunk)
		if err != nil {
			return total, err
		}
		total += n
	}
	t.Fatalf("queued %d bytes without the transport refusing", total)
	return total, nil
}

func TestNonBlockingSendWouldBlock(t *testing.T) {
	_, client := newPair(t)
	if err := client.SetBlocking(false); err != nil {
		t.Fatalf("set non-blocking: %v", err)
	}
	total, err := fillPeer(t, client)
	if !errors.Is(err, api.ErrWouldBlock) {
		t.Fatalf("after %d buffered bytes: got %v, want ErrWouldBlock", total, err)
	}
}

func TestSendTimeoutExpires(t *testing.T) {
	_, client := newPair(t)
	if err := client.SetSendTimeout(100 * time.Millisecond); err != nil {
		t.Fatalf("set send timeout: %v", err)
	}
	total, err := fillPeer(t, client)
	if !errors.Is(err, api.ErrTimeout) {
		t.Fatalf("after %d buffered bytes: got %v, want ErrTimeout", total, err)
	}
}

func TestNonBlockingRecvWouldBlock(t *testing.T) {
	srv, _ := newPair(t)
	if err := srv.SetBlocking(false); err != nil {
		t.Fatalf("set non-blocking: %v", err)
	}
	_, err := srv.Recv(make([]byte, 8))
	if !errors.Is(err, api.ErrWouldBlock) {
		t.Fatalf("got %v, want ErrWouldBlock", err)
	}
}

func TestRecvTimeoutNoData(t *testing.T) {
	srv, _ := newPair(t)
	buf := make([]byte, 8)
	start := time.Now()
	n, err := srv.RecvTimeout(&buf, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("recv timeout: %v", err)
	}
	if n != 0 {
		t.Fatalf("got %d bytes, want 0", n)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Fatalf("returned after %v, before the timeout", elapsed)
	}
}

func TestRecvTimeoutGrowsBuffer(t *testing.T) {
	srv, client := newPair(t)
	msg := []byte("a payload larger than the starting buffer")
	sendAll(t, client, msg)

	buf := make([]byte, 4)
	n, err := srv.RecvTimeout(&buf, 2*time.Second)
	if err != nil {
		t.Fatalf("recv timeout: %v", err)
	}
	if n != len(msg) {
		t.Fatalf("got %d bytes, want %d", n, len(msg))
	}
	if !bytes.Equal(buf, msg) {
		t.Fatalf("got %q, want %q", buf, msg)
	}
}

func TestReceiveTimeoutExpires(t *testing.T) {
	srv, _ := newPair(t)
	if err := srv.SetReceiveTimeout(50 * time.Millisecond); err != nil {
		t.Fatalf("set receive timeout: %v", err)
	}
	_, err := srv.Recv(make([]byte, 8))
	if !errors.Is(err, api.ErrTimeout) {
		t.Fatalf("got %v, want ErrTimeout", err)
	}
}

func TestDatagramRoundtrip(t *testing.T) {
	srvAddr, err := sockaddr.Parse("127.0.0.1:0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	srv := socket.New()
	defer srv.Close()
	if err := srv.OpenDatagram(sockaddr.IPv4); err != nil {
		t.Fatalf("open datagram: %v", err)
	}
	if err := srv.Bind(srvAddr, false, false); err != nil {
		t.Fatalf("bind: %v", err)
	}
	bound, err := srv.LocalAddr()
	if err != nil {
		t.Fatalf("local addr: %v", err)
	}

	// SendTo on an unset handle opens a datagram socket lazily.
	client := socket.New()
	defer client.Close()
	msg := []byte("ping")
	n, err := client.SendTo(msg, bound)
	if err != nil {
		t.Fatalf("sendto: %v", err)
	}
	if n != len(msg) {
		t.Fatalf("sendto queued %d bytes, want %d", n, len(msg))
	}

	buf := make([]byte, 64)
	m, peer, err := srv.RecvFrom(buf)
	if err != nil {
		t.Fatalf("recvfrom: %v", err)
	}
	if !bytes.Equal(buf[:m], msg) {
		t.Fatalf("got %q, want %q", buf[:m], msg)
	}

	clientLocal, err := client.LocalAddr()
	if err != nil {
		t.Fatalf("client local addr: %v", err)
	}
	if peer.Port() != clientLocal.Port() {
		t.Fatalf("peer port %d, client bound to %d", peer.Port(), clientLocal.Port())
	}

	// Reply to the reported peer.
	if _, err := srv.SendTo([]byte("pong"), peer); err != nil {
		t.Fatalf("reply sendto: %v", err)
	}
	m, _, err = client.RecvFrom(buf)
	if err != nil {
		t.Fatalf("client recvfrom: %v", err)
	}
	if string(buf[:m]) != "pong" {
		t.Fatalf("got %q, want pong", buf[:m])
	}
}

func TestDatagramVectored(t *testing.T) {
	srvAddr, _ := sockaddr.Parse("127.0.0.1:0")
	srv := socket.New()
	defer srv.Close()
	if err := srv.OpenDatagram(sockaddr.IPv4); err != nil {
		t.Fatalf("open datagram: %v", err)
	}
	if err := srv.Bind(srvAddr, false, false); err != nil {
		t.Fatalf("bind: %v", err)
	}
	bound, _ := srv.LocalAddr()

	client := socket.New()
	defer client.Close()
	n, err := client.SendToV([][]byte{[]byte("he"), []byte("llo")}, bound)
	if err != nil {
		t.Fatalf("sendtov: %v", err)
	}
	if n != 5 {
		t.Fatalf("sendtov queued %d bytes, want 5", n)
	}

	head := make([]byte, 2)
	tail := make([]byte, 8)
	m, _, err := srv.RecvFromV([][]byte{head, tail})
	if err != nil {
		t.Fatalf("recvfromv: %v", err)
	}
	if m != 5 || string(head) != "he" || string(tail[:3]) != "llo" {
		t.Fatalf("got %d bytes, %q %q", m, head, tail[:3])
	}
}
