package server

import (
	"net"
	"strings"
	"testing"
	"time"
)

func readResponse(t *testing.T, conn net.Conn) string {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(time.Second))
	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return string(buf[:n])
}

func TestHandleConnectionServesOneRequest(t *testing.T) {
	f := newFixture()
	listener := NewTCPListener("127.0.0.1:0", f.executor)

	srv, client := net.Pipe()
	defer client.Close()
	go listener.handleConnection(srv)

	if _, err := client.Write([]byte("GET /nope\r\n\r\n")); err != nil {
		t.Fatal(err)
	}

	resp := readResponse(t, client)
	if !strings.HasPrefix(resp, "HTTP/1.1 404 ") {
		t.Errorf("response = %q, want 404 status line", resp)
	}
	if !strings.HasSuffix(resp, "\r\n") {
		t.Errorf("response %q not CRLF-terminated", resp)
	}
}

func TestHandleConnectionMalformedRequest(t *testing.T) {
	f := newFixture()
	listener := NewTCPListener("127.0.0.1:0", f.executor)

	srv, client := net.Pipe()
	defer client.Close()
	go listener.handleConnection(srv)

	if _, err := client.Write([]byte("garbage")); err != nil {
		t.Fatal(err)
	}

	resp := readResponse(t, client)
	if !strings.HasPrefix(resp, "HTTP/1.1 400 ") {
		t.Errorf("response = %q, want 400 status line", resp)
	}
}

// A peer that disconnects before sending anything must not take anything
// down; the handler just logs and closes.
func TestHandleConnectionPeerDisconnect(t *testing.T) {
	f := newFixture()
	listener := NewTCPListener("127.0.0.1:0", f.executor)

	srv, client := net.Pipe()
	client.Close()

	done := make(chan struct{})
	go func() {
		listener.handleConnection(srv)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after peer disconnect")
	}
}
