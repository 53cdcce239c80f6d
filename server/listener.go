package server

import (
	"context"
	"errors"
	"log"
	"net"

	"github.com/az1406/MonsterCardTradingGame/protocol"
)

// TCPListener accepts connections and serves one request per connection:
// read a single buffered chunk, decode, dispatch, write the response, close.
// No keep-alive, no pipelining.
type TCPListener struct {
	Addr     string
	Executor *RequestExecutor
}

func NewTCPListener(addr string, executor *RequestExecutor) *TCPListener {
	return &TCPListener{Addr: addr, Executor: executor}
}

// Start runs the accept loop until the context is cancelled. Cancellation
// stops accepting; connections already being handled finish on their own.
func (l *TCPListener) Start(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", l.Addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	log.Printf("✅ Server listening on %s", l.Addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Printf("[Listener] Accept failed: %v", err)
			continue
		}
		go l.handleConnection(conn)
	}
}

// handleConnection owns the whole connection lifecycle. Whatever goes wrong
// in here is logged and the connection closed; the accept loop never sees
// it.
func (l *TCPListener) handleConnection(conn net.Conn) {
	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Listener] Panic while handling %s: %v", conn.RemoteAddr(), r)
		}
	}()

	buffer := make([]byte, protocol.MaxRequestSize)
	n, err := conn.Read(buffer)
	if err != nil {
		log.Printf("[Listener] Read from %s failed: %v", conn.RemoteAddr(), err)
		return
	}
	log.Printf("[Listener] Received request from %s", conn.RemoteAddr())

	var response *protocol.Response
	request, err := protocol.Decode(buffer[:n])
	if err != nil {
		response = protocol.BadRequest("")
	} else {
		response = l.Executor.Dispatch(request)
	}

	if _, err := conn.Write(response.Encode()); err != nil {
		log.Printf("[Listener] Write to %s failed: %v", conn.RemoteAddr(), err)
		return
	}
	log.Printf("[Listener] Responded to %s", conn.RemoteAddr())
}
