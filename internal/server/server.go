// Package server runs the trading socket: a TCP accept loop handing each
// connection to its own goroutine, bounded by a configurable admission cap.
package server

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/Csully01/stock-exchange-webserver/internal/service"
	"github.com/Csully01/stock-exchange-webserver/internal/wire"
	"github.com/google/uuid"
)

// Server accepts trading connections and processes one transaction per
// connection. Every accepted connection runs in its own goroutine; when
// maxConns > 0 the accept loop blocks once that many connections are in
// flight, so admission is bounded without dropping connections.
type Server struct {
	txSvc        *service.TransactionService
	logger       *slog.Logger
	maxConns     int
	readTimeout  time.Duration // 0 disables the deadline
	writeTimeout time.Duration

	mu sync.Mutex
	ln net.Listener
	wg sync.WaitGroup
}

// New creates a Server. maxConns <= 0 means unbounded admission;
// zero timeouts leave connections without deadlines.
func New(txSvc *service.TransactionService, logger *slog.Logger, maxConns int, readTimeout, writeTimeout time.Duration) *Server {
	return &Server{
		txSvc:        txSvc,
		logger:       logger,
		maxConns:     maxConns,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// Serve accepts connections on ln until the context is cancelled or the
// listener is closed. It returns after every in-flight connection handler
// has finished.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	// Close the listener when the context is cancelled so Accept unblocks.
	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	var sem chan struct{}
	if s.maxConns > 0 {
		sem = make(chan struct{}, s.maxConns)
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			s.wg.Wait()
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		// Blocks the accept loop while maxConns handlers are in flight.
		if sem != nil {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				_ = conn.Close()
				s.wg.Wait()
				return nil
			}
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if sem != nil {
				defer func() { <-sem }()
			}
			s.handleConn(conn)
		}()
	}
}

// Addr returns the listener address, or nil before Serve is called.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// handleConn processes exactly one transaction and closes the connection.
// Stream failures abandon the connection with no retry; the ledger and all
// other connections are unaffected.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	connID := uuid.New().String()
	start := time.Now()

	if s.readTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	}
	req, err := wire.ReadRequest(bufio.NewReader(conn))
	if err != nil {
		s.logger.Warn("read request failed",
			slog.String("conn_id", connID),
			slog.String("error", err.Error()),
		)
		return
	}

	result := s.txSvc.Dispatch(req.Verb, req.Symbol, req.Amount)

	if s.writeTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	if err := wire.WriteResponse(conn, result); err != nil {
		s.logger.Warn("write response failed",
			slog.String("conn_id", connID),
			slog.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("transaction",
		slog.String("conn_id", connID),
		slog.String("verb", req.Verb),
		slog.String("symbol", req.Symbol),
		slog.Int64("amount", req.Amount),
		slog.Duration("duration", time.Since(start)),
	)
}
