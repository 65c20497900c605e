// Package jsonrpc serves the igloo_ status namespace over HTTP and an
// applied payload subscription over websockets.
package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/websocket"
	"github.com/virjilakrum/igloo/log"
	"github.com/virjilakrum/igloo/state"
)

// Server is the jsonrpc server.
type Server struct {
	cfg       Config
	endpoints *IglooEndpoints
	st        stateInterface

	srv      *http.Server
	upgrader websocket.Upgrader
}

// NewServer creates a jsonrpc server.
func NewServer(cfg Config, st stateInterface, pool poolInterface) *Server {
	return &Server{
		cfg:       cfg,
		endpoints: NewIglooEndpoints(st, pool),
		st:        st,
		upgrader:  websocket.Upgrader{},
	}
}

// Start listens and serves until the listener fails or Stop is called.
func (s *Server) Start() error {
	address := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()

	lmt := tollbooth.NewLimiter(s.cfg.MaxRequestsPerIPAndSecond, nil)
	lmt.SetMethods([]string{http.MethodPost})
	mux.Handle("/", tollbooth.LimitHandler(lmt, http.HandlerFunc(s.handle)))
	if s.cfg.EnableWebSockets {
		mux.HandleFunc("/ws", s.handleWs)
	}

	s.srv = &http.Server{
		Handler:      mux,
		ReadTimeout:  s.cfg.ReadTimeout.Duration,
		WriteTimeout: s.cfg.WriteTimeout.Duration,
	}
	log.Infof("jsonrpc server listening on %s", address)
	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(context.Background())
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeResponse(w, newErrorResponse(nil, errCodeInvalidRequest, "error reading request body"))
		return
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeResponse(w, newErrorResponse(nil, errCodeParse, "invalid json request"))
		return
	}
	writeResponse(w, s.endpoints.handle(r.Context(), req))
}

func writeResponse(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("error writing jsonrpc response: %v", err)
	}
}

// appliedPayloadNotification is pushed to websocket subscribers once per
// newly applied payload.
type appliedPayloadNotification struct {
	EpochNumber ArgUint64   `json:"epochNumber"`
	EpochHash   common.Hash `json:"epochHash"`
	Source      string      `json:"source"`
	ContentHash common.Hash `json:"contentHash"`
}

// handleWs streams newly applied payloads. The subscription polls the
// state, it does not hook the runner, so a slow subscriber can never stall
// derivation.
func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("error upgrading websocket connection: %v", err)
		return
	}
	defer conn.Close()

	const pollInterval = time.Second
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastSeen common.Hash
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		payload, err := s.st.GetLastAppliedPayload(r.Context(), nil)
		if err != nil {
			if errors.Is(err, state.ErrNotFound) {
				continue
			}
			log.Errorf("error reading last applied payload: %v", err)
			return
		}
		if payload.ContentHash == lastSeen {
			continue
		}
		lastSeen = payload.ContentHash

		err = conn.WriteJSON(appliedPayloadNotification{
			EpochNumber: ArgUint64(payload.EpochNumber),
			EpochHash:   payload.EpochHash,
			Source:      string(payload.Source),
			ContentHash: payload.ContentHash,
		})
		if err != nil {
			return
		}
	}
}
