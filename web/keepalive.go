package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// KeepAliveServer answers liveness pings so free-tier hosts don't idle
// the bot out.
type KeepAliveServer struct {
	server *http.Server
}

func NewKeepAliveServer(addr string) *KeepAliveServer {
	router := mux.NewRouter()
	router.HandleFunc("/", handlePing).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/healthz", handlePing).Methods(http.MethodGet, http.MethodHead)

	return &KeepAliveServer{
		server: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("alive"))
}

// Start runs the server in a goroutine
func (k *KeepAliveServer) Start() {
	go func() {
		log.Infof("Keep-alive server listening on %s", k.server.Addr)
		if err := k.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("Keep-alive server error: %v", err)
		}
	}()
}

// Shutdown stops the server gracefully
func (k *KeepAliveServer) Shutdown(ctx context.Context) error {
	return k.server.Shutdown(ctx)
}
