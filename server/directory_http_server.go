package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// DirectoryHttpServer serves the restaurant directory API and shuts down
// gracefully on SIGINT/SIGTERM.
type DirectoryHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	logger    *zap.SugaredLogger

	// onShutdown hooks run after the listener stops, e.g. bus disposal.
	onShutdown []func()
}

func NewDirectoryHttpServer(router *Router, muxRouter *mux.Router, addr string, logger *zap.SugaredLogger) *DirectoryHttpServer {
	return &DirectoryHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
		logger:    logger,
	}
}

// OnShutdown registers a hook invoked during graceful shutdown.
func (s *DirectoryHttpServer) OnShutdown(hook func()) {
	s.onShutdown = append(s.onShutdown, hook)
}

// Start blocks serving HTTP until an interrupt or termination signal.
func (s *DirectoryHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Infof("[DirectoryHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatalf("[DirectoryHttpServer] ListenAndServe(): %v", err)
		}
	}()

	<-stop
	s.logger.Infof("[DirectoryHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Fatalf("[DirectoryHttpServer] Server forced to shutdown: %v", err)
	}

	for _, hook := range s.onShutdown {
		hook()
	}

	s.logger.Infof("[DirectoryHttpServer] Server exiting")
}
