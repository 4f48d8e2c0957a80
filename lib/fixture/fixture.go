// Package fixture serves an offline mock of the User Inyerface game,
// the page objects in package pages can run against it without the public site.
package fixture

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed site
var site embed.FS

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Handler of the mock site
func Handler(logger *zap.Logger) http.Handler {
	assets, err := fs.Sub(site, "site")
	if err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), accessLog(logger))

	page := func(name string) gin.HandlerFunc {
		html, err := fs.ReadFile(assets, name)
		if err != nil {
			panic(err)
		}
		return func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", html)
		}
	}

	r.GET("/", page("index.html"))
	r.GET("/game", page("game.html"))
	r.StaticFS("/assets", http.FS(assets))

	return r
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Server of the mock site
type Server struct {
	// URL of the start page
	URL string

	srv      *http.Server
	listener net.Listener
	done     chan struct{}
}

// Serve the mock site on the addr, such as ":8080" or "127.0.0.1:0" for a random port
func Serve(addr string, logger *zap.Logger) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		URL:      "http://" + l.Addr().String() + "/",
		srv:      &http.Server{Handler: Handler(logger), ReadHeaderTimeout: 10 * time.Second},
		listener: l,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		err := s.srv.Serve(l)
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("fixture server stopped", zap.Error(err))
		}
	}()

	logger.Info("fixture site", zap.String("url", s.URL))

	return s, nil
}

// Wait until the server stops
func (s *Server) Wait() {
	<-s.done
}

// Shutdown the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	<-s.done
	return err
}

// Close the server and all its connections
func (s *Server) Close() error {
	err := s.srv.Close()
	<-s.done
	return err
}
