package api

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pingponglab/traintracker/internal/config"
	"github.com/pingponglab/traintracker/internal/runs"
)

type Server struct {
	router *gin.Engine
	runs   *runs.Service
	config *config.Config
}

func NewServer(cfg *config.Config, svc *runs.Service) *Server {
	r := gin.New()
	s := &Server{
		router: r,
		runs:   svc,
		config: cfg,
	}
	s.registerMiddleware()
	s.registerRoutes()
	return s
}

func (s *Server) Run(addr string) error {
	if s == nil || s.router == nil {
		return errors.New("api: nil server")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = ":8080"
	}
	return s.router.Run(addr)
}
