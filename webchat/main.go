package main

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/VadWill/Pepe/assistant"
	"github.com/VadWill/Pepe/config"
	"github.com/VadWill/Pepe/menu"
)

type Server struct {
	config    *config.Config
	catalogue *menu.Catalogue
	assistant *assistant.Assistant
	upgrader  websocket.Upgrader
}

func main() {
	cfg := config.LoadConfig()
	catalogue := menu.Default()

	server := &Server{
		config:    cfg,
		catalogue: catalogue,
		assistant: assistant.New(catalogue),
		upgrader:  websocket.Upgrader{},
	}

	if err := server.Run(); err != nil {
		log.Fatalf("failed to run the chat server: %v", err)
	}
}

func (s *Server) Run() error {
	r := gin.Default()

	r.StaticFile("/", filepath.Join(s.config.Web.Dir, "index.html"))

	r.GET("/menu", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, s.catalogue.Categories)
	})

	r.GET("/chat", s.handleChat)

	return r.Run(s.config.Server.Address())
}
