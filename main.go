package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"folio/api"
)

func main() {
	args := ParseArgs()
	if err := args.Validate(); err != nil {
		slog.Error("Invalid arguments", slog.Any("error", err))
		os.Exit(1)
	}
	server, err := api.NewServer(args.ServerConfig)
	if err != nil {
		panic(err)
	}
	defer server.Close()

	router := gin.Default()
	// handler 收到的 ctx 是 *gin.Context，取消與期限要沿用 http.Request 的 context
	router.ContextWithFallback = true
	server.RegisterHandlers(router)
	slog.Info("Server start", slog.String("url", args.ServerURL))
	if err := router.Run(args.ServerURL); err != nil {
		panic(err)
	}
}
