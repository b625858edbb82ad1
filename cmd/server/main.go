package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vishalparmarr/react-native-bookworm/internal/auth"
	"github.com/vishalparmarr/react-native-bookworm/internal/book"
	"github.com/vishalparmarr/react-native-bookworm/internal/config"
	"github.com/vishalparmarr/react-native-bookworm/internal/database"
	"github.com/vishalparmarr/react-native-bookworm/internal/keepalive"
	"github.com/vishalparmarr/react-native-bookworm/internal/logs"
	"github.com/vishalparmarr/react-native-bookworm/internal/middleware"
	"github.com/vishalparmarr/react-native-bookworm/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		panic("DATABASE_URL missing")
	}
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET missing")
	}

	database.Connect(cfg.DBUrl)

	if err := storage.InitS3(); err != nil {
		panic(err)
	}

	if cfg.APIURL != "" {
		keepalive.Start(cfg.APIURL)
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)

	books := api.Group("/books")
	books.Use(middleware.AuthMiddleware())
	books.GET("", book.ListBooks)
	books.POST("", book.CreateBook)
	books.DELETE("/:id", book.DeleteBook)
	books.GET("/user", book.UserBooks)

	logs.LogJSON("INFO", "Server starting", map[string]interface{}{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		logs.LogJSON("FATAL", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
