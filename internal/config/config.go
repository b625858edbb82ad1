package config

import (
	"os"
)

type Config struct {
	DBUrl     string
	JWTSecret string
	APIURL    string
	Port      string
}

func LoadConfig() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	return &Config{
		DBUrl:     os.Getenv("DATABASE_URL"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		APIURL:    os.Getenv("API_URL"),
		Port:      port,
	}
}
