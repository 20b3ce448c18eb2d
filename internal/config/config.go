package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	Port  int
	Mongo *MongoConfig
}

type MongoConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

func NewMongoConfig() *MongoConfig {
	return &MongoConfig{
		Host: "127.0.0.1",
		Port: 27017,
	}
}

func (c *MongoConfig) WithHost(host string, port int) *MongoConfig {
	c.Host = host
	c.Port = port
	return c
}

func (c *MongoConfig) WithCredentials(username, password string) *MongoConfig {
	c.Username = username
	c.Password = password
	return c
}

func (c *MongoConfig) WithDatabase(database string) *MongoConfig {
	c.Database = database
	return c
}

func (c *MongoConfig) BuildURI() string {
	var auth string
	if c.Username != "" && c.Password != "" {
		auth = fmt.Sprintf("%s:%s@", c.Username, c.Password)
	}
	return fmt.Sprintf("mongodb://%s%s:%d", auth, c.Host, c.Port)
}

// Connect establishes and pings the database connection. The process owns
// exactly one connection pool; a failure here is fatal at startup.
func (c *MongoConfig) Connect() (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.BuildURI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	return client.Database(c.Database), nil
}

// Load reads configuration from the environment, after loading a .env
// file when one is present.
func Load() *Config {
	_ = godotenv.Load()

	mongo := NewMongoConfig().
		WithHost(envOr("MONGO_HOST", "127.0.0.1"), envIntOr("MONGO_PORT", 27017)).
		WithCredentials(os.Getenv("MONGO_USERNAME"), os.Getenv("MONGO_PASSWORD")).
		WithDatabase(envOr("MONGO_DATABASE", "post"))

	return &Config{
		Port:  envIntOr("PORT", 8080),
		Mongo: mongo,
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
