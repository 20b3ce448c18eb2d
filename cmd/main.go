package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/klass-lk/ginblog/internal/config"
	"github.com/klass-lk/ginblog/internal/controller"
	"github.com/klass-lk/ginblog/internal/repository"
	"github.com/klass-lk/ginblog/internal/server"
	"github.com/klass-lk/ginblog/internal/service"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := cfg.Mongo.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Errorf("failed to disconnect from MongoDB: %v", err)
		}
	}()

	postRepo := repository.NewPostRepository(db)
	postService := service.NewPostService(postRepo)
	blogController := controller.NewBlogController(postService)

	srv := server.New().DefaultCORS()
	srv.RegisterController("/blog", blogController)

	log.Infof("Listening on port: %d", cfg.Port)
	if err := srv.Start(cfg.Port); err != nil {
		log.Fatal(err)
	}
}
