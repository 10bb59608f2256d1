package main

import (
	"context"
	"log"

	"parkfinder/internal/env"
	"parkfinder/internal/matcher"
	"parkfinder/internal/search"
	"parkfinder/internal/storage"
	"parkfinder/internal/web"
	"parkfinder/pkg/graceful"
	"parkfinder/pkg/kakaolocal"
)

func main() {
	env.LoadEnv()

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	kakaoKey := env.MustGetEnv("KAKAO_REST_API_KEY")

	store, err := storage.NewParkStore(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	svc := search.NewService(
		kakaolocal.NewClient(kakaoKey),
		store,
		matcher.New(matcher.DefaultConfig()),
	)

	server := web.NewServer(env.GetEnvOr("LISTEN_ADDR", ":8080"), svc)
	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped gracefully.")
}
