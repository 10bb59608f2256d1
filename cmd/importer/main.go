package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"parkfinder/internal/env"
	"parkfinder/internal/keys"
	"parkfinder/internal/storage"
	"parkfinder/internal/urbanpark"
)

// The importer loads a raw urban-park dataset file into the curated registry.
// With -archive the raw file is also stored in the dataset bucket, which
// triggers the watcher on every node that consumes bucket notifications.
func main() {
	archive := flag.Bool("archive", false, "archive the raw file in the dataset bucket after importing")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("Usage: importer [-archive] <dataset.json>")
	}
	datasetPath := flag.Arg(0)

	env.LoadEnv()
	ctx := context.Background()
	start := time.Now()

	data, err := os.ReadFile(datasetPath)
	if err != nil {
		log.Fatalf("Failed to read dataset file: %v", err)
	}

	var file urbanpark.RawFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Fatalf("Failed to parse dataset file: %v", err)
	}
	fmt.Printf("Loaded %d raw records from %s\n", len(file.Records), datasetPath)

	parks := urbanpark.ConvertAll(&file)
	fmt.Printf("Converted %d records\n", len(parks))

	store, err := storage.NewParkStore(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal(err)
	}

	stored, err := store.UpsertBatch(ctx, parks)
	if err != nil {
		log.Fatalf("Import failed after %d records: %v", stored, err)
	}
	fmt.Printf("Imported %d park records\n", stored)

	if *archive {
		bucketName := env.GetEnvOr("PARK_BUCKET_NAME", "parks")
		s3Service, err := storage.NewS3Service()
		if err != nil {
			log.Fatal(err)
		}
		if err := s3Service.CreateBucket(ctx, bucketName, ""); err != nil {
			log.Fatal(err)
		}
		objectKey := keys.Dataset(filepath.Base(datasetPath))
		if err := s3Service.StoreDataset(ctx, bucketName, objectKey, bytes.NewReader(data), int64(len(data))); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("\nFinished import, took %s\n", time.Since(start))
}
