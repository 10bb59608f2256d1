package main

import (
	"context"
	"log"

	"parkfinder/internal/env"
	"parkfinder/internal/service"
	"parkfinder/internal/storage"
	"parkfinder/internal/urbanpark"
	"parkfinder/pkg/graceful"
	"parkfinder/pkg/kafkaclient"
)

// The watcher consumes bucket-notification events and re-imports every dataset
// file that lands in the archive bucket, keeping the curated registry in sync
// with uploads done elsewhere.
func main() {
	env.LoadEnv()

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	kafkaBroker := env.MustGetEnv("KAFKA_BROKER")
	kafkaTopic := env.MustGetEnv("KAFKA_TOPIC")
	kafkaGroupID := env.MustGetEnv("KAFKA_GROUP_ID")

	log.Printf("Connecting to Kafka broker: %s on topic: %s with group ID: %s", kafkaBroker, kafkaTopic, kafkaGroupID)

	consumer, err := kafkaclient.NewKafkaConsumer(kafkaTopic, kafkaGroupID, kafkaBroker)
	if err != nil {
		log.Fatalf("Failed to create kafka consumer %v", err)
	}

	s3Service, err := storage.NewS3Service()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewParkStore(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal(err)
	}

	consumer.StartConsuming(ctx)
	iterator := service.NewIterator(consumer, func(ctx context.Context, bucket, key string) (*urbanpark.RawFile, error) {
		return s3Service.GetDataset(ctx, bucket, key)
	})
	for obj := range iterator.Objects(ctx) {
		parks := urbanpark.ConvertAll(obj.Data)
		stored, err := store.UpsertBatch(ctx, parks)
		if err != nil {
			log.Printf("Re-import of %s/%s failed after %d records: %v", obj.Bucket, obj.Key, stored, err)
			continue
		}
		log.Printf("Re-imported %d park records from %s/%s", stored, obj.Bucket, obj.Key)
	}

	consumer.Stop()
	log.Println("Main method finished, application exiting.")
}
