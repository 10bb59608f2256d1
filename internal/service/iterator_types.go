package service

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageIterator is the contract for consuming messages from a Kafka topic.
// It lets the Iterator stay ignorant of the underlying consumer details.
//
// Implementations own the lifecycle of the consumer connection.
type MessageIterator interface {
	// Messages returns a receive-only channel of Kafka messages. The channel
	// is closed by the implementation when the consumer is stopped or the
	// underlying source is exhausted.
	Messages() <-chan kafka.Message

	// CommitOffset acknowledges that a message has been processed. The
	// provided context should be used for cancellation and deadlines.
	CommitOffset(ctx context.Context, msg kafka.Message) error
}

// LoaderFunc loads and decodes an object of type T from an object store like
// S3 or MinIO, given the bucket and key named by a notification event.
// Implementations must be read-only and honor the context.
type LoaderFunc[T any] func(ctx context.Context, bucket, key string) (T, error)

// LoadedObject pairs decoded object data with the storage location that the
// triggering notification event named.
type LoadedObject[T any] struct {
	Data   T
	Bucket string
	Key    string
}
