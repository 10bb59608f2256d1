// Package service provides the glue between the message source and object
// storage: an Iterator that consumes bucket-notification events (MinIO via
// Kafka) and loads the referenced objects with a pluggable LoaderFunc. The
// re-import watcher uses it to react to freshly uploaded dataset files.
package service

import (
	"context"
	"encoding/json"
	"log"
	"net/url"

	"github.com/minio/minio-go/v7/pkg/notification"
)

// Iterator consumes messages from a MessageIterator, interprets each message
// as a MinIO/S3 notification event, loads the referenced object via the
// LoaderFunc, and yields LoadedObject items on a channel. It is generic over
// the loaded item type T.
//
// The Iterator does not manage the lifecycle of the underlying message
// source; callers start and stop their consumer outside.
type Iterator[T any] struct {
	msgIterator MessageIterator
	loader      LoaderFunc[T]
}

// NewIterator constructs an Iterator for the provided message source and
// object loader.
func NewIterator[T any](iterator MessageIterator, loader LoaderFunc[T]) *Iterator[T] {
	return &Iterator[T]{
		msgIterator: iterator,
		loader:      loader,
	}
}

// Objects starts a goroutine that receives messages, decodes the notification
// event, loads the referenced object and emits a LoadedObject[T]. Offsets are
// committed only after a successful load, so a crashed watcher replays the
// event. Malformed or unloadable events are logged and skipped; the output
// channel closes when the message channel does.
func (it *Iterator[T]) Objects(ctx context.Context) <-chan *LoadedObject[T] {
	out := make(chan *LoadedObject[T])
	go func() {
		defer close(out)

		for msg := range it.msgIterator.Messages() {
			var event notification.Info
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("Error unmarshalling notification JSON: %v", err)
				continue
			}
			if len(event.Records) == 0 {
				log.Printf("Notification without records, skipping")
				continue
			}
			s3 := event.Records[0].S3
			objectKey, err := url.QueryUnescape(s3.Object.Key)
			if err != nil {
				log.Printf("Error decoding object key %q: %v", s3.Object.Key, err)
				continue
			}
			data, err := it.loader(ctx, s3.Bucket.Name, objectKey)
			if err != nil {
				log.Printf("Error loading object %q: %v", objectKey, err)
				continue
			}

			out <- &LoadedObject[T]{Data: data, Bucket: s3.Bucket.Name, Key: objectKey}

			if err := it.msgIterator.CommitOffset(ctx, msg); err != nil {
				log.Printf("Failed to commit offset: %v", err)
			}
		}
	}()
	return out
}
