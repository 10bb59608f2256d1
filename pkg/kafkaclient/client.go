// Package kafkaclient wraps a kafka-go reader in a channel-based consumer
// with manual offset control and graceful shutdown. The re-import watcher
// consumes MinIO bucket notifications through it.
package kafkaclient

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaReader is the subset of the kafka-go Reader the consumer needs.
// It exists so unit tests can inject a mock.
type KafkaReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConsumer runs the message loop for one topic and exposes the messages
// on a channel. Offsets are committed explicitly by the caller once a message
// has been processed, so unprocessed messages replay after a crash.
type KafkaConsumer struct {
	reader KafkaReader
	// closed to signal a graceful shutdown of the consumer loop.
	doneChan chan struct{}
	// ensures the loop goroutine has exited before Stop returns.
	wg sync.WaitGroup
	// carries messages from the loop to the consumer of this client.
	messageChan chan kafka.Message
}

// NewKafkaConsumer creates a consumer for the given topic and group.
func NewKafkaConsumer(topic, groupID, broker string) (*KafkaConsumer, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
		// Auto-commit is disabled; CommitOffset controls offsets.
		CommitInterval: 0,
		MinBytes:       10e3,
		MaxBytes:       10e6,
	})
	return &KafkaConsumer{
		reader:      reader,
		doneChan:    make(chan struct{}),
		messageChan: make(chan kafka.Message),
	}, nil
}

// Messages returns the channel the consumer loop feeds. It is closed when
// the loop stops.
func (kc *KafkaConsumer) Messages() <-chan kafka.Message {
	return kc.messageChan
}

// CommitOffset acknowledges one processed message.
func (kc *KafkaConsumer) CommitOffset(ctx context.Context, msg kafka.Message) error {
	log.Printf("Committing offset for topic=%s, partition=%d, offset=%d", msg.Topic, msg.Partition, msg.Offset)
	return kc.reader.CommitMessages(ctx, msg)
}

// StartConsuming begins the message loop in its own goroutine. The loop ends
// on context cancellation, Stop, or a closed reader.
func (kc *KafkaConsumer) StartConsuming(ctx context.Context) {
	kc.wg.Add(1)
	go func() {
		defer kc.wg.Done()
		defer close(kc.messageChan)

		log.Println("Starting Kafka consumer loop...")

		for {
			select {
			case <-ctx.Done():
				log.Println("Context canceled, stopping consumer loop.")
				return
			case <-kc.doneChan:
				log.Println("Shutdown signal received, stopping consumer loop.")
				return
			default:
				msg, err := kc.reader.ReadMessage(ctx)
				if err != nil {
					log.Printf("Error reading message: %v", err)
					if err.Error() == "kafka: reader closed" {
						return
					}
					// Back off to avoid a tight error loop.
					time.Sleep(1 * time.Second)
					continue
				}

				select {
				case kc.messageChan <- msg:
					log.Printf("Message received: topic=%s, partition=%d, offset=%d", msg.Topic, msg.Partition, msg.Offset)
				case <-ctx.Done():
					log.Println("Context canceled before message handoff.")
					return
				case <-kc.doneChan:
					log.Println("Shutdown signal received before message handoff.")
					return
				}
			}
		}
	}()
}

// Stop shuts the consumer down gracefully: it stops the loop, waits for it to
// exit, and closes the underlying reader.
func (kc *KafkaConsumer) Stop() {
	log.Println("Attempting to stop Kafka consumer...")
	close(kc.doneChan)
	kc.wg.Wait()
	if err := kc.reader.Close(); err != nil {
		log.Printf("Failed to close Kafka reader: %v", err)
	}
	log.Println("Kafka consumer stopped gracefully.")
}
