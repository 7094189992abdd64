package publisher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

type KafkaConfig struct {
	Host       string
	Port       string
	Topic      string
	Username   string
	Password   string
	Mechanism  string
	TLSEnabled bool
}

// KafkaPublisher fans transaction transitions out to downstream consumers
// (notifications, analytics). It implements domain.TransitionObserver.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	transport := &kafka.Transport{}

	if cfg.Username != "" {
		mechanism, err := saslMechanism(cfg.Mechanism, cfg.Username, cfg.Password)
		if err != nil {
			return nil, err
		}
		transport.SASL = mechanism
	}
	if cfg.TLSEnabled {
		transport.TLS = &tls.Config{}
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:      kafka.TCP(net.JoinHostPort(cfg.Host, cfg.Port)),
			Topic:     cfg.Topic,
			Balancer:  &kafka.LeastBytes{},
			Transport: transport,
		},
	}, nil
}

// ObserveTransition publishes the transition keyed by reference, so all
// events of one transaction land on the same partition in order.
func (p *KafkaPublisher) ObserveTransition(event domain.TransitionEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transition event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Reference),
		Value: value,
		Time:  time.Now(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func saslMechanism(name, username, password string) (sasl.Mechanism, error) {
	switch name {
	case "", "PLAIN":
		return plain.Mechanism{Username: username, Password: password}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, username, password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, username, password)
	default:
		return nil, fmt.Errorf("unsupported sasl mechanism: %s", name)
	}
}
