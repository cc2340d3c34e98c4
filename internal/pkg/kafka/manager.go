package kafka

import (
	"context"
	log "log/slog"

	"Peakfuel/internal/api/config"
	"Peakfuel/internal/pkg/mongo"
	"Peakfuel/internal/repository"

	"github.com/IBM/sarama"
)

// ConsumerManager owns the CDC consumer groups.
type ConsumerManager struct {
	likesConsumer sarama.ConsumerGroup
	likesHandler  sarama.ConsumerGroupHandler

	commentsConsumer sarama.ConsumerGroup
	commentsHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(
	cfg *config.Config,
	postRepo repository.PostRepo,
	engagementRepo repository.EngagementRepo,
	notificationRepo mongo.NotificationRepo,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	likesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaLikesConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	likesHandler := NewLikesHandler(postRepo, notificationRepo)

	commentsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaCommentsConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	commentsHandler := NewCommentsHandler(postRepo, engagementRepo, notificationRepo)

	return &ConsumerManager{
		likesConsumer:    likesConsumer,
		likesHandler:     likesHandler,
		commentsConsumer: commentsConsumer,
		commentsHandler:  commentsHandler,
	}, nil
}

// Start runs both consumer loops until the context is cancelled.
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaLikesConsumer.Topic
		log.Info("likes consumer started", "topic", topic)
		for {
			if err := m.likesConsumer.Consume(ctx, []string{topic}, m.likesHandler); err != nil {
				log.Error("error from likes consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		topic := cfg.KafkaCommentsConsumer.Topic
		log.Info("comments consumer started", "topic", topic)
		for {
			if err := m.commentsConsumer.Consume(ctx, []string{topic}, m.commentsHandler); err != nil {
				log.Error("error from comments consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("kafka manager shutting down...")

	if err := m.likesConsumer.Close(); err != nil {
		log.Error("failed to close likes consumer", "err", err)
	}
	if err := m.commentsConsumer.Close(); err != nil {
		log.Error("failed to close comments consumer", "err", err)
	}

	return nil
}
