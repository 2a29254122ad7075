package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/config"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, o entities.NewOrder) (entities.Order, error)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaHandler places orders published to the intake topic. Messages that
// cannot be placed are parked in "<topic>-dlq" and their offsets committed.
type KafkaHandler struct {
	dlq      messageWriter
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	placer   OrderPlacer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, catalog entities.Catalog, placer OrderPlacer) *KafkaHandler {
	return &KafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: newValidator(catalog),
		placer:   placer,
	}
}

func (h *KafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// process handles one message. Failed messages go to the DLQ; the offset is
// committed either way so one bad message never blocks the partition.
func (h *KafkaHandler) process(ctx context.Context, m kafka.Message) {
	ordersInProgress.Inc()
	defer ordersInProgress.Dec()
	start := time.Now()

	order, err := h.handlePlaceOrder(ctx, m)
	orderProcessingDuration.Observe(time.Since(start).Seconds())
	if err == nil {
		ordersProcessed.Inc()
		h.logger.Debug("order placed from message", slog.Int64("order_id", order.ID), slog.Int64("offset", m.Offset))
		return
	}

	ordersFailed.Inc()
	h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

	if err := h.writeToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return
	}
	ordersDLQ.Inc()
}

func (h *KafkaHandler) handlePlaceOrder(ctx context.Context, m kafka.Message) (entities.Order, error) {
	var req CreateOrderRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return entities.Order{}, fmt.Errorf("failed to unmarshal order: %w", err)
	}

	o, err := newOrder(h.validate, req)
	if err != nil {
		return entities.Order{}, fmt.Errorf("invalid order data: %w", err)
	}

	return h.placer.PlaceOrder(ctx, o)
}

func (h *KafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   m.Topic + "-dlq",
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *KafkaHandler) Close() error {
	return errors.Join(h.reader.Close(), h.dlq.Close())
}
