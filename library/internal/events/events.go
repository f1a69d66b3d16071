package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/pkg/circuit_breaker"
)

type Type string

const (
	BorrowingRecordCreated Type = "borrowing_record.created"
	BorrowingRecordUpdated Type = "borrowing_record.updated"
	ReservationCreated     Type = "reservation.created"
	ReservationUpdated     Type = "reservation.updated"
)

type Event struct {
	Type       Type      `json:"type"`
	EntityID   int64     `json:"entity_id"`
	BookID     int64     `json:"book_id"`
	MemberID   int64     `json:"member_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func BorrowingRecordEvent(typ Type, rec model.BorrowingRecord) Event {
	return Event{
		Type:       typ,
		EntityID:   rec.ID,
		BookID:     rec.BookID,
		MemberID:   rec.MemberID,
		Status:     string(rec.Status),
		OccurredAt: time.Now().UTC(),
	}
}

func ReservationEvent(typ Type, rsv model.Reservation) Event {
	return Event{
		Type:       typ,
		EntityID:   rsv.ID,
		BookID:     rsv.BookID,
		MemberID:   rsv.MemberID,
		Status:     string(rsv.Status),
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(20, 5*time.Second, 0.5, 2),
		log:      log.Named("events"),
	}
}

// Publish sends e keyed by book id so events of one book stay ordered.
func (p *kafkaPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(e.BookID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "producer.SendMessage")
		}
		p.log.Debug("published", zap.String("type", string(e.Type)),
			zap.Int32("partition", partition), zap.Int64("offset", offset))
		return nil
	})
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type nopPublisher struct{}

// NewNopPublisher is used when no broker is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) error {
	return nil
}
