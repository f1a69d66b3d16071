package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/pkg/circuit_breaker"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e Event
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.Type != BorrowingRecordCreated || e.EntityID != 3 || e.BookID != 1 || e.Status != "Borrowed" {
			return errors.Errorf("unexpected event %+v", e)
		}
		return nil
	})

	p := NewPublisher(producer, "library.events", zap.NewNop())
	err := p.Publish(context.Background(), BorrowingRecordEvent(BorrowingRecordCreated, model.BorrowingRecord{
		ID: 3, BookID: 1, MemberID: 2, Status: model.BorrowingBorrowed,
	}))
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	p := NewPublisher(producer, "library.events", zap.NewNop())
	p.cb = circuit_breaker.New(2, time.Hour, 1, 1)

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	e := ReservationEvent(ReservationCreated, model.Reservation{ID: 1, BookID: 1, MemberID: 2})
	for i := 0; i < 2; i++ {
		err := p.Publish(context.Background(), e)
		require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	}

	err := p.Publish(context.Background(), e)
	require.ErrorIs(t, err, circuit_breaker.ErrOpen)
	require.Equal(t, circuit_breaker.Open, p.cb.State())
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_CanceledContext(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	p := NewPublisher(producer, "library.events", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Publish(ctx, Event{Type: ReservationUpdated}), context.Canceled)
	require.NoError(t, p.Close())
}

func TestNopPublisher(t *testing.T) {
	t.Parallel()
	require.NoError(t, NewNopPublisher().Publish(context.Background(), Event{}))
}
