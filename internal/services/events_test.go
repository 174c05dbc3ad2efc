package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_WaitsForCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	writer := services.NewMockKafkaWriter(ctrl)

	var pending []func()
	afterCommit := func(_ context.Context, fn func()) bool {
		pending = append(pending, fn)
		return true
	}

	publisher := services.NewEventPublisher(writer, afterCommit)
	publisher.Publish(context.Background(), models.ArticleCreated, uuid.New(), uuid.New())

	require.Len(t, pending, 1)

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	pending[0]()
}

func TestEventPublisher_SendsImmediatelyWithoutTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	writer := services.NewMockKafkaWriter(ctrl)

	noTx := func(context.Context, func()) bool { return false }
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	services.NewEventPublisher(writer, noTx).
		Publish(context.Background(), models.ArticleUpdated, uuid.New(), uuid.New())
}

func TestEventPublisher_BoundedWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	writer := services.NewMockKafkaWriter(ctrl)

	// The request context is already gone by the time deferred events go out.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ ...kafka.Message) error {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(services.PublishTimeout), deadline, time.Second)
			assert.NoError(t, ctx.Err())
			return errors.New("broker down")
		})

	assert.NotPanics(t, func() {
		services.NewEventPublisher(writer, nil).
			Publish(ctx, models.ArticleDeleted, uuid.New(), uuid.New())
	})
}
