package pubsub

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPubSubClient struct {
	mock.Mock
}

func (m *MockPubSubClient) Publisher(topicName string) TopicPublisherInterface {
	args := m.Called(topicName)
	return args.Get(0).(TopicPublisherInterface)
}

func (m *MockPubSubClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockTopicPublisher struct {
	mock.Mock
}

func (m *MockTopicPublisher) Publish(ctx context.Context, data []byte, attributes map[string]string) (string, error) {
	args := m.Called(ctx, data, attributes)
	return args.String(0), args.Error(1)
}

type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) NewPublisher(ctx context.Context, projectID string) (PublisherInterface, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(PublisherInterface), args.Error(1)
}

func TestNewPubSubPublisherWithFactory(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		mockFactory := new(MockFactory)
		mockClient := new(MockPubSubClient)

		mockFactory.On("NewPublisher", mock.Anything, "test-project").Return(mockClient, nil)

		ctx := context.Background()
		publisher, err := NewPubSubPublisherWithFactory(ctx, "test-project", mockFactory)

		assert.NoError(t, err)
		assert.NotNil(t, publisher)

		mockFactory.AssertExpectations(t)
	})

	t.Run("factory error", func(t *testing.T) {
		mockFactory := new(MockFactory)
		mockFactory.On("NewPublisher", mock.Anything, "bad-project").Return(nil, errors.New("no credentials"))

		_, err := NewPubSubPublisherWithFactory(context.Background(), "bad-project", mockFactory)
		assert.Error(t, err)
	})
}

func TestPublish(t *testing.T) {
	t.Run("successful publish", func(t *testing.T) {
		mockClient := new(MockPubSubClient)
		mockTopic := new(MockTopicPublisher)

		mockClient.On("Publisher", "member-email-topic").Return(mockTopic)
		mockTopic.On("Publish", mock.Anything, []byte("payload"), map[string]string{"event": "LOAN_APPROVED"}).
			Return("msg-123", nil)

		publisher := &PubSubPublisher{client: mockClient}
		messageID, err := publisher.Publish(context.Background(), "member-email-topic", []byte("payload"), map[string]string{"event": "LOAN_APPROVED"})

		assert.NoError(t, err)
		assert.Equal(t, "msg-123", messageID)
		mockTopic.AssertExpectations(t)
	})

	t.Run("publish error", func(t *testing.T) {
		mockClient := new(MockPubSubClient)
		mockTopic := new(MockTopicPublisher)

		mockClient.On("Publisher", "member-email-topic").Return(mockTopic)
		mockTopic.On("Publish", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("publish failed"))

		publisher := &PubSubPublisher{client: mockClient}
		_, err := publisher.Publish(context.Background(), "member-email-topic", []byte("payload"), nil)

		assert.Error(t, err)
	})
}

func TestClose(t *testing.T) {
	mockClient := new(MockPubSubClient)
	mockClient.On("Close").Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	publisher := &PubSubPublisher{client: mockClient, ctx: ctx, cancel: cancel}

	assert.NoError(t, publisher.Close())
	mockClient.AssertExpectations(t)
}
