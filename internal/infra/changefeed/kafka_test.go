package changefeed

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"pureflow/internal/domain/repository"
	"pureflow/internal/errors"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

// fakeReader replays a fixed message sequence, then blocks until the
// subscription context is cancelled.
type fakeReader struct {
	messages []kafka.Message
	closed   chan struct{}
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	return &fakeReader{messages: msgs, closed: make(chan struct{})}
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		<-ctx.Done()

		return kafka.Message{}, ctx.Err()
	}

	msg := r.messages[0]
	r.messages = r.messages[1:]

	return msg, nil
}

func (r *fakeReader) Close() error {
	close(r.closed)

	return nil
}

func testFeedLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderEvent(t *testing.T, id, status string) repository.ChangeEvent {
	t.Helper()

	row, err := json.Marshal(map[string]string{"id": id, "status": status})
	require.NoError(t, err)

	return repository.ChangeEvent{
		Table: repository.TableOrders,
		Kind:  repository.ChangeUpdate,
		Row:   row,
	}
}

func TestKafkaFeed_PublishKeysByTableAndRow(t *testing.T) {
	writer := &fakeWriter{}
	feed := NewKafkaFeedWith(writer, nil, testFeedLogger())

	err := feed.Publish(context.Background(), orderEvent(t, "ORD-1", "Pending"))

	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, repository.TableOrders+"/ORD-1", string(writer.messages[0].Key))

	var decoded repository.ChangeEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, repository.ChangeUpdate, decoded.Kind)
}

func TestKafkaFeed_PublishMalformedRowFallsBackToEmptyKey(t *testing.T) {
	writer := &fakeWriter{}
	feed := NewKafkaFeedWith(writer, nil, testFeedLogger())

	event := repository.ChangeEvent{
		Table: repository.TableOrders,
		Kind:  repository.ChangeInsert,
		Row:   json.RawMessage(`not json`),
	}

	require.NoError(t, feed.Publish(context.Background(), event))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, repository.TableOrders+"/", string(writer.messages[0].Key))
}

func TestKafkaFeed_PublishWriterFailure(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unreachable")}
	feed := NewKafkaFeedWith(writer, nil, testFeedLogger())

	err := feed.Publish(context.Background(), orderEvent(t, "ORD-1", "Pending"))

	assert.ErrorContains(t, err, "publish change event")
}

func TestKafkaFeed_SubscribeFiltersAndSkipsGarbage(t *testing.T) {
	orders := orderEvent(t, "ORD-1", "Processing")
	ordersValue, err := json.Marshal(orders)
	require.NoError(t, err)

	other := repository.ChangeEvent{Table: "users", Kind: repository.ChangeUpdate, Row: json.RawMessage(`{}`)}
	otherValue, err := json.Marshal(other)
	require.NoError(t, err)

	reader := newFakeReader(
		kafka.Message{Value: []byte("garbage")},
		kafka.Message{Value: otherValue},
		kafka.Message{Value: ordersValue},
	)

	feed := NewKafkaFeedWith(&fakeWriter{}, func() kafkaMessageReader { return reader }, testFeedLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan repository.ChangeEvent, 3)
	require.NoError(t, feed.Subscribe(ctx, repository.TableOrders, func(event repository.ChangeEvent) {
		received <- event
	}))

	select {
	case event := <-received:
		assert.Equal(t, repository.TableOrders, event.Table)
		assert.Equal(t, repository.ChangeUpdate, event.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change event")
	}

	// Only the orders-table event gets through.
	select {
	case event := <-received:
		t.Fatalf("unexpected extra event for table %q", event.Table)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestKafkaFeed_SubscribeStopsOnCancel(t *testing.T) {
	reader := newFakeReader()
	feed := NewKafkaFeedWith(&fakeWriter{}, func() kafkaMessageReader { return reader }, testFeedLogger())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, feed.Subscribe(ctx, repository.TableOrders, func(repository.ChangeEvent) {
		t.Error("no events expected")
	}))

	cancel()

	select {
	case <-reader.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("reader not closed after cancel")
	}
}

func TestKafkaFeed_CloseReleasesWriter(t *testing.T) {
	writer := &fakeWriter{}
	feed := NewKafkaFeedWith(writer, nil, testFeedLogger())

	require.NoError(t, feed.Close())
	assert.True(t, writer.closed)
}
