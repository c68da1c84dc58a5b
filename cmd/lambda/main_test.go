package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pricofy/translation-relay/internal/domain"
	"github.com/pricofy/translation-relay/internal/handler"
	"github.com/pricofy/translation-relay/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	objects map[string][]byte
	gets    int
}

func (m *memoryStore) Get(_ context.Context, bucket, key string) ([]byte, error) {
	m.gets++
	return m.objects[bucket+"/"+key], nil
}

func (m *memoryStore) Put(_ context.Context, bucket, key string, body []byte, _ string) error {
	m.objects[bucket+"/"+key] = body
	return nil
}

type bracketTranslator struct{}

func (bracketTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	return "[" + text + "]", nil
}

func newTestFunction(store *memoryStore) *function {
	logger := logging.Discard()
	return &function{
		relay:  handler.New(store, bracketTranslator{}, "translations", logger),
		warmer: newTestWarmer(&fakeInvoker{}, "translation-relay"),
	}
}

func TestHandleRequest_S3Event(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{
		"uploads/greeting.json": []byte(`{"source_language":"en","target_language":"es","text":"Hello"}`),
	}}
	fn := newTestFunction(store)

	event := json.RawMessage(`{"Records":[{"eventSource":"aws:s3","s3":{"bucket":{"name":"uploads"},"object":{"key":"greeting.json"}}}]}`)
	got, err := fn.handleRequest(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, domain.Success(), got)

	var result domain.TranslationResult
	require.NoError(t, json.Unmarshal(store.objects["translations/translated-greeting.json"], &result))
	assert.Equal(t, "[Hello]", result.TranslatedText)
}

func TestHandleRequest_Warmup(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{}}
	fn := newTestFunction(store)

	got, err := fn.handleRequest(context.Background(), json.RawMessage(`{"source":"warmup"}`))
	require.NoError(t, err)

	result, ok := got.(*WarmupResult)
	require.True(t, ok)
	assert.Equal(t, "warm", result.Body.Status)
	assert.Zero(t, store.gets)
}

func TestHandleRequest_EmptyRecords(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{}}
	fn := newTestFunction(store)

	got, err := fn.handleRequest(context.Background(), json.RawMessage(`{"Records":[]}`))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, handler.ErrNoRecords)
	assert.Zero(t, store.gets)
}

func TestHandleRequest_UndecodableEvent(t *testing.T) {
	fn := newTestFunction(&memoryStore{objects: map[string][]byte{}})

	_, err := fn.handleRequest(context.Background(), json.RawMessage(`{"Records":"nope"}`))
	assert.ErrorContains(t, err, "failed to decode S3 event")
}
