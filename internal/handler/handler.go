// Package handler provides the Lambda handler for the translation relay.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
	"github.com/pricofy/translation-relay/internal/domain"
)

const (
	// OutputKeyPrefix is prepended to the source key to name the output object.
	OutputKeyPrefix = "translated-"

	// ContentTypeJSON is declared on every written object.
	ContentTypeJSON = "application/json"
)

// Steps reported in failure logs.
const (
	stepValidate  = "validate"
	stepFetch     = "fetch"
	stepParse     = "parse"
	stepExtract   = "extract"
	stepTranslate = "translate"
	stepEncode    = "encode"
	stepWrite     = "write"
)

// ObjectStore reads and writes whole objects.
type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

// Translator translates a single text between two languages.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

var validate = validator.New()

// Relay translates one uploaded JSON document per invocation.
// A Relay holds no per-invocation state and may serve concurrent invocations.
type Relay struct {
	store        ObjectStore
	translator   Translator
	outputBucket string
	logger       *slog.Logger
}

// New creates a Relay writing results to outputBucket.
func New(store ObjectStore, translator Translator, outputBucket string, logger *slog.Logger) *Relay {
	return &Relay{
		store:        store,
		translator:   translator,
		outputBucket: outputBucket,
		logger:       logger,
	}
}

// Handle processes the first record of an S3 event.
// Every failure is logged once here and returned to the Lambda runtime.
func (r *Relay) Handle(ctx context.Context, event events.S3Event) (*domain.Response, error) {
	bucket, key, err := sourceObject(event)
	if err != nil {
		r.logger.ErrorContext(ctx, "Error processing file",
			slog.String("step", stepValidate),
			slog.Any("error", err),
		)
		return nil, err
	}

	logger := r.logger.With(slog.String("bucket", bucket), slog.String("key", key))
	logger.InfoContext(ctx, "Processing file")

	if step, err := r.relay(ctx, logger, bucket, key); err != nil {
		logger.ErrorContext(ctx, "Error processing file",
			slog.String("step", step),
			slog.Any("error", err),
		)
		return nil, err
	}

	return domain.Success(), nil
}

// relay runs the fetch-translate-write sequence and reports the step that failed.
func (r *Relay) relay(ctx context.Context, logger *slog.Logger, bucket, key string) (string, error) {
	content, err := r.store.Get(ctx, bucket, key)
	if err != nil {
		return stepFetch, err
	}

	req, err := parseRequest(key, content)
	if err != nil {
		return stepParse, err
	}

	if err := validateRequest(req); err != nil {
		logger.DebugContext(ctx, "Required keys missing", slog.Any("missing", missingFields(err)))
		return stepExtract, ErrMissingFields
	}

	logger.InfoContext(ctx, "Translating text",
		slog.String("source_language", req.SourceLanguage),
		slog.String("target_language", req.TargetLanguage),
	)
	translated, err := r.translator.Translate(ctx, req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		return stepTranslate, err
	}
	logger.InfoContext(ctx, "Translation successful")

	body, err := encodeResult(domain.NewTranslationResult(req, translated))
	if err != nil {
		return stepEncode, fmt.Errorf("failed to encode result: %w", err)
	}

	outputKey := OutputKey(key)
	if err := r.store.Put(ctx, r.outputBucket, outputKey, body, ContentTypeJSON); err != nil {
		return stepWrite, err
	}

	logger.InfoContext(ctx, "Saved translated file",
		slog.String("output", fmt.Sprintf("s3://%s/%s", r.outputBucket, outputKey)),
	)
	return "", nil
}

// OutputKey returns the key the translation of key is written under.
func OutputKey(key string) string {
	return OutputKeyPrefix + key
}

// sourceObject extracts the bucket and key of the first record.
// S3 URL-encodes keys in notifications; the decoded form is preferred.
func sourceObject(event events.S3Event) (string, string, error) {
	if len(event.Records) == 0 {
		return "", "", ErrNoRecords
	}

	entity := event.Records[0].S3
	key := entity.Object.URLDecodedKey
	if key == "" {
		key = entity.Object.Key
	}
	if entity.Bucket.Name == "" || key == "" {
		return "", "", ErrNotStorageEvent
	}
	return entity.Bucket.Name, key, nil
}

// parseRequest decodes the uploaded document. Keys are matched exactly;
// a missing key or null leaves the field empty for validateRequest.
func parseRequest(key string, content []byte) (domain.TranslationRequest, error) {
	var req domain.TranslationRequest
	if !utf8.Valid(content) {
		return req, fmt.Errorf("%w in file %s: content is not valid UTF-8", ErrInvalidJSON, key)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(content, &doc); err != nil {
		return req, fmt.Errorf("%w in file %s: %w", ErrInvalidJSON, key, err)
	}

	fields := []struct {
		name string
		dst  *string
	}{
		{"source_language", &req.SourceLanguage},
		{"target_language", &req.TargetLanguage},
		{"text", &req.Text},
	}
	for _, f := range fields {
		raw, ok := doc[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return req, fmt.Errorf("%w in file %s: key %q: %w", ErrInvalidJSON, key, f.name, err)
		}
	}
	return req, nil
}

// validateRequest checks all required fields are present and non-empty.
func validateRequest(req domain.TranslationRequest) error {
	return validate.Struct(req)
}

// missingFields lists the JSON names of the fields that failed validation.
func missingFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	names := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		names = append(names, jsonNames[fe.Field()])
	}
	return names
}

var jsonNames = map[string]string{
	"SourceLanguage": "source_language",
	"TargetLanguage": "target_language",
	"Text":           "text",
}

// encodeResult renders the result with two-space indentation, leaving
// non-ASCII and HTML characters unescaped.
func encodeResult(result domain.TranslationResult) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
