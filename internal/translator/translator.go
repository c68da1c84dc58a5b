// Package translator sends text to Amazon Translate.
package translator

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

// TranslateAPI is the subset of the Amazon Translate client used by AmazonTranslator.
type TranslateAPI interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

var _ TranslateAPI = (*translate.Client)(nil)

// AmazonTranslator translates text with Amazon Translate.
type AmazonTranslator struct {
	client TranslateAPI
}

// New creates an AmazonTranslator using the given client.
func New(client TranslateAPI) *AmazonTranslator {
	return &AmazonTranslator{client: client}
}

// Translate translates text from source to target language.
// Language codes are passed through as given; an unsupported pair is
// reported by the service. Errors are returned unchanged.
func (t *AmazonTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	out, err := t.client.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(source),
		TargetLanguageCode: aws.String(target),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.TranslatedText), nil
}
