// Package domain contains the core domain types for the translation relay.
package domain

// SuccessMessage is the body returned when a file was translated and stored.
const SuccessMessage = "Translation completed successfully!"

// TranslationRequest is the document uploaded to the source bucket.
type TranslationRequest struct {
	SourceLanguage string `json:"source_language" validate:"required"`
	TargetLanguage string `json:"target_language" validate:"required"`
	Text           string `json:"text" validate:"required"`
}

// TranslationResult is the document written to the output bucket.
// Field order is the serialized order.
type TranslationResult struct {
	SourceLanguage string `json:"source_language"`
	OriginalText   string `json:"original_text"`
	TargetLanguage string `json:"target_language"`
	TranslatedText string `json:"translated_text"`
}

// NewTranslationResult pairs a request with its translated text.
func NewTranslationResult(req TranslationRequest, translated string) TranslationResult {
	return TranslationResult{
		SourceLanguage: req.SourceLanguage,
		OriginalText:   req.Text,
		TargetLanguage: req.TargetLanguage,
		TranslatedText: translated,
	}
}

// Response is the value returned to the Lambda runtime.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Success returns the fixed success response.
func Success() *Response {
	return &Response{StatusCode: 200, Body: SuccessMessage}
}
