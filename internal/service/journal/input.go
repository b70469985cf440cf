package journal

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

const (
	MaxTopicTextLen = 200
	MaxEntryTextLen = 20000
)

// TopicInput holds the user-editable fields of a topic.
// The owner is never part of the input.
type TopicInput struct {
	Text string
}

// Normalize returns the text as it will be stored.
func (i TopicInput) Normalize() TopicInput {
	return TopicInput{Text: domain.CollapseSpaces(i.Text)}
}

// Validate checks all fields and collects all errors.
func (i TopicInput) Validate() error {
	var errs []domain.FieldError

	if msg := textEncodingError(i.Text); msg != "" {
		return domain.NewValidationError("text", msg)
	}

	text := domain.CollapseSpaces(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > MaxTopicTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EntryInput holds the user-editable fields of an entry.
// The topic is never part of the input; it comes from the URL or the stored entry.
type EntryInput struct {
	Text string
}

// Normalize returns the text as it will be stored.
func (i EntryInput) Normalize() EntryInput {
	return EntryInput{Text: strings.TrimSpace(i.Text)}
}

// Validate checks all fields and collects all errors.
func (i EntryInput) Validate() error {
	var errs []domain.FieldError

	if msg := textEncodingError(i.Text); msg != "" {
		return domain.NewValidationError("text", msg)
	}

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > MaxEntryTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 20000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// textEncodingError rejects text Postgres cannot store in a text column.
func textEncodingError(text string) string {
	switch {
	case !utf8.ValidString(text):
		return "invalid UTF-8"
	case strings.IndexByte(text, 0) >= 0:
		return "null characters are not allowed"
	}
	return ""
}
