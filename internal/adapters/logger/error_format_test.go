package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/markcheck/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name: "joined errors keep member order",
			err: errors.Join(
				zerr.New("unexpected validator response"),
				zerr.With(zerr.New("malformed validator report"), "endpoint", "https://validator.w3.org/check"),
			),
			wantMessages: []string{"unexpected validator response", "malformed validator report"},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			messages := make([]string, 0, len(entries))
			for _, entry := range entries {
				messages = append(messages, entry.Message)
			}
			if tt.wantMessages == nil {
				assert.Empty(t, entries)
				return
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.With(zerr.New("failed to write cached artifact"), "path", "/tmp/x.html"), "attempt", 2)

	entries := logger.CollectErrorEntries(err)

	assert.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"path": "/tmp/x.html", "attempt": 2}, entries[0].Metadata)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "two entries with caused by",
			entries: []logger.ErrorEntry{{Message: "outer error"}, {Message: "inner error"}},
			want:    "Error: outer error\n\n  Caused by:\n    → inner error",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a"},
			}},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"status_code": 502}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      status_code: 502",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "Invalid markup: line 1: a\nInvalid markup: line 2: b"}},
			want:    "Error: Invalid markup: line 1: a\n       Invalid markup: line 2: b",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
