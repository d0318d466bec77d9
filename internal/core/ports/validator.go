// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/markcheck/internal/core/domain"
)

// Validator submits a document to the remote validator for its kind.
//
//go:generate go run go.uber.org/mock/mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type Validator interface {
	// Submit performs exactly one network round trip and returns the raw response.
	Submit(ctx context.Context, kind domain.Kind, doc []byte) (*domain.Response, error)
}
