package ports

import "go.trai.ch/markcheck/internal/core/domain"

// Input is a file selected for checking.
type Input struct {
	// Path is the file path as resolved on disk.
	Path string
	// Kind is the document kind the file is checked as.
	Kind domain.Kind
}

// InputResolver expands command line arguments into concrete files.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs expands files, directories and glob patterns relative to root.
	// A non-zero kind forces every input to that kind; otherwise kinds come from file extensions.
	ResolveInputs(patterns []string, root string, kind domain.Kind) ([]Input, error)
}
