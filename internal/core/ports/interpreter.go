package ports

import "go.trai.ch/markcheck/internal/core/domain"

// Interpreter turns a raw validator response into a verdict.
// Implementations must be pure: the same response always yields the same verdict.
//
//go:generate go run go.uber.org/mock/mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks
type Interpreter interface {
	Interpret(kind domain.Kind, resp *domain.Response) (domain.Verdict, error)
}
