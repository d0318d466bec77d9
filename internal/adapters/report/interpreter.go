// Package report turns raw W3C validator responses into verdicts.
package report

import (
	"errors"

	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Interpreter = (*Interpreter)(nil)

// Interpreter implements ports.Interpreter. It holds no state; the verdict depends only on
// the kind and the response.
type Interpreter struct{}

// NewInterpreter creates a new Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Interpret parses resp according to the report format of kind.
func (i *Interpreter) Interpret(kind domain.Kind, resp *domain.Response) (domain.Verdict, error) {
	if resp == nil {
		return domain.Verdict{}, errors.Join(domain.ErrProtocol, zerr.With(domain.ErrEmptyResponse, "kind", kind.String()))
	}

	switch kind {
	case domain.KindMarkup:
		return interpretMarkup(resp)
	case domain.KindCSS:
		return interpretCSS(resp)
	default:
		return domain.Verdict{}, zerr.With(domain.ErrUnknownKind, "kind", kind.String())
	}
}

func protocolError(err error, expected string) error {
	return errors.Join(domain.ErrProtocol, zerr.With(err, "expected", expected))
}
