package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/markcheck/internal/core/ports"
)

// NodeID is the unique identifier for the response interpreter Graft node.
const NodeID graft.ID = "adapter.report_interpreter"

func init() {
	graft.Register(graft.Node[ports.Interpreter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Interpreter, error) {
			return NewInterpreter(), nil
		},
	})
}
