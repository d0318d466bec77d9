package checker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/markcheck/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/markcheck/internal/adapters/report"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/markcheck/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/markcheck/internal/adapters/w3c"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/markcheck/internal/core/ports"
)

// NodeID is the unique identifier for the checker Graft node.
const NodeID graft.ID = "engine.checker"

func init() {
	graft.Register(graft.Node[*Checker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			w3c.NodeID,
			report.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Checker, error) {
			cache, err := graft.Dep[ports.ResponseCache](ctx)
			if err != nil {
				return nil, err
			}

			validator, err := graft.Dep[ports.Validator](ctx)
			if err != nil {
				return nil, err
			}

			interpreter, err := graft.Dep[ports.Interpreter](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewChecker(cache, validator, interpreter, tracer), nil
		},
	})
}
