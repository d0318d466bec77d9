package w3c

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/markcheck/internal/adapters/config"
	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
)

// NodeID is the unique identifier for the validator client Graft node.
const NodeID graft.ID = "adapter.w3c_validator"

func init() {
	graft.Register(graft.Node[ports.Validator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Validator, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg), nil
		},
	})
}
