package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/markcheck/internal/adapters/config"
	"go.trai.ch/markcheck/internal/adapters/fs"
	"go.trai.ch/markcheck/internal/adapters/logger"
	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
)

// NodeID is the unique identifier for the response cache Graft node.
const NodeID graft.ID = "adapter.response_cache"

func init() {
	graft.Register(graft.Node[ports.ResponseCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ResponseCache, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.CacheDir, hasher, log), nil
		},
	})
}
