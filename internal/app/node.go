package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/markcheck/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/markcheck/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/markcheck/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/markcheck/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/markcheck/internal/core/ports"
	"go.trai.ch/markcheck/internal/engine/checker"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			checker.NodeID,
			fs.ResolverNodeID,
			cas.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	chk, err := graft.Dep[*checker.Checker](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.ResponseCache](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(chk, resolver, cache, w, log), nil
}
