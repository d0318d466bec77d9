// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/markcheck/internal/adapters/cas"
	_ "go.trai.ch/markcheck/internal/adapters/config"
	_ "go.trai.ch/markcheck/internal/adapters/fs"
	_ "go.trai.ch/markcheck/internal/adapters/logger"
	_ "go.trai.ch/markcheck/internal/adapters/report"
	_ "go.trai.ch/markcheck/internal/adapters/telemetry"
	_ "go.trai.ch/markcheck/internal/adapters/w3c"
	_ "go.trai.ch/markcheck/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/markcheck/internal/app"
	_ "go.trai.ch/markcheck/internal/engine/checker"
)
