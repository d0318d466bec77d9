package ports

import "go.trai.ch/markcheck/internal/core/domain"

// ConfigLoader defines the interface for loading the markcheck configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers markcheck.yaml starting at cwd and walking up.
	// It returns the defaults when no file is found.
	Load(cwd string) (domain.Config, error)
}
