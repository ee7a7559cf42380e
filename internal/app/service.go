package app

import (
	"yaml-inventory/internal/adapters"
	"yaml-inventory/internal/ports"
)

type Service struct {
	Locator ports.LocatorPort
	Sources ports.SourcePort

	// NewOverlays builds the overlay reader for the run's base
	// directory, which is only known once the request is resolved.
	NewOverlays func(dir string) ports.OverlayPort
}

func NewService() Service {
	return Service{
		Locator: adapters.NewLocatorAdapter(),
		Sources: adapters.NewSourceFileAdapter(),
		NewOverlays: func(dir string) ports.OverlayPort {
			return adapters.NewOverlayFileAdapter(dir)
		},
	}
}
