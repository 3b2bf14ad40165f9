package clipservice

import (
	"log/slog"

	httpadapter "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/adapters/http"
	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/application"
	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Resolver      ports.StreamResolver
	Cutter        ports.SegmentCutter
	Store         ports.ArtifactStore
	IDGenerator   ports.IDGenerator
	Clock         ports.Clock
	PublicBaseURL string
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Resolver: deps.Resolver,
		Cutter:   deps.Cutter,
		Store:    deps.Store,
		IDGen:    deps.IDGenerator,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service:       service,
			PublicBaseURL: deps.PublicBaseURL,
			Logger:        deps.Logger,
		},
	}
}
