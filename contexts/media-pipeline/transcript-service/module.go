package transcriptservice

import (
	"log/slog"

	httpadapter "github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/adapters/http"
	"github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/application"
	"github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Provider ports.CaptionProvider
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Provider: deps.Provider,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}
