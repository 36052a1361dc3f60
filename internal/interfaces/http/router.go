package http

import (
	"net/http"

	"github.com/MostroP2P/mostro-score-web/internal/interfaces/http/handler"
	"github.com/MostroP2P/mostro-score-web/internal/interfaces/http/middleware"
	"github.com/MostroP2P/mostro-score-web/pkg/logger"
)

// Router assembles the request pipeline around the static handler.
type Router struct {
	static *handler.StaticHandler
	logger *logger.Logger
}

func NewRouter(static *handler.StaticHandler, logger *logger.Logger) *Router {
	return &Router{
		static: static,
		logger: logger,
	}
}

// Setup wires the middleware chain. Every request path resolves against
// the asset root, so there is nothing to multiplex. CORS sits outermost:
// misses, recovered panics, and preflights all carry the headers.
func (rt *Router) Setup() http.Handler {
	var h http.Handler = rt.static
	h = middleware.Recovery(rt.logger)(h)
	h = middleware.Logger(rt.logger)(h)
	h = middleware.CORS()(h)
	return h
}
