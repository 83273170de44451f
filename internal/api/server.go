package api

import (
	"inspectrack/internal/handlers"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Options struct {
	AdminPassword string
	CORSOrigins   []string
	ServiceName   string
}

// NewEngine builds the gin engine with the shared middleware stack and the
// v1 routes. Spans go to whatever tracer provider is globally installed.
func NewEngine(env *handlers.Env, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(env.Log), CORS(opts.CORSOrigins))
	if opts.ServiceName != "" {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	RegisterRoutes(r, env, opts.AdminPassword)
	return r
}
