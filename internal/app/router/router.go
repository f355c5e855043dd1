// Package router assembles the gin engine and wires every HTTP route.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "maintenance_backend/internal/feature/auth/transport/handler"
	purgehandler "maintenance_backend/internal/feature/purge/transport/handler"
	recommendationshandler "maintenance_backend/internal/feature/recommendations/transport/handler"
	removalhandler "maintenance_backend/internal/feature/removallog/transport/handler"
	stalenesshandler "maintenance_backend/internal/feature/staleness/transport/handler"
	validationhandler "maintenance_backend/internal/feature/validation/transport/handler"
	"maintenance_backend/internal/platform/http/handler"
	jwtmw "maintenance_backend/internal/platform/jwt"
)

// NewRouter builds the HTTP route table. Everything except the health check
// and login requires a valid operator JWT.
func NewRouter(
	auth *authhandler.AuthHandler,
	staleness *stalenesshandler.StalenessHandler,
	validation *validationhandler.ValidationHandler,
	recommendations *recommendationshandler.RecommendationsHandler,
	purge *purgehandler.PurgeHandler,
	removals *removalhandler.RemovalHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", handler.Health)
	r.POST("/login", auth.Login)

	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.GET("/staleness/report", staleness.Report)
		protected.POST("/validation/run", validation.Run)
		protected.GET("/recommendations", recommendations.Report)
		protected.GET("/recommendations/script", recommendations.Script)
		protected.POST("/purge", purge.Purge)
		protected.GET("/removals", removals.List)
	}

	return r
}
