package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/launchhub/launchhub-backend/internal/auth"
	"github.com/launchhub/launchhub-backend/internal/dtos"
	"github.com/launchhub/launchhub-backend/internal/services"
)

// Dependencies carries everything the router mounts.
type Dependencies struct {
	Resources    *services.Resources
	Users        *services.UserService
	Interactions *services.InteractionService
	Generator    *services.GenerationService
	Stats        *services.StatsService
	JWT          *auth.JWTManager
}

// NewRouter builds the gin engine with all route groups attached.
func NewRouter(deps Dependencies) *gin.Engine {
	// Partial updates must reject unknown fields instead of silently
	// dropping them.
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.New()
	r.Use(gin.Recovery(), RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/api/v1/health", HealthCheck)

	api := r.Group("/api")
	public := api.Group("/public")
	admin := api.Group("/admin", auth.RequireAdmin(deps.JWT))

	registerResources(public, admin, deps.Resources)

	statsHandler := NewStatsHandler(deps.Stats)
	admin.GET("/dashboard/stats", statsHandler.Dashboard)

	authHandler := NewAuthHandler(deps.Users, deps.JWT)
	userAuth := api.Group("/user-auth")
	userAuth.POST("/register", authHandler.Register)
	userAuth.POST("/login", authHandler.Login)
	userAuth.GET("/me", auth.RequireUser(deps.JWT), authHandler.Me)

	adminAuth := api.Group("/auth")
	adminAuth.POST("/login", authHandler.AdminLogin)
	adminAuth.GET("/me", auth.RequireAdmin(deps.JWT), authHandler.Me)

	interactionHandler := NewInteractionHandler(deps.Interactions)
	interactionHandler.Register(api.Group("/interactions", auth.RequireUser(deps.JWT)))

	RegisterSavers(deps.Generator, deps.Resources)
	generationHandler := NewGenerationHandler(deps.Generator)
	generationHandler.Register(api.Group("/ai", auth.RequireAdmin(deps.JWT)))

	return r
}

func registerResources(public, admin *gin.RouterGroup, res *services.Resources) {
	NewResourceHandler(res.Jobs,
		BindCreateJSON((*dtos.JobCreateRequest).ToModel),
		BindUpdateJSON((*dtos.JobUpdateRequest).ToPatch),
	).Register(public, admin)

	NewResourceHandler(res.Internships,
		BindCreateJSON((*dtos.InternshipCreateRequest).ToModel),
		BindUpdateJSON((*dtos.InternshipUpdateRequest).ToPatch),
	).Register(public, admin)

	NewResourceHandler(res.Articles,
		BindCreateJSON((*dtos.ArticleCreateRequest).ToModel),
		BindUpdateJSON((*dtos.ArticleUpdateRequest).ToPatch),
	).Register(public, admin)

	NewResourceHandler(res.Roadmaps,
		BindCreateJSON((*dtos.RoadmapCreateRequest).ToModel),
		BindUpdateJSON((*dtos.RoadmapUpdateRequest).ToPatch),
	).Register(public, admin)

	NewResourceHandler(res.DSAProblems,
		BindCreateJSON((*dtos.DSAProblemCreateRequest).ToModel),
		BindUpdateJSON((*dtos.DSAProblemUpdateRequest).ToPatch),
	).Register(public, admin)

	NewResourceHandler(res.Pages,
		BindCreateJSON((*dtos.PageCreateRequest).ToModel),
		BindUpdateJSON((*dtos.PageUpdateRequest).ToPatch),
	).Register(public, admin)
}
