package routes

import (
	"meal-planner-api/config"
	"meal-planner-api/handlers"
	"meal-planner-api/ingest"
	"meal-planner-api/middleware"
	"meal-planner-api/models"
	"meal-planner-api/repository"
	"meal-planner-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Hub      *services.RealtimeHub
	Ingestor ingest.Runner
}

func SetupRoutes(r *gin.Engine, d Deps) {
	items := repository.NewMenuItems(d.DB)
	plans := repository.NewMealPlans(d.DB)
	prefs := repository.NewPreferences(d.DB)
	users := repository.NewUsers(d.DB)
	ingestLogs := repository.NewIngestLogs(d.DB)

	var (
		isAdmin func(string) bool
		origins []string
	)
	if d.Config != nil {
		isAdmin = d.Config.IsAdminEmail
		origins = d.Config.CORSOrigins
	}
	hub := d.Hub
	if hub == nil {
		hub = services.NewRealtimeHub()
	}

	authH := handlers.NewAuthHandler(services.NewAuthService(users, isAdmin))
	menuH := handlers.NewMenuHandler(services.NewCatalogService(items), services.NewSeedService(items))
	planH := handlers.NewPlanHandler(
		services.NewMealPlanService(plans, items, hub),
		services.NewSuggestionService(plans, items, prefs),
	)
	prefsH := handlers.NewPreferencesHandler(services.NewPreferencesService(prefs))
	dashH := handlers.NewDashboardHandler(services.NewDashboardService(plans, items, prefs))
	rtH := handlers.NewRealtimeHandler(hub, origins)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", authH.Register)
		public.POST("/auth/login", authH.Login)

		public.GET("/menu", menuH.ListMenu)
		public.GET("/menu/today", menuH.TodayMenu)
		public.GET("/menu/dates", menuH.ListDates)
		public.GET("/menu/items/:id", menuH.GetItem)
		public.GET("/preferences/options", prefsH.Options)
	}

	// ── Queries: anonymous callers get null data ───────────────────
	query := r.Group("/api")
	query.Use(middleware.OptionalAuth())
	{
		query.GET("/plans/today", planH.GetTodayPlan)
		query.GET("/plans/:date", planH.GetPlan)
		query.GET("/plans/:date/suggestions", planH.Suggestions)
		query.GET("/preferences", prefsH.Get)
		query.GET("/dashboard", dashH.Get)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", authH.GetProfile)
		auth.GET("/ws", rtH.PlanUpdates)

		auth.POST("/menu/seed", menuH.Seed)

		auth.POST("/plans/:date/items", planH.AddItem)
		auth.DELETE("/plans/:date/items/:meal_type/:item_id", planH.RemoveItem)
		auth.DELETE("/plans/:date", planH.ClearPlan)

		auth.PUT("/preferences", prefsH.Save)
	}

	// ── Admin routes ───────────────────────────────────────────────
	if d.Ingestor != nil {
		ingestH := handlers.NewIngestHandler(d.Ingestor, ingestLogs)
		admin := r.Group("/api/admin")
		admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
		{
			admin.POST("/ingest", ingestH.Run)
			admin.GET("/ingest/logs", ingestH.Logs)
		}
	}
}
