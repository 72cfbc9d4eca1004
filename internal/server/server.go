package server

import (
	"context"
	"net/http"
	"time"

	"fitcircle/internal/auth"
	"fitcircle/internal/config"
	"fitcircle/internal/facility"
	"fitcircle/internal/gym"
	"fitcircle/internal/location"
	"fitcircle/internal/payment"
	"fitcircle/internal/plan"
	"fitcircle/internal/subscription"
	"fitcircle/internal/trainer"
	"fitcircle/internal/user"

	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers of every feature package.
type Handlers struct {
	User         *user.Handler
	Location     *location.Handler
	Gym          *gym.Handler
	Facility     *facility.Handler
	Trainer      *trainer.Handler
	Subscription *subscription.Handler
	Payment      *payment.Handler
	Plan         *plan.Handler
}

type Server struct {
	router *gin.Engine
	http   *http.Server
	stop   context.CancelFunc
}

func New(cfg *config.Config, h Handlers, db Pinger) *Server {
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	router := NewRouter(ctx, cfg, h, db)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		stop: cancel,
	}
}

// NewRouter wires middleware and every route. ctx bounds the background
// work of the rate limiter.
func NewRouter(ctx context.Context, cfg *config.Config, h Handlers, db Pinger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(),
		RateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	public := router.Group("/auth")
	{
		public.POST("/register", h.User.Register)
		public.POST("/login", h.User.Login)
		public.POST("/refresh", h.User.RefreshToken)
	}

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/me", h.User.GetMe)

		protected.GET("/countries", h.Location.ListCountries)
		protected.GET("/cities", h.Location.ListCities)

		protected.GET("/gyms", h.Gym.List)
		protected.GET("/gyms/:id", h.Gym.Get)
		protected.GET("/gyms/:id/access", h.Subscription.GymAccess)
		protected.GET("/gyms/:id/facilities", h.Facility.ListByGym)

		protected.GET("/facility-kinds", h.Facility.ListKinds)
		protected.GET("/facility-kinds/:code", h.Facility.GetKind)
		protected.GET("/facilities/:id", h.Facility.Get)
		protected.GET("/facilities/:id/session-cost", h.Facility.SessionCost)
		protected.POST("/facilities/:id/check-in", h.Facility.CheckIn)
		protected.POST("/facilities/:id/check-out", h.Facility.CheckOut)

		protected.GET("/trainers/:id", h.Trainer.Get)
		protected.POST("/trainers/:id/ratings", h.Trainer.Rate)
		protected.PUT("/ratings/:id", h.Trainer.UpdateRating)

		protected.GET("/subscription-tiers", h.Subscription.Tiers)
		protected.POST("/subscriptions", h.Subscription.Create)
		protected.GET("/subscriptions", h.Subscription.List)
		protected.GET("/subscriptions/:id", h.Subscription.Get)
		protected.POST("/subscriptions/:id/extend", h.Subscription.Extend)
		protected.POST("/subscriptions/:id/cancel", h.Subscription.Cancel)
		protected.POST("/subscriptions/:id/reactivate", h.Subscription.Reactivate)
		protected.POST("/subscriptions/:id/renew", h.Subscription.Renew)
		protected.POST("/subscriptions/:id/trainer", h.Subscription.AssignTrainer)
		protected.DELETE("/subscriptions/:id/trainer", h.Subscription.RemoveTrainer)
		protected.POST("/subscriptions/:id/auto-renewal", h.Subscription.SetAutoRenewal)
		protected.GET("/subscriptions/:id/payments", h.Payment.ListBySubscription)

		protected.POST("/payments", h.Payment.Create)
		protected.GET("/payments/:id", h.Payment.Get)
		protected.POST("/payments/:id/cancel", h.Payment.Cancel)
		protected.POST("/payments/:id/checkout", h.Payment.Checkout)

		protected.GET("/plan-options", h.Plan.Options)
		protected.POST("/workout-plans", h.Plan.CreateWorkoutPlan)
		protected.GET("/workout-plans", h.Plan.ListWorkoutPlans)
		protected.GET("/workout-plans/:id", h.Plan.GetWorkoutPlan)
		protected.PATCH("/workout-plans/:id", h.Plan.UpdateWorkoutPlan)
		protected.POST("/workout-plans/:id/complete", h.Plan.CompleteWorkoutPlan)
		protected.POST("/workout-plans/:id/reopen", h.Plan.ReopenWorkoutPlan)
		protected.POST("/workout-plans/:id/workouts", h.Plan.AddWorkout)
		protected.POST("/workouts/:id/complete", h.Plan.CompleteWorkout)
		protected.POST("/diet-plans", h.Plan.CreateDietPlan)
		protected.GET("/diet-plans", h.Plan.ListDietPlans)
		protected.GET("/diet-plans/:id", h.Plan.GetDietPlan)
		protected.PATCH("/diet-plans/:id", h.Plan.UpdateDietPlan)
		protected.POST("/diet-plans/:id/complete", h.Plan.CompleteDietPlan)
		protected.POST("/diet-plans/:id/reopen", h.Plan.ReopenDietPlan)
	}

	manager := protected.Group("/")
	manager.Use(auth.RequireRole(auth.RoleManager))
	{
		manager.POST("/subscriptions/:id/amount", h.Subscription.UpdateAmount)

		manager.POST("/payments/:id/complete", h.Payment.Complete)
		manager.POST("/payments/:id/fail", h.Payment.Fail)
		manager.POST("/payments/:id/refund", h.Payment.Refund)
		manager.POST("/payments/:id/sync", h.Payment.Sync)
		manager.PATCH("/payments/:id", h.Payment.Update)

		manager.POST("/ratings/:id/deactivate", h.Trainer.DeactivateRating)
		manager.POST("/ratings/:id/activate", h.Trainer.ActivateRating)
	}

	admin := protected.Group("/")
	admin.Use(auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/countries", h.Location.CreateCountry)
		admin.POST("/cities", h.Location.CreateCity)
		admin.DELETE("/cities/:id", h.Location.DeleteCity)

		admin.POST("/gyms", h.Gym.Create)
		admin.PUT("/gyms/:id", h.Gym.Update)
		admin.POST("/gyms/:id/facilities", h.Facility.Create)
		admin.POST("/gyms/:id/trainers", h.Trainer.Create)

		admin.POST("/facilities/:id/capacity", h.Facility.UpdateCapacity)
		admin.POST("/facilities/:id/rate", h.Facility.UpdateRate)
		admin.POST("/facilities/:id/availability", h.Facility.SetAvailability)
		admin.POST("/facilities/:id/maintenance", h.Facility.ScheduleMaintenance)
		admin.POST("/facilities/:id/maintenance/complete", h.Facility.CompleteMaintenance)
		admin.DELETE("/facilities/:id", h.Facility.Delete)

		admin.PUT("/trainers/:id", h.Trainer.UpdateProfile)
	}

	return router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.stop()
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
