package v1

import (
	"net/http"
	"time"

	"skilledup-backend/config"
	"skilledup-backend/internal/delivery/http/middleware"
	"skilledup-backend/internal/delivery/http/response"
	"skilledup-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ApplicantUC   domain.ApplicantUsecase
	SearchUC      domain.SearchUsecase
	JobCategoryUC domain.JobCategoryUsecase
	BannerUC      domain.BannerConfigUsecase
	JobPostUC     domain.JobPostUsecase
	UserRepo      domain.UserRepository
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run first so even rejected requests
	// carry the right headers.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.GlobalRateLimitMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.UserRepo))

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(deps.Config, deps.UserRepo),
		middleware.RequireRole(domain.RoleAdmin),
	)

	// Media uploads carry a tighter per-user rate limit on top of the
	// global one.
	uploadLimit := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(
		deps.Config.UploadRateLimitThreshold,
		time.Duration(deps.Config.UploadRateLimitWindowSeconds)*time.Second,
	))

	NewApplicantHandler(v1, protected, admin, deps.ApplicantUC,
		[]gin.HandlerFunc{uploadLimit},
		deps.Config.MaxResumeSizeBytes,
		deps.Config.MaxVideoSizeBytes,
	)
	NewSearchHandler(v1, deps.SearchUC)
	NewJobCategoryHandler(v1, admin, deps.JobCategoryUC)
	NewBannerHandler(v1, admin, deps.BannerUC)
	NewJobPostHandler(v1, protected, admin, deps.JobPostUC)

	return r
}
