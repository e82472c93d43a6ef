package handler

import (
	"receipt-certifier/internal/adapter/http/middleware"
	redisStore "receipt-certifier/internal/adapter/storage/redis"
	"receipt-certifier/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.LedgerVerifier
	Assessor       ports.AssessmentService
	Comparator     ports.CertifiedComparator
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	h := NewReceiptHandler(deps.Ledger, deps.Assessor, deps.Comparator)
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	receipts := r.Group("/api/v1/receipts")
	{
		// Issuing a memo is restricted to authenticated clients.
		receipts.POST("/certify", jwtAuth, rl("certify"), h.Certify)
		receipts.POST("/verify", rl("verify"), h.Verify)
		receipts.POST("/assess", rl("assess"), h.Assess)
		receipts.POST("/compare", rl("compare"), h.Compare)
	}

	return r
}
