package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"receipt-certifier/internal/core/domain"
	"receipt-certifier/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that records successful receipt
// operations once the handler has responded.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		if c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath())
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Subject:      c.GetString(CtxSubject),
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path string) (domain.AuditAction, string) {
	switch path {
	case "/api/v1/receipts/certify":
		return domain.AuditActionCertify, "receipt"
	case "/api/v1/receipts/verify":
		return domain.AuditActionVerify, "receipt"
	case "/api/v1/receipts/assess":
		return domain.AuditActionAssess, "assessment"
	case "/api/v1/receipts/compare":
		return domain.AuditActionCompare, "certified_receipt"
	}
	return "", ""
}
