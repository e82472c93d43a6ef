package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"receipt-certifier/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_Log_WritesEntry(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(zerolog.New(zerolog.SyncWriter(&buf)))

	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Subject:      "pos-terminal-7",
		Action:       domain.AuditActionCertify,
		ResourceType: "receipt",
		Details:      `{"hash":"abc"}`,
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})
	svc.Wait()

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "audit", got["message"])
	assert.Equal(t, "audit", got["component"])
	assert.Equal(t, "CERTIFY", got["action"])
	assert.Equal(t, "pos-terminal-7", got["subject"])
	assert.Equal(t, map[string]interface{}{"hash": "abc"}, got["details"])
}

func TestAuditService_Log_OmitsEmptySubject(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(zerolog.New(zerolog.SyncWriter(&buf)))

	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionVerify,
		ResourceType: "receipt",
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})
	svc.Wait()

	assert.NotContains(t, buf.String(), "subject")
	assert.Contains(t, buf.String(), `"action":"VERIFY"`)
}

func TestAuditService_Log_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(zerolog.New(zerolog.SyncWriter(&buf)))

	for i := 0; i < 20; i++ {
		svc.Log(context.Background(), &domain.AuditLog{ID: uuid.New(), Action: domain.AuditActionAssess})
	}
	svc.Log(context.Background(), nil)
	svc.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 20)
}
