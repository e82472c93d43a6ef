package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"receipt-certifier/internal/adapter/analysis"
	"receipt-certifier/internal/adapter/http/dto"
	"receipt-certifier/internal/core/domain"
	"receipt-certifier/internal/core/ports"
	"receipt-certifier/pkg/apperror"
	"receipt-certifier/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles the receipt certification endpoints.
type ReceiptHandler struct {
	ledger     ports.LedgerVerifier
	assessor   ports.AssessmentService
	comparator ports.CertifiedComparator
	now        func() time.Time
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(ledger ports.LedgerVerifier, assessor ports.AssessmentService, comparator ports.CertifiedComparator) *ReceiptHandler {
	return &ReceiptHandler{
		ledger:     ledger,
		assessor:   assessor,
		comparator: comparator,
		now:        time.Now,
	}
}

// Certify handles POST /api/v1/receipts/certify.
func (h *ReceiptHandler) Certify(c *gin.Context) {
	var req dto.CertifyRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := decodeReceipt(req.Receipt)
	if err != nil {
		response.Error(c, err)
		return
	}

	cert, err := h.ledger.Certify(record)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CertifyResponse{
		Canonical: cert.Canonical,
		Hash:      cert.Hash,
		Memo:      string(cert.Memo),
	})
}

// Verify handles POST /api/v1/receipts/verify.
func (h *ReceiptHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	record, err := decodeReceipt(req.Receipt)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.ledger.Verify(record, domain.Memo(req.Memo))
	if err != nil {
		if result != nil {
			response.ErrorWithData(c, err, dto.NewVerifyResponse(result))
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewVerifyResponse(result))
}

// Assess handles POST /api/v1/receipts/assess.
func (h *ReceiptHandler) Assess(c *gin.Context) {
	var req dto.AssessRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := decodeReceipt(req.Receipt)
	if err != nil {
		response.Error(c, err)
		return
	}

	referenceDate := h.now().UTC()
	if req.ReferenceDate != "" {
		referenceDate, err = dto.ParseISODate(req.ReferenceDate)
		if err != nil {
			response.Error(c, apperror.Validation("reference_date must be YYYY-MM-DD"))
			return
		}
	}

	ctx := c.Request.Context()
	if supplied, ok, err := payloadText(req.Analysis, "analysis"); err != nil {
		response.Error(c, err)
		return
	} else if ok {
		ctx = analysis.WithSupplied(ctx, supplied)
	}

	assessment, err := h.assessor.Assess(ctx, record, referenceDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, assessment)
}

// Compare handles POST /api/v1/receipts/compare.
func (h *ReceiptHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	record, err := decodeReceipt(req.Receipt)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.comparator.Compare(record, req.ReceiptID)
	if err != nil {
		if result != nil {
			response.ErrorWithData(c, err, dto.NewCompareResponse(result))
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewCompareResponse(result))
}

// bindJSON binds the request body and writes the error response on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, apperror.New(apperror.CodeValidation, "Request body too large", http.StatusRequestEntityTooLarge))
		return false
	}
	response.Error(c, apperror.Validation(err.Error()))
	return false
}

// decodeReceipt accepts either a receipt object or a string holding raw
// extraction output.
func decodeReceipt(raw json.RawMessage) (*domain.ReceiptRecord, error) {
	text, ok, err := payloadText(raw, "receipt")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Validation("receipt is required")
	}
	return analysis.DecodeRecord(text)
}

// payloadText unwraps a field holding model output: a JSON object is used
// as is, a JSON string is unquoted. ok is false when the field is absent.
func payloadText(raw json.RawMessage, field string) (text []byte, ok bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false, nil
	}
	switch trimmed[0] {
	case '{':
		return trimmed, true, nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, false, apperror.Validation(field + " must be an object or a string")
		}
		return []byte(s), true, nil
	default:
		return nil, false, apperror.Validation(field + " must be an object or a string")
	}
}
