package payslip

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/middleware"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/shared/apperror"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Upload ingests an Excel workbook for one (month, client) selection.
// Uploads are idempotent at the record level, so the idempotency cache
// is a replay shortcut, not a correctness requirement.
func (h *Handler) Upload(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "An Excel file is required", err.Error())
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Could not open the uploaded file", err.Error())
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Could not read the uploaded file", err.Error())
		return
	}

	result, err := h.service.Upload(c.Request.Context(), content, c.PostForm("month"), c.PostForm("clientId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	body := gin.H{
		"message":        uploadMessage(result),
		"processedCount": result.ProcessedCount,
		"results":        result.Outcomes,
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(body); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusOK, body, nil)
}

func (h *Handler) BulkUpsert(c *gin.Context) {
	var req BulkUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	result, err := h.service.BulkUpsert(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":        uploadMessage(result),
		"processedCount": result.ProcessedCount,
		"results":        result.Outcomes,
	}, nil)
}

func (h *Handler) Save(c *gin.Context) {
	var req SavePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter GetPayslipsFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid query parameters", err.Error())
		return
	}

	resp, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	meta := response.NewPaginationMeta(total, page, limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) DeleteMany(c *gin.Context) {
	var req DeletePayslipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	deleted, err := h.service.DeleteMany(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":      fmt.Sprintf("Deleted %d payslips", deleted),
		"deletedCount": deleted,
	}, nil)
}

// GetView serves the portal's payslip page. Employees may only read
// their own slips; admins may read anyone's.
func (h *Handler) GetView(c *gin.Context) {
	employeeID := c.Param("employeeId")
	if !h.canRead(c, employeeID) {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You may only view your own payslips", nil)
		return
	}

	view, err := h.service.GetView(c.Request.Context(), employeeID, c.Param("month"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	employeeID := c.Param("employeeId")
	if !h.canRead(c, employeeID) {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You may only view your own payslips", nil)
		return
	}

	pdf, err := h.service.RenderPDF(c.Request.Context(), employeeID, c.Param("month"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("payslip-%s-%s.pdf", employeeID, c.Param("month"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) canRead(c *gin.Context, employeeID string) bool {
	if c.GetString("role") == middleware.RoleAdmin {
		return true
	}
	return c.GetString("employee_id") == employeeID
}

func uploadMessage(result BatchResult) string {
	return fmt.Sprintf("Processed %d payslips successfully. %d failed.", result.Succeeded, result.Failed)
}
