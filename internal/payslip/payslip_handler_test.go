package payslip_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip"
	paysliperrors "github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayslipService struct {
	uploadFn     func(ctx context.Context, content []byte, monthYear, clientID string) (payslip.BatchResult, error)
	bulkUpsertFn func(ctx context.Context, req payslip.BulkUpsertRequest) (payslip.BatchResult, error)
	saveFn       func(ctx context.Context, req payslip.SavePayslipRequest) (payslip.PayslipResponse, error)
	getAllFn     func(ctx context.Context, filter payslip.GetPayslipsFilterRequest) ([]payslip.PayslipResponse, int64, error)
	deleteManyFn func(ctx context.Context, req payslip.DeletePayslipsRequest) (int64, error)
	getViewFn    func(ctx context.Context, employeeID, monthYear string) (payslip.PayslipView, error)
	renderPDFFn  func(ctx context.Context, employeeID, monthYear string) ([]byte, error)
}

func (f *fakePayslipService) Upload(ctx context.Context, content []byte, monthYear, clientID string) (payslip.BatchResult, error) {
	return f.uploadFn(ctx, content, monthYear, clientID)
}

func (f *fakePayslipService) BulkUpsert(ctx context.Context, req payslip.BulkUpsertRequest) (payslip.BatchResult, error) {
	return f.bulkUpsertFn(ctx, req)
}

func (f *fakePayslipService) Save(ctx context.Context, req payslip.SavePayslipRequest) (payslip.PayslipResponse, error) {
	return f.saveFn(ctx, req)
}

func (f *fakePayslipService) GetAll(ctx context.Context, filter payslip.GetPayslipsFilterRequest) ([]payslip.PayslipResponse, int64, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakePayslipService) DeleteMany(ctx context.Context, req payslip.DeletePayslipsRequest) (int64, error) {
	return f.deleteManyFn(ctx, req)
}

func (f *fakePayslipService) GetView(ctx context.Context, employeeID, monthYear string) (payslip.PayslipView, error) {
	return f.getViewFn(ctx, employeeID, monthYear)
}

func (f *fakePayslipService) RenderPDF(ctx context.Context, employeeID, monthYear string) ([]byte, error) {
	return f.renderPDFFn(ctx, employeeID, monthYear)
}

func (f *fakePayslipService) GenerateArtifact(ctx context.Context, employeeID, month, year string) error {
	return nil
}

func newHandlerRouter(svc payslip.Service, employeeID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("employee_id", employeeID)
		c.Set("role", role)
	})
	handler := payslip.NewHandler(svc)
	r.GET("/payslips/view/:employeeId/:month", handler.GetView)
	r.GET("/payslips/view/:employeeId/:month/pdf", handler.DownloadPDF)
	r.GET("/payslips", handler.GetAll)
	r.POST("/payslips", handler.Save)
	r.POST("/payslips/upload", handler.Upload)
	r.POST("/payslips/delete", handler.DeleteMany)
	return r
}

func TestGetViewOwnPayslip(t *testing.T) {
	svc := &fakePayslipService{
		getViewFn: func(ctx context.Context, employeeID, monthYear string) (payslip.PayslipView, error) {
			assert.Equal(t, "EMP001", employeeID)
			assert.Equal(t, "2025-03", monthYear)
			return payslip.PayslipView{EmployeeID: "EMP001", NetPay: 12000}, nil
		},
	}
	r := newHandlerRouter(svc, "EMP001", "employee")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payslips/view/EMP001/2025-03", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestGetViewForeignPayslipForbidden(t *testing.T) {
	svc := &fakePayslipService{}
	r := newHandlerRouter(svc, "EMP002", "employee")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payslips/view/EMP001/2025-03", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetViewAdminReadsAnyone(t *testing.T) {
	svc := &fakePayslipService{
		getViewFn: func(ctx context.Context, employeeID, monthYear string) (payslip.PayslipView, error) {
			return payslip.PayslipView{EmployeeID: employeeID}, nil
		},
	}
	r := newHandlerRouter(svc, "ant05", "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payslips/view/EMP001/2025-03", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetViewNotFoundStatus(t *testing.T) {
	svc := &fakePayslipService{
		getViewFn: func(ctx context.Context, employeeID, monthYear string) (payslip.PayslipView, error) {
			return payslip.PayslipView{}, paysliperrors.ErrPayslipNotFound
		},
	}
	r := newHandlerRouter(svc, "ant05", "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payslips/view/EMP001/2025-03", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, paysliperrors.ErrPayslipNotFound.Message, env.Error.Message)
}

func TestDownloadPDFSetsHeaders(t *testing.T) {
	svc := &fakePayslipService{
		renderPDFFn: func(ctx context.Context, employeeID, monthYear string) ([]byte, error) {
			return []byte("%PDF-1.4 fake"), nil
		},
	}
	r := newHandlerRouter(svc, "EMP001", "employee")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payslips/view/EMP001/2025-03/pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-EMP001-2025-03.pdf")
}

func TestUploadMultipart(t *testing.T) {
	svc := &fakePayslipService{
		uploadFn: func(ctx context.Context, content []byte, monthYear, clientID string) (payslip.BatchResult, error) {
			assert.Equal(t, "2025-03", monthYear)
			assert.Equal(t, "client-1", clientID)
			assert.Equal(t, []byte("workbook-bytes"), content)
			return payslip.BatchResult{
				ProcessedCount: 2,
				Succeeded:      1,
				Failed:         1,
				Outcomes: []payslip.RecordOutcome{
					{EmployeeID: "EMP001", Success: true, Message: "Processed successfully"},
					{EmployeeID: "", Success: false, Message: "Row is missing an employee ID"},
				},
			}, nil
		},
	}
	r := newHandlerRouter(svc, "ant05", "admin")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "payroll.xlsx")
	assert.NoError(t, err)
	_, err = fw.Write([]byte("workbook-bytes"))
	assert.NoError(t, err)
	assert.NoError(t, mw.WriteField("month", "2025-03"))
	assert.NoError(t, mw.WriteField("clientId", "client-1"))
	assert.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payslips/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var data struct {
		Message        string                  `json:"message"`
		ProcessedCount int                     `json:"processedCount"`
		Results        []payslip.RecordOutcome `json:"results"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Processed 1 payslips successfully. 1 failed.", data.Message)
	assert.Equal(t, 2, data.ProcessedCount)
	assert.Len(t, data.Results, 2)
}

func TestUploadMissingFile(t *testing.T) {
	svc := &fakePayslipService{}
	r := newHandlerRouter(svc, "ant05", "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payslips/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveValidationError(t *testing.T) {
	svc := &fakePayslipService{}
	r := newHandlerRouter(svc, "ant05", "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(`{"employeeId":"EMP001"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteManyReportsCount(t *testing.T) {
	svc := &fakePayslipService{
		deleteManyFn: func(ctx context.Context, req payslip.DeletePayslipsRequest) (int64, error) {
			assert.Equal(t, []string{"EMP001", "EMP002"}, req.EmployeeIDs)
			return 4, nil
		},
	}
	r := newHandlerRouter(svc, "ant05", "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payslips/delete", strings.NewReader(`{"employeeIds":["EMP001","EMP002"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var data struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(4), data.DeletedCount)
}
