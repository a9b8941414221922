package payslip

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/client"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/employee"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/ingest"
	paysliperrors "github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// uploadTimeout bounds a whole upload reconcile. The hosting platform
// cuts requests at 30s, so reconcile stops slightly earlier and reports
// the unprocessed remainder instead of dying mid-batch.
const uploadTimeout = 25 * time.Second

// ClientResolver yields the client attached to a payslip, falling back
// through the default client to the built-in company identity.
type ClientResolver interface {
	ResolveForPayslip(ctx context.Context, id *uuid.UUID) (client.Client, error)
}

type Service interface {
	Upload(ctx context.Context, content []byte, monthYear, clientID string) (BatchResult, error)
	BulkUpsert(ctx context.Context, req BulkUpsertRequest) (BatchResult, error)
	Save(ctx context.Context, req SavePayslipRequest) (PayslipResponse, error)
	GetAll(ctx context.Context, filter GetPayslipsFilterRequest) ([]PayslipResponse, int64, error)
	DeleteMany(ctx context.Context, req DeletePayslipsRequest) (int64, error)
	GetView(ctx context.Context, employeeID, monthYear string) (PayslipView, error)
	RenderPDF(ctx context.Context, employeeID, monthYear string) ([]byte, error)
	GenerateArtifact(ctx context.Context, employeeID, month, year string) error
}

type service struct {
	reconciler  *Reconciler
	employees   employee.Repository
	payslips    Repository
	clients     ClientResolver
	artifactDir string
}

func NewService(
	reconciler *Reconciler,
	employees employee.Repository,
	payslips Repository,
	clients ClientResolver,
	artifactDir string,
) Service {
	if artifactDir == "" {
		artifactDir = "artifacts"
	}
	return &service{
		reconciler:  reconciler,
		employees:   employees,
		payslips:    payslips,
		clients:     clients,
		artifactDir: artifactDir,
	}
}

func (s *service) Upload(ctx context.Context, content []byte, monthYear, clientID string) (BatchResult, error) {
	month, year, err := splitMonthYear(monthYear)
	if err != nil {
		return BatchResult{}, err
	}
	if strings.TrimSpace(clientID) == "" {
		return BatchResult{}, paysliperrors.ErrClientRequired
	}
	if _, err := uuid.Parse(clientID); err != nil {
		return BatchResult{}, paysliperrors.ErrInvalidClientID
	}

	rows, err := ingest.Rows(content)
	if err != nil {
		if errors.Is(err, ingest.ErrEmptyWorkbook) {
			return BatchResult{}, paysliperrors.ErrEmptyWorkbook
		}
		return BatchResult{}, paysliperrors.ErrUnreadableWorkbook
	}

	rc := RowContext{Month: month, Year: year, ClientID: clientID}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, MapRow(row, rc))
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()
	return s.reconciler.Reconcile(ctx, records)
}

func (s *service) BulkUpsert(ctx context.Context, req BulkUpsertRequest) (BatchResult, error) {
	if len(req.Payslips) == 0 {
		return BatchResult{}, paysliperrors.ErrNoRecords
	}
	month, year, err := normalizePeriod(req.Month, req.Year)
	if err != nil {
		return BatchResult{}, err
	}
	if req.ClientID != "" {
		if _, err := uuid.Parse(req.ClientID); err != nil {
			return BatchResult{}, paysliperrors.ErrInvalidClientID
		}
	}

	records := make([]Record, len(req.Payslips))
	for i, rec := range req.Payslips {
		rec.Month = month
		rec.Year = year
		if rec.ClientID == "" {
			rec.ClientID = req.ClientID
		}
		records[i] = rec
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()
	return s.reconciler.Reconcile(ctx, records)
}

func (s *service) Save(ctx context.Context, req SavePayslipRequest) (PayslipResponse, error) {
	month, year, err := splitMonthYear(req.MonthYear)
	if err != nil {
		return PayslipResponse{}, err
	}

	rec := req.Record
	rec.Month = month
	rec.Year = year
	if err := s.reconciler.apply(ctx, rec); err != nil {
		return PayslipResponse{}, err
	}

	slip, err := s.payslips.FindByKey(ctx, strings.TrimSpace(rec.EmployeeID), month, year)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapSlipToResponse(slip), nil
}

func (s *service) GetAll(ctx context.Context, filter GetPayslipsFilterRequest) ([]PayslipResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	slips, total, err := s.payslips.FindAll(ctx, ListFilter{
		Page:       filter.Page,
		Limit:      filter.Limit,
		EmployeeID: strings.TrimSpace(filter.EmployeeID),
		Month:      filter.Month,
		Year:       filter.Year,
		ClientID:   filter.ClientID,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PayslipResponse, 0, len(slips))
	for i := range slips {
		responses = append(responses, mapSlipToResponse(&slips[i]))
	}
	return responses, total, nil
}

func (s *service) DeleteMany(ctx context.Context, req DeletePayslipsRequest) (int64, error) {
	filter := DeleteFilter{
		EmployeeIDs: req.EmployeeIDs,
		Months:      req.Months,
		Years:       req.Years,
	}
	if filter.Empty() {
		return 0, paysliperrors.ErrDeleteFilterRequired
	}
	return s.payslips.DeleteByFilter(ctx, filter)
}

func (s *service) GetView(ctx context.Context, employeeID, monthYear string) (PayslipView, error) {
	month, year, err := splitMonthYear(monthYear)
	if err != nil {
		return PayslipView{}, err
	}
	return s.assemble(ctx, employeeID, month, year)
}

func (s *service) RenderPDF(ctx context.Context, employeeID, monthYear string) ([]byte, error) {
	view, err := s.GetView(ctx, employeeID, monthYear)
	if err != nil {
		return nil, err
	}
	return buildPayslipPDF(view), nil
}

// GenerateArtifact renders the payslip PDF to the artifact directory and
// stamps generated_at. Errors propagate so the consumer retries instead
// of committing a failed render.
func (s *service) GenerateArtifact(ctx context.Context, employeeID, month, year string) error {
	view, err := s.assemble(ctx, employeeID, month, year)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.artifactDir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("%s-%s-%s.pdf", view.EmployeeID, view.Year, view.Month)
	if err := os.WriteFile(filepath.Join(s.artifactDir, name), buildPayslipPDF(view), 0o644); err != nil {
		return err
	}

	return s.payslips.MarkGenerated(ctx, employeeID, month, year, time.Now().UTC())
}

// assemble merges the employee profile, the period's payslip row and the
// resolved client into one view. Totals are recomputed from components
// at read time; stored words are kept unless blank.
func (s *service) assemble(ctx context.Context, employeeID, month, year string) (PayslipView, error) {
	emp, err := s.employees.FindByEmployeeID(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipView{}, paysliperrors.ErrEmployeeNotFound
		}
		return PayslipView{}, err
	}

	slip, err := s.payslips.FindByKey(ctx, emp.EmployeeID, month, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipView{}, paysliperrors.ErrPayslipNotFound
		}
		return PayslipView{}, err
	}

	totals := ComputeTotals(AmountsOfPayslip(slip))
	words := slip.NetPayWords
	if strings.TrimSpace(words) == "" {
		words = AmountInWords(int64(math.Round(totals.NetPay)))
	}

	clientID := slip.ClientID
	if clientID == nil {
		clientID = emp.ClientID
	}
	cl, err := s.clients.ResolveForPayslip(ctx, clientID)
	if err != nil {
		return PayslipView{}, err
	}

	return PayslipView{
		EmployeeID:    emp.EmployeeID,
		EmployeeName:  emp.EmployeeName,
		MobileNumber:  emp.MobileNumber,
		DOB:           emp.DOB,
		DOJ:           emp.DOJ,
		Designation:   emp.Designation,
		Department:    emp.Department,
		BankName:      emp.BankName,
		BankAccountNo: emp.BankAccountNo,
		IFSCCode:      emp.IFSCCode,
		PANNo:         emp.PANNo,
		PFNumber:      emp.PFNumber,
		UANNo:         emp.UANNo,
		ESICNo:        emp.ESICNo,

		Month: slip.Month,
		Year:  slip.Year,

		WorkingDays: slip.WorkingDays,
		ExtraDays:   slip.ExtraDays,
		OTHrs:       slip.OTHrs,
		ArrearsDays: slip.ArrearsDays,
		LOP:         slip.LOP,

		Basic:                slip.Basic,
		HRA:                  slip.HRA,
		SpecialAllowance:     slip.SpecialAllowance,
		StatutoryBonus:       slip.StatutoryBonus,
		ArrearsAmount:        slip.ArrearsAmount,
		OTAmount:             slip.OTAmount,
		ExtraHolidayPay:      slip.ExtraHolidayPay,
		AttendanceIncentive:  slip.AttendanceIncentive,
		PerformanceIncentive: slip.PerformanceIncentive,
		SpecialIncentive:     slip.SpecialIncentive,

		ProfessionTax:   slip.ProfessionTax,
		PFAmount:        slip.PFAmount,
		ESIC:            slip.ESIC,
		ArrearDeduction: slip.ArrearDeduction,
		KarmaLife:       slip.KarmaLife,

		GrossEarnings:   totals.GrossEarnings,
		GrossDeductions: totals.GrossDeductions,
		NetPay:          totals.NetPay,
		NetPayWords:     words,

		ClientName:    cl.Name,
		ClientAddress: cl.Address,
	}, nil
}

func mapSlipToResponse(slip *Payslip) PayslipResponse {
	totals := ComputeTotals(AmountsOfPayslip(slip))
	words := slip.NetPayWords
	if strings.TrimSpace(words) == "" {
		words = AmountInWords(int64(math.Round(totals.NetPay)))
	}

	resp := PayslipResponse{
		EmployeeID: slip.EmployeeID,
		Month:      slip.Month,
		Year:       slip.Year,

		WorkingDays: slip.WorkingDays,
		ExtraDays:   slip.ExtraDays,
		OTHrs:       slip.OTHrs,
		ArrearsDays: slip.ArrearsDays,
		LOP:         slip.LOP,

		Basic:                slip.Basic,
		HRA:                  slip.HRA,
		SpecialAllowance:     slip.SpecialAllowance,
		StatutoryBonus:       slip.StatutoryBonus,
		ArrearsAmount:        slip.ArrearsAmount,
		OTAmount:             slip.OTAmount,
		ExtraHolidayPay:      slip.ExtraHolidayPay,
		AttendanceIncentive:  slip.AttendanceIncentive,
		PerformanceIncentive: slip.PerformanceIncentive,
		SpecialIncentive:     slip.SpecialIncentive,

		ProfessionTax:   slip.ProfessionTax,
		PFAmount:        slip.PFAmount,
		ESIC:            slip.ESIC,
		ArrearDeduction: slip.ArrearDeduction,
		KarmaLife:       slip.KarmaLife,

		GrossEarnings:   totals.GrossEarnings,
		GrossDeductions: totals.GrossDeductions,
		NetPay:          totals.NetPay,
		NetPayWords:     words,

		UpdatedAt: slip.UpdatedAt.Format(time.RFC3339),
	}
	if slip.ClientID != nil {
		resp.ClientID = slip.ClientID.String()
	}
	if slip.GeneratedAt != nil {
		resp.GeneratedAt = slip.GeneratedAt.Format(time.RFC3339)
	}
	return resp
}

// splitMonthYear parses the portal's "YYYY-MM" period selector.
func splitMonthYear(monthYear string) (month, year string, err error) {
	monthYear = strings.TrimSpace(monthYear)
	if monthYear == "" {
		return "", "", paysliperrors.ErrMonthYearRequired
	}
	if _, parseErr := time.Parse("2006-01", monthYear); parseErr != nil {
		return "", "", paysliperrors.ErrInvalidMonthFormat
	}
	parts := strings.SplitN(monthYear, "-", 2)
	return parts[1], parts[0], nil
}

// normalizePeriod validates separate month and year fields, accepting
// both "3" and "03" for March.
func normalizePeriod(month, year string) (string, string, error) {
	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)
	if month == "" || year == "" {
		return "", "", paysliperrors.ErrMonthYearRequired
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", "", paysliperrors.ErrInvalidMonthFormat
	}
	if len(year) != 4 {
		return "", "", paysliperrors.ErrInvalidMonthFormat
	}
	if _, err := strconv.Atoi(year); err != nil {
		return "", "", paysliperrors.ErrInvalidMonthFormat
	}
	return fmt.Sprintf("%02d", m), year, nil
}
