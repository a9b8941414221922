package payslip

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/employee"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/events"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/messaging/kafka"
	paysliperrors "github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// batchSize bounds how many records are in flight against the store at
// once. Batches run sequentially so a large upload stays inside the
// host's execution-time ceiling instead of opening one connection per
// row.
const batchSize = 50

type RecordOutcome struct {
	EmployeeID string `json:"employeeId"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
}

type BatchResult struct {
	ProcessedCount int             `json:"processedCount"`
	Succeeded      int             `json:"succeeded"`
	Failed         int             `json:"failed"`
	Outcomes       []RecordOutcome `json:"results"`
}

// Reconciler turns canonical upload records into consistent Employee and
// Payslip state. Both upserts are idempotent on their business keys, so
// re-submitting an identical batch reproduces the same end state.
type Reconciler struct {
	employees employee.Repository
	payslips  Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewReconciler(
	employees employee.Repository,
	payslips Repository,
	outbox kafka.OutboxRepository,
	logger *zap.Logger,
) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		employees: employees,
		payslips:  payslips,
		outbox:    outbox,
		logger:    logger.Named("payslip.reconciler"),
	}
}

// Reconcile processes records in fixed-size batches; records within a
// batch are issued concurrently, batches sequentially. A bad record
// fails alone, reported in its outcome slot, and never aborts the rest.
func (r *Reconciler) Reconcile(ctx context.Context, records []Record) (BatchResult, error) {
	if len(records) == 0 {
		return BatchResult{}, paysliperrors.ErrNoRecords
	}

	outcomes := make([]RecordOutcome, len(records))

	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		if err := ctx.Err(); err != nil {
			// Deadline hit mid-upload: fail the unprocessed remainder
			// explicitly rather than leaving blank outcomes.
			for i := start; i < len(records); i++ {
				outcomes[i] = RecordOutcome{
					EmployeeID: records[i].EmployeeID,
					Success:    false,
					Message:    "Not processed: upload deadline exceeded",
				}
			}
			break
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int, rec Record) {
				defer wg.Done()
				outcomes[idx] = r.applyOne(ctx, rec)
			}(i, records[i])
		}
		wg.Wait()
	}

	result := BatchResult{
		ProcessedCount: len(records),
		Outcomes:       outcomes,
	}
	for _, out := range outcomes {
		if out.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}

	r.logger.Info("reconcile finished",
		zap.Int("processed", result.ProcessedCount),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

func (r *Reconciler) applyOne(ctx context.Context, rec Record) RecordOutcome {
	out := RecordOutcome{EmployeeID: rec.EmployeeID}

	if err := r.apply(ctx, rec); err != nil {
		r.logger.Warn("record failed",
			zap.String("employee_id", rec.EmployeeID),
			zap.Error(err),
		)
		out.Success = false
		out.Message = err.Error()
		return out
	}

	out.Success = true
	out.Message = "Processed successfully"
	return out
}

func (r *Reconciler) apply(ctx context.Context, rec Record) error {
	if strings.TrimSpace(rec.EmployeeID) == "" {
		return paysliperrors.ErrMissingEmployeeID
	}

	var clientID *uuid.UUID
	if rec.ClientID != "" {
		id, err := uuid.Parse(rec.ClientID)
		if err != nil {
			return paysliperrors.ErrInvalidClientID
		}
		clientID = &id
	}

	emp := &employee.Employee{
		EmployeeID:    strings.TrimSpace(rec.EmployeeID),
		ClientID:      clientID,
		EmployeeName:  rec.EmployeeName,
		MobileNumber:  rec.MobileNumber,
		DOB:           rec.DOB,
		DOJ:           rec.DOJ,
		Designation:   rec.Designation,
		Department:    rec.Department,
		BankName:      rec.BankName,
		BankAccountNo: rec.BankAccountNo,
		IFSCCode:      rec.IFSCCode,
		PANNo:         rec.PANNo,
		PFNumber:      rec.PFNumber,
		UANNo:         rec.UANNo,
		ESICNo:        rec.ESICNo,
	}
	if err := r.employees.Upsert(ctx, emp); err != nil {
		return err
	}

	amounts := AmountsOf(rec)
	totals := ComputeTotals(amounts)
	words := AmountInWords(int64(math.Round(totals.NetPay)))

	slip := &Payslip{
		EmployeeID: emp.EmployeeID,
		Month:      rec.Month,
		Year:       rec.Year,
		ClientID:   clientID,

		WorkingDays: rec.WorkingDays,
		ExtraDays:   rec.ExtraDays,
		OTHrs:       rec.OTHrs,
		ArrearsDays: rec.ArrearsDays,
		LOP:         rec.LOP,

		Basic:                amounts.Basic,
		HRA:                  amounts.HRA,
		SpecialAllowance:     amounts.SpecialAllowance,
		StatutoryBonus:       amounts.StatutoryBonus,
		ArrearsAmount:        amounts.ArrearsAmount,
		OTAmount:             amounts.OTAmount,
		ExtraHolidayPay:      amounts.ExtraHolidayPay,
		AttendanceIncentive:  amounts.AttendanceIncentive,
		PerformanceIncentive: amounts.PerformanceIncentive,
		SpecialIncentive:     amounts.SpecialIncentive,

		ProfessionTax:   amounts.ProfessionTax,
		PFAmount:        amounts.PFAmount,
		ESIC:            amounts.ESIC,
		ArrearDeduction: amounts.ArrearDeduction,
		KarmaLife:       amounts.KarmaLife,

		GrossEarnings:   totals.GrossEarnings,
		GrossDeductions: totals.GrossDeductions,
		NetPay:          totals.NetPay,
		NetPayWords:     words,
	}
	if err := r.payslips.Upsert(ctx, slip); err != nil {
		return err
	}

	r.queueGeneratedEvent(ctx, slip)
	return nil
}

// queueGeneratedEvent requests a PDF artifact for the upserted payslip.
// The payslip data itself is already durable; a missed event only delays
// the artifact, so failures are logged and swallowed.
func (r *Reconciler) queueGeneratedEvent(ctx context.Context, slip *Payslip) {
	if r.outbox == nil {
		return
	}

	event := events.PayslipGeneratedEvent{
		EventType:  events.TypePayslipGenerated,
		EmployeeID: slip.EmployeeID,
		Month:      slip.Month,
		Year:       slip.Year,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		r.logger.Error("marshal payslip event failed", zap.Error(err))
		return
	}

	err = r.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "payslip",
		AggregateID:   slip.EmployeeID + ":" + slip.Month + ":" + slip.Year,
		EventType:     events.TypePayslipGenerated,
		Topic:         events.PayslipGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		r.logger.Error("queue payslip event failed",
			zap.String("employee_id", slip.EmployeeID),
			zap.Error(err),
		)
	}
}
