package payslip

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// buildPayslipPDF renders a minimal single-page PDF. Dependencies on
// heavyweight PDF toolkits are avoided on purpose: the document is a
// fixed text layout, and hand-rolling the objects keeps the binary and
// output deterministic.
func buildPayslipPDF(view PayslipView) []byte {
	lines := payslipLines(view)

	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes()
}

func payslipLines(view PayslipView) []string {
	lines := []string{
		view.ClientName,
		view.ClientAddress,
		"",
		fmt.Sprintf("Payslip for %s", periodLabel(view.Month, view.Year)),
		"",
		fmt.Sprintf("Employee ID: %s    Name: %s", view.EmployeeID, view.EmployeeName),
		fmt.Sprintf("Designation: %s    Department: %s", view.Designation, view.Department),
		fmt.Sprintf("DOJ: %s    Bank A/C: %s (%s)", view.DOJ, view.BankAccountNo, view.BankName),
		fmt.Sprintf("PAN: %s    UAN: %s    ESI: %s", view.PANNo, view.UANNo, view.ESICNo),
		fmt.Sprintf("Days Worked: %s    Extra Days: %s    OT Hrs: %s    LOP: %s",
			view.WorkingDays, view.ExtraDays, view.OTHrs, view.LOP),
		"",
		"Earnings",
		amountLine("Basic", view.Basic),
		amountLine("HRA", view.HRA),
		amountLine("Special Allowance", view.SpecialAllowance),
		amountLine("Statutory Bonus", view.StatutoryBonus),
		amountLine("Arrears", view.ArrearsAmount),
		amountLine("OT Amount", view.OTAmount),
		amountLine("Extra & Holiday Pay", view.ExtraHolidayPay),
		amountLine("Attendance Incentive", view.AttendanceIncentive),
		amountLine("Performance Incentive", view.PerformanceIncentive),
		amountLine("Special Incentive", view.SpecialIncentive),
		amountLine("Total Gross (A)", view.GrossEarnings),
		"",
		"Deductions",
		amountLine("Profession Tax", view.ProfessionTax),
		amountLine("PF", view.PFAmount),
		amountLine("ESIC", view.ESIC),
		amountLine("Arrear Deduction", view.ArrearDeduction),
		amountLine("Karma Life", view.KarmaLife),
		amountLine("Gross Deductions (B)", view.GrossDeductions),
		"",
		amountLine("Net Take Home", view.NetPay),
		fmt.Sprintf("In Words: %s", ToTitleWords(view.NetPayWords)),
	}
	return lines
}

func amountLine(label string, amount float64) string {
	return fmt.Sprintf("%-24s %12.2f", label, amount)
}

func periodLabel(month, year string) string {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return month + " " + year
	}
	return time.Month(m).String() + " " + year
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
