package pdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/c4sfood/payroll-backend-go/internal/domain/payroll"
)

const currency = "PHP"

// RenderPayslip writes an A4 payslip document to w.
func RenderPayslip(w io.Writer, p payroll.PayslipResponse) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(40, 10, "Payslip")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	name := p.EmployeeID
	if p.EmployeeName != nil {
		name = fmt.Sprintf("%s (%s)", *p.EmployeeName, p.EmployeeID)
	}
	doc.Cell(0, 8, fmt.Sprintf("Employee: %s", name))
	doc.Ln(7)
	if p.EmployeeRole != nil {
		doc.Cell(0, 8, fmt.Sprintf("Role: %s", *p.EmployeeRole))
		doc.Ln(7)
	}
	doc.Cell(0, 8, fmt.Sprintf("Period: %s to %s (%s)", p.PeriodStart, p.PeriodEnd, p.PeriodType))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Status: %s", p.Status))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Earnings")
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Payable days: %d", p.PayableDays))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Worked hours: %s", p.WorkedHours.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Gross pay: %s %s", p.GrossPay.StringFixed(2), currency))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Deductions")
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("SSS: %s %s", p.SSS.StringFixed(2), currency))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("PhilHealth: %s %s", p.Philhealth.StringFixed(2), currency))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Pag-IBIG: %s %s", p.Pagibig.StringFixed(2), currency))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Late (%d min): %s %s", p.LateMinutes, p.LateDeduction.StringFixed(2), currency))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Total deductions: %s %s", p.TotalDeductions.StringFixed(2), currency))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 14)
	doc.Cell(0, 10, fmt.Sprintf("Net pay: %s %s", p.NetPay.StringFixed(2), currency))

	return doc.Output(w)
}
