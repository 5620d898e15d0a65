package document

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
)

// PayslipData is the salary breakdown handed to the rendering collaborator.
type PayslipData struct {
	EmployeeName     string
	Period           string
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	SpecialAllowance decimal.Decimal
	Gross            decimal.Decimal
	Deductions       decimal.Decimal
	NetSalary        decimal.Decimal
}

// Renderer produces a payslip document blob from a salary breakdown. The
// concrete rendering technology is an external concern; implementations only
// have to return the finished bytes.
type Renderer interface {
	Render(ctx context.Context, data PayslipData) ([]byte, error)
	ContentType() string
}

const payslipTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Payslip {{.Period}}</title></head>
<body>
  <h1>Payslip {{.Period}}</h1>
  <p>{{.EmployeeName}}</p>
  <table>
    <tr><td>Basic</td><td>{{.Basic}}</td></tr>
    <tr><td>HRA</td><td>{{.HRA}}</td></tr>
    <tr><td>Special Allowance</td><td>{{.SpecialAllowance}}</td></tr>
    <tr><td>Gross</td><td>{{.Gross}}</td></tr>
    <tr><td>Deductions</td><td>{{.Deductions}}</td></tr>
    <tr><td><strong>Net Salary</strong></td><td><strong>{{.NetSalary}}</strong></td></tr>
  </table>
</body>
</html>
`

type htmlRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer returns the bundled template-based renderer used for local
// development and tests.
func NewHTMLRenderer() (Renderer, error) {
	tmpl, err := template.New("payslip").Parse(payslipTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payslip template: %w", err)
	}
	return &htmlRenderer{tmpl: tmpl}, nil
}

func (r *htmlRenderer) Render(ctx context.Context, data PayslipData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *htmlRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}
