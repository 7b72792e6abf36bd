// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Service renders order receipts as PDF via wkhtmltopdf.
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF receipt for a placed order.
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	data := receiptData{
		ReceiptNumber: fmt.Sprintf("RCP-%s", o.OrderNumber),
		ReceiptDate:   time.Now().Format("January 2, 2006"),
		Order:         o,
		CompanyName:   s.config.App.CompanyName,
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Funcs(template.FuncMap{
		"money": formatMoney,
	}).Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// formatMoney renders cents as dollars, e.g. 18500 -> $185.00.
func formatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// receiptData is the data passed to the receipt template.
type receiptData struct {
	ReceiptNumber string
	ReceiptDate   string
	Order         *order.Order
	CompanyName   string
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        .header { margin-bottom: 30px; border-bottom: 2px solid #eee; padding-bottom: 20px; }
        .receipt-title { font-size: 28px; font-weight: bold; color: #2563eb; margin-bottom: 10px; }
        .meta { color: #666; margin-bottom: 4px; }
        table.items { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
        table.items th { text-align: left; border-bottom: 2px solid #333; padding: 8px 4px; }
        table.items td { border-bottom: 1px solid #eee; padding: 8px 4px; }
        .num { text-align: right; }
        .totals { width: 300px; margin-left: auto; }
        .totals td { padding: 4px; }
        .totals .grand { font-weight: bold; border-top: 2px solid #333; }
        .address { margin-top: 30px; color: #555; }
    </style>
</head>
<body>
    <div class="header">
        <div class="receipt-title">{{.CompanyName}}</div>
        <div class="meta">Receipt {{.ReceiptNumber}}</div>
        <div class="meta">Order {{.Order.OrderNumber}}</div>
        <div class="meta">{{.ReceiptDate}}</div>
    </div>

    <table class="items">
        <tr><th>Item</th><th>Size</th><th class="num">Price</th><th class="num">Qty</th><th class="num">Total</th></tr>
        {{range .Order.Items}}
        <tr>
            <td>{{.Name}}{{if .Brand}} ({{.Brand}}){{end}}</td>
            <td>{{.Size}}</td>
            <td class="num">{{money .Price}}</td>
            <td class="num">{{.Quantity}}</td>
            <td class="num">{{money .TotalPrice}}</td>
        </tr>
        {{end}}
    </table>

    <table class="totals">
        <tr><td>Subtotal</td><td class="num">{{money .Order.SubtotalAmount}}</td></tr>
        <tr><td>Shipping</td><td class="num">{{money .Order.ShippingAmount}}</td></tr>
        {{if .Order.DiscountAmount}}<tr><td>Discount{{if .Order.PromoCode}} ({{.Order.PromoCode}}){{end}}</td><td class="num">-{{money .Order.DiscountAmount}}</td></tr>{{end}}
        <tr class="grand"><td class="grand">Total</td><td class="num grand">{{money .Order.TotalAmount}}</td></tr>
    </table>

    <div class="address">
        <strong>Ship to</strong><br>
        {{.Order.ShippingAddress.FirstName}} {{.Order.ShippingAddress.LastName}}<br>
        {{.Order.ShippingAddress.Line1}}<br>
        {{if .Order.ShippingAddress.Line2}}{{.Order.ShippingAddress.Line2}}<br>{{end}}
        {{.Order.ShippingAddress.City}}{{if .Order.ShippingAddress.State}}, {{.Order.ShippingAddress.State}}{{end}} {{.Order.ShippingAddress.PostalCode}}<br>
        {{.Order.ShippingAddress.Country}}
    </div>
</body>
</html>
`
