// Package invoice renders a one-page A4 PDF for an order: header, invoice
// number, customer block, itemized table, grand total and footer branding.
// Every amount carries the fixed SDG currency suffix.
package invoice

import (
	"bytes"
	"dan_assistant/internal/models"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const currencySuffix = "SDG"

var labels = map[string]map[string]string{
	"en": {
		"company":   "Dan Multi-Activities Company",
		"invoice":   "Order Invoice",
		"customer":  "Customer Details",
		"name":      "Name",
		"phone":     "Phone",
		"address":   "Address",
		"info":      "Invoice Info",
		"date":      "Date",
		"status":    "Status",
		"item":      "Item",
		"quantity":  "Qty",
		"unitPrice": "Unit Price",
		"lineTotal": "Total",
		"grand":     "Grand Total",
		"thanks":    "Thank you for doing business with Dan Multi-Activities Company.",
	},
	// Core PDF fonts cannot shape Arabic script, so the Arabic locale keeps
	// the latin labels; values render as stored.
	"ar": {
		"company":   "Dan Multi-Activities Company",
		"invoice":   "Order Invoice",
		"customer":  "Customer Details",
		"name":      "Name",
		"phone":     "Phone",
		"address":   "Address",
		"info":      "Invoice Info",
		"date":      "Date",
		"status":    "Status",
		"item":      "Item",
		"quantity":  "Qty",
		"unitPrice": "Unit Price",
		"lineTotal": "Total",
		"grand":     "Grand Total",
		"thanks":    "Thank you for doing business with Dan Multi-Activities Company.",
	},
}

const footerBranding = "Powered by Astric Company | Technical Support: +249127556666"

// FormatAmount renders a monetary value with thousands separators and the
// currency suffix, e.g. 8800 -> "8,800 SDG".
func FormatAmount(v float64) string {
	return formatNumber(v) + " " + currencySuffix
}

func formatNumber(v float64) string {
	raw := strconv.FormatFloat(v, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	intPart := raw
	fracPart := ""
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		intPart = raw[:dot]
		fracPart = raw[dot:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return sign + b.String() + fracPart
}

// Render produces the invoice document for an order. lang selects the label
// locale ("ar" or "en").
func Render(order models.Order, lang string) ([]byte, error) {
	l, ok := labels[lang]
	if !ok {
		l = labels["ar"]
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetTextColor(0, 74, 173)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(120, 10, l["company"], "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(60, 10, l["invoice"]+" "+order.ID, "", 1, "R", false, 0, "")
	pdf.SetDrawColor(242, 84, 91)
	pdf.SetLineWidth(1.2)
	pdf.Line(15, 28, 195, 28)
	pdf.Ln(8)

	// Customer and invoice blocks
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 74, 173)
	pdf.CellFormat(90, 7, l["customer"], "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, l["info"], "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 65, 85)
	pdf.CellFormat(90, 6, l["name"]+": "+tr(order.CustomerName), "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, l["date"]+": "+order.Date, "", 1, "L", false, 0, "")
	pdf.CellFormat(90, 6, l["phone"]+": "+order.Phone, "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, l["status"]+": "+tr(string(order.Status)), "", 1, "L", false, 0, "")
	pdf.CellFormat(90, 6, l["address"]+": "+tr(order.Address), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Item table
	pdf.SetFillColor(0, 74, 173)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 8, l["item"], "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, l["quantity"], "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, l["unitPrice"], "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, l["lineTotal"], "1", 1, "R", true, 0, "")

	pdf.SetTextColor(51, 65, 85)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(80, 7, tr(item.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, FormatAmount(item.Price), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, FormatAmount(item.Price*float64(item.Quantity)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Grand total
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(242, 84, 91)
	pdf.CellFormat(180, 10, l["grand"]+": "+FormatAmount(order.TotalAmount), "", 1, "R", false, 0, "")

	// Footer
	pdf.SetY(-40)
	pdf.SetDrawColor(203, 213, 225)
	pdf.SetLineWidth(0.3)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(148, 163, 184)
	pdf.CellFormat(180, 5, l["thanks"], "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 74, 173)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(180, 5, footerBranding, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}
