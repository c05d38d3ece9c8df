package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	applicationapimodels "job-tracker-backend/models/api/application"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 7.0
)

var (
	historyHeaders = []string{"Job Title", "Company", "Application Date", "Status"}
	historyWidths  = []float64{70, 55, 35, 30}
)

// GenerateHistoryReport renders the history list as an A4 table.
func GenerateHistoryReport(owner string, list []applicationapimodels.ApplicationView, generatedAt time.Time) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateHistoryReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Application history", true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, "Application history", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s, %s", owner, generatedAt.Format("2006-01-02 15:04"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeTableHeader(pdf)
	if len(list) == 0 {
		pdf.SetFont(fontFamily, "I", 10)
		pdf.CellFormat(0, lineHeight, "No history yet.", "1", 1, "C", false, 0, "")
	}
	pdf.SetFont(fontFamily, "", 10)
	for idx, item := range list {
		if pdf.GetY()+lineHeight > 275 {
			pdf.AddPage()
			writeTableHeader(pdf)
			pdf.SetFont(fontFamily, "", 10)
		}
		fill := idx%2 == 1
		pdf.SetFillColor(242, 242, 242)
		values := []string{item.JobTitle, item.Company, item.ApplicationDate, item.StatusName}
		for col, value := range values {
			pdf.CellFormat(historyWidths[col], lineHeight, tr(fit(pdf, value, historyWidths[col])), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(221, 235, 247)
	for col, header := range historyHeaders {
		pdf.CellFormat(historyWidths[col], lineHeight, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// fit cuts value so that it fits into a cell of the given width.
func fit(pdf *fpdf.Fpdf, value string, width float64) string {
	const padding = 2
	if pdf.GetStringWidth(value) <= width-padding {
		return value
	}
	runes := []rune(value)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width-padding {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
