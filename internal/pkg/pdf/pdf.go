package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 15.0
	imageWidth = 150.0
)

// Image is a picture embedded into a document. Name must be unique within
// the document; Reader must yield JPEG data.
type Image struct {
	Name   string
	Reader io.Reader
}

// ProjectInfo is the header block of an exported document.
type ProjectInfo struct {
	Name         string
	Address      string
	CustomerName string
	Status       string
}

// ReportBlock is one report rendered into a document.
type ReportBlock struct {
	Date         string
	Author       string
	Text         string
	QuickActions []string
	Images       []Image
}

// Project renders the full documentation of a project, one page per report.
func Project(info ProjectInfo, reports []ReportBlock) ([]byte, error) {
	doc, tr := newDocument()

	doc.SetFont("Helvetica", "B", 18)
	doc.MultiCell(0, 9, tr("Projektdokumentation: "+info.Name), "", "L", false)
	doc.Ln(2)

	headerLine(doc, tr, "Kunde:", info.CustomerName)
	headerLine(doc, tr, "Adresse:", info.Address)
	headerLine(doc, tr, "Status:", info.Status)
	doc.Ln(6)

	for i, block := range reports {
		if i > 0 {
			doc.AddPage()
		}
		writeReport(doc, tr, block)
	}

	return output(doc)
}

// Report renders a single report with its project context.
func Report(info ProjectInfo, block ReportBlock) ([]byte, error) {
	doc, tr := newDocument()

	doc.SetFont("Helvetica", "B", 18)
	doc.MultiCell(0, 9, tr("Tagesbericht: "+info.Name), "", "L", false)
	doc.Ln(2)

	headerLine(doc, tr, "Adresse:", info.Address)
	doc.Ln(6)

	writeReport(doc, tr, block)

	return output(doc)
}

func newDocument() (*fpdf.Fpdf, func(string) string) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()
	return doc, doc.UnicodeTranslatorFromDescriptor("")
}

func headerLine(doc *fpdf.Fpdf, tr func(string) string, label, value string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(25, 6, tr(label), "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 6, tr(value), "", "L", false)
}

func writeReport(doc *fpdf.Fpdf, tr func(string) string, block ReportBlock) {
	doc.SetFont("Helvetica", "B", 13)
	doc.MultiCell(0, 7, tr(block.Date+" - "+block.Author), "", "L", false)
	doc.Ln(1)

	if block.Text != "" {
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 5.5, tr(block.Text), "", "L", false)
	}

	if len(block.QuickActions) > 0 {
		doc.Ln(2)
		doc.SetFont("Helvetica", "I", 10)
		doc.MultiCell(0, 5, tr("Quick Actions: "+strings.Join(block.QuickActions, ", ")), "", "L", false)
	}

	for _, img := range block.Images {
		doc.Ln(3)
		doc.RegisterImageOptionsReader(img.Name, fpdf.ImageOptions{ImageType: "JPG"}, img.Reader)
		doc.ImageOptions(img.Name, pageMargin, 0, imageWidth, 0, true, fpdf.ImageOptions{ImageType: "JPG"}, 0, "")
	}
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
