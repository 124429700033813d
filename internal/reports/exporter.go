package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/woosuta/woosuta-backend/internal/apierror"
	"github.com/woosuta/woosuta-backend/internal/message"
)

// Export formats for the message download.
const (
	FormatExcel = "xlsx"
	FormatCSV   = "csv"
	FormatPDF   = "pdf"
	FormatJSON  = "json"
)

var columns = []string{"id", "vote", "LIKE", "NEXT", "HAHA", "EYE", "CHEERUP", "message", "createAt", "reply", "replyAt"}

// Exporter renders the flattened message rows of one event into a
// downloadable document.
type Exporter interface {
	Export(format, instantEventID string, rows []message.DownloadRow) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) Export(format, instantEventID string, rows []message.DownloadRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")
	base := fmt.Sprintf("messages_%s_%s", instantEventID, timestamp)

	switch format {
	case FormatExcel, "":
		return e.exportExcel(base, rows)
	case FormatCSV:
		return e.exportCSV(base, rows)
	case FormatPDF:
		return e.exportPDF(base, rows)
	default:
		return nil, "", "", apierror.BadRequest("지원하지 않는 다운로드 형식입니다.")
	}
}

func rowValues(r message.DownloadRow) []string {
	return []string{
		r.ID,
		strconv.Itoa(r.Vote),
		strconv.Itoa(r.Like),
		strconv.Itoa(r.Next),
		strconv.Itoa(r.Haha),
		strconv.Itoa(r.Eye),
		strconv.Itoa(r.CheerUp),
		r.Message,
		r.CreateAt,
		r.Reply,
		r.ReplyAt,
	}
}

func (e *exporter) exportCSV(base string, rows []message.DownloadRow) ([]byte, string, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, "", "", err
	}
	for _, r := range rows {
		if err := w.Write(rowValues(r)); err != nil {
			return nil, "", "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", "", err
	}
	return buf.Bytes(), base + ".csv", "text/csv", nil
}

func (e *exporter) exportExcel(base string, rows []message.DownloadRow) ([]byte, string, string, error) {
	const sheet = "Messages"
	f := excelize.NewFile()
	defer f.Close()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", "", err
	}
	f.SetActiveSheet(index)

	for i, h := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", "", err
		}
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range rows {
		values := rowValues(r)
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, "", "", err
			}
			// numeric columns stay numeric in the sheet
			if j >= 1 && j <= 6 {
				n, _ := strconv.Atoi(v)
				f.SetCellValue(sheet, cell, n)
				continue
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", "", err
	}
	return buf.Bytes(), base + ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
}

func (e *exporter) exportPDF(base string, rows []message.DownloadRow) ([]byte, string, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Messages", "", 1, "L", false, 0, "")

	widths := []float64{24, 12, 12, 12, 12, 12, 16, 70, 30, 50, 30}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range columns {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		values := rowValues(r)
		for i, v := range values {
			align := "L"
			if i >= 1 && i <= 6 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", err
	}
	return buf.Bytes(), base + ".pdf", "application/pdf", nil
}
