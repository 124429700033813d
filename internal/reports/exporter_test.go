package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/woosuta/woosuta-backend/internal/message"
)

var sampleRows = []message.DownloadRow{
	{
		ID: "m1", Vote: 3, Like: 2, Next: 1,
		Message:  "첫 번째 질문",
		CreateAt: "2023-03-15 12:00:00",
		Reply:    "답변입니다",
		ReplyAt:  "2023-03-15 13:30:00",
	},
	{ID: "m2", Message: "no replies yet", CreateAt: "2023-03-15 12:05:00"},
}

func TestExportCSV(t *testing.T) {
	data, filename, contentType, err := NewExporter().Export(FormatCSV, "ev1", sampleRows)
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "text/csv" || !strings.HasSuffix(filename, ".csv") {
		t.Fatalf("filename %q contentType %q", filename, contentType)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(records))
	}
	if records[0][2] != "LIKE" || records[0][6] != "CHEERUP" {
		t.Fatalf("header = %v", records[0])
	}
	if records[1][0] != "m1" || records[1][7] != "첫 번째 질문" || records[1][9] != "답변입니다" {
		t.Fatalf("row 1 = %v", records[1])
	}
	if records[2][9] != "" {
		t.Fatalf("reply-less row must leave reply empty, got %v", records[2])
	}
}

func TestExportExcelDefault(t *testing.T) {
	// empty format falls back to xlsx
	data, filename, contentType, err := NewExporter().Export("", "ev1", sampleRows)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("filename = %q", filename)
	}
	if contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("contentType = %q", contentType)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := f.GetCellValue("Messages", "H2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "첫 번째 질문" {
		t.Fatalf("H2 = %q", got)
	}
}

func TestExportPDF(t *testing.T) {
	data, filename, contentType, err := NewExporter().Export(FormatPDF, "ev1", sampleRows)
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "application/pdf" || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename %q contentType %q", filename, contentType)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a pdf document")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if _, _, _, err := NewExporter().Export("docx", "ev1", nil); err == nil {
		t.Fatal("unknown format must be rejected")
	}
}
