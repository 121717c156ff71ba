package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	FormatExcel = "xlsx"
	FormatCSV   = "csv"
)

// Exporter renders weekly reports and district summaries for download.
type Exporter interface {
	ExportReport(report WeeklyReport) ([]byte, string, string, error)
	ExportSummary(summary DistrictSummary, format string) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

//// ============================
/// WEEKLY REPORT PDF
//// ============================

// ExportReport renders the official single-page weekly report. The
// layout is fixed: association header, score badge, three sectioned
// tables and the signature row.
func (e *exporter) ExportReport(report WeeklyReport) ([]byte, string, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	pdf.AddPage()

	// Logo: red circle with the association initials.
	pdf.SetFillColor(220, 38, 38)
	pdf.Circle(25, 20, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(20.5, 21.5, "AGD")
	pdf.SetTextColor(0, 0, 0)

	// Header block.
	pdf.SetFont("Times", "B", 16)
	pdf.SetXY(15, 14)
	pdf.CellFormat(180, 7, tr("ANADOLU GENÇLİK DERNEĞİ"), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "B", 14)
	pdf.SetX(15)
	pdf.CellFormat(180, 6, tr("SULTANGAZİ İLÇE BAŞKANLIĞI"), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 10)
	pdf.SetX(15)
	pdf.CellFormat(180, 5, tr("Haftalık Mahalle Faaliyet Raporu"), "", 1, "C", false, 0, "")

	// Right side info: date and score.
	pdf.SetFont("Times", "B", 10)
	pdf.SetXY(145, 17)
	pdf.CellFormat(50, 5, tr("Tarih: "+report.Date), "", 1, "R", false, 0, "")

	score := Score(report)
	cr, cg, cb := TierColor(TierFor(score))
	pdf.SetTextColor(cr, cg, cb)
	pdf.SetFont("Times", "B", 12)
	pdf.SetXY(145, 23)
	pdf.CellFormat(50, 6, fmt.Sprintf("Puan: %d/100", score), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetLineWidth(0.5)
	pdf.Line(15, 35, 195, 35)

	pdf.SetFont("Times", "B", 14)
	pdf.SetXY(15, 40)
	pdf.CellFormat(180, 8, tr(strings.ToUpper(report.NeighborhoodName)), "", 1, "L", false, 0, "")

	yesNo := func(held bool, yes, no string) string {
		if held {
			return yes
		}
		return no
	}

	// Table 1: management section, blue header.
	e.sectionTable(pdf, tr, 41, 128, 185,
		[]string{"Bölüm", "Veri", "Durum"},
		[][]string{
			{"Haftalık Yönetim Toplantısı", yesNo(report.IsManagementMeetingHeld, "Yapıldı", "Yapılmadı"), yesNo(report.IsManagementMeetingHeld, "TAMAM", "EKSİK")},
			{"Toplantı Katılım Sayısı", fmt.Sprintf("%d / %d", report.ManagementAttendanceCount, report.ManagementTotalCount), ""},
			{"İlçe Sorumlusu Katılımı", yesNo(report.IsSupervisorAttended, "Katıldı", "Katılmadı"), ""},
			{"Genel Sohbet Katılımı", fmt.Sprintf("%d Kişi", report.GeneralChatAttendance), ""},
		})
	pdf.Ln(6)

	// Table 2: youth & education, orange header.
	e.sectionTable(pdf, tr, 230, 126, 34,
		[]string{"Birim", "Faaliyet", "Sayısal Veri"},
		[][]string{
			{"Ortaokul (Kaşif)", "Aktif Grup Sayısı", strconv.Itoa(report.MiddleSchoolGroupCount)},
			{"Ortaokul (Kaşif)", "Ulaşılan Öğrenci", strconv.Itoa(report.MiddleSchoolStudentCount)},
			{"Lise (Karavan)", "Mevcut Okul Sayısı", strconv.Itoa(report.HighSchoolTotalCount)},
			{"Lise (Karavan)", "Okul Başkanı Sayısı", strconv.Itoa(report.HighSchoolPresidentCount)},
			{"Lise (Karavan)", "Komisyon Sayısı", strconv.Itoa(report.HighSchoolStaffCount)},
			{"Lise (Karavan)", "Okuma Grubu Sayısı", strconv.Itoa(report.HighSchoolReadingGroupCount)},
			{"Lise (Karavan)", "Okuma Grubu Öğrenci", strconv.Itoa(report.HighSchoolReadingStudentCount)},
			{"Lise (Karavan)", "Haftalık Sohbet Katılımı", strconv.Itoa(report.HighSchoolChatAttendance)},
		})
	pdf.Ln(6)

	// Table 3: women's commission, purple header.
	e.sectionTable(pdf, tr, 155, 89, 182,
		[]string{"Faaliyet", "Detay", "Veri"},
		[][]string{
			{"Toplantı", yesNo(report.IsWomenMeetingHeld, "Yapıldı", "Yapılmadı"), yesNo(report.IsWomenMeetingHeld, "EVET", "HAYIR")},
			{"Toplantı Katılım", "Kişi Sayısı", strconv.Itoa(report.WomenMeetingAttendance)},
			{"Ev Sohbeti / Çay", "Adet", strconv.Itoa(report.WomenTeaTalkCount)},
			{"Genç Hanımlar", "Ulaşım Sayısı", strconv.Itoa(report.YoungWomenWork)},
			{"Hanım Sohbeti", "Katılım", strconv.Itoa(report.WomenChatAttendance)},
		})
	pdf.Ln(6)

	if report.OtherActivities != "" {
		pdf.SetFont("Times", "B", 10)
		pdf.SetX(15)
		pdf.CellFormat(180, 5, tr("Diğer Notlar:"), "", 1, "L", false, 0, "")
		pdf.SetFont("Times", "", 10)
		pdf.SetX(15)
		pdf.MultiCell(180, 5, tr(report.OtherActivities), "", "L", false)
		pdf.Ln(5)
	}

	if pdf.GetY() > 220 {
		pdf.AddPage()
		pdf.SetY(20)
	}

	// Photo evidence placeholder when a management meeting was held.
	if report.IsManagementMeetingHeld {
		y := pdf.GetY()
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetFillColor(250, 250, 250)
		pdf.Rect(15, y, 80, 50, "FD")
		pdf.SetFont("Times", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.SetXY(15, y+23)
		pdf.CellFormat(80, 4, tr("Toplantı Fotoğrafı (Eklendi)"), "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetY(y + 60)
	}

	// Signature row pinned to the bottom of the page.
	_, pageHeight := pdf.GetPageSize()
	footerY := pageHeight - 40
	if pdf.GetY() > footerY {
		pdf.AddPage()
	}

	pdf.SetFont("Times", "B", 10)
	signatures := []struct {
		title string
		x     float64
	}{
		{"Mahalle Başkanı", 30},
		{"Teşkilat Başkanı", 105},
		{"İlçe Başkanı", 180},
	}
	for _, sig := range signatures {
		pdf.SetXY(sig.x-25, footerY)
		pdf.CellFormat(50, 5, tr(sig.title), "", 0, "C", false, 0, "")
		pdf.SetXY(sig.x-25, footerY+15)
		pdf.CellFormat(50, 5, "..........................", "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("%s_Rapor_%s.pdf", strings.ReplaceAll(report.NeighborhoodName, " ", "_"), report.Date)
	return buf.Bytes(), filename, "application/pdf", nil
}

// sectionTable prints a three column grid with a colored header row.
func (e *exporter) sectionTable(pdf *gofpdf.Fpdf, tr func(string) string, r, g, b int, headers []string, rows [][]string) {
	widths := []float64{80, 60, 40}

	pdf.SetX(15)
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Times", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.SetX(15)
		pdf.SetFont("Times", "B", 10)
		pdf.CellFormat(widths[0], 6, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Times", "", 10)
		pdf.CellFormat(widths[1], 6, tr(row[1]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Times", "B", 10)
		pdf.CellFormat(widths[2], 6, tr(row[2]), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
}

//// ============================
/// DISTRICT SUMMARY EXPORTS
//// ============================

func (e *exporter) ExportSummary(summary DistrictSummary, format string) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatExcel, "excel":
		data, err := e.exportSummaryExcel(summary)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("ilce_ozeti_%s_%s.xlsx", summary.Window, timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		data, err := e.exportSummaryCSV(summary)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("ilce_ozeti_%s_%s.csv", summary.Window, timestamp)
		return data, filename, "text/csv", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for district summary: %s", format)
	}
}

func summaryRows(summary DistrictSummary) [][]interface{} {
	rows := make([][]interface{}, 0, len(summary.Snapshots))
	for _, r := range summary.Snapshots {
		rows = append(rows, []interface{}{
			r.NeighborhoodName,
			r.Date,
			string(r.Status),
			Score(r),
			r.ManagementAttendanceCount,
			r.ManagementTotalCount,
			r.WomenMeetingAttendance,
			r.MiddleSchoolStudentCount,
			r.HighSchoolTotalCount,
			r.GeneralChatAttendance,
		})
	}
	return rows
}

var summaryHeaders = []string{
	"Mahalle", "Tarih", "Durum", "Puan",
	"Yönetim Katılım", "Yönetim Mevcut", "Hanımlar Katılım",
	"Ortaokul Öğrenci", "Lise Okul", "Genel Sohbet",
}

func (e *exporter) exportSummaryExcel(summary DistrictSummary) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Özet"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, row := range summaryRows(summary) {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, val)
		}
	}

	// Totals block below the snapshot rows.
	base := len(summary.Snapshots) + 3
	totals := [][]interface{}{
		{"Mahalle Sayısı", summary.NeighborhoodCount},
		{"Yönetim Katılım (Toplam)", summary.Activity.ManagementAttendance},
		{"Hanımlar Katılım (Toplam)", summary.Activity.WomenMeetingAttendance},
		{"Ortaokul Sohbet (Toplam)", summary.Activity.MiddleSchoolChats},
		{"Lise Sohbet Katılım (Toplam)", summary.Activity.HighSchoolChatAttendance},
		{"Genel Sohbet Katılım (Toplam)", summary.Activity.GeneralChatAttendance},
		{"Yönetim Mevcut (Stok)", summary.Stock.ManagementTotal},
		{"Ortaokul Öğrenci (Stok)", summary.Stock.MiddleSchoolStudents},
		{"Lise Okul (Stok)", summary.Stock.HighSchoolTotal},
		{"Okuma Grubu (Stok)", summary.Stock.HighSchoolReadingGroups},
	}
	for i, pair := range totals {
		labelCell, _ := excelize.CoordinatesToCellName(1, base+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, base+i)
		f.SetCellValue(sheet, labelCell, pair[0])
		f.SetCellValue(sheet, valueCell, pair[1])
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportSummaryCSV(summary DistrictSummary) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(summaryHeaders); err != nil {
		return nil, err
	}

	for _, row := range summaryRows(summary) {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = fmt.Sprint(val)
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
