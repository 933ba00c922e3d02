package analytics

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	appdomain "github.com/oancholarevelo/interniskolar/internal/applications/domain"
)

// WriteXLSX renders a Summary as a spreadsheet report for the OJT office:
// an overview sheet, the application-count leaderboard, and the expiring
// agreements with contact details for renewal follow-ups.
func WriteXLSX(w io.Writer, summary Summary, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	const overview = "Overview"
	f.SetSheetName("Sheet1", overview)

	rows := [][]interface{}{
		{"InternIskolar Analytics", generatedAt.Format("January 2, 2006")},
		{},
		{"Registered students", summary.TotalStudents},
		{"Active HTEs", summary.ActiveHTEs},
		{"Expired HTEs", summary.ExpiredHTEs},
		{},
		{"Applications by status"},
	}
	for _, status := range appdomain.Statuses {
		rows = append(rows, []interface{}{string(status), summary.ApplicationStats[status]})
	}
	if unknown := summary.ApplicationStats[appdomain.StatusUnknown]; unknown > 0 {
		rows = append(rows, []interface{}{string(appdomain.StatusUnknown), unknown})
	}
	if err := writeRows(f, overview, rows); err != nil {
		return err
	}

	const popular = "Most Popular HTEs"
	if _, err := f.NewSheet(popular); err != nil {
		return err
	}
	popularRows := [][]interface{}{{"Rank", "Company", "Applications"}}
	for i, item := range summary.MostPopularHTEs {
		popularRows = append(popularRows, []interface{}{i + 1, item.HTE.Name, item.Applications})
	}
	if err := writeRows(f, popular, popularRows); err != nil {
		return err
	}

	const expiring = "Expiring MOAs"
	if _, err := f.NewSheet(expiring); err != nil {
		return err
	}
	expiringRows := [][]interface{}{{"Company", "Days Until Expiry", "Urgency", "Contact Person", "Contact Email"}}
	for _, item := range summary.ExpiringHTEs {
		expiringRows = append(expiringRows, []interface{}{
			item.HTE.Name, item.DaysUntilExpiry, string(item.Urgency), item.HTE.ContactPerson, item.HTE.ContactEmail,
		})
	}
	if err := writeRows(f, expiring, expiringRows); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write analytics workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
