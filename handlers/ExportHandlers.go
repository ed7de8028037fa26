package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"backend/models"
	"backend/repository"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

type exportParams struct {
	UnitIDs   []int
	StartDate time.Time
	EndDate   time.Time
}

func parseExportParams(c *gin.Context) (*exportParams, error) {
	idsParam := c.Query("unit_ids")
	if idsParam == "" {
		return nil, fmt.Errorf("unit_ids is required")
	}
	var unitIDs []int
	for _, part := range strings.Split(idsParam, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid unit id %q", part)
		}
		unitIDs = append(unitIDs, id)
	}

	startStr := c.Query("start_date")
	if startStr == "" {
		return nil, fmt.Errorf("start_date is required")
	}
	startDate, err := parseLogDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date, expected YYYY-MM-DD")
	}

	endDate := startDate
	if endStr := c.Query("end_date"); endStr != "" {
		endDate, err = parseLogDate(endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date, expected YYYY-MM-DD")
		}
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end_date is before start_date")
	}
	return &exportParams{UnitIDs: unitIDs, StartDate: startDate, EndDate: endDate}, nil
}

func formatTemperature(temp *float64) string {
	if temp == nil {
		return "-"
	}
	return strconv.FormatFloat(*temp, 'f', -1, 64) + " C"
}

func entryOutOfRange(day models.UnitDayEntries, slot string) bool {
	e := day.Entries[slot]
	return e != nil && e.Temperature != nil && repository.IsOutOfRange(*e.Temperature, day.Unit)
}

// ExportTemperatureLogPDF godoc
// @Summary      Export temperature logs as PDF
// @Description  One page per unit, one slot table per date, out-of-range
// @Description  readings highlighted, verification footer when present.
// @Tags         temperature-log
// @Param        unit_ids    query  string  true   "Comma separated unit IDs"
// @Param        start_date  query  string  true   "Start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "End date, defaults to start_date"
// @Success      200  "PDF file"
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/temperature_log/export/pdf [get]
func ExportTemperatureLogPDF(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := parseExportParams(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		days, err := storage.GetEntriesForRange(db, params.UnitIDs, params.StartDate, params.EndDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if len(days) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No units found for export"})
			return
		}

		pdf := gofpdf.New("P", "mm", "Letter", "")
		pdf.SetAutoPageBreak(true, 15)

		var currentUnit int
		for _, day := range days {
			if day.Unit.ID != currentUnit {
				currentUnit = day.Unit.ID
				pdf.AddPage()

				pdf.SetFont("Arial", "B", 14)
				pdf.CellFormat(190, 10, "Cold Storage Temperature Log - Unit Wise (HACCP)", "", 1, "C", false, 0, "")
				pdf.Ln(2)

				pdf.SetFont("Arial", "B", 10)
				pdf.CellFormat(95, 7, "UNIT NO: "+day.Unit.UnitNumber, "", 0, "L", false, 0, "")
				pdf.CellFormat(95, 7, "LOCATION: "+day.Unit.Location, "", 1, "L", false, 0, "")
				pdf.CellFormat(95, 7, "UNIT TYPE: "+day.Unit.UnitType, "", 1, "L", false, 0, "")
				pdf.Ln(2)
			}

			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(190, 7, "DATE: "+day.LogDate.Format("Monday, January 02, 2006"), "", 1, "L", false, 0, "")

			// Header row
			pdf.SetFont("Arial", "B", 9)
			pdf.SetFillColor(240, 240, 240)
			pdf.CellFormat(35, 8, "TIME", "1", 0, "C", true, 0, "")
			pdf.CellFormat(45, 8, "TEMPERATURE (C)", "1", 0, "C", true, 0, "")
			pdf.CellFormat(80, 8, "CORRECTIVE ACTION", "1", 0, "C", true, 0, "")
			pdf.CellFormat(30, 8, "INITIAL", "1", 1, "C", true, 0, "")

			pdf.SetFont("Arial", "", 9)
			for _, slot := range repository.ScheduledTimes {
				entry := day.Entries[slot]
				temp, corrective, initial := "-", "-", "-"
				if entry != nil && entry.Temperature != nil {
					temp = formatTemperature(entry.Temperature)
					if entry.CorrectiveAction != nil && *entry.CorrectiveAction != "" {
						corrective = *entry.CorrectiveAction
					}
					if entry.Initial != "" {
						initial = entry.Initial
					}
				}

				pdf.CellFormat(35, 7, slot, "1", 0, "C", false, 0, "")
				if entryOutOfRange(day, slot) {
					pdf.SetTextColor(200, 0, 0)
					pdf.SetFillColor(255, 230, 230)
					pdf.CellFormat(45, 7, temp, "1", 0, "C", true, 0, "")
					pdf.SetTextColor(0, 0, 0)
				} else {
					pdf.CellFormat(45, 7, temp, "1", 0, "C", false, 0, "")
				}
				pdf.CellFormat(80, 7, corrective, "1", 0, "C", false, 0, "")
				pdf.CellFormat(30, 7, initial, "1", 1, "C", false, 0, "")
			}

			if day.SupervisorVerified {
				name := "N/A"
				if day.SupervisorName != nil {
					name = *day.SupervisorName
				}
				when := "N/A"
				if day.SupervisorVerifiedAt != nil {
					when = day.SupervisorVerifiedAt.Format("2006-01-02 15:04")
				}
				pdf.SetFont("Arial", "I", 9)
				pdf.CellFormat(190, 6, fmt.Sprintf("Verified by: %s on %s", name, when), "", 1, "L", false, 0, "")
			}
			pdf.Ln(4)
		}

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=temperature_log_%s.pdf", params.StartDate.Format("2006-01-02")))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
}

// ExportTemperatureLogExcel godoc
// @Summary      Export temperature logs as Excel
// @Description  One sheet per unit, one row per (date, slot), with the
// @Description  lateness and verification columns the PDF layout omits.
// @Tags         temperature-log
// @Param        unit_ids    query  string  true   "Comma separated unit IDs"
// @Param        start_date  query  string  true   "Start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "End date, defaults to start_date"
// @Success      200  "XLSX file"
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/temperature_log/export/excel [get]
func ExportTemperatureLogExcel(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := parseExportParams(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		days, err := storage.GetEntriesForRange(db, params.UnitIDs, params.StartDate, params.EndDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if len(days) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No units found for export"})
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		headerStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"F0F0F0"}, Pattern: 1},
		})
		outOfRangeStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Color: "C80000"},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"FFE6E6"}, Pattern: 1},
		})

		headers := []string{"Date", "Time", "Temperature (C)", "Corrective Action", "Action Time", "Recheck (C)", "Initial", "Late Entry", "Verified By", "Verified At"}

		var currentUnit int
		var sheet string
		var row int
		for _, day := range days {
			if day.Unit.ID != currentUnit {
				currentUnit = day.Unit.ID
				sheet = fmt.Sprintf("Unit %s", day.Unit.UnitNumber)
				if len(sheet) > 31 {
					sheet = sheet[:31]
				}
				if _, err := f.NewSheet(sheet); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				f.SetCellValue(sheet, "A1", fmt.Sprintf("Unit %s - %s (%s)", day.Unit.UnitNumber, day.Unit.Location, day.Unit.UnitType))
				for i, h := range headers {
					cell, _ := excelize.CoordinatesToCellName(i+1, 2)
					f.SetCellValue(sheet, cell, h)
					f.SetCellStyle(sheet, cell, cell, headerStyle)
				}
				row = 3
			}

			verifiedBy, verifiedAt := "", ""
			if day.SupervisorVerified {
				if day.SupervisorName != nil {
					verifiedBy = *day.SupervisorName
				}
				if day.SupervisorVerifiedAt != nil {
					verifiedAt = day.SupervisorVerifiedAt.Format("2006-01-02 15:04")
				}
			}

			for _, slot := range repository.ScheduledTimes {
				entry := day.Entries[slot]
				values := []interface{}{day.LogDate.Format("2006-01-02"), slot, "", "", "", "", "", "", verifiedBy, verifiedAt}
				if entry != nil {
					if entry.Temperature != nil {
						values[2] = *entry.Temperature
					}
					if entry.CorrectiveAction != nil {
						values[3] = *entry.CorrectiveAction
					}
					if entry.ActionTime != nil {
						values[4] = entry.ActionTime.Format("2006-01-02 15:04")
					}
					if entry.RecheckTemperature != nil {
						values[5] = *entry.RecheckTemperature
					}
					values[6] = entry.Initial
					values[7] = entry.IsLateEntry
				}

				for i, v := range values {
					cell, _ := excelize.CoordinatesToCellName(i+1, row)
					f.SetCellValue(sheet, cell, v)
				}
				if entryOutOfRange(day, slot) {
					cell, _ := excelize.CoordinatesToCellName(3, row)
					f.SetCellStyle(sheet, cell, cell, outOfRangeStyle)
				}
				row++
			}
		}
		f.DeleteSheet("Sheet1")

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=temperature_log_%s.xlsx", params.StartDate.Format("2006-01-02")))
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
}
