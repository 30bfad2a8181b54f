package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"packflow/config"
	"packflow/models"

	"github.com/xuri/excelize/v2"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Daily production summary. Intended to run from cron after the last shift:
// it collects the day's stage output and delivery orders, writes an Excel
// workbook and mails it to the configured recipients.

type stageSummary struct {
	Stage     string
	Records   int64
	NetWeight float64
	Wastage   float64
}

func collectStageSummaries(db *gorm.DB, from, to time.Time) ([]stageSummary, error) {
	summaries := make([]stageSummary, 0, 3)

	type stageTable struct {
		name  string
		model interface{}
	}
	for _, st := range []stageTable{
		{"Slitting", &models.SlittingRecord{}},
		{"Printing", &models.PrintingRecord{}},
		{"Cutting", &models.CuttingRecord{}},
	} {
		var count int64
		if err := db.Model(st.model).Where("created_at BETWEEN ? AND ?", from, to).Count(&count).Error; err != nil {
			return nil, err
		}

		var weight, wastage float64
		if err := db.Model(st.model).Where("created_at BETWEEN ? AND ?", from, to).
			Select("COALESCE(SUM(total_net_weight), 0)").Scan(&weight).Error; err != nil {
			return nil, err
		}
		if err := db.Model(st.model).Where("created_at BETWEEN ? AND ?", from, to).
			Select("COALESCE(SUM(wastage), 0)").Scan(&wastage).Error; err != nil {
			return nil, err
		}

		summaries = append(summaries, stageSummary{
			Stage:     st.name,
			Records:   count,
			NetWeight: weight,
			Wastage:   wastage,
		})
	}
	return summaries, nil
}

func buildWorkbook(db *gorm.DB, from, to time.Time, path string) error {
	summaries, err := collectStageSummaries(db, from, to)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Stage")
	f.SetCellValue(sheet, "B1", "Records")
	f.SetCellValue(sheet, "C1", "Net Weight")
	f.SetCellValue(sheet, "D1", "Wastage")

	for i, s := range summaries {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), s.Stage)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), s.Records)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), s.NetWeight)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), s.Wastage)
	}

	var orders []models.SalesInfo
	if err := db.Where("created_at BETWEEN ? AND ?", from, to).Order("id").Find(&orders).Error; err != nil {
		return err
	}

	salesSheet := "Delivery Orders"
	if _, err := f.NewSheet(salesSheet); err != nil {
		return err
	}
	f.SetCellValue(salesSheet, "A1", "Order No")
	f.SetCellValue(salesSheet, "B1", "Customer ID")
	f.SetCellValue(salesSheet, "C1", "Total Amount")
	f.SetCellValue(salesSheet, "D1", "Total Weight")
	f.SetCellValue(salesSheet, "E1", "Total Bags")
	f.SetCellValue(salesSheet, "F1", "Status")

	for i, order := range orders {
		f.SetCellValue(salesSheet, fmt.Sprintf("A%d", i+2), order.OrderNo)
		f.SetCellValue(salesSheet, fmt.Sprintf("B%d", i+2), order.CustomerID)
		f.SetCellValue(salesSheet, fmt.Sprintf("C%d", i+2), order.TotalAmount)
		f.SetCellValue(salesSheet, fmt.Sprintf("D%d", i+2), order.TotalWeight)
		f.SetCellValue(salesSheet, fmt.Sprintf("E%d", i+2), order.TotalBags)
		f.SetCellValue(salesSheet, fmt.Sprintf("F%d", i+2), order.Status)
	}

	return f.SaveAs(path)
}

func sendSummaryEmail(toEmails []string, attachment string, day time.Time) error {
	subject := "Production summary " + day.Format("02-01-2006")
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Production summary for %s</h3>
				<p>The attached workbook lists the stage output and delivery orders of the day.</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, day.Format("02-01-2006"))

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	msg.Attach(attachment)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}

func main() {
	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	path := fmt.Sprintf("production_summary_%s.xlsx", now.Format("20060102"))
	if err := buildWorkbook(db, from, now, path); err != nil {
		log.Fatalf("Failed to build workbook: %v", err)
	}

	if len(config.ReportRecipients) == 0 {
		log.Println("No report recipients configured, workbook written to", path)
		return
	}

	if err := sendSummaryEmail(config.ReportRecipients, path, now); err != nil {
		log.Fatalf("Failed to send summary email: %v", err)
	}
	os.Remove(path)
	fmt.Println("Summary sent to", config.ReportRecipients)
}
