package handler

import (
	"encoding/csv"
	"fmt"
	"time"

	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"分类", "金额(元)", "订单名称", "消费时间"}

func (h *BillHandler) exportRows(c *gin.Context) ([][]string, bool) {
	actor, ok := currentActor(c)
	if !ok {
		return nil, false
	}
	bills, err := h.bills.All(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err, billListPath)
		return nil, false
	}
	loc := h.bills.Location()
	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		category := ""
		if b.Category != nil {
			category = b.Category.Name
		}
		rows = append(rows, []string{
			category,
			b.Amount,
			b.OrderName,
			b.SpendingTime.In(loc).Format(util.DateTimeLayout),
		})
	}
	return rows, true
}

// ExportCSV 导出账单为 CSV
func (h *BillHandler) ExportCSV(c *gin.Context) {
	rows, ok := h.exportRows(c)
	if !ok {
		return
	}

	// 设置响应头
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"bills_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM（让 Excel 正确识别中文）
	_, _ = c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write(exportHeaders)
	_ = writer.WriteAll(rows)
	if err := writer.Error(); err != nil {
		logrus.WithError(err).Warn("write csv export")
	}
}

// ExportXLSX 导出账单为 XLSX
func (h *BillHandler) ExportXLSX(c *gin.Context) {
	rows, ok := h.exportRows(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheetName := "账单明细"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		writeError(c, service.NewInternalError("创建工作表失败"), billListPath)
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	// 设置表头
	for i, title := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, title)
	}

	// 写入数据
	for r, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	// 设置列宽
	_ = f.SetColWidth(sheetName, "A", "A", 15)
	_ = f.SetColWidth(sheetName, "B", "B", 12)
	_ = f.SetColWidth(sheetName, "C", "C", 30)
	_ = f.SetColWidth(sheetName, "D", "D", 20)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"bills_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		logrus.WithError(err).Error("write xlsx export")
	}
}
