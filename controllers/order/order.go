package orderControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/lvdark77/Online-Store/middleware"
	"github.com/lvdark77/Online-Store/models"
)

// GET /orders
func ListOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := middleware.CurrentSession(c).Users.Orders()

		if statusStr := c.Query("status"); statusStr != "" {
			status, err := models.ParseOrderStatus(statusStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			filtered := orders[:0]
			for _, o := range orders {
				if o.Status == status {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/export
func ExportOrdersToExcel() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := middleware.CurrentSession(c).Users.Orders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Date", "Status", "Items", "Total", "DeliveryFee",
			"DeliveryMethod", "DeliveryAddress", "TrackingNumber",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Date.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(string(o.Status))

			var lines []string
			for _, it := range o.Items {
				lines = append(lines, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.DeliveryFee)
			row.AddCell().SetValue(o.DeliveryMethod)
			addr := o.DeliveryAddress
			row.AddCell().SetValue(fmt.Sprintf("%s, %s, %s", addr.Street, addr.City, addr.PostalCode))
			row.AddCell().SetValue(o.TrackingNumber)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
