package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/transactions/export — downloads the full transaction ledger
// as a spreadsheet for reconciliation.
func ExportTransactionsToExcel(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		txns, err := d.Transactions.FindAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Transactions")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "CustomerID", "VendorID", "OrderID", "OrderValue",
			"OfferUsed", "Status", "PaymentMode", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, t := range txns {
			row := sheet.AddRow()
			row.AddCell().SetValue(t.ID.Hex())
			row.AddCell().SetValue(t.CustomerID)
			row.AddCell().SetValue(t.VendorID)
			row.AddCell().SetValue(t.OrderID)
			row.AddCell().SetValue(t.OrderValue)
			row.AddCell().SetValue(t.OfferUsed)
			row.AddCell().SetValue(t.Status)
			row.AddCell().SetValue(t.PaymentMode)
			row.AddCell().SetValue(t.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=transactions.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
