package orders

import (
	"bytes"
	"fmt"
	"net/http"

	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GET /api/orders/:orderid/invoice  (owner or admin)
func (s *OrderService) PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	order, err := getOrderByID(ctx, ps.ByName("orderid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if !utils.IsAdmin(r) && order.UserID != utils.GetUserIDFromRequest(r) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized")
		return
	}

	qrPNG, err := qrcode.Encode("order:"+order.OrderID, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Mfrida Fragrance - Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order ID: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s / payment %s", order.OrderStatus, order.PaymentStatus))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(90, 8, "Item")
	pdf.Cell(20, 8, "Qty")
	pdf.Cell(35, 8, "Unit Price")
	pdf.Cell(35, 8, "Line Total")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		pdf.Cell(90, 7, item.ProductName)
		pdf.Cell(20, 7, fmt.Sprintf("%d", item.Quantity))
		pdf.Cell(35, 7, fmt.Sprintf("%.2f", item.FinalPrice))
		pdf.Cell(35, 7, fmt.Sprintf("%.2f", item.FinalPrice*float64(item.Quantity)))
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Subtotal: %.2f", order.Subtotal))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Discount: %.2f", order.Discount))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f INR", order.Total))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 155, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
