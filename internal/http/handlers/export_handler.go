// README: Packing-list downloads and booking-link QR codes.
package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourweaver/internal/export"
)

type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

type packingListReq struct {
	Location string   `json:"location" form:"location"`
	Items    []string `json:"items" form:"items"`
}

// PackingList handles POST /api/packing-list/export?format=txt|pdf. It accepts
// a JSON body or the result page's form.
func (h *ExportHandler) PackingList(c *gin.Context) {
	var req packingListReq
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid body")
		return
	}
	if len(req.Items) == 0 {
		writeError(c, http.StatusBadRequest, "no items to export")
		return
	}

	title := "Packing list"
	if req.Location != "" {
		title += ": " + req.Location
	}

	switch format := c.DefaultQuery("format", "txt"); format {
	case "txt":
		c.Header("Content-Disposition", `attachment; filename="`+export.Filename(req.Location, "txt")+`"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", export.PackingListText(req.Items))
	case "pdf":
		var buf bytes.Buffer
		if err := export.PackingListPDF(&buf, title, req.Items); err != nil {
			_ = c.Error(err)
			writeError(c, http.StatusInternalServerError, "internal error")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+export.Filename(req.Location, "pdf")+`"`)
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	default:
		writeError(c, http.StatusBadRequest, "format must be txt or pdf")
	}
}

// BookingQR handles GET /api/booking/qr?url=&size=.
func (h *ExportHandler) BookingQR(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	png, err := export.BookingQR(c.Query("url"), size)
	if err != nil {
		if errors.Is(err, export.ErrInvalidBookingURL) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
