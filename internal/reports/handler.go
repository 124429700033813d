package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/woosuta/woosuta-backend/internal/apierror"
	"github.com/woosuta/woosuta-backend/internal/message"
)

// Handler serves the organizer-only message download. It leans on the
// message service for data and access control; only rendering lives
// here.
type Handler struct {
	messages message.Service
	exporter Exporter
}

func NewHandler(messages message.Service, exporter Exporter) *Handler {
	return &Handler{messages: messages, exporter: exporter}
}

// Download handles GET /instants/:instantEventId/messages/download.
// ?format= picks json, csv, xlsx or pdf; xlsx is the default.
func (h *Handler) Download(c *gin.Context) {
	instantEventID := c.Param("instantEventId")
	uid := c.GetString("uid")

	rows, err := h.messages.ListForDownload(c.Request.Context(), instantEventID, uid)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	format := c.Query("format")
	if format == FormatJSON {
		c.JSON(http.StatusOK, rows)
		return
	}

	data, filename, contentType, err := h.exporter.Export(format, instantEventID, rows)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
