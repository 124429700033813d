package instantevent

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/woosuta/woosuta-backend/internal/apierror"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// POST /instants
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// PUT /instants/:instantEventId
func (h *Handler) Update(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.InstantEventID = c.Param("instantEventId")
	if err := h.service.Update(c.Request.Context(), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GET /instants/:instantEventId
func (h *Handler) Get(c *gin.Context) {
	ev, err := h.service.Get(c.Request.Context(), c.Param("instantEventId"))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// GET /instants
// Without page/size query params this returns every non-closed event,
// newest first. With them it returns a counter-based page.
func (h *Handler) FindAll(c *gin.Context) {
	pageParam := c.Query("page")
	sizeParam := c.Query("size")
	if pageParam == "" && sizeParam == "" {
		events, err := h.service.FindAll(c.Request.Context())
		if err != nil {
			apierror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
		return
	}
	page, err := strconv.Atoi(pageParam)
	if err != nil {
		page = 1
	}
	size, err := strconv.Atoi(sizeParam)
	if err != nil {
		size = 10
	}
	paged, err := h.service.FindAllWithPage(c.Request.Context(), page, size)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, paged)
}

func (h *Handler) lifecycle(c *gin.Context, fn func(string) error) {
	if err := fn(c.Param("instantEventId")); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// PUT /instants/:instantEventId/lock
func (h *Handler) Lock(c *gin.Context) {
	h.lifecycle(c, func(id string) error { return h.service.Lock(c.Request.Context(), id) })
}

// PUT /instants/:instantEventId/close
func (h *Handler) Close(c *gin.Context) {
	h.lifecycle(c, func(id string) error { return h.service.Close(c.Request.Context(), id) })
}

// PUT /instants/:instantEventId/reopen
func (h *Handler) Reopen(c *gin.Context) {
	h.lifecycle(c, func(id string) error { return h.service.Reopen(c.Request.Context(), id) })
}

// PUT /instants/:instantEventId/publish
func (h *Handler) Publish(c *gin.Context) {
	h.lifecycle(c, func(id string) error { return h.service.Publish(c.Request.Context(), id) })
}

// PUT /instants/:instantEventId/unpublish
func (h *Handler) Unpublish(c *gin.Context) {
	h.lifecycle(c, func(id string) error { return h.service.Unpublish(c.Request.Context(), id) })
}

// PUT /instants/:instantEventId/collectReply
func (h *Handler) CollectReply(c *gin.Context) {
	h.lifecycle(c, func(id string) error { return h.service.CollectReply(c.Request.Context(), id) })
}

// PUT /instants/:instantEventId/closeSendMessage
func (h *Handler) CloseSendMessage(c *gin.Context) {
	h.lifecycle(c, func(id string) error { return h.service.CloseSendMessage(c.Request.Context(), id) })
}
