package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/woosuta/woosuta-backend/internal/apierror"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func requesterUID(c *gin.Context) string {
	return c.GetString("uid")
}

// Post handles POST /instants/:instantEventId/messages. Anonymous by
// design: no uid is read, nothing identifying is stored.
func (h *Handler) Post(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.BadRequest("메시지 본문이 올바르지 않습니다."))
		return
	}
	if err := h.service.Post(c.Request.Context(), c.Param("instantEventId"), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// List handles GET /instants/:instantEventId/messages. The projection
// depends on who asks; ?withUniqueVoter=true wraps the list with the
// distinct reaction-voter count and ?isPreview=true lets organizers see
// the public ranking before showAll.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	instantEventID := c.Param("instantEventId")
	uid := requesterUID(c)
	isPreview := c.Query("isPreview") == "true"
	if c.Query("withUniqueVoter") == "true" {
		result, err := h.service.ListWithUniqueVoter(ctx, instantEventID, uid, isPreview)
		if err != nil {
			apierror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}
	list, err := h.service.List(ctx, instantEventID, uid, isPreview)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Info handles GET /instants/:instantEventId/messages/:messageId.
func (h *Handler) Info(c *gin.Context) {
	view, err := h.service.Info(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), requesterUID(c))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Deny handles PUT /instants/:instantEventId/messages/:messageId/deny.
func (h *Handler) Deny(c *gin.Context) {
	var req DenyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.BadRequest("요청 본문이 올바르지 않습니다."))
		return
	}
	if err := h.service.Deny(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), requesterUID(c), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UpdateSortWeight handles PUT .../messages/:messageId/sortWeight.
func (h *Handler) UpdateSortWeight(c *gin.Context) {
	var req SortWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.BadRequest("요청 본문이 올바르지 않습니다."))
		return
	}
	if err := h.service.UpdateSortWeight(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UpdateBody handles PUT .../messages/:messageId.
func (h *Handler) UpdateBody(c *gin.Context) {
	var req UpdateBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.BadRequest("메시지 본문이 올바르지 않습니다."))
		return
	}
	if err := h.service.UpdateBody(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), requesterUID(c), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE .../messages/:messageId.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), requesterUID(c)); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Pin handles PUT .../messages/:messageId/pin. Toggles.
func (h *Handler) Pin(c *gin.Context) {
	if err := h.service.Pin(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), requesterUID(c)); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Vote handles POST .../messages/:messageId/vote (legacy binary vote).
func (h *Handler) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.BadRequest("요청 본문이 올바르지 않습니다."))
		return
	}
	if err := h.service.Vote(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), requesterUID(c), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// React handles POST .../messages/:messageId/reaction.
func (h *Handler) React(c *gin.Context) {
	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.BadRequest("요청 본문이 올바르지 않습니다."))
		return
	}
	if err := h.service.React(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), requesterUID(c), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// PostReply handles POST .../messages/:messageId/reply.
func (h *Handler) PostReply(c *gin.Context) {
	var req PostReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.BadRequest("댓글 본문이 올바르지 않습니다."))
		return
	}
	if err := h.service.PostReply(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), requesterUID(c), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// DenyReply handles PUT .../messages/:messageId/reply/:replyId/deny.
func (h *Handler) DenyReply(c *gin.Context) {
	var req DenyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.BadRequest("요청 본문이 올바르지 않습니다."))
		return
	}
	deny := true
	if req.Deny != nil {
		deny = *req.Deny
	}
	if err := h.service.DenyReply(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), c.Param("replyId"), requesterUID(c), deny); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteReply handles DELETE .../messages/:messageId/reply/:replyId.
func (h *Handler) DeleteReply(c *gin.Context) {
	if err := h.service.DeleteReply(c.Request.Context(), c.Param("instantEventId"), c.Param("messageId"), c.Param("replyId"), requesterUID(c)); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}
