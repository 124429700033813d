package ownermember

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/woosuta/woosuta-backend/internal/apierror"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func requesterUID(c *gin.Context) (string, bool) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return "", false
	}
	return uid, true
}

// GET /members
func (h *Handler) List(c *gin.Context) {
	uid, ok := requesterUID(c)
	if !ok {
		return
	}
	members, err := h.service.List(c.Request.Context(), uid)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GET /members/:uid
func (h *Handler) Find(c *gin.Context) {
	if _, ok := requesterUID(c); !ok {
		return
	}
	member, err := h.service.Find(c.Request.Context(), c.Param("uid"))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// POST /members
func (h *Handler) Add(c *gin.Context) {
	uid, ok := requesterUID(c)
	if !ok {
		return
	}
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Add(c.Request.Context(), uid, &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// DELETE /members/:uid
func (h *Handler) Remove(c *gin.Context) {
	uid, ok := requesterUID(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), uid, c.Param("uid")); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// PUT /members/:uid
func (h *Handler) Update(c *gin.Context) {
	uid, ok := requesterUID(c)
	if !ok {
		return
	}
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c.Request.Context(), uid, c.Param("uid"), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// PUT /members/:uid/privilege
func (h *Handler) UpdatePrivilege(c *gin.Context) {
	uid, ok := requesterUID(c)
	if !ok {
		return
	}
	var req UpdatePrivilegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdatePrivilege(c.Request.Context(), uid, c.Param("uid"), &req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}
