package handler

import (
	"errors"
	"net/http"

	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type SubgroupHandler struct {
	svc       *service.SubgroupService
	maxUpload int64
}

func NewSubgroupHandler(svc *service.SubgroupService, maxUpload int64) *SubgroupHandler {
	return &SubgroupHandler{svc: svc, maxUpload: maxUpload}
}

// Create 创建子分组；重名返回 400
func (h *SubgroupHandler) Create(c *gin.Context) {
	image, err := readImage(c, titleImageField, h.maxUpload)
	if err != nil {
		writeError(c, err, "error uploading file")
		return
	}

	groupID, err := h.svc.Create(c.Request.Context(), service.CreateSubgroupInput{
		UserID:       parseID(c.PostForm("userId")),
		MainGroupID:  parseID(c.PostForm("mainGroupId")),
		Name:         c.PostForm("name"),
		Caption:      c.PostForm("caption"),
		Introduction: c.PostForm("introduction"),
		TitleImage:   image,
	})
	if errors.Is(err, pkg.ErrConflict) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		writeError(c, err, "error while creating subgroup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subgroup created", "groupId": groupID})
}

func (h *SubgroupHandler) Posts(c *gin.Context) {
	list, err := h.svc.ListPosts(c.Request.Context(), parseID(c.Param("subgroupId")))
	if err != nil {
		writeError(c, err, "failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SubgroupHandler) Events(c *gin.Context) {
	list, err := h.svc.ListEvents(c.Request.Context(), parseID(c.Param("subgroupId")))
	if err != nil {
		writeError(c, err, "failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SubgroupHandler) DeleteFromJoined(c *gin.Context) {
	n, err := h.svc.RemoveFromJoined(c.Request.Context(), parseID(c.Param("subgroupId")))
	if err != nil {
		writeError(c, err, "failed to delete subgroup subscriptions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"affectedRows": n})
}

func (h *SubgroupHandler) DeletePosts(c *gin.Context) {
	n, err := h.svc.DeletePosts(c.Request.Context(), parseID(c.Param("subgroupId")))
	if err != nil {
		writeError(c, err, "failed to delete subgroup posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"affectedRows": n})
}

func (h *SubgroupHandler) Delete(c *gin.Context) {
	n, err := h.svc.Delete(c.Request.Context(), parseID(c.Param("subgroupId")))
	if err != nil {
		writeError(c, err, "failed to delete subgroup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"affectedRows": n})
}
