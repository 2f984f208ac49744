package handler

import (
	"net/http"

	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type MainGroupHandler struct {
	svc       *service.MainGroupService
	maxUpload int64
}

func NewMainGroupHandler(svc *service.MainGroupService, maxUpload int64) *MainGroupHandler {
	return &MainGroupHandler{svc: svc, maxUpload: maxUpload}
}

// List 主分组及其子分组
func (h *MainGroupHandler) List(c *gin.Context) {
	list, err := h.svc.ListWithSubgroups(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to fetch main groups")
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddImage 替换主分组标题图，字段名 image
func (h *MainGroupHandler) AddImage(c *gin.Context) {
	image, err := readImage(c, mainGroupField, h.maxUpload)
	if err != nil {
		writeError(c, err, "failed to upload file")
		return
	}
	if image == nil {
		writeError(c, pkg.ErrUpload, "failed to upload file")
		return
	}
	if err := h.svc.SetTitleImage(c.Request.Context(), parseID(c.Param("groupId")), image); err != nil {
		writeError(c, err, "failed to update image data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "image data added successfully"})
}
