package handler

import (
	"net/http"

	"UAsync_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc       *service.EventService
	maxUpload int64
}

type DeleteEventReq struct {
	EventID uint64 `json:"eventId"`
	UserID  uint64 `json:"userId"`
}

func NewEventHandler(svc *service.EventService, maxUpload int64) *EventHandler {
	return &EventHandler{svc: svc, maxUpload: maxUpload}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	image, err := readImage(c, titleImageField, h.maxUpload)
	if err != nil {
		writeError(c, err, "error uploading file")
		return
	}

	eventID, err := h.svc.CreateEvent(c.Request.Context(), service.CreateEventInput{
		GroupID:    parseID(c.PostForm("groupId")),
		UserID:     parseID(c.PostForm("userId")),
		Text:       c.PostForm("text"),
		Date:       c.PostForm("date"),
		Time:       c.PostForm("time"),
		Location:   c.PostForm("location"),
		TitleImage: image,
	})
	if err != nil {
		writeError(c, err, "error while creating event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event created", "eventId": eventID})
}

// DeleteEvent 仅创建者可删除
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	var req DeleteEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidParams(c)
		return
	}
	n, err := h.svc.DeleteEvent(c.Request.Context(), req.EventID, req.UserID)
	if err != nil {
		writeError(c, err, "failed to delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"affectedRows": n})
}
