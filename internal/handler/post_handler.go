package handler

import (
	"net/http"

	"UAsync_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc       *service.PostService
	maxUpload int64
}

func NewPostHandler(svc *service.PostService, maxUpload int64) *PostHandler {
	return &PostHandler{svc: svc, maxUpload: maxUpload}
}

// CreatePost 创建帖子接口（multipart）
func (h *PostHandler) CreatePost(c *gin.Context) {
	image, err := readImage(c, titleImageField, h.maxUpload)
	if err != nil {
		writeError(c, err, "error uploading file")
		return
	}

	postID, err := h.svc.CreatePost(c.Request.Context(), service.CreatePostInput{
		GroupID:    parseID(c.PostForm("groupId")),
		UserID:     parseID(c.PostForm("userId")),
		Heading:    c.PostForm("heading"),
		Caption:    c.PostForm("caption"),
		Text:       c.PostForm("text"),
		TitleImage: image,
	})
	if err != nil {
		writeError(c, err, "error while creating post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post created", "postId": postID})
}

// DeletePost 删除帖子接口
func (h *PostHandler) DeletePost(c *gin.Context) {
	n, err := h.svc.DeletePost(c.Request.Context(), parseID(c.Param("postId")))
	if err != nil {
		writeError(c, err, "failed to delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"affectedRows": n})
}
