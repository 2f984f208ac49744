package handler

import (
	"net/http"

	"UAsync_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users     *service.UserService
	maxUpload int64
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CheckEmailReq struct {
	Email string `json:"email"`
}

func NewAuthHandler(users *service.UserService, maxUpload int64) *AuthHandler {
	return &AuthHandler{users: users, maxUpload: maxUpload}
}

// Signup 注册接口（multipart，可带头像 profile_image）
func (h *AuthHandler) Signup(c *gin.Context) {
	image, err := readImage(c, profileImageField, h.maxUpload)
	if err != nil {
		writeError(c, err, "error uploading file")
		return
	}

	userID, err := h.users.Signup(c.Request.Context(), service.SignupInput{
		Email:        c.PostForm("email"),
		Name:         c.PostForm("name"),
		Username:     c.PostForm("username"),
		Password:     c.PostForm("password"),
		ProfileImage: image,
	})
	if err != nil {
		writeError(c, err, "error while creating user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user created", "userId": userID})
}

// Login 登录接口，失败时返回 {"error": "invalidEmail" | "invalidPassword"}
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidParams(c)
		return
	}
	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err, "failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "user": user})
}

func (h *AuthHandler) CheckEmailExists(c *gin.Context) {
	var req CheckEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidParams(c)
		return
	}
	exists, err := h.users.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err, "failed to check email")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
