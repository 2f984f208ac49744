package handler

import (
	"net/http"

	"UAsync_Community/internal/repository/mysql"
	"UAsync_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	subs  *service.SubscriptionService
	feed  *service.FeedService
	users *service.UserService
}

type SubscribeMainGroupsReq struct {
	UserID       uint64   `json:"userId"`
	MainGroupIDs []uint64 `json:"mainGroupIds"`
}

type SubscribeSubgroupReq struct {
	UserID      uint64 `json:"userId"`
	SubgroupID  uint64 `json:"subgroupId"`
	MainGroupID uint64 `json:"mainGroupId"`
}

type UnsubscribeMainGroupReq struct {
	MainGroupID uint64 `json:"mainGroupId"`
}

type UnsubscribeSubgroupReq struct {
	SubGroupID uint64 `json:"subGroupId"`
}

type UpdateUserReq struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Birthday    string `json:"birthday"`
	Biography   string `json:"biography"`
}

func NewUserHandler(subs *service.SubscriptionService, feed *service.FeedService, users *service.UserService) *UserHandler {
	return &UserHandler{subs: subs, feed: feed, users: users}
}

// SubscribeMainGroups 批量加入主分组
func (h *UserHandler) SubscribeMainGroups(c *gin.Context) {
	var req SubscribeMainGroupsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidParams(c)
		return
	}
	if err := h.subs.SubscribeMainGroups(c.Request.Context(), req.UserID, req.MainGroupIDs); err != nil {
		writeError(c, err, "error while subscribing user to main groups")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user subscribed to main groups"})
}

func (h *UserHandler) SubscribeSubgroup(c *gin.Context) {
	var req SubscribeSubgroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidParams(c)
		return
	}
	if err := h.subs.SubscribeSubgroup(c.Request.Context(), req.UserID, req.SubgroupID, req.MainGroupID); err != nil {
		writeError(c, err, "error while subscribing user to subgroup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user subscribed to subgroup"})
}

// UnsubscribeMainGroup 退出主分组，连带退出其下的子分组
func (h *UserHandler) UnsubscribeMainGroup(c *gin.Context) {
	var req UnsubscribeMainGroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidParams(c)
		return
	}
	removed, err := h.subs.UnsubscribeMainGroup(c.Request.Context(), parseID(c.Param("userId")), req.MainGroupID)
	if err != nil {
		writeError(c, err, "failed to unsubscribe from main group")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "user unsubscribed from main group and subgroups",
		"removedSubgroups": removed,
	})
}

func (h *UserHandler) UnsubscribeSubgroup(c *gin.Context) {
	var req UnsubscribeSubgroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidParams(c)
		return
	}
	if err := h.subs.UnsubscribeSubgroup(c.Request.Context(), parseID(c.Param("userId")), req.SubGroupID); err != nil {
		writeError(c, err, "error while unsubscribing user from subgroup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user unsubscribed from subgroup"})
}

func (h *UserHandler) SubscribedGroups(c *gin.Context) {
	subs, err := h.subs.ListSubscriptions(c.Request.Context(), parseID(c.Param("userId")))
	if err != nil {
		writeError(c, err, "error while retrieving joined groups")
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Feed 用户订阅子分组的帖子流
func (h *UserHandler) Feed(c *gin.Context) {
	posts, err := h.feed.FetchFeed(c.Request.Context(), parseID(c.Param("userId")))
	if err != nil {
		writeError(c, err, "error while retrieving feed")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), parseID(c.Param("userId")))
	if err != nil {
		writeError(c, err, "error while retrieving user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidParams(c)
		return
	}
	err := h.users.UpdateUser(c.Request.Context(), parseID(c.Param("userId")), mysql.ProfileUpdate{
		Username:    req.Username,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Birthday:    req.Birthday,
		Biography:   req.Biography,
	})
	if err != nil {
		writeError(c, err, "error while updating user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated successfully"})
}
