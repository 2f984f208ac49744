package router

import (
	"UAsync_Community/internal/handler"
	"UAsync_Community/internal/middleware"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps 进程级资源，由 main 创建后注入
type Deps struct {
	DB             *gorm.DB
	Redis          *goredis.Client // 可为 nil
	Lock           service.Locker  // 可为 nil
	Images         pkg.ImageProcessor
	UploadMaxBytes int64
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	subs := service.NewSubscriptionService(d.DB)
	feed := service.NewFeedService(d.DB)
	users := service.NewUserService(d.DB, d.Images)

	user := handler.NewUserHandler(subs, feed, users)
	auth := handler.NewAuthHandler(users, d.UploadMaxBytes)
	subgroup := handler.NewSubgroupHandler(service.NewSubgroupService(d.DB, d.Lock), d.UploadMaxBytes)
	post := handler.NewPostHandler(service.NewPostService(d.DB, d.Images), d.UploadMaxBytes)
	event := handler.NewEventHandler(service.NewEventService(d.DB), d.UploadMaxBytes)
	mainGroup := handler.NewMainGroupHandler(service.NewMainGroupService(d.DB), d.UploadMaxBytes)
	health := handler.NewHealthHandler(d.DB, d.Redis)

	r.GET("/healthz", health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 注册登录
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/checkEmailExists", auth.CheckEmailExists)
	}

	// 用户、订阅和 feed
	userGroup := r.Group("/user")
	{
		userGroup.POST("/subscribe/maingroup", user.SubscribeMainGroups)
		userGroup.POST("/subscribe/subgroup", user.SubscribeSubgroup)
		userGroup.POST("/:userId/unsubscribe/maingroup", user.UnsubscribeMainGroup)
		userGroup.POST("/:userId/unsubscribe/subgroup", user.UnsubscribeSubgroup)
		userGroup.GET("/:userId/subscribed-groups", user.SubscribedGroups)
		userGroup.GET("/:userId/feed", user.Feed)
		userGroup.GET("/:userId", user.GetUser)
		userGroup.PUT("/:userId", user.UpdateUser)
	}

	// 主分组
	mainGroupGroup := r.Group("/maingroup")
	{
		mainGroupGroup.GET("", mainGroup.List)
		mainGroupGroup.POST("/:groupId/add-svg", mainGroup.AddImage)
	}

	// 子分组、帖子和活动
	subgroupGroup := r.Group("/subgroup")
	{
		subgroupGroup.POST("/add", subgroup.Create)
		subgroupGroup.GET("/:subgroupId/posts", subgroup.Posts)
		subgroupGroup.GET("/:subgroupId/events", subgroup.Events)
		subgroupGroup.DELETE("/:subgroupId/delete-from-joined", subgroup.DeleteFromJoined)
		subgroupGroup.DELETE("/:subgroupId/delete-posts", subgroup.DeletePosts)
		subgroupGroup.DELETE("/:subgroupId/delete", subgroup.Delete)

		subgroupGroup.POST("/posts/add", post.CreatePost)
		subgroupGroup.DELETE("/posts/:postId/delete", post.DeletePost)

		subgroupGroup.POST("/events/add", event.CreateEvent)
		subgroupGroup.DELETE("/events/delete", event.DeleteEvent)
	}

	return r
}
