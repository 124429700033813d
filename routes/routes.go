package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/woosuta/woosuta-backend/config"
	"github.com/woosuta/woosuta-backend/database"
	"github.com/woosuta/woosuta-backend/internal/instantevent"
	"github.com/woosuta/woosuta-backend/internal/message"
	"github.com/woosuta/woosuta-backend/internal/ownermember"
	"github.com/woosuta/woosuta-backend/internal/reports"
	"github.com/woosuta/woosuta-backend/middleware"
)

// Setup wires repositories, services and handlers and registers every
// route under /api/v1.
func Setup(router *gin.Engine, cfg *config.Config, db *database.Clients, redisClient *redis.Client) {
	memberRepo := ownermember.NewRepository(db.Firestore)
	memberSvc := ownermember.NewService(memberRepo)
	memberHandler := ownermember.NewHandler(memberSvc)

	eventRepo := instantevent.NewRepository(db.Firestore)
	eventSvc := instantevent.NewService(eventRepo)
	eventHandler := instantevent.NewHandler(eventSvc)

	messageRepo := message.NewRepository(db.Firestore)
	messageSvc := message.NewService(messageRepo)
	messageHandler := message.NewHandler(messageSvc)

	downloadHandler := reports.NewHandler(messageSvc, reports.NewExporter())

	authRequired := middleware.AuthRequired(db.Auth)
	optionalAuth := middleware.OptionalAuth(db.Auth)
	postLimiter := middleware.RateLimiter(redisClient, cfg.RateLimitPerMinute)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Organizer roster. Every route needs a signed-in caller; the
	// repository enforces the finer privileges.
	members := api.Group("/members", authRequired)
	{
		members.GET("", memberHandler.List)
		members.GET("/:uid", memberHandler.Find)
		members.POST("", memberHandler.Add)
		members.DELETE("/:uid", memberHandler.Remove)
		members.PUT("/:uid", memberHandler.Update)
		members.PUT("/:uid/privilege", memberHandler.UpdatePrivilege)
	}

	instants := api.Group("/instants")
	{
		// reads are public; the projection decides what each viewer sees
		instants.GET("", optionalAuth, eventHandler.FindAll)
		instants.GET("/:instantEventId", optionalAuth, eventHandler.Get)

		instants.POST("", authRequired, eventHandler.Create)
		instants.PUT("/:instantEventId", authRequired, eventHandler.Update)
		instants.PUT("/:instantEventId/lock", authRequired, eventHandler.Lock)
		instants.PUT("/:instantEventId/close", authRequired, eventHandler.Close)
		instants.PUT("/:instantEventId/reopen", authRequired, eventHandler.Reopen)
		instants.PUT("/:instantEventId/publish", authRequired, eventHandler.Publish)
		instants.PUT("/:instantEventId/unpublish", authRequired, eventHandler.Unpublish)
		instants.PUT("/:instantEventId/collectReply", authRequired, eventHandler.CollectReply)
		instants.PUT("/:instantEventId/closeSendMessage", authRequired, eventHandler.CloseSendMessage)

		// anonymous question box: no auth on purpose, rate limited instead
		instants.POST("/:instantEventId/messages", postLimiter, messageHandler.Post)
		instants.GET("/:instantEventId/messages", optionalAuth, messageHandler.List)
		instants.GET("/:instantEventId/messages/download", authRequired, downloadHandler.Download)
		instants.GET("/:instantEventId/messages/:messageId", optionalAuth, messageHandler.Info)

		instants.PUT("/:instantEventId/messages/:messageId", authRequired, messageHandler.UpdateBody)
		instants.DELETE("/:instantEventId/messages/:messageId", authRequired, messageHandler.Delete)
		instants.PUT("/:instantEventId/messages/:messageId/deny", authRequired, messageHandler.Deny)
		instants.PUT("/:instantEventId/messages/:messageId/sortWeight", authRequired, messageHandler.UpdateSortWeight)
		instants.PUT("/:instantEventId/messages/:messageId/pin", authRequired, messageHandler.Pin)
		instants.POST("/:instantEventId/messages/:messageId/vote", authRequired, messageHandler.Vote)
		instants.POST("/:instantEventId/messages/:messageId/reaction", authRequired, messageHandler.React)

		instants.POST("/:instantEventId/messages/:messageId/reply", authRequired, messageHandler.PostReply)
		instants.PUT("/:instantEventId/messages/:messageId/reply/:replyId/deny", authRequired, messageHandler.DenyReply)
		instants.DELETE("/:instantEventId/messages/:messageId/reply/:replyId", authRequired, messageHandler.DeleteReply)
	}
}
