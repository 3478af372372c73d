package controller

import (
	"time"

	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Hub       *service.NotificationHub
	startedAt time.Time
}

func NewHealthController(hub *service.NotificationHub) *HealthController {
	return &HealthController{Hub: hub, startedAt: time.Now()}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"uptime": time.Since(c.startedAt).Round(time.Second).String(),
		"components": gin.H{
			"notifications": gin.H{"subscribers": c.Hub.SubscriberCount()},
		},
	})
}
