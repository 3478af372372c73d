package controller

import (
	"studyquest_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Hub *service.NotificationHub
}

func NewNotificationController(hub *service.NotificationHub) *NotificationController {
	return &NotificationController{Hub: hub}
}

// @Summary WebSocket 连接
// @Description 建立 WebSocket 连接以接收经验、升级、进化、金币和购买通知
// @Tags 通知
// @Success 101 {string} string "Switching Protocols"
// @Router /api/notifications/ws [get]
func (ctrl *NotificationController) HandleWS(c *gin.Context) {
	service.ServeWs(ctrl.Hub, c.Writer, c.Request)
}
