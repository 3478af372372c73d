package controller

import (
	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService  *service.DashboardService
	StatisticsService *service.StatisticsService
}

func NewDashboardController(dashboardService *service.DashboardService, statisticsService *service.StatisticsService) *DashboardController {
	return &DashboardController{
		DashboardService:  dashboardService,
		StatisticsService: statisticsService,
	}
}

// GetDashboard godoc
// @Summary 获取首页数据
// @Description 档案、今日任务进度、每日目标和 D-day
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response{data=service.Dashboard} "成功"
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.GetDashboard())
}

// GetStatistics godoc
// @Summary 获取学习统计
// @Description 本周每日专注时间、科目分布和最近的学习记录
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response{data=service.Statistics} "成功"
// @Router /api/statistics [get]
func (c *DashboardController) GetStatistics(ctx *gin.Context) {
	util.Success(ctx, c.StatisticsService.GetStatistics())
}
