package controller

import (
	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProgressionService *service.ProgressionService
}

func NewProfileController(progressionService *service.ProgressionService) *ProfileController {
	return &ProfileController{ProgressionService: progressionService}
}

// StudySessionRequest 手动上报学习时长
// swagger:model StudySessionRequest
type StudySessionRequest struct {
	Minutes int    `json:"minutes" binding:"required"`
	Subject string `json:"subject"`
}

// GetProfile godoc
// @Summary 获取学习者档案
// @Description 等级、经验、金币、学习总时长和角色阶段
// @Tags 成长
// @Produce json
// @Success 200 {object} util.Response{data=model.UserProfile} "成功"
// @Router /api/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	util.Success(ctx, c.ProgressionService.GetProfile())
}

// RecordSession godoc
// @Summary 上报学习时长
// @Description 按每分钟 1 XP 结算经验，可能触发升级和角色进化
// @Tags 成长
// @Accept json
// @Produce json
// @Param request body StudySessionRequest true "学习时长"
// @Success 201 {object} util.Response{data=service.SessionOutcome} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/sessions [post]
func (c *ProfileController) RecordSession(ctx *gin.Context) {
	var req StudySessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.ProgressionService.FinishSession(ctx.Request.Context(), req.Minutes, req.Subject, util.SourceManual)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, outcome)
}
