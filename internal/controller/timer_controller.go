package controller

import (
	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TimerController struct {
	Timer *service.FocusTimer
}

func NewTimerController(timer *service.FocusTimer) *TimerController {
	return &TimerController{Timer: timer}
}

// SetModeRequest 切换计时模式
// swagger:model SetModeRequest
type SetModeRequest struct {
	Mode service.TimerMode `json:"mode" binding:"required"`
}

// SetSubjectRequest 选择科目
// swagger:model SetSubjectRequest
type SetSubjectRequest struct {
	Subject string `json:"subject" binding:"required"`
}

// GetTimer godoc
// @Summary 获取计时器状态
// @Tags 专注计时
// @Produce json
// @Success 200 {object} util.Response{data=service.TimerState} "成功"
// @Router /api/timer [get]
func (c *TimerController) GetTimer(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"state":    c.Timer.State(),
		"subjects": service.TimerSubjects,
	})
}

// SetMode godoc
// @Summary 切换计时模式
// @Description stopwatch 或 pomodoro，运行中或还有未结算时间时不能切换
// @Tags 专注计时
// @Accept json
// @Produce json
// @Param request body SetModeRequest true "模式"
// @Success 200 {object} util.Response{data=service.TimerState} "成功"
// @Failure 400 {object} util.Response "模式无效"
// @Failure 409 {object} util.Response "计时器运行中或未结算"
// @Router /api/timer/mode [post]
func (c *TimerController) SetMode(ctx *gin.Context) {
	var req SetModeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	state, err := c.Timer.SetMode(req.Mode)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// SetSubject godoc
// @Summary 选择科目
// @Description 只能在计时器停止时修改
// @Tags 专注计时
// @Accept json
// @Produce json
// @Param request body SetSubjectRequest true "科目"
// @Success 200 {object} util.Response{data=service.TimerState} "成功"
// @Failure 400 {object} util.Response "科目无效"
// @Failure 409 {object} util.Response "计时器运行中"
// @Router /api/timer/subject [post]
func (c *TimerController) SetSubject(ctx *gin.Context) {
	var req SetSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	state, err := c.Timer.SetSubject(req.Subject)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// Toggle godoc
// @Summary 开始或暂停
// @Tags 专注计时
// @Produce json
// @Success 200 {object} util.Response{data=service.TimerState} "成功"
// @Router /api/timer/toggle [post]
func (c *TimerController) Toggle(ctx *gin.Context) {
	util.Success(ctx, c.Timer.Toggle(ctx.Request.Context()))
}

// Stop godoc
// @Summary 停止并结算
// @Description 秒表满 1 分钟按整分钟结算经验，番茄钟中途停止不结算
// @Tags 专注计时
// @Produce json
// @Success 200 {object} util.Response{data=service.StopResult} "成功"
// @Router /api/timer/stop [post]
func (c *TimerController) Stop(ctx *gin.Context) {
	res, err := c.Timer.Stop(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, res)
}
