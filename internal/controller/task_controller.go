package controller

import (
	"studyquest_backend/internal/model"
	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TaskController 处理待办事项相关的API请求
type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// CreateTaskRequest 新建待办请求
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	Title        string         `json:"title" binding:"required"`
	Subtitle     string         `json:"subtitle"`
	TargetAmount string         `json:"targetAmount"`
	Category     model.Category `json:"category"`
}

// ListTasks godoc
// @Summary 获取今日待办
// @Description 返回任务列表、按分类分组的结果和完成度
// @Tags 任务管理
// @Produce json
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"tasks":    c.TaskService.List(),
		"grouped":  c.TaskService.Grouped(),
		"progress": c.TaskService.Progress(),
	})
}

// CreateTask godoc
// @Summary 新建待办
// @Description 分类为空时默认为 Self
// @Tags 任务管理
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "待办内容"
// @Success 201 {object} util.Response{data=model.TaskItem} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	var req CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.TaskService.Add(ctx.Request.Context(), model.TaskDraft{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		TargetAmount: req.TargetAmount,
		Category:     req.Category,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

// CompleteTask godoc
// @Summary 完成待办
// @Description 首次完成奖励 10 金币，重复完成或任务不存在时 completed 为 false
// @Tags 任务管理
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response{data=service.CompleteResult} "成功"
// @Router /api/tasks/{id}/complete [post]
func (c *TaskController) CompleteTask(ctx *gin.Context) {
	res, err := c.TaskService.Complete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// RescheduleTask godoc
// @Summary 推迟到明天
// @Description 从今日列表中移除该任务，任务不存在时 removed 为 false
// @Tags 任务管理
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/tasks/{id}/reschedule [post]
func (c *TaskController) RescheduleTask(ctx *gin.Context) {
	removed, err := c.TaskService.Reschedule(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	data := gin.H{"removed": removed}
	if removed {
		data["message"] = "할 일이 내일로 미뤄졌습니다!"
	}
	util.Success(ctx, data)
}

// DeleteTask godoc
// @Summary 删除待办
// @Description 任务不存在时同样返回成功
// @Tags 任务管理
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	removed, err := c.TaskService.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"removed": removed})
}
