package controller

import (
	"strconv"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TimetableController struct {
	TimetableService *service.TimetableService
}

func NewTimetableController(timetableService *service.TimetableService) *TimetableController {
	return &TimetableController{TimetableService: timetableService}
}

// UpdateSlotRequest 修改课表请求，subject 可以为空字符串
// swagger:model UpdateSlotRequest
type UpdateSlotRequest struct {
	Subject string `json:"subject"`
}

// GetTimetable godoc
// @Summary 获取课表
// @Description 周一到周五，每天 7 节
// @Tags 课表
// @Produce json
// @Success 200 {object} util.Response{data=model.TimeTable} "成功"
// @Router /api/timetable [get]
func (c *TimetableController) GetTimetable(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"days":      model.Weekdays,
		"timetable": c.TimetableService.Get(),
	})
}

// UpdateSlot godoc
// @Summary 修改一节课
// @Description period 从 0 开始
// @Tags 课表
// @Accept json
// @Produce json
// @Param day path string true "星期 (Mon-Fri)"
// @Param period path int true "节次 (0-6)"
// @Param request body UpdateSlotRequest true "科目"
// @Success 200 {object} util.Response{data=model.TimeTable} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/timetable/{day}/{period} [put]
func (c *TimetableController) UpdateSlot(ctx *gin.Context) {
	period, err := strconv.Atoi(ctx.Param("period"))
	if err != nil {
		util.BadRequest(ctx, "节次无效")
		return
	}

	var req UpdateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tt, err := c.TimetableService.UpdateSlot(ctx.Request.Context(), model.Weekday(ctx.Param("day")), period, req.Subject)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, tt)
}
