package util

import (
	"errors"
	"net/http"

	"studyquest_backend/internal/engine"
	"studyquest_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}

// HandleError 将业务错误映射为HTTP状态码，未知错误记录日志并返回500
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrItemNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, ErrTimerRunning), errors.Is(err, ErrTimerInProgress):
		Conflict(c, err.Error())
	case errors.Is(err, ErrSessionTooShort),
		errors.Is(err, ErrInvalidMode),
		errors.Is(err, ErrInvalidSubject),
		errors.Is(err, engine.ErrTaskTitleRequired),
		errors.Is(err, engine.ErrInvalidCategory),
		errors.Is(err, engine.ErrInvalidSlot):
		BadRequest(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}
