package appErrors

import (
	"internhub_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError - обработка ошибок для Gin контекста
func HandleError(c *gin.Context, err *AppError) {
	// Внутренние ошибки логируем целиком, клиенту уходит только сообщение
	if err.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "Server error", "error", err.Error())
	}

	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
