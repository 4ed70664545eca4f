package util

import (
	"net/http"

	"ai_tutor_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// All handlers answer with the same envelope: {"success": true, ...} on
// success and {"success": false, "error": msg} with a non-2xx status on
// failure. The frontend relies on this shape.

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// SuccessFields merges extra top-level keys beside "success"; a few legacy
// endpoints (pretest creation, quiz submission) answer flat instead of under
// "data".
func SuccessFields(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func LogInternalError(c *gin.Context, op string, err error) {
	logger.Log.Error("internal server error",
		zap.String("op", op),
		zap.Error(err))
	Fail(c, http.StatusInternalServerError, err.Error())
}
