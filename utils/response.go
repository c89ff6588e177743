package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondData sends the standard success envelope.
func RespondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// RespondError sends the standard failure envelope. Business failures stay
// HTTP 200; only auth paths return protocol-level statuses.
func RespondError(c *gin.Context, err error) {
	Logger := GetLogger()
	Logger.Warn("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
}

// RespondMessage sends a non-error refusal, e.g. a duplicate booking.
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}
