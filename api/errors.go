package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/api/openapi"
)

// handleErrors 記錄 handler 回傳的錯誤，回應還沒有寫入內容時補上錯誤訊息。
// strict handler 回傳 error 時只會設定 500，內部錯誤的細節只寫入日誌
func handleErrors(c *gin.Context) {
	c.Next()
	if len(c.Errors) == 0 {
		return
	}
	err := c.Errors.Last().Err
	status := c.Writer.Status()
	if status >= http.StatusInternalServerError {
		slog.Error("Internal server error", slog.String("op", c.FullPath()), slog.Any("error", err))
		if !c.Writer.Written() {
			c.JSON(status, openapi.Error{Message: "internal server error"})
		}
		return
	}
	if c.Writer.Written() {
		slog.Warn("Fail to write response", slog.String("op", c.FullPath()), slog.Any("error", err))
		return
	}
	// 請求內容無法解析時產生的程式碼不一定會設定狀態碼
	if status < http.StatusBadRequest {
		status = http.StatusBadRequest
	}
	c.JSON(status, openapi.Error{Message: err.Error()})
}

// handleParamError 處理路徑與查詢參數的格式錯誤
func handleParamError(c *gin.Context, err error, statusCode int) {
	c.JSON(statusCode, openapi.Error{Message: err.Error()})
}

// getOpenAPI 回傳內嵌在程式中的 API 文件
func getOpenAPI(c *gin.Context) {
	swagger, err := openapi.GetSwagger()
	if err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, swagger)
}
