package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogckw/my-expense-app/internal/repository"
	"github.com/ogckw/my-expense-app/internal/service"
)

// Error 把业务错误翻译成状态码
// 错误信息以纯文本返回：前端只看状态码，测试会比对文本
func Error(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.String(http.StatusBadRequest, verr.Message)
	case errors.Is(err, repository.ErrNotFound):
		c.String(http.StatusNotFound, "Expense not found.")
	default:
		// 存储层错误不重试，带上下文写日志后原样抛给调用方
		slog.Error("请求处理失败", "path", c.Request.URL.Path, "error", err)
		c.String(http.StatusInternalServerError, err.Error())
	}
}

// BadRequest 参数绑定失败时用，同样是纯文本
func BadRequest(c *gin.Context, msg string) {
	c.String(http.StatusBadRequest, msg)
}
