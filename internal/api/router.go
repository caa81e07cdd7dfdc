package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ogckw/my-expense-app/internal/api/controller"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, expenseCtrl *controller.ExpenseController) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 静态页面：记账表单
	r.StaticFile("/", "./public/index.html")
	r.Static("/js", "./public/js")
	r.Static("/css", "./public/css")

	r.POST("/expenses", expenseCtrl.Create)
	r.GET("/expenses", expenseCtrl.List)
	r.GET("/expenses/:id", expenseCtrl.GetByID)
	r.PUT("/expenses/:id", expenseCtrl.Update)
	r.DELETE("/expenses/:id", expenseCtrl.Delete)
}
