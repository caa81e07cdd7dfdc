package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogckw/my-expense-app/internal/api/response"
	"github.com/ogckw/my-expense-app/internal/service"
)

type ExpenseController struct {
	service *service.ExpenseService // 依赖 Service
}

// NewExpenseController 构造函数
func NewExpenseController(s *service.ExpenseService) *ExpenseController {
	return &ExpenseController{service: s}
}

// ExpenseRequest 定义前端传来的 JSON 参数结构
// 只有 title 标 required：amount 为 0、category/date 为空串都要留给
// service 层的规则去拒绝，错误文案才是约定的那几句
type ExpenseRequest struct {
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

func (req ExpenseRequest) toInput() service.ExpenseInput {
	return service.ExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Date:     req.Date,
		Category: req.Category,
	}
}

// Create 处理 POST /expenses
func (ctrl *ExpenseController) Create(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数格式错误: "+err.Error())
		return
	}

	expense, err := ctrl.service.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListRequest 列表请求参数，query string 里三个都可省略
type ListRequest struct {
	Title     string `form:"title"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// List 处理 GET /expenses，支持标题模糊搜索和日期范围
func (ctrl *ExpenseController) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "参数格式错误: "+err.Error())
		return
	}

	expenses, err := ctrl.service.List(c.Request.Context(), service.SearchParams{
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetByID 处理 GET /expenses/:id
func (ctrl *ExpenseController) GetByID(c *gin.Context) {
	expense, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Update 处理 PUT /expenses/:id，整条覆盖
func (ctrl *ExpenseController) Update(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数格式错误: "+err.Error())
		return
	}

	expense, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Delete 处理 DELETE /expenses/:id，成功时 204 无响应体
func (ctrl *ExpenseController) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
