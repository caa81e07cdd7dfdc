package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ogckw/my-expense-app/internal/model"
)

// ErrNotFound 表示记录不存在
// id 格式非法也归到这里：对调用方来说都是"没这条记录"
var ErrNotFound = errors.New("expense not found")

// ExpenseFilter 列表查询条件，零值表示不过滤
type ExpenseFilter struct {
	Title     string     // 标题模糊搜索，不区分大小写的子串匹配
	StartDate *time.Time // 日期范围，两端都是闭区间，要么都有要么都没有
	EndDate   *time.Time
}

// ExpenseRepo 定义接口 (为了以后方便 Mock)
type ExpenseRepo interface {
	Create(ctx context.Context, expense *model.Expense) error
	List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error)
	GetByID(ctx context.Context, id string) (*model.Expense, error)
	Replace(ctx context.Context, id string, expense *model.Expense) (*model.Expense, error)
	Delete(ctx context.Context, id string) error
}
