package service

import (
	"time"

	"github.com/ogckw/my-expense-app/internal/model"
)

// validateMode 区分创建和更新两条校验路径
// 更新不检查"一年以前"：历史账单改个错别字不应该被时间规则卡住
type validateMode int

const (
	modeCreate validateMode = iota
	modeUpdate
)

// parseDate 接受 RFC 3339 和 2006-01-02 两种写法
// 网页表单的 date input 只会给后一种，API 调用方多半用前一种
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// truncateToDay 截断到当天零点，忽略时分秒
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// validateExpense 按固定顺序执行校验规则，第一条失败即返回
// 纯函数：now 由调用方传入，测试可以钉死时钟
func validateExpense(in ExpenseInput, mode validateMode, now time.Time) (time.Time, *ValidationError) {
	if in.Amount < 0 {
		return time.Time{}, ErrNegativeAmount
	}
	if !model.IsValidCategory(in.Category) {
		return time.Time{}, ErrInvalidCategory
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	// 往前最多 365 天，按完整时间戳比较，只在创建时检查
	if mode == modeCreate && date.Before(now.AddDate(0, 0, -365)) {
		return time.Time{}, ErrDateTooOld
	}

	// 不能是未来，但可以是今天：两边都截断到零点再比较
	if truncateToDay(date).After(truncateToDay(now)) {
		return time.Time{}, ErrDateInFuture
	}

	return date, nil
}
