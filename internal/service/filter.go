package service

import (
	"math"

	"github.com/ogckw/my-expense-app/internal/repository"
)

// SearchParams 列表查询的原始参数，三个都可省略
type SearchParams struct {
	Title     string
	StartDate string
	EndDate   string
}

// maxRangeDays 日期范围搜索的最大宽度
const maxRangeDays = 30

// buildFilter 把查询参数翻译成仓储层的过滤条件，顺带做区间合法性校验
// 什么都不传就是全量查询
func buildFilter(params SearchParams) (repository.ExpenseFilter, *ValidationError) {
	filter := repository.ExpenseFilter{Title: params.Title}

	if params.StartDate == "" && params.EndDate == "" {
		return filter, nil
	}

	// 日期范围搜索必须同时给出两端
	if params.StartDate == "" || params.EndDate == "" {
		return repository.ExpenseFilter{}, ErrIncompleteRange
	}

	start, err := parseDate(params.StartDate)
	if err != nil {
		return repository.ExpenseFilter{}, ErrInvalidDate
	}
	end, err := parseDate(params.EndDate)
	if err != nil {
		return repository.ExpenseFilter{}, ErrInvalidDate
	}

	if start.After(end) {
		return repository.ExpenseFilter{}, ErrRangeInverted
	}

	// 宽度按绝对时间差除以 24 小时向上取整
	// 30 天整刚好通过，多 1 毫秒就算 31 天
	days := int(math.Ceil(end.Sub(start).Abs().Hours() / 24))
	if days > maxRangeDays {
		return repository.ExpenseFilter{}, ErrRangeTooWide
	}

	filter.StartDate = &start
	filter.EndDate = &end
	return filter, nil
}
