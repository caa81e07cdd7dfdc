package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ogckw/my-expense-app/internal/model"
	"github.com/ogckw/my-expense-app/internal/repository"
)

// ExpenseInput 是前端传来的原始参数 (DTO)
// Date 保持字符串，解析和校验都收口在 service 层
type ExpenseInput struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

// ExpenseService 编排业务规则和持久化
type ExpenseService struct {
	repo repository.ExpenseRepo
}

// NewExpenseService 构造函数 (依赖注入)
func NewExpenseService(repo repository.ExpenseRepo) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Create 校验通过后落库，返回带 id 的完整记录
func (s *ExpenseService) Create(ctx context.Context, in ExpenseInput) (*model.Expense, error) {
	date, verr := validateExpense(in, modeCreate, time.Now())
	if verr != nil {
		return nil, verr
	}

	expense := &model.Expense{
		Title:    in.Title,
		Amount:   in.Amount,
		Date:     date,
		Category: in.Category,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("保存支出记录失败: %w", err)
	}

	slog.Info("支出记录已创建", "id", expense.ID.Hex(), "amount", expense.Amount, "category", expense.Category)
	return expense, nil
}

// List 按标题模糊搜索 + 日期范围过滤，不分页
func (s *ExpenseService) List(ctx context.Context, params SearchParams) ([]model.Expense, error) {
	filter, verr := buildFilter(params)
	if verr != nil {
		return nil, verr
	}

	expenses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询支出记录失败: %w", err)
	}
	return expenses, nil
}

func (s *ExpenseService) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("查询支出记录失败: %w", err)
	}
	return expense, nil
}

// Update 整条覆盖：四个字段全部以新值为准，没有部分更新
func (s *ExpenseService) Update(ctx context.Context, id string, in ExpenseInput) (*model.Expense, error) {
	date, verr := validateExpense(in, modeUpdate, time.Now())
	if verr != nil {
		return nil, verr
	}

	expense := &model.Expense{
		Title:    in.Title,
		Amount:   in.Amount,
		Date:     date,
		Category: in.Category,
	}
	updated, err := s.repo.Replace(ctx, id, expense)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("更新支出记录失败: %w", err)
	}

	slog.Info("支出记录已更新", "id", id)
	return updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("删除支出记录失败: %w", err)
	}

	slog.Info("支出记录已删除", "id", id)
	return nil
}
