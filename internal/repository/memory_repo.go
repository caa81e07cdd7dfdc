package repository

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ogckw/my-expense-app/internal/model"
)

// MemoryExpenseRepo 纯内存实现，测试用，不需要真实的 Mongo
// id 同样用 ObjectID，保证两套实现对调用方的行为一致
type MemoryExpenseRepo struct {
	mu       sync.RWMutex
	expenses map[string]model.Expense
	order    []string // 保持插入顺序，模拟存储的自然顺序
}

func NewMemoryExpenseRepo() *MemoryExpenseRepo {
	return &MemoryExpenseRepo{expenses: make(map[string]model.Expense)}
}

func (r *MemoryExpenseRepo) Create(_ context.Context, expense *model.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	expense.ID = primitive.NewObjectID()
	key := expense.ID.Hex()
	r.expenses[key] = *expense
	r.order = append(r.order, key)
	return nil
}

func (r *MemoryExpenseRepo) List(_ context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Expense, 0)
	for _, key := range r.order {
		e, ok := r.expenses[key]
		if !ok {
			continue
		}
		if filter.Title != "" &&
			!strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.StartDate != nil && filter.EndDate != nil {
			// 两端闭区间
			if e.Date.Before(*filter.StartDate) || e.Date.After(*filter.EndDate) {
				continue
			}
		}
		result = append(result, e)
	}
	return result, nil
}

func (r *MemoryExpenseRepo) GetByID(_ context.Context, id string) (*model.Expense, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.expenses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (r *MemoryExpenseRepo) Replace(_ context.Context, id string, expense *model.Expense) (*model.Expense, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.expenses[id]; !ok {
		return nil, ErrNotFound
	}
	expense.ID = oid
	r.expenses[id] = *expense
	updated := *expense
	return &updated, nil
}

func (r *MemoryExpenseRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.expenses[id]; !ok {
		return ErrNotFound
	}
	delete(r.expenses, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
