package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ogckw/my-expense-app/internal/model"
)

// mongoExpenseRepo 实现
type mongoExpenseRepo struct {
	coll *mongo.Collection
}

// NewMongoExpenseRepo 构造函数
func NewMongoExpenseRepo(db *mongo.Database) ExpenseRepo {
	return &mongoExpenseRepo{coll: db.Collection(model.Expense{}.CollectionName())}
}

// Create 插入一条记录，_id 在这里分配并回填
func (r *mongoExpenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	expense.ID = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, expense)
	return err
}

// buildQuery 把 ExpenseFilter 翻译成 Mongo 查询条件
func buildQuery(filter ExpenseFilter) bson.M {
	query := bson.M{}
	if filter.Title != "" {
		// QuoteMeta 防止用户输入被当成正则元字符
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Title), Options: "i"}
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query["date"] = bson.M{"$gte": *filter.StartDate, "$lte": *filter.EndDate}
	}
	return query
}

// List 按条件查询，不分页，顺序跟随存储的自然顺序
func (r *mongoExpenseRepo) List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	cursor, err := r.coll.Find(ctx, buildQuery(filter))
	if err != nil {
		return nil, err
	}
	// 空结果也要返回 []，不能是 null，前端直接 map 渲染
	expenses := make([]model.Expense, 0)
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *mongoExpenseRepo) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var expense model.Expense
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&expense)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Replace 整条覆盖，返回覆盖后的状态
func (r *mongoExpenseRepo) Replace(ctx context.Context, id string, expense *model.Expense) (*model.Expense, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	expense.ID = oid

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated model.Expense
	err = r.coll.FindOneAndReplace(ctx, bson.M{"_id": oid}, expense, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoExpenseRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
