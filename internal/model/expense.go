package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense 是映射 expenses 集合的结构体
// _id 由持久层在创建时分配，之后不可变
type Expense struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Amount   float64            `bson:"amount" json:"amount"`
	Date     time.Time          `bson:"date" json:"date"`
	Category string             `bson:"category" json:"category"`
}

// CollectionName 强制指定集合名
func (Expense) CollectionName() string {
	return "expenses"
}
