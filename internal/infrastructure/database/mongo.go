package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ogckw/my-expense-app/internal/model"
)

// NewMongoConnection 连接 Mongo 并准备索引，失败直接退出
func NewMongoConnection(uri, dbName string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Fatal: 无法连接数据库: %v", err)
	}
	// 启动时就确认连得上，不要等第一个请求才暴露问题
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Fatal: 数据库不可达: %v", err)
	}

	db := client.Database(dbName)

	// date 索引支撑范围查询，title 索引给模糊搜索兜底
	coll := db.Collection(model.Expense{}.CollectionName())
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "title", Value: 1}}},
	})
	if err != nil {
		log.Fatalf("Fatal: 创建索引失败: %v", err)
	}

	return db
}
