package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// LoadConfig 读取配置文件
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config") // 配置文件名 (不带扩展名)
	viper.SetConfigType("yaml")   // 文件类型
	viper.AddConfigPath(".")      // 查找路径：根目录

	// 这一步是为了支持环境变量覆盖 (例如在 Docker 中)
	// 比如设置环境变量 FINANCE_MONGO_URI 可以覆盖 yaml 里的值
	viper.SetEnvPrefix("FINANCE")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", ":3000")
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "expense_tracker")

	if err := viper.ReadInConfig(); err != nil {
		// 本地开发可以完全靠默认值跑，配置文件不存在不算错
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &cfg, nil
}
