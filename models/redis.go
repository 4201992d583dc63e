package models

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"furniture-shop/config"
)

var RedisClient *redis.Client

func InitRedis() {
	var opt *redis.Options
	if config.AppConfig.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(config.AppConfig.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running with in-memory storage only")
			return
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	_, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running with in-memory storage only")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
