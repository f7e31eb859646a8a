package main

import (
	"context"
	"log"

	"CommentCase/config"
	"CommentCase/core"
	"CommentCase/global"
	"CommentCase/repositories"
	"CommentCase/routes"
	"CommentCase/services"
	"CommentCase/utils/redislog"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1) config file + env
	cfg := config.Load()
	log.Printf("[boot] %s %s starting in %s on :%s (store=%s)", cfg.AppName, global.AppVersion, cfg.Env, cfg.HTTPPort, cfg.CommentStore)

	// 2) redis: list cache + structured log sink (optional)
	rdb, err := config.InitRedis(cfg)
	if err != nil {
		log.Fatalf("[redis] %v", err)
	}
	if rdb == nil {
		log.Printf("[redis] disabled: no cache, no redis logs")
	}
	rlog := redislog.New(rdb, cfg.LogKey, cfg.LogMax, cfg.LogTTL)
	rlog.Info("app boot", map[string]string{"env": cfg.Env, "port": cfg.HTTPPort, "store": cfg.CommentStore})

	// 3) comment store
	repo, err := openCommentStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[store] %v", err)
	}

	// 4) services + converter
	commentSvc := services.NewCommentService(repo, rdb, rlog, cfg.CacheDuration)
	conv := core.NewConverter(rlog.With("case"))

	// 5) gin engine + routes
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none
	routes.Setup(r, routes.Deps{
		Comments:  commentSvc,
		Converter: conv,
		Logs:      rlog,
		JWTSecret: cfg.JWTSecret,
	})

	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}

// openCommentStore builds the repository selected by comment_store.
func openCommentStore(ctx context.Context, cfg *config.Config) (repositories.CommentRepository, error) {
	switch cfg.CommentStore {
	case "sql":
		db, err := config.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[db] %s ready", cfg.DBDriver)
		return repositories.NewSQLCommentRepository(db), nil
	default:
		client, err := config.InitMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[mongo] connected: db=%s collection=%s", cfg.MongoDatabase, cfg.MongoCollection)
		return repositories.NewMongoCommentRepository(ctx, repositories.MongoOptions{
			Client:     client,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
			Timeout:    cfg.MongoOpTimeout,
		})
	}
}
