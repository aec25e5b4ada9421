package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopapp/internal/config"
	"shopapp/internal/domain/model"
	"shopapp/internal/handler"
	"shopapp/internal/infra/db"
	infraRepo "shopapp/internal/infra/repository"
	"shopapp/internal/infra/storage"
	"shopapp/internal/server"
	"shopapp/internal/token"
	"shopapp/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	// DB接続
	gormDB, err := db.Connect(cfg.DSN())
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.Order{},
		&model.OrderDetail{},
	); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	// Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	imageRepo := infraRepo.NewProductImageGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	detailRepo := infraRepo.NewOrderDetailGormRepository(gormDB)

	// ロールのシード
	ctx := context.Background()
	for _, name := range []string{model.RoleUser, model.RoleAdmin} {
		if err := roleRepo.EnsureExists(ctx, name); err != nil {
			logger.Fatal("role seed failed", zap.String("role", name), zap.Error(err))
		}
	}

	// トークンサービスとファイル保存
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpires)
	store := storage.NewLocalStore(cfg.UploadDir)

	// Usecase生成
	clock := &realClock{}
	userUC := usecase.NewUserUsecase(userRepo, roleRepo, tokens)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, imageRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, userRepo, clock)
	detailUC := usecase.NewOrderDetailUsecase(detailRepo, orderRepo, productRepo)

	// Handler生成
	srv := server.New(cfg, logger, tokens, userRepo,
		handler.NewUserHandler(userUC),
		handler.NewCategoryHandler(categoryUC),
		handler.NewProductHandler(productUC, store),
		handler.NewOrderHandler(orderUC),
		handler.NewOrderDetailHandler(detailUC),
	)

	// Server起動
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.Start(); err != nil {
			logger.Info("server stopped", zap.Error(err))
		}
	}()

	// SIGINT/SIGTERMで止める
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server shut down")
}
