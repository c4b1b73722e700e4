package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-accounts/controllers"
	"gin-accounts/infra"
	"gin-accounts/middlewares"
	"gin-accounts/models"
	"gin-accounts/repositories"
	"gin-accounts/services"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *infra.Config, mail services.IMailService, dispatcher services.IMailDispatcher) (*gin.Engine, error) {
	userRepository := repositories.NewUserRepository(db)
	passwordService := services.NewPasswordService()
	tokenService, err := services.NewTokenService(cfg.SecretKey, cfg.Algorithm, services.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(cfg, userRepository, passwordService, tokenService, mail, dispatcher)
	userService := services.NewUserService(userRepository, passwordService)
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)

	r := gin.New()
	r.Use(ginzap.Ginzap(zap.L(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(zap.L(), true))
	r.Use(cors.Default())

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "This is a simple account service for testing purposes!"})
	})

	userRouter := r.Group("/users")
	userRouter.POST("/signin", authController.Signup)
	userRouter.GET("/verify", authController.Verify)
	userRouter.POST("/login", authController.Login)
	userRouter.GET("/test", middlewares.AuthMiddleware(authService), authController.CurrentUser)
	userRouter.GET("/id/:id", userController.FindById)
	userRouter.PUT("/id/:id", userController.Update)
	userRouter.DELETE("/id/:id", userController.Delete)

	return r, nil
}

func main() {
	infra.Initialize()
	logger := infra.SetupLogger()
	defer logger.Sync()

	cfg, err := infra.LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	db := infra.SetupDB(cfg)
	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
			zap.L().Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	mailService, err := services.NewMailService(cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize mail service", zap.Error(err))
	}
	mailQueue := services.NewMailQueue(mailService)
	mailQueue.StartWorkerPool(2)

	r, err := setupRouter(db, cfg, mailService, mailQueue)
	if err != nil {
		zap.L().Fatal("Failed to set up router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zap.L().Info("Starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Drain queued verification mails before exiting.
	mailQueue.Stop()
	zap.L().Info("Server exited")
}
