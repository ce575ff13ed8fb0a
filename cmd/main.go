package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Nurlanbcg/quiz/config"
	"github.com/Nurlanbcg/quiz/database"
	adminctrl "github.com/Nurlanbcg/quiz/internal/controller/admin"
	userctrl "github.com/Nurlanbcg/quiz/internal/controller/user"
	"github.com/Nurlanbcg/quiz/internal/logger"
	"github.com/Nurlanbcg/quiz/internal/middleware"
	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/Nurlanbcg/quiz/internal/repository"
	"github.com/Nurlanbcg/quiz/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quiz Platform API
// @version 1.0
// @description API for quiz authoring, purchase, timed exam sessions and result review.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewPurchaseRepository,
			repository.NewResultRepository,
			repository.NewRegistrationRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTokenService,
			service.NewScoringService,
			service.NewSessionStore,
			service.NewAuthService,
			service.NewAdminQuizService,
			service.NewAdminUserService,
			service.NewStudentQuizService,
			service.NewExamService,
			service.NewResultService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminQuizController,
			adminctrl.NewAdminResultController,
			adminctrl.NewAdminUserController,
			userctrl.NewAuthController,
			userctrl.NewStudentQuizController,
			userctrl.NewExamController,
			userctrl.NewResultController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	adminQuizCtrl *adminctrl.AdminQuizController,
	adminResultCtrl *adminctrl.AdminResultController,
	adminUserCtrl *adminctrl.AdminUserController,
	authCtrl *userctrl.AuthController,
	quizCtrl *userctrl.StudentQuizController,
	examCtrl *userctrl.ExamController,
	resultCtrl *userctrl.ResultController,
) {
	api := router.Group("/api/v1")

	// Public auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	// Admin routes
	adminGroup := api.Group("/admin", middleware.RequireRoles(tokens, string(model.RoleAdmin)))
	{
		adminGroup.POST("/quizzes", adminQuizCtrl.CreateQuiz)
		adminGroup.GET("/quizzes", adminQuizCtrl.ListQuizzes)
		adminGroup.GET("/quizzes/:quiz_id", adminQuizCtrl.GetQuiz)
		adminGroup.DELETE("/quizzes/:quiz_id", adminQuizCtrl.DeleteQuiz)
		adminGroup.PATCH("/quizzes/:quiz_id/active", adminQuizCtrl.SetActive)

		adminGroup.GET("/results", adminResultCtrl.ListResults)

		adminGroup.GET("/users", adminUserCtrl.ListUsers)
		adminGroup.DELETE("/users/:user_id", adminUserCtrl.DeleteUser)
		adminGroup.GET("/registrations", adminUserCtrl.ListRegistrations)
	}

	// Authenticated student routes
	studentGroup := api.Group("", middleware.AuthMiddleware(tokens))
	{
		studentGroup.GET("/quizzes", quizCtrl.ListQuizzes)
		studentGroup.GET("/quizzes/:quiz_id", quizCtrl.GetQuiz)
		studentGroup.POST("/quizzes/:quiz_id/purchase", quizCtrl.PurchaseQuiz)

		studentGroup.POST("/quizzes/:quiz_id/start", examCtrl.StartExam)
		studentGroup.GET("/sessions/:session_id", examCtrl.GetSession)
		studentGroup.POST("/sessions/:session_id/answers", examCtrl.SelectAnswer)
		studentGroup.POST("/sessions/:session_id/navigate", examCtrl.Navigate)
		studentGroup.POST("/sessions/:session_id/submit", examCtrl.SubmitExam)
		studentGroup.DELETE("/sessions/:session_id", examCtrl.ForfeitExam)

		studentGroup.GET("/results/:result_id", resultCtrl.GetResult)
		studentGroup.GET("/my/results", resultCtrl.MyResults)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz platform API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.Purchase{},
		&model.QuizResult{},
		&model.RegistrationRequest{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
