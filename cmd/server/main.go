package main

import (
	"log"

	"github.com/crewstack/project-management-api/internal/config"
	"github.com/crewstack/project-management-api/internal/database"
	"github.com/crewstack/project-management-api/internal/handlers"
	"github.com/crewstack/project-management-api/internal/middleware"
	"github.com/crewstack/project-management-api/internal/repository"
	"github.com/crewstack/project-management-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)
	leaderboardService := services.NewLeaderboardService(taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService, leaderboardService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Management API is running",
		})
	})

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// User routes
	users := r.Group("/users")
	{
		users.POST("/create", userHandler.CreateUser)
		users.GET("/list", requireAuth, userHandler.ListUsers)
	}

	// Project routes (protected)
	projects := r.Group("/project")
	projects.Use(requireAuth)
	{
		projects.POST("/create", projectHandler.CreateProject)
		projects.GET("/list", projectHandler.ListProjects)
		projects.PUT("/update", projectHandler.UpdateProject)
		projects.PUT("/delete", projectHandler.DeleteProject)
		projects.PUT("/assign_worker", projectHandler.AssignWorkers)
		projects.PUT("/assign_admin", projectHandler.AssignAdmin)
		projects.PUT("/remove_worker", projectHandler.RemoveWorker)
	}

	// Task routes (protected)
	tasks := r.Group("/task")
	tasks.Use(requireAuth)
	{
		tasks.POST("/create", taskHandler.CreateTask)
		tasks.PUT("/update", taskHandler.UpdateTask)
		tasks.PUT("/status", taskHandler.SetTaskStatus)
		tasks.DELETE("/delete", taskHandler.DeleteTask)
		tasks.GET("/list", taskHandler.ListTasks)
		tasks.POST("/top-performers", taskHandler.TopPerformers)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
