package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"campus-gigs/backend/config"
	"campus-gigs/backend/handlers"
	"campus-gigs/backend/logging"
	"campus-gigs/backend/repositories"
	"campus-gigs/backend/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()
	logging.Logger.Info("Starting campus-gigs backend...")

	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logging.Logger.Fatalf("Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Successfully connected to MongoDB at %s.", cfg.MongoURI)

	db := client.Database(cfg.MongoDBName)
	users := db.Collection("users")
	tasks := db.Collection("tasks")
	requests := db.Collection("direct_requests")
	messages := db.Collection("messages")
	reviews := db.Collection("reviews")

	notificationRepo, err := repositories.NewNotificationRepo(cfg.CassandraHost, logging.Logger)
	if err != nil {
		logging.Logger.Fatalf("Failed to initialize notification repository: %v", err)
	}
	defer notificationRepo.CloseSession()
	notificationRepo.CreateTables()

	notificationsBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "notifications-cb",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	notificationService := services.NewNotificationService(notificationRepo, notificationsBreaker)
	userService := services.NewUserService(users, cfg.AllowedEmailDomain)
	taskService := services.NewTaskService(tasks, users, notificationService)
	requestService := services.NewRequestService(requests, tasks, notificationService)
	chatService := services.NewChatService(messages, users)
	reviewService := services.NewReviewService(reviews, users)

	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	requestHandler := handlers.NewRequestHandler(requestService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	chatHandler := handlers.NewChatHandler(chatService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	r := mux.NewRouter()
	r.HandleFunc("/login", userHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/users/status", userHandler.UpdateStatus).Methods(http.MethodPut)
	r.HandleFunc("/search/helpers", userHandler.SearchHelpers).Methods(http.MethodGet)
	r.HandleFunc("/helpers", userHandler.ListHelpers).Methods(http.MethodGet)
	r.HandleFunc("/tasks", taskHandler.ListTasks).Methods(http.MethodGet)
	r.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{taskId}/complete", taskHandler.CompleteTask).Methods(http.MethodPut)
	r.HandleFunc("/direct-requests", requestHandler.CreateRequest).Methods(http.MethodPost)
	r.HandleFunc("/direct-requests/{id}/convert", requestHandler.ConvertRequest).Methods(http.MethodPost)
	r.HandleFunc("/reviews", reviewHandler.SubmitReview).Methods(http.MethodPost)
	r.HandleFunc("/messages", chatHandler.PostMessage).Methods(http.MethodPost)
	r.HandleFunc("/messages/{taskId}", chatHandler.ListMessages).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{userId}", notificationHandler.GetNotifications).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods(http.MethodPut)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Campus gigs backend is running"))
	}).Methods(http.MethodGet)

	corsRouter := enableCORS(r)

	serverAddress := fmt.Sprintf(":%s", cfg.Port)
	logging.Logger.Infof("Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Server failed to start: %v", err)
	}
}
