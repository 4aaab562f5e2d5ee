package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/civilconsult/backend/internal/handler"
	"github.com/civilconsult/backend/internal/logging"
	"github.com/civilconsult/backend/internal/mailer"
	"github.com/civilconsult/backend/internal/repository"
	"github.com/civilconsult/backend/internal/service"
	"github.com/civilconsult/backend/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data.db"
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "dev-secret-change-in-production-32bytes"
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			smtpPort = n
		}
	}

	ctx := context.Background()
	db, err := repository.Open(ctx, dbPath)
	if err != nil {
		logging.Fatal("failed to open database", "path", dbPath, "error", err)
	}
	defer db.Close()

	consultationRepo := repository.NewSQLiteConsultationRepository(db)
	contactRepo := repository.NewSQLiteContactRepository(db)
	emailLogRepo := repository.NewSQLiteEmailLogRepository(db)

	mailCfg := mailer.Config{
		Host:       smtpHost,
		Port:       smtpPort,
		User:       os.Getenv("EMAIL_USER"),
		Password:   os.Getenv("EMAIL_PASSWORD"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
	}
	mail := mailer.New(mailCfg, emailLogRepo, nil)

	consultationService := service.NewConsultationService(consultationRepo, mail)
	contactService := service.NewContactService(contactRepo, mail)

	authRequired := os.Getenv("AUTH_REQUIRED") == "true"
	sessionSecretBytes := auth.SessionSecretBytes(sessionSecret)

	h := handler.New(frontendURL)
	slotsHandler := handler.NewSlotsHandler()
	consultationHandler := handler.NewConsultationHandler(consultationService)
	contactHandler := handler.NewContactHandler(contactService)
	authHandler := handler.NewAuthHandler(handler.AuthConfig{
		Password:      os.Getenv("ADMIN_PASSWORD"),
		PasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionSecret: sessionSecretBytes,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Health)
	mux.HandleFunc("GET /api/slots", slotsHandler.List)
	mux.HandleFunc("POST /api/consultation", consultationHandler.Submit)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/admin/login", authHandler.Login)
	mux.HandleFunc("POST /api/admin/logout", authHandler.Logout)

	// Admin endpoints require a session when AUTH_REQUIRED=true
	wrapAuth := func(next http.Handler) http.Handler {
		if authRequired {
			return auth.RequireAuth(sessionSecretBytes)(next)
		}
		return auth.DevAuth(next)
	}
	mux.Handle("GET /api/admin/consultations", wrapAuth(http.HandlerFunc(consultationHandler.AdminList)))
	mux.Handle("GET /api/admin/consultations/export", wrapAuth(http.HandlerFunc(consultationHandler.Export)))
	mux.Handle("PATCH /api/admin/consultations/{id}", wrapAuth(http.HandlerFunc(consultationHandler.UpdateStatus)))
	mux.Handle("GET /api/admin/contacts", wrapAuth(http.HandlerFunc(contactHandler.AdminList)))
	mux.Handle("GET /api/admin/contacts/export", wrapAuth(http.HandlerFunc(contactHandler.Export)))
	mux.Handle("PATCH /api/admin/contacts/{id}", wrapAuth(http.HandlerFunc(contactHandler.UpdateStatus)))

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening",
			"addr", server.Addr,
			"db", dbPath,
			"email_configured", mail.Enabled(),
			"auth_required", authRequired,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
