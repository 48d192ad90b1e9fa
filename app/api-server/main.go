package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vijaydevops-git/AugConsultant-sub000/config"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/api/handlers"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/api/middleware"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/api/routes"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/logger"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/mailer"
	mongorepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/mongo"
	pgrepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/postgres"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/reports"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/services"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	app := config.LoadApp()

	if app.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// PostgreSQL holds all tracking data and is required.
	if err := config.InitPostgres(); err != nil {
		log.WithError(err).Fatal("PostgreSQL init error")
	}
	log.Info("PostgreSQL connected")

	// MongoDB only keeps the report-run audit log; run without it if absent.
	var runRepo mongorepo.ReportRunRepository
	if err := config.InitMongo(); err != nil {
		log.WithError(err).Warn("MongoDB unavailable, report runs will not be recorded")
	} else {
		log.Info("MongoDB connected")
		runRepo = mongorepo.NewReportRunRepo(config.MongoClient.Database("consultant_tracker"))
	}

	// Redis backs per-user rate limiting; the API works without it.
	if err := config.InitRedis(); err != nil {
		log.WithError(err).Warn("Redis unavailable, rate limiting disabled")
	} else {
		log.Info("Redis connected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var uploader storage.Uploader
	if app.GCSBucket != "" {
		store, err := storage.NewGCSStore(ctx, app.GCSBucket)
		if err != nil {
			log.WithError(err).Warn("GCS unavailable, resume uploads disabled")
		} else {
			defer store.Close()
			uploader = store
		}
	}

	userRepo := pgrepo.NewUserRepo(config.PostgresDB)
	consultantRepo := pgrepo.NewConsultantRepo(config.PostgresDB)
	vendorRepo := pgrepo.NewVendorRepo(config.PostgresDB)
	submissionRepo := pgrepo.NewSubmissionRepo(config.PostgresDB)
	interviewRepo := pgrepo.NewInterviewRepo(config.PostgresDB)
	analyticsRepo := pgrepo.NewAnalyticsRepo(config.PostgresDB)
	resumeRepo := pgrepo.NewResumeRepo(config.PostgresDB)

	userSvc := services.NewUserService(userRepo)
	consultantSvc := services.NewConsultantService(consultantRepo)
	vendorSvc := services.NewVendorService(vendorRepo)
	submissionSvc := services.NewSubmissionService(submissionRepo, consultantRepo, vendorRepo)
	interviewSvc := services.NewInterviewService(interviewRepo, submissionRepo)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo, submissionRepo, consultantRepo, vendorRepo, userRepo)
	resumeSvc := services.NewResumeService(resumeRepo, consultantRepo, uploader)

	var sender mailer.Sender
	if app.MailAPIKey != "" {
		sender = mailer.NewClient(app.MailAPIKey, "Consultant Tracker")
	}
	reportSvc := reports.NewService(
		analyticsRepo, sender, runRepo, log,
		app.ReportSender, app.ReportRecipients, app.ReportTimezone,
	)

	scheduler := reports.NewScheduler(reportSvc, log, app.Env, app.ReportTimezone)
	scheduler.SendHour = app.ReportHour
	scheduler.Start(ctx)

	if app.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret:     app.JWTSecret,
		Redis:         config.RedisClient,
		RatePerMinute: app.RateLimitPerMinute,
		Users:         handlers.NewUserHandler(userSvc),
		Consultants:   handlers.NewConsultantHandler(consultantSvc, resumeSvc),
		Vendors:       handlers.NewVendorHandler(vendorSvc),
		Submissions:   handlers.NewSubmissionHandler(submissionSvc),
		Interviews:    handlers.NewInterviewHandler(interviewSvc),
		Analytics:     handlers.NewAnalyticsHandler(analyticsSvc),
		Reports:       handlers.NewReportHandler(reportSvc),
	})

	if err := r.Run(":" + app.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
