package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"formationpro/internal/api"
	"formationpro/internal/email"
	"formationpro/internal/repository"
	"formationpro/internal/seed"
	"formationpro/internal/service"
	"formationpro/internal/tracing"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables provided by Docker")
	}

	api.SetupGlobalHandler("formationpro")

	shutdownTracer, err := tracing.InitTracerProvider("formationpro")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	userRepo := repository.NewMemoryUserRepository()
	tokenRepo := repository.NewMemoryTokenRepository()
	invitationRepo := repository.NewMemoryInvitationRepository()
	sessionRepo := repository.NewMemorySessionRepository()
	trainingRepo := repository.NewMemoryTrainingRepository()
	trainerRepo := repository.NewMemoryTrainerRepository()
	participantRepo := repository.NewMemoryParticipantRepository()
	companyRepo := repository.NewMemoryCompanyRepository()
	specialtyRepo := repository.NewMemorySpecialtyRepository()
	registrationRepo := repository.NewMemoryRegistrationRepository()
	evaluationRepo := repository.NewMemoryEvaluationRepository()

	mailer := email.NewLogMailer()

	authService := service.NewAuthService(userRepo, tokenRepo)
	userService := service.NewUserService(userRepo, invitationRepo, mailer)
	sessionService := service.NewSessionService(sessionRepo, trainingRepo, trainerRepo)
	registrationService := service.NewRegistrationService(registrationRepo, sessionRepo, participantRepo, companyRepo)
	evaluationService := service.NewEvaluationService(evaluationRepo, registrationRepo, sessionRepo)

	if err := seed.Load(context.Background(), seed.Dependencies{
		UserRepo:       userRepo,
		SpecialtyRepo:  specialtyRepo,
		TrainerRepo:    trainerRepo,
		TrainingRepo:   trainingRepo,
		SessionService: sessionService,
	}); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	authHandler := api.NewAuthHandler(authService)
	userHandler := api.NewUserHandler(userService)
	sessionHandler := api.NewSessionHandler(sessionService)
	trainingHandler := api.NewTrainingHandler(trainingRepo)
	trainerHandler := api.NewTrainerHandler(trainerRepo)
	participantHandler := api.NewParticipantHandler(participantRepo)
	companyHandler := api.NewCompanyHandler(companyRepo)
	specialtyHandler := api.NewSpecialtyHandler(specialtyRepo)
	registrationHandler := api.NewRegistrationHandler(registrationService)
	evaluationHandler := api.NewEvaluationHandler(evaluationService)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "formationpro"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.Refresh)
	authRoutes.Post("/logout", authHandler.Logout)

	userRoutes := v1.Group("/users")
	userRoutes.Use(api.AuthMiddleware())
	userRoutes.Get("/me", authHandler.GetUserProfile)
	userRoutes.Get("/", api.AdminOnly(), userHandler.ListUsers)
	userRoutes.Post("/", api.AdminOnly(), userHandler.CreateUser)
	userRoutes.Put("/:id", api.AdminOnly(), userHandler.UpdateUser)
	userRoutes.Delete("/:id", api.AdminOnly(), userHandler.DeleteUser)

	invitationRoutes := v1.Group("/invitations")
	invitationRoutes.Use(api.AuthMiddleware(), api.AdminOnly())
	invitationRoutes.Get("/", userHandler.ListInvitations)
	invitationRoutes.Post("/", userHandler.InviteUser)
	invitationRoutes.Post("/:id/resend", userHandler.ResendInvitation)
	invitationRoutes.Delete("/:id", userHandler.CancelInvitation)

	sessionRoutes := v1.Group("/sessions")
	sessionRoutes.Use(api.AuthMiddleware())
	sessionRoutes.Get("/", sessionHandler.ListSessions)
	sessionRoutes.Post("/", sessionHandler.CreateSession)
	sessionRoutes.Get("/:id", sessionHandler.GetSession)
	sessionRoutes.Patch("/:id", sessionHandler.UpdateSession)
	sessionRoutes.Delete("/:id", sessionHandler.DeleteSession)

	trainingRoutes := v1.Group("/trainings")
	trainingRoutes.Use(api.AuthMiddleware())
	trainingRoutes.Get("/", trainingHandler.ListTrainings)
	trainingRoutes.Post("/", trainingHandler.CreateTraining)
	trainingRoutes.Get("/:id", trainingHandler.GetTraining)
	trainingRoutes.Put("/:id", trainingHandler.UpdateTraining)
	trainingRoutes.Delete("/:id", trainingHandler.DeleteTraining)
	trainingRoutes.Get("/:id/eligible-trainers", sessionHandler.ListEligibleTrainers)

	trainerRoutes := v1.Group("/trainers")
	trainerRoutes.Use(api.AuthMiddleware())
	trainerRoutes.Get("/", trainerHandler.ListTrainers)
	trainerRoutes.Post("/", trainerHandler.CreateTrainer)
	trainerRoutes.Get("/:id", trainerHandler.GetTrainer)
	trainerRoutes.Put("/:id", trainerHandler.UpdateTrainer)
	trainerRoutes.Delete("/:id", trainerHandler.DeleteTrainer)

	participantRoutes := v1.Group("/participants")
	participantRoutes.Use(api.AuthMiddleware())
	participantRoutes.Get("/", participantHandler.ListParticipants)
	participantRoutes.Post("/", participantHandler.CreateParticipant)
	participantRoutes.Get("/:id", participantHandler.GetParticipant)
	participantRoutes.Put("/:id", participantHandler.UpdateParticipant)
	participantRoutes.Delete("/:id", participantHandler.DeleteParticipant)

	companyRoutes := v1.Group("/companies")
	companyRoutes.Use(api.AuthMiddleware())
	companyRoutes.Get("/", companyHandler.ListCompanies)
	companyRoutes.Post("/", companyHandler.CreateCompany)
	companyRoutes.Get("/:id", companyHandler.GetCompany)
	companyRoutes.Put("/:id", companyHandler.UpdateCompany)
	companyRoutes.Delete("/:id", companyHandler.DeleteCompany)

	specialtyGroupRoutes := v1.Group("/specialty-groups")
	specialtyGroupRoutes.Use(api.AuthMiddleware())
	specialtyGroupRoutes.Get("/", specialtyHandler.ListGroups)
	specialtyGroupRoutes.Post("/", specialtyHandler.CreateGroup)
	specialtyGroupRoutes.Put("/:id", specialtyHandler.UpdateGroup)
	specialtyGroupRoutes.Delete("/:id", specialtyHandler.DeleteGroup)

	specialtyRoutes := v1.Group("/specialties")
	specialtyRoutes.Use(api.AuthMiddleware())
	specialtyRoutes.Get("/", specialtyHandler.ListSpecialties)
	specialtyRoutes.Post("/", specialtyHandler.CreateSpecialty)
	specialtyRoutes.Put("/:id", specialtyHandler.UpdateSpecialty)
	specialtyRoutes.Delete("/:id", specialtyHandler.DeleteSpecialty)

	registrationRoutes := v1.Group("/registrations")
	registrationRoutes.Use(api.AuthMiddleware())
	registrationRoutes.Get("/", registrationHandler.ListRegistrations)
	registrationRoutes.Post("/", registrationHandler.CreateRegistration)
	registrationRoutes.Get("/:id", registrationHandler.GetRegistration)
	registrationRoutes.Patch("/:id", registrationHandler.UpdateRegistration)
	registrationRoutes.Post("/:id/confirm", registrationHandler.ConfirmRegistration)
	registrationRoutes.Delete("/:id", registrationHandler.DeleteRegistration)

	evaluationRoutes := v1.Group("/evaluations")
	evaluationRoutes.Use(api.AuthMiddleware())
	evaluationRoutes.Get("/", evaluationHandler.ListEvaluations)
	evaluationRoutes.Post("/", evaluationHandler.SubmitEvaluation)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8001"
	}

	log.Printf("Listening formationpro on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
