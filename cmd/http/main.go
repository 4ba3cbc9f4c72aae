package main

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/delivery/http/controllers"
	"anubha-web/internal/app/delivery/http/middlewares"
	"anubha-web/internal/app/delivery/http/routers"
	"anubha-web/internal/app/delivery/http/views"
	"anubha-web/internal/app/drivers/database"
	"anubha-web/internal/app/drivers/logger"
	"anubha-web/internal/app/drivers/storage"
	"anubha-web/internal/app/services/backend/appointments"
	authBackend "anubha-web/internal/app/services/backend/auth"
	doctorNotesBackend "anubha-web/internal/app/services/backend/doctornotes"
	"anubha-web/internal/app/services/backend/invoices"
	"anubha-web/internal/app/services/backend/patients"
	"anubha-web/internal/app/services/backend/slots"
	testimonialBackend "anubha-web/internal/app/services/backend/testimonials"
	"anubha-web/internal/app/services/core/admin"
	"anubha-web/internal/app/services/core/auth"
	"anubha-web/internal/app/services/core/booking"
	"anubha-web/internal/app/services/core/catalog"
	"anubha-web/internal/app/services/core/doctornotes"
	"anubha-web/internal/app/services/core/otp"
	"anubha-web/internal/app/services/core/seo"
	"anubha-web/internal/app/services/core/testimonials"
	"anubha-web/internal/app/services/shared/clientstorage"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/app/services/shared/redis"
	"anubha-web/internal/app/services/shared/session"
	objectStorage "anubha-web/internal/app/services/shared/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = objectStorage.EnsureBucket(ctx, minioClient, internalConfig.Minio.BucketDraftAttachments)
	cancel()
	if err != nil {
		log.Fatal("Error preparing draft attachment bucket", zap.Error(err))
	}

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer shutdownCancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	cfg := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	draftTTL := time.Duration(cfg.Session.DraftExpiredTimeInDays) * 24 * time.Hour
	clientStorage := clientstorage.NewClientStorage(redisRepository, log, draftTTL)
	sessionManager := session.NewSessionManager(redisRepository, log, cfg)

	// Minio
	draftAttachments := objectStorage.NewMinioStorage(bootstrap.Minio, cfg.Minio.BucketDraftAttachments, log)

	// Backend
	gatewayClient := gateway.NewClient(cfg, log)
	authBackend := authBackend.NewAuthBackend(gatewayClient, log)
	appointmentBackend := appointments.NewAppointmentBackend(gatewayClient, log)
	slotBackend := slots.NewSlotBackend(gatewayClient, log)
	patientBackend := patients.NewPatientBackend(gatewayClient, log)
	invoiceBackend := invoices.NewInvoiceBackend(gatewayClient, log)
	doctorNotesBackend := doctorNotesBackend.NewDoctorNotesBackend(gatewayClient, log)
	testimonialBackend := testimonialBackend.NewTestimonialBackend(gatewayClient, log)

	// Auth
	authUsecase := auth.NewAuthUsecase(authBackend, clientStorage, log)
	otpUsecase := otp.NewOTPUsecase(authBackend, authUsecase, clientStorage, cfg, log)
	gatewayClient.OnUnauthorized(authUsecase.HandleUnauthorized)

	// Catalog
	catalogUsecase, err := catalog.NewCatalogUsecase(log)
	if err != nil {
		return err
	}
	seoUsecase := seo.NewSEOUsecase(cfg)

	// Booking
	bookingUsecase := booking.NewBookingUsecase(appointmentBackend, slotBackend, patientBackend, invoiceBackend, clientStorage, log)

	// Doctor notes
	draftRepository := doctornotes.NewDraftRepository(clientStorage)
	doctorNotesUsecase := doctornotes.NewDoctorNotesUsecase(doctorNotesBackend, draftRepository, draftAttachments, cfg, log)
	bootstrap.DraftFlush = func(ctx context.Context) {
		err := doctorNotesUsecase.FlushAll(ctx)
		if err != nil {
			log.Error("Error flushing pending drafts", zap.Error(err))
		}
	}

	// Testimonials
	testimonialUsecase := testimonials.NewTestimonialUsecase(testimonialBackend, log)

	// Admin
	adminUsecase := admin.NewAdminUsecase(appointmentBackend, invoiceBackend, cfg, log)

	// Views
	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, sessionManager, authUsecase, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewares,
		controllers.NewPageController(log, renderer, catalogUsecase, testimonialUsecase, seoUsecase, cfg),
		controllers.NewCatalogController(log, catalogUsecase),
		controllers.NewAuthController(log, authUsecase),
		controllers.NewOTPController(log, otpUsecase),
		controllers.NewBookingController(log, bookingUsecase),
		controllers.NewDoctorNotesController(log, doctorNotesUsecase),
		controllers.NewTestimonialController(log, testimonialUsecase),
		controllers.NewAdminController(log, adminUsecase),
	)
	return nil
}
