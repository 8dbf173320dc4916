package main

import (
	"fmt"
	"log"

	"gstbill/internal/config"
	"gstbill/internal/email/noop"
	"gstbill/internal/email/ses"
	"gstbill/internal/handler"
	"gstbill/internal/port"
	"gstbill/internal/registry/gstn"
	"gstbill/internal/repository/postgres"
	"gstbill/internal/router"
	"gstbill/internal/service"
	s3storage "gstbill/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	profileRepo := postgres.NewProfileRepo(db)
	catalogRepo := postgres.NewCatalogRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize the filing registry client
	registryClient := gstn.NewClient(&cfg.Registry)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	profileSvc := service.NewProfileService(profileRepo)
	catalogSvc := service.NewCatalogService(catalogRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, catalogRepo, customerRepo, profileRepo, emailSender)
	reportSvc := service.NewReportService(invoiceRepo, catalogRepo, customerRepo, profileRepo, s3Client, cfg.S3.Bucket, cfg.S3.PresignExpiry)
	filingSvc := service.NewFilingService(registryClient)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	reportH := handler.NewReportHandler(reportSvc)
	filingH := handler.NewFilingHandler(filingSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(
		authSvc, cfg.CORS.AllowedOrigins,
		authH, userH, profileH, catalogH, customerH, invoiceH, reportH, filingH, healthH,
	)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
