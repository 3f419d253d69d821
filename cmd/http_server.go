package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/auth"
	authPostgres "github.com/frahmantamala/disciplinary-management/internal/auth/postgres"
	"github.com/frahmantamala/disciplinary-management/internal/core/events"
	"github.com/frahmantamala/disciplinary-management/internal/document"
	"github.com/frahmantamala/disciplinary-management/internal/employee"
	employeePostgres "github.com/frahmantamala/disciplinary-management/internal/employee/postgres"
	"github.com/frahmantamala/disciplinary-management/internal/inquiry"
	inquiryPostgres "github.com/frahmantamala/disciplinary-management/internal/inquiry/postgres"
	"github.com/frahmantamala/disciplinary-management/internal/mailer"
	"github.com/frahmantamala/disciplinary-management/internal/misconduct"
	misconductPostgres "github.com/frahmantamala/disciplinary-management/internal/misconduct/postgres"
	"github.com/frahmantamala/disciplinary-management/internal/process"
	processPostgres "github.com/frahmantamala/disciplinary-management/internal/process/postgres"
	"github.com/frahmantamala/disciplinary-management/internal/transport/rest"
	"github.com/frahmantamala/disciplinary-management/internal/user"
	userPostgres "github.com/frahmantamala/disciplinary-management/internal/user/postgres"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	EventBus *events.EventBus
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	env := "development"
	if config.Observability.Logging.Format == "json" {
		env = "production"
	}
	logger.Init(env)
	appLogger := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	eventBus := events.NewEventBus(appLogger)

	// repositories
	processRepo := processPostgres.NewProcessRepository(gormDB)
	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	misconductRepo := misconductPostgres.NewMisconductRepository(gormDB)
	inquiryRepo := inquiryPostgres.NewRepository(gormDB)
	userRepo := userPostgres.NewUserRepository(gormDB)
	authRepo := authPostgres.NewRepository(gormDB)

	// auth
	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.AccessTokenDuration)
	authService := auth.NewService(authRepo, tokenGen, config.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)

	checker := auth.NewPermissionChecker()
	rbac := auth.NewRBACAuthorization(checker, appLogger)
	accessPolicy := auth.NewProcessAccessPolicy(auth.NewProcessOwnershipStore(db), checker)

	// domain services
	employeeService := employee.NewService(employeeRepo, appLogger)
	misconductService := misconduct.NewService(misconductRepo, appLogger)
	inquiryService := inquiry.NewService(inquiryRepo, processRepo, appLogger)

	mailTransport := mailer.NewTransportFromConfig(config.Mail, appLogger)
	if mailTransport == nil {
		appLogger.Warn("no mail transport configured, report and document emails will fail")
	}
	mailerService := mailer.NewService(
		mailTransport,
		processReader{repo: processRepo},
		employeeService,
		misconductService,
		eventBus,
		appLogger,
	)

	processService := process.NewService(processRepo, finalizationReporter{mail: mailerService}, eventBus, appLogger)
	documentService := document.NewService(
		processService,
		employeeService,
		misconductService,
		inquiryService,
		eventBus,
		appLogger,
	)
	userService := user.NewService(userRepo, authService, appLogger)
	userService.RegisterEventHandlers(eventBus)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(
		router,
		db.DB,
		rest.Handlers{
			Auth:       authHandler,
			User:       user.NewHandler(userService),
			Process:    process.NewHandler(processService),
			Document:   document.NewHandler(documentService),
			Mailer:     mailer.NewHandler(mailerService),
			Employee:   employee.NewHandler(employeeService),
			Misconduct: misconduct.NewHandler(misconductService),
			Inquiry:    inquiry.NewHandler(inquiryService),
		},
		rbac,
		accessPolicy,
		config.Server.AllowedOrigins,
		config.Server.PingMessage,
		appLogger,
	)

	return &Dependencies{
		Config:   config,
		Logger:   appLogger,
		DB:       db,
		GormDB:   gormDB,
		Router:   router,
		EventBus: eventBus,
	}, nil
}

// processReader lets the mailer look up processes through the repository
// without taking the full process service as a dependency.
type processReader struct {
	repo process.Repository
}

func (r processReader) GetProcessByID(ctx context.Context, id int64) (*process.Process, error) {
	return r.repo.GetByID(ctx, id)
}

// finalizationReporter narrows the mailer service to the finalize flow, which
// always reports from the freshly persisted row without field overrides.
type finalizationReporter struct {
	mail *mailer.Service
}

func (r finalizationReporter) SendProcessReport(ctx context.Context, processID int64, recipients []string, userID int64) (bool, error) {
	return r.mail.SendProcessReport(ctx, processID, recipients, nil, userID)
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
