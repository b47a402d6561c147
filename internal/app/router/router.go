package router

import (
	"fiveki/coop_loan_management/configs"
	"fiveki/coop_loan_management/internal/app/handlers"
	"fiveki/coop_loan_management/internal/app/middleware"
	"fiveki/coop_loan_management/internal/pkg/kafka/producer"
	"fiveki/coop_loan_management/internal/pkg/notification"
	"fiveki/coop_loan_management/internal/pkg/pubsub"
	"fiveki/coop_loan_management/internal/pkg/services"
	"fiveki/coop_loan_management/internal/pkg/store"
	"fiveki/coop_loan_management/internal/pkg/store/repository"
	"fiveki/coop_loan_management/internal/pkg/utils/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher) (*gin.Engine, *services.LoanReminderService) {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	// Redis repository wrapper for the settings cache
	redisAdapter := repository.NewRedisStoreAdapter(redisClient)

	// Ledger stores
	applicationRepo := store.NewLoanApplicationRepository()
	approvedLoanRepo := store.NewApprovedLoanRepository()
	currentLoanRepo := store.NewCurrentLoanRepository()
	rejectedLoanRepo := store.NewRejectedLoanRepository()
	transactionRepo := store.NewLoanTransactionRepository()
	memberRepo := store.NewMemberRepository()
	settingsRepo := store.NewSettingsRepository(redisAdapter)
	notificationRepo := store.NewLoanNotificationRepository()
	txnRunner := store.NewMongoTxnRunner()

	kafkaService := producer.NewKafkaService()
	notificationService := notification.NewNotificationService(pubsubPublisher, approvedLoanRepo, rejectedLoanRepo)

	rateResolver := services.NewRateResolverService(settingsRepo)
	fundingService := services.NewFundingService()

	approvalService := services.NewLoanApprovalService(
		applicationRepo, memberRepo, settingsRepo,
		approvedLoanRepo, currentLoanRepo, transactionRepo,
		rateResolver, fundingService, kafkaService, txnRunner,
	)
	rejectionService := services.NewLoanRejectionService(
		applicationRepo, rejectedLoanRepo, transactionRepo, kafkaService, txnRunner,
	)
	reminderService := services.NewLoanReminderService(
		currentLoanRepo, notificationRepo, settingsRepo, notificationService, workerPool,
	)
	kafkaRetryService := producer.NewKafkaRetryService(transactionRepo)

	applicationHandler := handlers.NewLoanApplicationHandler(applicationRepo)
	approvalHandler := handlers.NewLoanApprovalHandler(approvalService)
	rejectionHandler := handlers.NewLoanRejectionHandler(rejectionService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	kafkaRetryHandler := handlers.NewKafkaRetryHandler(kafkaRetryService)

	r.GET("/LoanServices/Coop/LoanApplications", applicationHandler.ListApplications)
	r.POST("/LoanServices/Coop/LoanApproval", approvalHandler.ApproveLoan)
	r.POST("/LoanServices/Coop/LoanRejection", rejectionHandler.RejectLoan)
	r.POST("/LoanServices/Coop/ApprovalNotification", notificationHandler.SendApprovalNotification)
	r.POST("/LoanServices/Coop/RejectionNotification", notificationHandler.SendRejectionNotification)
	r.GET("/LoanServices/Coop/ReminderScan", reminderHandler.ScanNow)
	r.POST("/LoanServices/Coop/ReminderResend", reminderHandler.Resend)
	r.GET("/LoanServices/Coop/kafkaRetry", kafkaRetryHandler.RetryLoanTransactionMessages)

	r.GET("/LoanServices/Coop/Test", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r, reminderService
}
