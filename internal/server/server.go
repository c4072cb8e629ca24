package server

import (
	"log"
	"os"
	"strings"
	"time"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/middleware"
	"anoa.com/binbeacon/pkg/storage"

	broadcastHttp "anoa.com/binbeacon/internal/modules/broadcast/delivery/http"
	broadcastRepo "anoa.com/binbeacon/internal/modules/broadcast/repository"
	broadcastService "anoa.com/binbeacon/internal/modules/broadcast/service"

	chatHttp "anoa.com/binbeacon/internal/modules/chat/delivery/http"
	chatRepo "anoa.com/binbeacon/internal/modules/chat/repository"
	chatService "anoa.com/binbeacon/internal/modules/chat/service"

	collectorHttp "anoa.com/binbeacon/internal/modules/collector/delivery/http"
	collectorRepo "anoa.com/binbeacon/internal/modules/collector/repository"
	collectorService "anoa.com/binbeacon/internal/modules/collector/service"

	distributeHttp "anoa.com/binbeacon/internal/modules/distribute/delivery/http"
	distributeRepo "anoa.com/binbeacon/internal/modules/distribute/repository"
	distributeService "anoa.com/binbeacon/internal/modules/distribute/service"

	feedbackHttp "anoa.com/binbeacon/internal/modules/feedback/delivery/http"
	feedbackRepo "anoa.com/binbeacon/internal/modules/feedback/repository"
	feedbackService "anoa.com/binbeacon/internal/modules/feedback/service"

	fleetHttp "anoa.com/binbeacon/internal/modules/fleet/delivery/http"
	fleetRepo "anoa.com/binbeacon/internal/modules/fleet/repository"
	fleetService "anoa.com/binbeacon/internal/modules/fleet/service"

	reportHttp "anoa.com/binbeacon/internal/modules/report/delivery/http"
	reportRepo "anoa.com/binbeacon/internal/modules/report/repository"
	reportService "anoa.com/binbeacon/internal/modules/report/service"

	residentHttp "anoa.com/binbeacon/internal/modules/resident/delivery/http"
	residentRepo "anoa.com/binbeacon/internal/modules/resident/repository"
	residentService "anoa.com/binbeacon/internal/modules/resident/service"

	searchService "anoa.com/binbeacon/internal/modules/search/service"

	tipHttp "anoa.com/binbeacon/internal/modules/tip/delivery/http"
	tipRepo "anoa.com/binbeacon/internal/modules/tip/repository"
	tipService "anoa.com/binbeacon/internal/modules/tip/service"

	trainingHttp "anoa.com/binbeacon/internal/modules/training/delivery/http"
	trainingRepo "anoa.com/binbeacon/internal/modules/training/repository"
	trainingService "anoa.com/binbeacon/internal/modules/training/service"

	userHttp "anoa.com/binbeacon/internal/modules/user/delivery/http"
	userRepo "anoa.com/binbeacon/internal/modules/user/repository"
	userService "anoa.com/binbeacon/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client) *Server {
	users := userRepo.NewUserRepository(db)

	// Photo storage is optional; reports still work without it.
	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Printf("cloudinary storage unavailable, report photos disabled: %v", err)
		imageStorage = nil
	}

	// Meilisearch is optional too; report search degrades to empty results.
	var searchSvc searchService.ReportSearchService
	if meiliHost := os.Getenv("MEILISEARCH_HOST"); meiliHost != "" {
		if !strings.HasPrefix(meiliHost, "http") {
			meiliHost = "http://" + meiliHost + ":7700"
		}
		meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(os.Getenv("MEILI_MASTER_KEY")))
		searchSvc = searchService.NewReportSearchService(meiliClient)
	}

	authSvc := userService.NewAuthService(users)
	authHandler := userHttp.NewAuthHandler(authSvc)

	residents := residentRepo.NewResidentRepository(db)
	residentSvc := residentService.NewResidentService(residents)
	residentHandler := residentHttp.NewResidentHandler(residentSvc)

	reports := reportRepo.NewReportRepository(db)
	reportSvc := reportService.NewReportService(reports, imageStorage, searchSvc, os.Getenv("CLOUDINARY_UPLOAD_FOLDER"))
	reportHandler := reportHttp.NewReportHandler(reportSvc)

	collectors := collectorRepo.NewCollectorRepository(db)
	collectorSvc := collectorService.NewCollectorService(collectors)
	collectorHandler := collectorHttp.NewCollectorHandler(collectorSvc)

	tips := tipRepo.NewTipRepository(db)
	tipSvc := tipService.NewTipService(tips)
	tipHandler := tipHttp.NewTipHandler(tipSvc)

	feedbacks := feedbackRepo.NewFeedbackRepository(db)
	feedbackSvc := feedbackService.NewFeedbackService(feedbacks)
	feedbackHandler := feedbackHttp.NewFeedbackHandler(feedbackSvc)

	trainings := trainingRepo.NewTrainingRepository(db)
	trainingSvc := trainingService.NewTrainingService(trainings)
	trainingHandler := trainingHttp.NewTrainingHandler(trainingSvc)

	broadcasts := broadcastRepo.NewBroadcastRepository(db)
	broadcastSvc := broadcastService.NewBroadcastService(broadcasts, redisClient)
	broadcastHandler := broadcastHttp.NewBroadcastHandler(broadcastSvc)

	chats := chatRepo.NewChatRepository(db)
	chatSvc := chatService.NewChatService(chats, redisClient)
	chatHandler := chatHttp.NewChatHandler(chatSvc)
	chatSocketHandler := chatHttp.NewChatSocketHandler(chatSvc, redisClient)

	distributes := distributeRepo.NewDistributeRepository(db)
	distributeSvc := distributeService.NewDistributeService(distributes)
	distributeHandler := distributeHttp.NewDistributeHandler(distributeSvc)

	fleets := fleetRepo.NewFleetRepository(db)
	fleetSvc := fleetService.NewFleetService(fleets)
	fleetHandler := fleetHttp.NewFleetHandler(fleetSvc)

	router := gin.New()

	setupCORS(router)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(users)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)

		// Resident routes
		protected.POST("/residents/:id/status", residentHandler.SetStatus)
		protected.GET("/residents/:id/history", residentHandler.History)

		// Overflow reports, plus the older flat /overflow shape
		protected.POST("/overflow-reports", reportHandler.CreateReport)
		protected.POST("/overflow", reportHandler.CreateReportLegacy)
		protected.GET("/overflow-reports", reportHandler.ListReports)
		protected.GET("/overflow-reports/search", reportHandler.SearchReports)
		protected.PUT("/overflow-reports/:id/assign", authMiddleware.RequireRole(entity.RoleAuthority), reportHandler.AssignCollector)
		protected.PATCH("/overflow-reports/:id", authMiddleware.RequireRole(entity.RoleAuthority, entity.RoleCollector), reportHandler.UpdateStatus)

		// Collector routes
		collectorGroup := protected.Group("/collector")
		collectorGroup.Use(authMiddleware.RequireRole(entity.RoleCollector))
		{
			collectorGroup.GET("/houses", collectorHandler.GetHouses)
			collectorGroup.POST("/collection-complete", collectorHandler.CollectionComplete)
			collectorGroup.POST("/report-house", collectorHandler.ReportHouse)
			collectorGroup.POST("/attendance/check-in", collectorHandler.CheckIn)
			collectorGroup.POST("/attendance/check-out", collectorHandler.CheckOut)
		}

		// Tips
		protected.POST("/tips", authMiddleware.RequireRole(entity.RoleResident), tipHandler.SendTip)
		protected.GET("/tips/collector/:collectorId", tipHandler.TipsForCollector)
		protected.GET("/tips/collector/:collectorId/summary", tipHandler.SummaryForCollector)

		// Feedback
		protected.POST("/feedback", authMiddleware.RequireRole(entity.RoleResident), feedbackHandler.SubmitFeedback)
		protected.GET("/feedback", feedbackHandler.ListFeedback)
		protected.GET("/feedback/collector/:collectorId/summary", feedbackHandler.SummaryForCollector)

		// Training
		protected.GET("/training/modules", trainingHandler.ListModules)
		protected.POST("/training/modules/:id/submit", trainingHandler.SubmitQuiz)
		protected.GET("/training/progress", trainingHandler.Progress)

		// Broadcasts
		protected.POST("/broadcasts", authMiddleware.RequireRole(entity.RoleAuthority), broadcastHandler.SendBroadcast)
		protected.GET("/broadcasts", broadcastHandler.ListBroadcasts)

		// Chat
		protected.POST("/chats", chatHandler.SendChat)
		protected.GET("/chats/private/:user1/:user2", chatHandler.PrivateHistory)
		protected.GET("/chats/group/:name", chatHandler.GroupHistory)
		protected.GET("/ws/chat", chatSocketHandler.HandleWebSocket)

		// Distribute requests
		protected.POST("/distribute-requests", authMiddleware.RequireRole(entity.RoleResident), distributeHandler.CreateRequest)
		protected.GET("/distribute-requests", distributeHandler.ListRequests)
		protected.PATCH("/distribute-requests/:id", authMiddleware.RequireRole(entity.RoleCollector), distributeHandler.UpdateStatus)

		// Truck routes
		protected.GET("/truck-routes", fleetHandler.ListRoutes)
		protected.POST("/truck-routes", authMiddleware.RequireRole(entity.RoleAuthority), fleetHandler.CreateRoute)
		protected.POST("/truck-routes/:id/advance", authMiddleware.RequireRole(entity.RoleAuthority, entity.RoleCollector), fleetHandler.AdvanceRoute)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine) {
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
