package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/tastebookhq/tastebook/internal/repository"
	mysqlRepo "github.com/tastebookhq/tastebook/internal/repository/mysql"
	myRedisCache "github.com/tastebookhq/tastebook/internal/repository/redis"
	"github.com/tastebookhq/tastebook/internal/workers"

	"github.com/tastebookhq/tastebook/internal/rest"
	"github.com/tastebookhq/tastebook/internal/rest/middleware"
	"github.com/tastebookhq/tastebook/internal/usecase/comment"
	"github.com/tastebookhq/tastebook/internal/usecase/moderation"
	"github.com/tastebookhq/tastebook/internal/usecase/rating"
	"github.com/tastebookhq/tastebook/internal/usecase/report"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultStatsTTLSec  = 60
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare sentry (optional, disabled when DSN is empty)
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Printf("failed to init sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.Recover())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	commentRepo := mysqlRepo.NewCommentRepository(db)
	recipeRepo := mysqlRepo.NewRecipeRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)
	reportRepo := mysqlRepo.NewReportRepository(db)
	auditRepo := mysqlRepo.NewAuditRepository(db)

	auditRecorder := repository.NewAuditRecorder(auditRepo)

	statsCache := myRedisCache.NewStatsCache(client)
	statsTTLStr := os.Getenv("STATS_CACHE_TTL_SECONDS")
	statsTTL, err := strconv.Atoi(statsTTLStr)
	if err != nil {
		log.Println("failed to parse stats TTL, using default")
		statsTTL = defaultStatsTTLSec
	}
	statsRepo := repository.NewStatsRepository(commentRepo, reportRepo, statsCache, time.Duration(statsTTL)*time.Second)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	dedupFilter := myRedisCache.NewReportDedupFilter(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	statsSyncer := workers.NewSyncStatsWorker(statsRepo, time.Duration(statsTTL)*time.Second)
	go statsSyncer.Start(ctx)

	// Build service Layer
	jwtSecret := os.Getenv("JWT_SECRET")

	ratingSvc := rating.NewService(commentRepo, recipeRepo)
	commentSvc := comment.NewService(commentRepo, recipeRepo)
	moderationSvc := moderation.NewService(commentRepo, ratingSvc, auditRecorder, statsRepo)
	reportSvc := report.NewService(reportRepo, commentRepo, recipeRepo, postRepo, moderationSvc, dedupFilter, auditRecorder, statsRepo)

	commentHandler := rest.NewCommentHandler(commentSvc)
	moderationHandler := rest.NewModerationHandler(moderationSvc)
	reportHandler := rest.NewReportHandler(reportSvc)

	authMiddleware := middleware.AuthMiddleware(jwtSecret)

	// Register routes
	route.GET("/recipes/:id/comments", commentHandler.FetchCommentsByRecipe)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/recipes/:id/comments", commentHandler.CreateComment)
		authorized.POST("/reports", reportHandler.CreateReport)
	}

	admin := route.Group("/admin")
	admin.Use(authMiddleware, middleware.AdminOnly())
	{
		admin.GET("/comments", moderationHandler.FetchComments)
		admin.GET("/comments/stats", moderationHandler.CommentStats)
		admin.POST("/comments/bulk", moderationHandler.BulkModerate)
		admin.POST("/comments/:id/approve", moderationHandler.ApproveComment)
		admin.POST("/comments/:id/hide", moderationHandler.HideComment)
		admin.DELETE("/comments/:id", moderationHandler.DeleteComment)

		admin.GET("/reports", reportHandler.FetchReports)
		admin.GET("/reports/stats", reportHandler.ReportStats)
		admin.GET("/reports/:id", reportHandler.GetReport)
		admin.POST("/reports/:id/resolve", reportHandler.ResolveReport)
		admin.POST("/reports/:id/reject", reportHandler.RejectReport)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
