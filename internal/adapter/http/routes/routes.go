package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "urb_denuncias/docs" // This will be auto-generated
	"urb_denuncias/internal/adapter/http/handlers"
	repository2 "urb_denuncias/internal/adapter/persistence/repository"
	"urb_denuncias/internal/adapter/persistence/tabular"
	"urb_denuncias/internal/infrastructure/database"
	"urb_denuncias/internal/infrastructure/logger"
	"urb_denuncias/internal/infrastructure/storage"
	"urb_denuncias/internal/usecase"
	"urb_denuncias/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	zl, err := logger.NewFromEnv("urb-denuncias-api")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		zap.S().Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes() {
	complaintTable, userTable := buildTables()

	complaintRepo := repository2.NewComplaintTabularRepository(complaintTable)
	userRepo := repository2.NewUserTabularRepository(userTable)

	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo, buildPhotoStore())
	userUseCase := usecase.NewUserUseCase(userRepo)

	complaintHandler := handlers.NewComplaintHandler(complaintUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addComplaintRoutes(v1, complaintHandler)
	addUserRoutes(v1, userHandler)
}

// buildTables selects the tabular backend from TABLE_BACKEND: "excel"
// (default), "dynamo" or "memory". Complaints and users live in separate
// logical sheets of the same medium.
func buildTables() (tabular.Table, tabular.Table) {
	switch envDefault("TABLE_BACKEND", "excel") {
	case "dynamo":
		ddb, err := database.ConnectDynamoDB(context.Background())
		if err != nil {
			zap.S().Fatalf("[routes] dynamodb connect failed: %v", err)
		}
		tableName := envDefault("RECORDS_TABLE", "records")
		return database.NewDynamoTable(ddb, tableName, "denuncias"),
			database.NewDynamoTable(ddb, tableName, "users")
	case "memory":
		return database.NewMemoryTable(), database.NewMemoryTable()
	default:
		path := envDefault("EXCEL_PATH", "denuncias.xlsx")
		return database.NewExcelTable(path, "denuncias"),
			database.NewExcelTable(path, "users")
	}
}

// buildPhotoStore selects the upload backend from PHOTO_STORE: "local"
// (default) or "minio". A broken configuration degrades to no photo support
// rather than refusing to boot.
func buildPhotoStore() interfaces.IPhotoStore {
	if envDefault("PHOTO_STORE", "local") == "minio" {
		store, err := storage.NewMinioPhotoStore(
			os.Getenv("MINIO_ENDPOINT"),
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			envDefault("MINIO_BUCKET", "denuncias-fotos"),
			os.Getenv("MINIO_USE_SSL") == "true",
		)
		if err != nil {
			zap.S().Errorf("[routes] minio photo store not configured: %v", err)
			return nil
		}
		return store
	}

	store, err := storage.NewLocalPhotoStore(envDefault("UPLOADS_DIR", "uploads"))
	if err != nil {
		zap.S().Errorf("[routes] local photo store not configured: %v", err)
		return nil
	}
	return store
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.S().Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
