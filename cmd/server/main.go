package main

import (
	"context"
	"log"
	"os"

	"jaz-events-api/config"
	"jaz-events-api/internal/auth"
	"jaz-events-api/internal/event"
	"jaz-events-api/internal/logs"
	"jaz-events-api/internal/message"
	"jaz-events-api/internal/partner"
	"jaz-events-api/internal/post"
	"jaz-events-api/internal/registration"
	"jaz-events-api/internal/sector"
	"jaz-events-api/internal/translate"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
	}))

	logService := &logs.LogService{DB: db}
	logs.RegisterRoutes(r, logService)

	authService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, authService, logService)

	eventService := &event.EventService{DB: db}
	event.RegisterRoutes(r, eventService)

	sectorService := &sector.SectorService{DB: db}
	sector.RegisterRoutes(r, sectorService)

	partnerService := &partner.PartnerService{DB: db, Bucket: cfg.MediaBucket}
	partner.RegisterRoutes(r, partnerService)

	registrationService := &registration.RegistrationService{DB: db, LS: logService}
	registration.RegisterRoutes(r, registrationService, map[string]registration.SchemaResolverFunc{
		registration.KindEvent:           eventService.RegistrationSchemaByID,
		registration.KindSector:          sectorService.PartnershipSchemaByID,
		registration.KindPartnerCategory: partnerService.ApplicationSchemaByID,
	})

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Gemini client unavailable, translation drafts disabled: %v", err)
	}

	translateService := &translate.TranslateService{Client: client}

	postService := &post.PostService{DB: db, Bucket: cfg.MediaBucket}
	post.RegisterRoutes(r, postService, translateService)

	messageService := &message.MessageService{DB: db, CFG: cfg, LS: logService}
	message.RegisterRoutes(r, messageService)

	// --- Cloud Run expects plain HTTP, on $PORT, bind to 0.0.0.0 ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
