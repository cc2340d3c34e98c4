package wire

import (
	"Peakfuel/internal/api"
	"Peakfuel/internal/api/config"
	"Peakfuel/internal/api/handler"
	"Peakfuel/internal/job"
	"Peakfuel/internal/pkg/cron"
	"Peakfuel/internal/pkg/kafka"
	"Peakfuel/internal/pkg/mongo"
	"Peakfuel/internal/repository"
	"Peakfuel/internal/service"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components of the running app.
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	tierRepo := repository.NewTierRepo(db)
	postRepo := repository.NewPostRepo(db)
	mealRepo := repository.NewMealRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	notificationRepo := mongo.NewNotificationRepo(mongoDB)

	userService := service.NewUserService(userRepo, roleRepo)
	tierService := service.NewTierService(tierRepo, userRepo)
	engagementService := service.NewEngagementService(engagementRepo, postRepo, userRepo)
	postService := service.NewPostService(postRepo, mealRepo, tierRepo, engagementService)
	feedService := service.NewFeedService(postRepo, engagementService)
	mediaService := service.NewMediaService()
	notificationService := service.NewNotificationService(notificationRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		TierHandler:         handler.NewTierHandler(tierService),
		PostHandler:         handler.NewPostHandler(postService, feedService),
		EngagementHandler:   handler.NewEngagementHandler(engagementService),
		MediaHandler:        handler.NewMediaHandler(mediaService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postRepo, engagementRepo, notificationRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewPostCounterJob(postRepo, engagementRepo),
		job.NewCommentCounterJob(engagementRepo),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
