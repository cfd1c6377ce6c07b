package bootstrap

import (
	"log"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/access"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/config"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/controller"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/logger"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/unitofwork"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/service"

	pktNats "github.com/DrInfinite/TK-WS-NoteTakingApp/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	IndexController    controller.IIndexController
	UserController     controller.IUserController
	NotebookController controller.INotebookController
	PageController     controller.IPageController

	// Services (exposed for cmd/seed)
	UserService     service.IUserService
	NotebookService service.INotebookService
	PageService     service.IPageService

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	pubSub         *gochannel.GoChannel
	natsPub        *pktNats.Publisher
	activityLogger logger.ILogger
}

// Loggers lets callers (tests, one-shot commands) replace the file-backed loggers.
type Loggers struct {
	System   logger.ILogger
	Activity logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	return NewContainerWithLoggers(db, cfg, Loggers{
		System:   logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction()),
		Activity: logger.NewIsolatedLogger(cfg.App.ActivityLogPath),
	})
}

func NewContainerWithLoggers(db *gorm.DB, cfg *config.Config, loggers Loggers) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	verifier := access.NewVerifier()
	sysLogger := loggers.System

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional; without it activity only reaches the activity log.
	var natsPub *pktNats.Publisher
	var forwarder service.EventForwarder
	if cfg.Events.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
			forwarder = pub
		}
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.Topic,
		loggers.Activity,
		forwarder,
		sysLogger,
	)

	userService := service.NewUserService(uowFactory, publisherService, sysLogger)
	notebookService := service.NewNotebookService(uowFactory, verifier, publisherService, sysLogger)
	pageService := service.NewPageService(uowFactory, verifier, publisherService, sysLogger)

	// 4. Controllers
	return &Container{
		IndexController:    controller.NewIndexController(),
		UserController:     controller.NewUserController(userService),
		NotebookController: controller.NewNotebookController(notebookService),
		PageController:     controller.NewPageController(pageService),

		UserService:     userService,
		NotebookService: notebookService,
		PageService:     pageService,

		ConsumerService: consumerService,
		Logger:          sysLogger,

		pubSub:         pubSub,
		natsPub:        natsPub,
		activityLogger: loggers.Activity,
	}
}

// Close stops the event bus and flushes the loggers.
func (c *Container) Close() error {
	err := c.pubSub.Close()
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	_ = c.activityLogger.Sync()
	_ = c.Logger.Sync()
	return err
}
