package bootstrap

import (
	"hestia-console-be/internal/config"
	"hestia-console-be/internal/controller"
	"hestia-console-be/internal/pkg/logger"
	"hestia-console-be/internal/repository/unitofwork"
	"hestia-console-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	FeatureController controller.IFeatureController
	ServerController  controller.IServerController
	ServiceController controller.IServiceController
	LogController     controller.ILogController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	auditService := service.NewAuditService(uowFactory, sysLogger)
	featureService := service.NewFeatureService(uowFactory, auditService)

	// the route gate reads through a short-lived snapshot cache; registry
	// mutations invalidate it so changes bite immediately
	registry := service.NewCachedRegistry(featureService, cfg.Registry.SnapshotTTL)
	featureService.SetChangeListener(registry.Invalidate)

	authService := service.NewAuthService(uowFactory, featureService, auditService)
	userService := service.NewUserService(uowFactory, auditService)
	serverService := service.NewServerService(uowFactory, auditService)
	serviceService := service.NewServiceService(uowFactory, auditService)

	return &Container{
		AuthController:    controller.NewAuthController(authService),
		UserController:    controller.NewUserController(userService),
		FeatureController: controller.NewFeatureController(featureService),
		ServerController:  controller.NewServerController(serverService, registry),
		ServiceController: controller.NewServiceController(serviceService, registry),
		LogController:     controller.NewLogController(auditService),

		Logger: sysLogger,
	}
}
