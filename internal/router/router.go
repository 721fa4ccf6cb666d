package router

import (
	"holocron/config"
	"holocron/internal/handler"
	"holocron/internal/middleware"
	"holocron/internal/repository"
	"holocron/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	starshipRepo := repository.NewStarshipRepository(db)
	favRepo := repository.NewFavoriteRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	favSvc := service.NewFavoriteService(favRepo, userRepo, planetRepo, characterRepo, starshipRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userRepo)
	planetHandler := handler.NewPlanetHandler(planetRepo)
	characterHandler := handler.NewCharacterHandler(characterRepo)
	starshipHandler := handler.NewStarshipHandler(starshipRepo)
	favoriteHandler := handler.NewFavoriteHandler(favSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)

	r.GET("/", handler.Sitemap(r))

	r.GET("/user", userHandler.List)
	r.GET("/user/:id", userHandler.Get)
	r.POST("/user", userHandler.Create)
	r.PUT("/user", userHandler.Update)
	r.DELETE("/user", userHandler.Delete)
	r.DELETE("/users", userHandler.DeleteAll)

	r.GET("/planets", planetHandler.List)
	r.GET("/planets/:id", planetHandler.Get)
	r.POST("/planet", planetHandler.Create)
	r.PUT("/planet", planetHandler.Update)
	r.DELETE("/planet", planetHandler.Delete)
	r.DELETE("/planets", planetHandler.DeleteAll)

	r.GET("/characters", characterHandler.List)
	r.GET("/characters/:id", characterHandler.Get)
	r.POST("/character", characterHandler.Create)
	r.PUT("/character", characterHandler.Update)
	r.DELETE("/character", characterHandler.Delete)
	r.DELETE("/characters", characterHandler.DeleteAll)

	r.GET("/starships", starshipHandler.List)
	r.GET("/starships/:id", starshipHandler.Get)
	r.POST("/starship", starshipHandler.Create)
	r.PUT("/starship", starshipHandler.Update)
	r.DELETE("/starship", starshipHandler.Delete)
	r.DELETE("/starships", starshipHandler.DeleteAll)

	r.GET("/user/favorites/:user_id", favoriteHandler.ListForUser)
	r.POST("/favorites/:kind", favoriteHandler.Add)
	r.POST("/favorites/:kind/:target_id", favoriteHandler.Add)
	r.DELETE("/favorites/:kind", favoriteHandler.Remove)
	r.DELETE("/favorites/:kind/:target_id", favoriteHandler.Remove)

	r.POST("/login", authHandler.Login)
	r.GET("/protected", authMw, authHandler.Protected)

	return r
}
