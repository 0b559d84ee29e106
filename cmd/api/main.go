// @title Lighter API
// @description API for weight-loss & habit tracking app "Lighter"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/lighter/internal/api"
	"github.com/limbo/lighter/internal/repository"
	"github.com/limbo/lighter/internal/service"
	"github.com/limbo/lighter/internal/storage"
	"github.com/limbo/lighter/pkg/cleanup"
	"github.com/limbo/lighter/pkg/config"
	jwtservice "github.com/limbo/lighter/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)

	store, err := storage.NewFSStorage(cfg.GetString("UPLOADS_DIR"))
	if err != nil {
		log.Fatal("storage init error: " + err.Error())
	}

	usersRepo := repository.NewUsersRepo(pool)
	habitsRepo := repository.NewUserHabitsRepo(pool)
	completionsRepo := repository.NewCompletionsRepo(pool)
	streaksRepo := repository.NewStreaksRepo(pool)
	logsRepo := repository.NewLogsRepo(pool)

	serv := api.New(&api.ServicesList{
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET")),
		UserService:     service.NewUserService(usersRepo),
		HabitsService:   service.NewHabitsService(repository.NewPresetsRepo(pool), habitsRepo, completionsRepo),
		TrackerService:  service.NewTrackerService(habitsRepo, completionsRepo, streaksRepo),
		LogsService:     service.NewLogsService(logsRepo, usersRepo),
		ProgressService: service.NewProgressService(usersRepo, habitsRepo, completionsRepo, streaksRepo, logsRepo),
		BoardService:    service.NewVisionBoardService(repository.NewVisionBoardRepo(pool), store),
		PhotosService:   service.NewPhotosService(repository.NewPhotosRepo(pool), logsRepo, store),
	}, store.Root())
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
