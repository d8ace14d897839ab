// @title HabitProof API
// @description API for the AI-verified habit tracker "HabitProof"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limbo/habitproof/internal/api"
	"github.com/limbo/habitproof/internal/clients/blobstore"
	"github.com/limbo/habitproof/internal/clients/vision"
	"github.com/limbo/habitproof/internal/repository"
	"github.com/limbo/habitproof/internal/service"
	"github.com/limbo/habitproof/pkg/cleanup"
	"github.com/limbo/habitproof/pkg/config"
	jwtservice "github.com/limbo/habitproof/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool, err := pgxpool.New(context.Background(), dbCfg.ConnString())
	if err != nil {
		log.Fatal("creating db pool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	defer cleanup.CleanUp()

	usersRepo := repository.NewUsersRepoWithConn(pool)
	habitsRepo := repository.NewHabitsRepoWithConn(pool)
	checkInsRepo := repository.NewCheckInsRepoWithConn(pool)
	streaksRepo := repository.NewStreaksRepoWithConn(pool)
	catalogRepo := repository.NewCatalogRepoWithConn(pool)

	blobs := blobstore.New(blobstore.Config{
		Endpoint:  cfg.GetString("BLOB_ENDPOINT"),
		PublicURL: cfg.GetString("BLOB_PUBLIC_URL"),
		Token:     cfg.GetString("BLOB_TOKEN"),
	})
	visionClient := vision.New(vision.Config{
		BaseURL: cfg.GetString("VISION_API_URL"),
		APIKey:  cfg.GetString("VISION_API_KEY"),
		Model:   cfg.GetStringOr("VISION_MODEL", ""),
	})

	userService := service.NewUserService(usersRepo, checkInsRepo)
	habitsService := service.NewHabitsService(habitsRepo, catalogRepo, checkInsRepo, visionClient)
	streakService := service.NewStreakService(streaksRepo, usersRepo)
	checkInService := service.NewCheckInService(checkInsRepo, habitsRepo, blobs, visionClient, streakService)

	janitor := service.NewJanitor(checkInsRepo, blobs)
	if err := janitor.Start(); err != nil {
		log.Fatal("starting janitor error: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		UserService:    userService,
		HabitsService:  habitsService,
		CheckInService: checkInService,
		StreakReader:   streakService,
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	if err := serv.Run(cfg.GetString("API_ADDRESS")); err != nil {
		log.Println("Server error: " + err.Error())
	}
}
