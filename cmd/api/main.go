// @title Daily Stamp API
// @description API for the kids' tooth-brushing tracker "Daily Stamp"
// @schemes http
package main

import (
	"log"
	"time"

	"github.com/hiyoko/dailystamp/internal/api"
	"github.com/hiyoko/dailystamp/internal/chatclient"
	"github.com/hiyoko/dailystamp/internal/repository"
	"github.com/hiyoko/dailystamp/internal/service"
	"github.com/hiyoko/dailystamp/pkg/cleanup"
	"github.com/hiyoko/dailystamp/pkg/config"
	jwtservice "github.com/hiyoko/dailystamp/pkg/jwt_service"
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
	chatClient, err := chatclient.New(chatclient.Config{
		APIKey:  cfg.GetString("OPENAI_API_KEY"),
		BaseURL: cfg.GetString("OPENAI_BASE_URL"),
		Model:   cfg.GetString("OPENAI_MODEL"),
		Timeout: 30 * time.Second,
	})
	if err != nil {
		log.Fatal("creating chat client error: " + err.Error())
	}

	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg), repository.NewProfilesRepo(&dbCfg))
	profileService := service.NewProfileService(repository.NewProfilesRepo(&dbCfg))
	brushService := service.NewBrushService(repository.NewBrushesRepo(&dbCfg))
	chatService := service.NewChatService(profileService, repository.NewConversationsRepo(&dbCfg), chatClient)

	serv := api.New(&api.ServicesList{
		UserService:    userService,
		ProfileService: profileService,
		BrushService:   brushService,
		ChatService:    chatService,
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET")),
		AllowedOrigins: []string{cfg.GetStringOrDefault("FRONTEND_ORIGIN", "http://localhost:3000")},
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
