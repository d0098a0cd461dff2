package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hiyoko/dailystamp/internal/service"
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	profileService service.ProfileServiceI
	brushService   service.BrushServiceI
	chatService    service.ChatServiceI
	jwtService     JWTServiceI
}

type ServicesList struct {
	UserService    service.UserServiceI
	ProfileService service.ProfileServiceI
	BrushService   service.BrushServiceI
	ChatService    service.ChatServiceI
	JwtService     JWTServiceI
	// Browser origins allowed by CORS, frontend dev server by default
	AllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		profileService: servicesOptions.ProfileService,
		brushService:   servicesOptions.BrushService,
		chatService:    servicesOptions.ChatService,
		jwtService:     servicesOptions.JwtService,
	}
	s.mountRoutes(servicesOptions.AllowedOrigins)
	return s
}

func (s *Server) mountRoutes(allowedOrigins []string) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

	s.mx.Get("/", s.Root)
	s.mx.Post("/auth/signup", s.Signup)
	s.mx.Post("/auth/login", s.Login)

	s.mx.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/profile", s.GetProfile)
		r.Put("/profile", s.UpdateProfile)
		r.Get("/brushes", s.GetBrushes)
		r.Post("/brushes", s.CreateBrush)
		r.Post("/chat", s.Chat)
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}
