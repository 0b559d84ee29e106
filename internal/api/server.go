package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/lighter/internal/service"
)

type Server struct {
	mx              *chi.Mux
	jwtService      JWTServiceI
	userService     service.UserServiceI
	habitsService   service.HabitsServiceI
	trackerService  service.TrackerServiceI
	logsService     service.LogsServiceI
	progressService service.ProgressServiceI
	boardService    service.VisionBoardServiceI
	photosService   service.PhotosServiceI
	uploadsDir      string
}

type ServicesList struct {
	JwtService      JWTServiceI
	UserService     service.UserServiceI
	HabitsService   service.HabitsServiceI
	TrackerService  service.TrackerServiceI
	LogsService     service.LogsServiceI
	ProgressService service.ProgressServiceI
	BoardService    service.VisionBoardServiceI
	PhotosService   service.PhotosServiceI
}

// New assembles the server and mounts its routes. uploadsDir is the directory
// stored images are served from; empty disables static serving.
func New(servicesOptions *ServicesList, uploadsDir string) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		jwtService:      servicesOptions.JwtService,
		userService:     servicesOptions.UserService,
		habitsService:   servicesOptions.HabitsService,
		trackerService:  servicesOptions.TrackerService,
		logsService:     servicesOptions.LogsService,
		progressService: servicesOptions.ProgressService,
		boardService:    servicesOptions.BoardService,
		photosService:   servicesOptions.PhotosService,
		uploadsDir:      uploadsDir,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/profile", s.GetProfile)
			r.Patch("/profile", s.UpdateProfile)
			r.Delete("/profile", s.DeleteAccount)

			r.Get("/habits/presets", s.ListPresets)
			r.Get("/habits", s.GetHabits)
			r.Post("/habits", s.AddHabit)
			r.Patch("/habits/{id}/target", s.UpdateDailyTarget)
			r.Post("/habits/{id}/move", s.MoveHabit)
			r.Delete("/habits/{id}", s.RemoveHabit)
			r.Post("/habits/{id}/toggle", s.ToggleHabit)
			r.Get("/habits/{id}/completions", s.GetHabitHistory)
			r.Get("/streaks", s.GetStreaks)

			r.Put("/logs", s.UpsertLog)
			r.Get("/logs", s.GetLogs)
			r.Get("/logs/latest", s.GetLatestLog)
			r.Get("/progress/overview", s.GetOverview)
			r.Get("/progress/weekly", s.GetWeeklySummary)
			r.Get("/progress/chart", s.GetChartData)

			r.Get("/vision-board", s.GetBoard)
			r.Post("/vision-board", s.CreateBoardItem)
			r.Patch("/vision-board/{id}", s.UpdateBoardItem)
			r.Post("/vision-board/{id}/image", s.AttachBoardImage)
			r.Delete("/vision-board/{id}", s.DeleteBoardItem)
			r.Get("/photos", s.GetPhotos)
			r.Post("/photos", s.UploadPhoto)
			r.Delete("/photos/{id}", s.DeletePhoto)
		})
	})
	if s.uploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadsDir)))
		s.mx.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
			fileServer.ServeHTTP(w, r)
		})
	}
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}

// Mux exposes the router for tests.
func (s *Server) Mux() *chi.Mux {
	return s.mx
}
