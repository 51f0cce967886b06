package worker

import (
	"laundry/internal/adapters/out/notification"

	"github.com/hibiken/asynq"
)

// Server runs the asynq consumers until Shutdown.
type Server struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewServer(redis asynq.RedisConnOpt, concurrency int, consumer *NotificationConsumer) *Server {
	if concurrency <= 0 {
		concurrency = 10
	}
	server := asynq.NewServer(redis, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{notification.Queue: 1},
	})
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Server{server: server, mux: mux}
}

// Run blocks until the process receives SIGTERM or SIGINT.
func (s *Server) Run() error {
	return s.server.Run(s.mux)
}

func (s *Server) Shutdown() {
	s.server.Shutdown()
}
