package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/usecases"
	"github.com/rs/cors"
)

// TodoAppServer is the REST API HTTP server for the todo-list application.
type TodoAppServer struct {
	Port                 int                        `config:"HTTP_PORT" default:"8080"`
	Logger               *log.Logger                `resolve:""`
	TimeProvider         domain.CurrentTimeProvider `resolve:""`
	ListTodosUseCase     usecases.ListTodos         `resolve:""`
	CreateTodoUseCase    usecases.CreateTodo        `resolve:""`
	UpdateTodoUseCase    usecases.UpdateTodo        `resolve:""`
	DeleteTodoUseCase    usecases.DeleteTodo        `resolve:""`
	AssistantChatUseCase usecases.AssistantChat     `resolve:""`
}

// Run starts the HTTP server for the TodoAppServer.
func (api TodoAppServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/todos", api.ListTodos)
	mux.HandleFunc("POST /api/todos", api.CreateTodo)
	mux.HandleFunc("PATCH /api/todos/{todoSeq}", api.UpdateTodo)
	mux.HandleFunc("DELETE /api/todos/{todoSeq}", api.DeleteTodo)
	mux.HandleFunc("POST /api/assistant/chat", api.AssistantChat)

	// Introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	var h http.Handler = telemetry.Middleware("todolist-api")(mux)
	h = requestIDMiddleware(h)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("TodoAppServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("TodoAppServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("TodoAppServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the TodoAppServer is ready by performing a health check.
func (api TodoAppServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/introspect", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
