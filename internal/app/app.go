package app

import (
	"github.com/bhyunvin/TO-DO-list-sub001/internal/adapters/inbound/http"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/adapters/inbound/workers"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/adapters/outbound/gemini"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/adapters/outbound/log"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/adapters/outbound/postgres"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/adapters/outbound/time"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewTodoApp creates and returns a new instance of the TodoList application.
func NewTodoApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&postgres.InitDB{},
			&postgres.InitTodoRepository{},
			&time.InitCurrentTimeProvider{},
			&gemini.InitGeminiClient{},

			&usecases.InitSystemPrompt{},
			&usecases.InitReplySanitizer{},
			&usecases.InitLLMToolRegistry{},
			&usecases.InitAssistantTurn{},
			&usecases.InitAssistantChat{},

			&usecases.InitListTodos{},
			&usecases.InitCreateTodo{},
			&usecases.InitUpdateTodo{},
			&usecases.InitDeleteTodo{},
			&usecases.InitPurgeTodos{},
		).
		Host(
			&http.TodoAppServer{},
			&workers.TodoRetentionWorker{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
