package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tool names as declared to the LLM.
const (
	ToolName_GetTodos   = "getTodos"
	ToolName_CreateTodo = "createTodo"
	ToolName_UpdateTodo = "updateTodo"
)

// Status filter values accepted by getTodos.
const (
	TodoStatusFilter_Completed  = "completed"
	TodoStatusFilter_Incomplete = "incomplete"
	TodoStatusFilter_Overdue    = "overdue"
)

var todoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// LLMToolManager manages a collection of LLM tools.
type LLMToolManager struct {
	tools map[string]domain.LLMTool
}

// NewLLMToolManager creates a new LLMToolManager with the provided tools.
func NewLLMToolManager(tools ...domain.LLMTool) LLMToolManager {
	toolMap := make(map[string]domain.LLMTool)
	for _, tool := range tools {
		toolMap[tool.Definition().Name] = tool
	}
	return LLMToolManager{
		tools: toolMap,
	}
}

// List returns all registered tool declarations, verbatim on every request.
func (m LLMToolManager) List() []domain.LLMToolDefinition {
	toolList := make([]domain.LLMToolDefinition, 0, len(m.tools))
	for _, name := range []string{ToolName_GetTodos, ToolName_CreateTodo, ToolName_UpdateTodo} {
		if tool, ok := m.tools[name]; ok {
			toolList = append(toolList, tool.Definition())
		}
	}
	return toolList
}

// RequiresOwnerContext reports whether the named tool writes to storage.
func (m LLMToolManager) RequiresOwnerContext(name string) bool {
	if tool, ok := m.tools[name]; ok {
		return tool.Mutating()
	}
	return false
}

// Call invokes the appropriate tool based on the function call.
func (m LLMToolManager) Call(ctx context.Context, req domain.ChatRequest, call domain.FunctionCall) map[string]any {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("tool.function", call.Name),
		),
	)
	defer span.End()

	tool, exists := m.tools[call.Name]
	if !exists {
		return map[string]any{
			"success": false,
			"error":   fmt.Sprintf("tool '%s' is not registered", call.Name),
		}
	}
	return tool.Call(spanCtx, req, call.Args)
}

// todoSummary is the JSON-serializable shape of one todo item in a tool result.
type todoSummary struct {
	TodoSeq     int64   `json:"todoSeq"`
	TodoContent string  `json:"todoContent"`
	TodoDate    string  `json:"todoDate"`
	TodoNote    *string `json:"todoNote,omitempty"`
	IsCompleted bool    `json:"isCompleted"`
	IsOverdue   bool    `json:"isOverdue"`
}

func summarizeTodo(t domain.Todo, now time.Time) todoSummary {
	return todoSummary{
		TodoSeq:     t.Seq,
		TodoContent: t.Content,
		TodoDate:    t.Date.Format(time.DateOnly),
		TodoNote:    t.Note,
		IsCompleted: t.IsCompleted(),
		IsOverdue:   t.IsOverdue(now),
	}
}

// TodoFetcherTool is the read-only tool behind getTodos.
type TodoFetcherTool struct {
	repo         domain.TodoRepository
	timeProvider domain.CurrentTimeProvider
}

// NewTodoFetcherTool creates a new instance of TodoFetcherTool.
func NewTodoFetcherTool(repo domain.TodoRepository, timeProvider domain.CurrentTimeProvider) TodoFetcherTool {
	return TodoFetcherTool{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Mutating reports that getTodos never writes.
func (t TodoFetcherTool) Mutating() bool { return false }

// Definition returns the declaration for the getTodos tool.
func (t TodoFetcherTool) Definition() domain.LLMToolDefinition {
	return domain.LLMToolDefinition{
		Name:        ToolName_GetTodos,
		Description: "사용자의 할 일 목록을 조회합니다. status로 완료 상태를 거를 수 있고, days로 기준 날짜를 오늘로부터 이동할 수 있습니다. Valid: {\"status\":\"incomplete\"} or {\"days\":1}.",
		Parameters: domain.LLMToolParameters{
			Type: "object",
			Properties: map[string]domain.LLMToolParameterDetail{
				"status": {
					Type:        "string",
					Description: "Optional filter: completed, incomplete (includes overdue), or overdue.",
				},
				"days": {
					Type:        "integer",
					Description: "Optional day offset from today for the target date. 0 is today, 1 is tomorrow.",
				},
			},
		},
	}
}

// Call executes getTodos. Internal failures are reported inside the result
// so the LLM always receives a well-formed tool response.
func (t TodoFetcherTool) Call(ctx context.Context, req domain.ChatRequest, args map[string]any) map[string]any {
	params := struct {
		Status *string `json:"status"`
		Days   *int    `json:"days"`
	}{}

	if err := unmarshalToolArguments(args, &params); err != nil {
		return map[string]any{
			"success":    false,
			"error":      fmt.Sprintf("invalid arguments: %s", err.Error()),
			"totalCount": 0,
			"todos":      []todoSummary{},
		}
	}

	now := t.timeProvider.Now()
	targetDate := domain.DateOnly(now)
	if params.Days != nil {
		targetDate = targetDate.AddDate(0, 0, *params.Days)
	}

	todos, err := t.repo.ListTodos(ctx, req.OwnerSeq, domain.WithDateUpTo(targetDate))
	if err != nil {
		return map[string]any{
			"success":    false,
			"error":      err.Error(),
			"totalCount": 0,
			"todos":      []todoSummary{},
		}
	}

	filtered := filterTodosByStatus(todos, params.Status, now)

	summaries := make([]todoSummary, len(filtered))
	for i, todo := range filtered {
		summaries[i] = summarizeTodo(todo, now)
	}

	queryParams := map[string]any{
		"targetDate": targetDate.Format(time.DateOnly),
	}
	if params.Status != nil {
		queryParams["status"] = *params.Status
	}
	if params.Days != nil {
		queryParams["days"] = *params.Days
	}

	return map[string]any{
		"success":     true,
		"totalCount":  len(summaries),
		"todos":       summaries,
		"queryParams": queryParams,
	}
}

// filterTodosByStatus applies the getTodos status filter. "incomplete"
// intentionally includes overdue items; unrecognized values filter nothing.
func filterTodosByStatus(todos []domain.Todo, status *string, now time.Time) []domain.Todo {
	if status == nil {
		return todos
	}

	var filtered []domain.Todo
	switch *status {
	case TodoStatusFilter_Completed:
		for _, t := range todos {
			if t.IsCompleted() {
				filtered = append(filtered, t)
			}
		}
	case TodoStatusFilter_Incomplete:
		for _, t := range todos {
			if !t.IsCompleted() {
				filtered = append(filtered, t)
			}
		}
	case TodoStatusFilter_Overdue:
		for _, t := range todos {
			if t.IsOverdue(now) {
				filtered = append(filtered, t)
			}
		}
	default:
		return todos
	}
	return filtered
}

// TodoCreatorTool is the tool behind createTodo.
type TodoCreatorTool struct {
	repo         domain.TodoRepository
	timeProvider domain.CurrentTimeProvider
}

// NewTodoCreatorTool creates a new instance of TodoCreatorTool.
func NewTodoCreatorTool(repo domain.TodoRepository, timeProvider domain.CurrentTimeProvider) TodoCreatorTool {
	return TodoCreatorTool{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Mutating reports that createTodo writes through to storage.
func (t TodoCreatorTool) Mutating() bool { return true }

// Definition returns the declaration for the createTodo tool.
func (t TodoCreatorTool) Definition() domain.LLMToolDefinition {
	return domain.LLMToolDefinition{
		Name:        ToolName_CreateTodo,
		Description: "새 할 일을 하나 추가합니다. todoContent와 todoDate(YYYY-MM-DD)는 필수입니다. Valid: {\"todoContent\":\"장보기\",\"todoDate\":\"2026-04-30\"}.",
		Parameters: domain.LLMToolParameters{
			Type: "object",
			Properties: map[string]domain.LLMToolParameterDetail{
				"todoContent": {
					Type:        "string",
					Description: "할 일 내용. REQUIRED.",
					Required:    true,
				},
				"todoDate": {
					Type:        "string",
					Description: "할 일 날짜. REQUIRED. YYYY-MM-DD 형식.",
					Required:    true,
				},
				"todoNote": {
					Type:        "string",
					Description: "메모 (optional).",
				},
			},
		},
	}
}

// Call executes createTodo. The date is validated before storage is touched.
func (t TodoCreatorTool) Call(ctx context.Context, req domain.ChatRequest, args map[string]any) map[string]any {
	params := struct {
		TodoContent string  `json:"todoContent"`
		TodoDate    string  `json:"todoDate"`
		TodoNote    *string `json:"todoNote"`
	}{}

	if err := unmarshalToolArguments(args, &params); err != nil {
		return map[string]any{
			"success": false,
			"error":   fmt.Sprintf("invalid arguments: %s", err.Error()),
		}
	}

	date, err := parseTodoDate(params.TodoDate)
	if err != nil {
		return map[string]any{
			"success": false,
			"error":   err.Error(),
		}
	}

	now := t.timeProvider.Now()
	todo := domain.Todo{
		OwnerSeq:  req.OwnerSeq,
		Content:   strings.TrimSpace(params.TodoContent),
		Date:      date,
		Note:      params.TodoNote,
		CreatedAt: now,
		CreatedIP: req.ClientAddr,
		UpdatedAt: now,
		UpdatedIP: req.ClientAddr,
	}
	if err := todo.Validate(); err != nil {
		return map[string]any{
			"success": false,
			"error":   err.Error(),
		}
	}

	created, err := t.repo.CreateTodo(ctx, todo)
	if err != nil {
		return map[string]any{
			"success": false,
			"error":   err.Error(),
		}
	}

	return map[string]any{
		"success": true,
		"data":    summarizeTodo(created, now),
	}
}

// TodoUpdaterTool is the tool behind updateTodo.
type TodoUpdaterTool struct {
	repo         domain.TodoRepository
	timeProvider domain.CurrentTimeProvider
}

// NewTodoUpdaterTool creates a new instance of TodoUpdaterTool.
func NewTodoUpdaterTool(repo domain.TodoRepository, timeProvider domain.CurrentTimeProvider) TodoUpdaterTool {
	return TodoUpdaterTool{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Mutating reports that updateTodo writes through to storage.
func (t TodoUpdaterTool) Mutating() bool { return true }

// Definition returns the declaration for the updateTodo tool.
func (t TodoUpdaterTool) Definition() domain.LLMToolDefinition {
	return domain.LLMToolDefinition{
		Name:        ToolName_UpdateTodo,
		Description: "기존 할 일 하나를 수정합니다. todoSeq는 필수이고 todoContent, isCompleted, todoNote 중 바꿀 항목만 전달합니다. Valid: {\"todoSeq\":3,\"isCompleted\":true}.",
		Parameters: domain.LLMToolParameters{
			Type: "object",
			Properties: map[string]domain.LLMToolParameterDetail{
				"todoSeq": {
					Type:        "integer",
					Description: "수정할 할 일의 번호. REQUIRED.",
					Required:    true,
				},
				"todoContent": {
					Type:        "string",
					Description: "새 내용 (optional).",
				},
				"isCompleted": {
					Type:        "boolean",
					Description: "완료 여부 (optional). true면 완료 처리, false면 완료 해제.",
				},
				"todoNote": {
					Type:        "string",
					Description: "새 메모 (optional).",
				},
			},
		},
	}
}

// Call executes updateTodo with a partial update. A missing or foreign item
// is reported inside the result, never raised.
func (t TodoUpdaterTool) Call(ctx context.Context, req domain.ChatRequest, args map[string]any) map[string]any {
	params := struct {
		TodoSeq     int64   `json:"todoSeq"`
		TodoContent *string `json:"todoContent"`
		IsCompleted *bool   `json:"isCompleted"`
		TodoNote    *string `json:"todoNote"`
	}{}

	if err := unmarshalToolArguments(args, &params); err != nil {
		return map[string]any{
			"success": false,
			"error":   fmt.Sprintf("invalid arguments: %s", err.Error()),
		}
	}

	if params.TodoSeq <= 0 {
		return map[string]any{
			"success": false,
			"error":   "todoSeq is required",
		}
	}

	patch := domain.TodoPatch{
		Content:   params.TodoContent,
		Note:      params.TodoNote,
		Completed: params.IsCompleted,
	}
	if patch.IsEmpty() {
		return map[string]any{
			"success": false,
			"error":   "no fields to update",
		}
	}

	now := t.timeProvider.Now()
	updated, found, err := t.repo.UpdateTodo(ctx, params.TodoSeq, req.OwnerSeq, patch, now, req.ClientAddr)
	if err != nil {
		return map[string]any{
			"success": false,
			"error":   err.Error(),
		}
	}
	if !found {
		return map[string]any{
			"success": false,
			"error":   "not found or access denied",
		}
	}

	return map[string]any{
		"success": true,
		"data":    summarizeTodo(updated, now),
	}
}

// parseTodoDate validates a YYYY-MM-DD tool argument. The regexp catches
// shape errors, the parse catches impossible dates like 2024-13-01.
func parseTodoDate(value string) (time.Time, error) {
	if !todoDateRe.MatchString(value) {
		return time.Time{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %q", value)
	}
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %q", value)
	}
	return date, nil
}

// unmarshalToolArguments decodes the function-call arguments into the target
// struct, rejecting unknown fields and trailing values.
func unmarshalToolArguments(args map[string]any, target any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return err
	}

	decoder := json.NewDecoder(strings.NewReader(string(raw)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("tool arguments must contain a single JSON object")
}

// InitLLMToolRegistry registers the tool manager with the three todo tools.
type InitLLMToolRegistry struct {
	TodoRepo     domain.TodoRepository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

func (i InitLLMToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LLMToolRegistry](NewLLMToolManager(
		NewTodoFetcherTool(
			i.TodoRepo,
			i.TimeProvider,
		),
		NewTodoCreatorTool(
			i.TodoRepo,
			i.TimeProvider,
		),
		NewTodoUpdaterTool(
			i.TodoRepo,
			i.TimeProvider,
		),
	))
	return ctx, nil
}
