package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/sprig"
	"github.com/aretw0/sprig/internal/logging"
	"github.com/aretw0/sprig/pkg/codec"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/aretw0/sprig/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TodosURI is the resource holding the current todo list.
const TodosURI = "sprig://todos"

// StateResponse provides a unified structure across adapters.
type StateResponse struct {
	Todos  []string      `json:"todos" jsonschema_description:"The ordered todo list"`
	Change domain.Change `json:"change" jsonschema_description:"Rows touched by the last transition"`
}

// Server wraps a TodoStore and exposes it as an MCP Server.
type Server struct {
	store     ports.TodoStore
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the logger used for rejected tool calls.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(store ports.TodoStore, opts ...Option) *Server {
	s := &Server{
		store:     store,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("sprig-mcp", strings.TrimSpace(sprig.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_todos
	s.mcpServer.AddTool(mcp.NewTool("list_todos",
		mcp.WithDescription("List the current todos and the hint of the last change."),
		mcp.WithOutputSchema[StateResponse](),
	), mcp.NewStructuredToolHandler(s.handleList))

	// TOOL: add_todo
	s.mcpServer.AddTool(mcp.NewTool("add_todo",
		mcp.WithDescription("Append a todo to the end of the list."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text of the new todo")),
		mcp.WithOutputSchema[StateResponse](),
	), mcp.NewStructuredToolHandler(s.dispatchTool(domain.KindAddTodo)))

	// TOOL: remove_todo
	s.mcpServer.AddTool(mcp.NewTool("remove_todo",
		mcp.WithDescription("Remove the todo at a zero-based index."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("Zero-based index of the todo")),
		mcp.WithOutputSchema[StateResponse](),
	), mcp.NewStructuredToolHandler(s.dispatchTool(domain.KindRemoveTodo)))

	// TOOL: move_todo
	s.mcpServer.AddTool(mcp.NewTool("move_todo",
		mcp.WithDescription("Move a todo so that it ends up at the target index."),
		mcp.WithNumber("from", mcp.Required(), mcp.Description("Current index of the todo")),
		mcp.WithNumber("to", mcp.Required(), mcp.Description("Index the todo ends up at")),
		mcp.WithOutputSchema[StateResponse](),
	), mcp.NewStructuredToolHandler(s.dispatchTool(domain.KindMoveTodo)))

	// TOOL: clear_todos
	s.mcpServer.AddTool(mcp.NewTool("clear_todos",
		mcp.WithDescription("Remove every todo."),
		mcp.WithOutputSchema[StateResponse](),
	), mcp.NewStructuredToolHandler(s.dispatchTool(domain.KindClearAll)))
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StateResponse, error) {
	return toResponse(s.store.GetState()), nil
}

// dispatchTool builds a handler that decodes the tool arguments as the payload of kind.
func (s *Server) dispatchTool(kind domain.ActionKind) func(context.Context, mcp.CallToolRequest, map[string]interface{}) (StateResponse, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StateResponse, error) {
		env := codec.Envelope{Type: string(kind)}
		if len(args) > 0 {
			env.Payload = args
		}

		action, err := codec.Decode(env)
		if err != nil {
			s.logger.Warn("MCP: Arguments rejected", "tool", request.Params.Name, "err", err)
			return StateResponse{}, fmt.Errorf("invalid arguments: %w", err)
		}

		state, err := ports.DispatchState(s.store, action)
		if err != nil {
			if !errors.Is(err, domain.ErrIndexOutOfRange) {
				s.logger.Error("MCP: Dispatch failed", "tool", request.Params.Name, "err", err)
			}
			return StateResponse{}, fmt.Errorf("dispatch failed: %w", err)
		}
		return toResponse(state), nil
	}
}

func (s *Server) registerResources() {
	// EXPOSE: sprig://todos
	s.mcpServer.AddResource(mcp.NewResource(TodosURI, "Current Todo List",
		mcp.WithMIMEType("application/json"),
	), s.readTodos)
}

func (s *Server) readTodos(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(toResponse(s.store.GetState()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode todos: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TodosURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

func toResponse(state domain.State) StateResponse {
	todos := state.Todos
	if todos == nil {
		todos = []string{}
	}
	return StateResponse{Todos: todos, Change: state.Change}
}
