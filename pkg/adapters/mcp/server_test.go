package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/sprig"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	return req
}

func TestDispatchTools(t *testing.T) {
	store := sprig.NewTodoStore()
	s := NewServer(store)
	ctx := context.Background()

	resp, err := s.dispatchTool(domain.KindAddTodo)(ctx, callRequest("add_todo"), map[string]interface{}{"text": "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, resp.Todos)

	_, err = s.dispatchTool(domain.KindAddTodo)(ctx, callRequest("add_todo"), map[string]interface{}{"text": "b"})
	require.NoError(t, err)

	// JSON numbers arrive as float64.
	resp, err = s.dispatchTool(domain.KindMoveTodo)(ctx, callRequest("move_todo"), map[string]interface{}{"from": float64(0), "to": float64(1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, resp.Todos)
	assert.Equal(t, domain.Change{Kind: domain.ChangeMove, From: 0, To: 1}, resp.Change)

	resp, err = s.dispatchTool(domain.KindRemoveTodo)(ctx, callRequest("remove_todo"), map[string]interface{}{"index": float64(0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, resp.Todos)

	resp, err = s.dispatchTool(domain.KindClearAll)(ctx, callRequest("clear_todos"), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Todos)
	assert.Equal(t, domain.ChangeReload, resp.Change.Kind)
}

func TestDispatchTools_Errors(t *testing.T) {
	store := sprig.NewTodoStoreWithTodos([]string{"only"})
	s := NewServer(store)
	ctx := context.Background()

	_, err := s.dispatchTool(domain.KindRemoveTodo)(ctx, callRequest("remove_todo"), map[string]interface{}{"index": float64(3)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	_, err = s.dispatchTool(domain.KindAddTodo)(ctx, callRequest("add_todo"), map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")

	assert.Equal(t, []string{"only"}, store.GetState().Todos)
}

func TestListTodos(t *testing.T) {
	s := NewServer(sprig.NewTodoStoreWithTodos([]string{"x", "y"}))

	resp, err := s.handleList(context.Background(), callRequest("list_todos"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, resp.Todos)
	assert.Equal(t, domain.ChangeNone, resp.Change.Kind)
}

func TestReadTodosResource(t *testing.T) {
	store := sprig.NewTodoStore()
	s := NewServer(store)

	contents, err := s.readTodos(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, TodosURI, text.URI)
	assert.JSONEq(t, `{"todos":[],"change":{"kind":"none","from":-1,"to":-1}}`, text.Text)

	_, err = store.Dispatch(domain.AddTodo{Text: "milk"})
	require.NoError(t, err)

	contents, err = s.readTodos(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)

	var resp StateResponse
	require.NoError(t, json.Unmarshal([]byte(contents[0].(mcp.TextResourceContents).Text), &resp))
	assert.Equal(t, []string{"milk"}, resp.Todos)
}
