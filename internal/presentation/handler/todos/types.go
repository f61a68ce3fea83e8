package todos

// createTodoRequest represents the request to add a todo
type createTodoRequest struct {
	Text string `json:"text" minLength:"1" maxLength:"200"` // Todo text
}

// updateTodoRequest represents the request to update a todo; only the done
// flag can ever change
type updateTodoRequest struct {
	Done *bool `json:"done"`
}

// deleteTodoResponse acknowledges a successful delete
type deleteTodoResponse struct {
	OK bool `json:"ok" example:"true"`
}
