package todo

import "coursesync/internal/domain/todo"

type listInput struct {
	IncludeArchived bool `query:"include_archived"`
}

type listOutput struct {
	Body []todo.Todo
}

type createInput struct {
	Body todo.NewTodoRequest
}

type createOutput struct {
	Body todo.Todo
}

type updateInput struct {
	ID   string `path:"id"`
	Body todo.UpdateTodoRequest
}

type updateOutput struct {
	Body todo.Todo
}

type archiveInput struct {
	ID string `path:"id"`
}

type archiveOutput struct {
	Status int
}
