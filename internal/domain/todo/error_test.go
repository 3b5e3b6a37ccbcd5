package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTodoRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     NewTodoRequest
		wantErr error
	}{
		{
			name:    "valid request",
			req:     NewTodoRequest{CourseID: "course-1", Title: "Problem set 3"},
			wantErr: nil,
		},
		{
			name:    "missing course id",
			req:     NewTodoRequest{CourseID: "", Title: "Problem set 3"},
			wantErr: ErrCourseRequired,
		},
		{
			name:    "missing title",
			req:     NewTodoRequest{CourseID: "course-1", Title: ""},
			wantErr: ErrTitleRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
