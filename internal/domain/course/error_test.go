package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCourseRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     NewCourseRequest
		wantErr error
	}{
		{
			name:    "valid request",
			req:     NewCourseRequest{Title: "Algorithms", Period: 3},
			wantErr: nil,
		},
		{
			name:    "missing title",
			req:     NewCourseRequest{Title: "", Period: 3},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "period too low",
			req:     NewCourseRequest{Title: "Algorithms", Period: 0},
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "period too high",
			req:     NewCourseRequest{Title: "Algorithms", Period: 9},
			wantErr: ErrInvalidPeriod,
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
