package course

import "coursesync/internal/domain/course"

type listInput struct{}

type listOutput struct {
	Body []course.Course
}

type createInput struct {
	Body course.NewCourseRequest
}

type createOutput struct {
	Body course.Course
}
