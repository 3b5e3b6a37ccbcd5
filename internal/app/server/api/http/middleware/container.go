// Package middleware bundles the huma middleware chain shared across
// handler groups.
package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates middlewares for the next handler group being
// wired up, then hands them over and resets.
type Container struct {
	huma.Middlewares
}

func NewContainer() *Container {
	return &Container{Middlewares: make(huma.Middlewares, 0)}
}

func (c *Container) Add(mw func(ctx huma.Context, next func(huma.Context))) {
	c.Middlewares = append(c.Middlewares, mw)
}

func (c *Container) GetAllAndClear() huma.Middlewares {
	result := c.Middlewares
	c.Middlewares = nil
	return result
}
