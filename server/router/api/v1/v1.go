// Package v1 exposes the countdown parsing API.
package v1

import (
	"github.com/labstack/echo/v4"

	"countdown/internal/profile"
	"countdown/store"
)

type APIV1Service struct {
	Profile *profile.Profile
	Store   *store.Store
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store) *APIV1Service {
	return &APIV1Service{
		Profile: profile,
		Store:   store,
	}
}

// Register mounts the v1 routes on the echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.POST("/parse", s.ParseTimerPhrase)
	g.GET("/history", s.ListParseHistory)
	g.DELETE("/history/:id", s.DeleteParseHistory)
}
