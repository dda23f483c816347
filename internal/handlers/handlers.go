package handlers

import (
	"github.com/pollbooth-dev/pollbooth/internal/auth"
	"github.com/pollbooth-dev/pollbooth/internal/store"
)

// Handlers carries the application dependencies into the route handlers.
// Everything is injected; there are no package-level singletons.
type Handlers struct {
	Store    *store.Store
	Auth     *auth.Service
	Sessions *auth.Sessions
}

func New(st *store.Store, svc *auth.Service, sessions *auth.Sessions) *Handlers {
	return &Handlers{
		Store:    st,
		Auth:     svc,
		Sessions: sessions,
	}
}
