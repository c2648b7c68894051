package routes

import (
	"sync"

	"care_chat/internal/profile"
	"care_chat/internal/services/assistant"
)

type Deps struct {
	Assistant *assistant.Service
	Profile   profile.Profile
}

var (
	depsMu   sync.RWMutex
	depsOnce bool
	deps     Deps
)

func SetDeps(next Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = next
	depsOnce = true
}

func getDeps() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	if !depsOnce {
		panic("routes deps not initialized")
	}
	return deps
}
