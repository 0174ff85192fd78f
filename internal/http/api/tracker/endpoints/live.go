package endpoints

import (
	"net/http"

	"github.com/nur-collective/siyam/internal/http/api"
	"github.com/nur-collective/siyam/internal/realtime"
)

// LiveModule mounts the websocket group feed. Auth happens inside the
// handler (JWT via query parameter), so the module is mounted on the
// public group.
func LiveModule(jwtSecret string, hub *realtime.Hub) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW(http.MethodGet, "/live", hub.HandleWS(jwtSecret))
	})
}
