package routes

import (
	"github.com/vango-go/vango"

	"care_chat/app/routes/api"
)

func Register(app *vango.App) {
	app.Layout("/", Layout)
	app.Page("/", IndexPage)
	app.API("GET", "/api/health", api.HealthGET)
}
