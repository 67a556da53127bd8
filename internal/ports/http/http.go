package http

import (
	"github.com/go-chi/chi/v5"

	adminapp "github.com/plotbay/plotbay-backend/internal/application/admin"
	adminhttp "github.com/plotbay/plotbay-backend/internal/ports/http/admin"
)

type Port struct {
	admin *adminhttp.HTTP
}

type Args struct {
	AdminApp *adminapp.App
}

func NewPort(args Args) *Port {
	return &Port{
		admin: adminhttp.NewHTTP(adminhttp.Args{
			App: args.AdminApp,
		}),
	}
}

func (p *Port) Route(r chi.Router) chi.Router {
	if r == nil {
		r = chi.NewRouter()
	}

	p.admin.Route(r)

	return r
}
