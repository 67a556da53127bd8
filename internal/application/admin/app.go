package admin

import (
	"github.com/plotbay/plotbay-backend/internal/application/admin/cmd"
)

type App struct {
	CMD Command
}

type Command struct {
	Register *cmd.RegisterHandler
}

type Args struct {
	Repo    cmd.AdminRepo
	Storage cmd.ImageStorage
	Namer   cmd.ImageNamer
}

func NewApp(args Args) *App {
	return &App{
		CMD: Command{
			Register: cmd.NewRegisterHandler(cmd.RegisterHandlerArgs{
				Repo:    args.Repo,
				Storage: args.Storage,
				Namer:   args.Namer,
			}),
		},
	}
}
