package fx

import (
	"go.uber.org/fx"

	"github.com/norune/dunspars-sub000/internal/api"
	"github.com/norune/dunspars-sub000/internal/config"
	"github.com/norune/dunspars-sub000/internal/custom"
	"github.com/norune/dunspars-sub000/internal/database"
	"github.com/norune/dunspars-sub000/internal/logger"
	"github.com/norune/dunspars-sub000/internal/repository"
	"github.com/norune/dunspars-sub000/internal/service"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.OpenRead),
	// repos
	fx.Provide(repository.NewGameRepository),
	fx.Provide(repository.NewMoveRepository),
	fx.Provide(repository.NewTypeRepository),
	fx.Provide(repository.NewAbilityRepository),
	fx.Provide(repository.NewSpeciesRepository),
	fx.Provide(repository.NewPokemonRepository),
	fx.Provide(repository.NewMetaRepository),
	// api client
	fx.Provide(api.NewPokeAPIClient),
	// user files
	fx.Provide(config.NewFile),
	fx.Provide(custom.NewFile),
	fx.Provide(custom.NewTrainerFile),
	// svc
	fx.Provide(service.NewGameService),
	fx.Provide(service.NewMoveService),
	fx.Provide(service.NewTypeService),
	fx.Provide(service.NewAbilityService),
	fx.Provide(service.NewPokemonService),
	fx.Provide(service.NewValidateService),
	fx.Provide(service.NewMatchupService),
	fx.Provide(service.NewCoverageService),
	fx.Provide(service.NewSetupService),
)
