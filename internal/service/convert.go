package service

import (
	"fmt"

	"github.com/norune/dunspars-sub000/internal/api"
	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/norune/dunspars-sub000/internal/repository"
)

// Conversions from API payloads to table rows. The setup pipeline is
// the only caller; nothing here touches the database.

func gameRows(groups []*api.VersionGroup) ([]domain.Game, map[string]int, error) {
	rows := make([]domain.Game, 0, len(groups))
	generations := make(map[string]int, len(groups))

	for _, group := range groups {
		generation, err := api.GenerationFromURL(group.Generation.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("version group %s: %w", group.Name, err)
		}
		rows = append(rows, domain.Game{
			ID:         group.ID,
			Name:       group.Name,
			Order:      group.Order,
			Generation: generation,
		})
		generations[group.Name] = generation
	}

	return rows, generations, nil
}

func moveRows(moves []*api.Move, vgGens map[string]int) ([]repository.MoveRow, []repository.MoveChangeRow, error) {
	rows := make([]repository.MoveRow, 0, len(moves))
	var changes []repository.MoveChangeRow

	for _, entry := range moves {
		generation, err := api.GenerationFromURL(entry.Generation.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("move %s: %w", entry.Name, err)
		}

		rows = append(rows, repository.MoveRow{
			ID:           entry.ID,
			Name:         entry.Name,
			Power:        entry.Power,
			Accuracy:     entry.Accuracy,
			PP:           entry.PP,
			EffectChance: entry.EffectChance,
			Effect:       api.EnglishEffect(entry.EffectEntries),
			Type:         entry.Type.Name,
			DamageClass:  entry.DamageClass.Name,
			Generation:   generation,
		})

		for _, past := range entry.PastValues {
			changeGen, ok := vgGens[past.VersionGroup.Name]
			if !ok {
				return nil, nil, fmt.Errorf("move %s: unknown version group %s", entry.Name, past.VersionGroup.Name)
			}

			change := domain.MoveChange{
				Power:        past.Power,
				Accuracy:     past.Accuracy,
				PP:           past.PP,
				EffectChance: past.EffectChance,
				// The API stamps past values with the version group the
				// change landed in; the old values were last valid one
				// generation earlier.
				Generation: changeGen - 1,
			}
			if past.Type != nil {
				change.Type = &past.Type.Name
			}
			if effect := api.EnglishEffect(past.EffectEntries); effect != "" {
				change.Effect = &effect
			}
			changes = append(changes, repository.MoveChangeRow{MoveChange: change, MoveID: entry.ID})
		}
	}

	return rows, changes, nil
}

func typeRows(types []*api.Type) ([]repository.TypeRow, []repository.TypeChangeRow, error) {
	rows := make([]repository.TypeRow, 0, len(types))
	var changes []repository.TypeChangeRow

	for _, entry := range types {
		generation, err := api.GenerationFromURL(entry.Generation.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("type %s: %w", entry.Name, err)
		}

		rows = append(rows, repository.TypeRow{
			ID:         entry.ID,
			Name:       entry.Name,
			Relations:  typeRelations(entry.DamageRelations),
			Generation: generation,
		})

		for _, past := range entry.PastDamageRelations {
			changeGen, err := api.GenerationFromURL(past.Generation.URL)
			if err != nil {
				return nil, nil, fmt.Errorf("type %s: %w", entry.Name, err)
			}
			changes = append(changes, repository.TypeChangeRow{
				TypeChange: domain.TypeChange{
					Relations:  typeRelations(past.DamageRelations),
					Generation: changeGen,
				},
				TypeID: entry.ID,
			})
		}
	}

	return rows, changes, nil
}

func abilityRows(abilities []*api.Ability, vgGens map[string]int) ([]repository.AbilityRow, []repository.AbilityChangeRow, error) {
	rows := make([]repository.AbilityRow, 0, len(abilities))
	var changes []repository.AbilityChangeRow

	for _, entry := range abilities {
		generation, err := api.GenerationFromURL(entry.Generation.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("ability %s: %w", entry.Name, err)
		}

		rows = append(rows, repository.AbilityRow{
			ID:         entry.ID,
			Name:       entry.Name,
			Effect:     api.EnglishEffect(entry.EffectEntries),
			Generation: generation,
		})

		for _, past := range entry.EffectChanges {
			effect := api.EnglishEffect(past.EffectEntries)
			if effect == "" {
				continue
			}
			changeGen, ok := vgGens[past.VersionGroup.Name]
			if !ok {
				return nil, nil, fmt.Errorf("ability %s: unknown version group %s", entry.Name, past.VersionGroup.Name)
			}
			// Same stamp convention as move past values.
			changes = append(changes, repository.AbilityChangeRow{
				AbilityChange: domain.AbilityChange{Effect: effect, Generation: changeGen - 1},
				AbilityID:     entry.ID,
			})
		}
	}

	return rows, changes, nil
}

func speciesRows(species []*api.PokemonSpecies) ([]repository.SpeciesRow, []int, error) {
	rows := make([]repository.SpeciesRow, 0, len(species))
	seen := make(map[int]struct{})
	var chainIDs []int

	for _, entry := range species {
		row := repository.SpeciesRow{
			ID:          entry.ID,
			Name:        entry.Name,
			IsBaby:      entry.IsBaby,
			IsLegendary: entry.IsLegendary,
			IsMythical:  entry.IsMythical,
		}
		if entry.EvolutionChain != nil && entry.EvolutionChain.URL != "" {
			id, err := api.IDFromURL(entry.EvolutionChain.URL)
			if err != nil {
				return nil, nil, fmt.Errorf("species %s: %w", entry.Name, err)
			}
			row.EvolutionID = &id
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				chainIDs = append(chainIDs, id)
			}
		}
		rows = append(rows, row)
	}

	return rows, chainIDs, nil
}

func evolutionRows(chains []*api.EvolutionChain) []repository.EvolutionRow {
	rows := make([]repository.EvolutionRow, 0, len(chains))
	for _, chain := range chains {
		tree := convertChain(chain.Chain)
		rows = append(rows, repository.EvolutionRow{ID: chain.ID, Tree: &tree})
	}
	return rows
}

func convertChain(link api.ChainLink) domain.EvolutionStep {
	step := domain.EvolutionStep{Name: link.Species.Name}
	for _, detail := range link.EvolutionDetails {
		step.Methods = append(step.Methods, evolutionMethod(detail))
	}
	for _, child := range link.EvolvesTo {
		step.EvolvesTo = append(step.EvolvesTo, convertChain(child))
	}
	return step
}

func evolutionMethod(detail api.EvolutionDetail) domain.EvolutionMethod {
	method := domain.EvolutionMethod{
		Trigger:               detail.Trigger.Name,
		Item:                  resourceName(detail.Item),
		Gender:                detail.Gender,
		HeldItem:              resourceName(detail.HeldItem),
		KnownMove:             resourceName(detail.KnownMove),
		KnownMoveType:         resourceName(detail.KnownMoveType),
		Location:              resourceName(detail.Location),
		MinLevel:              detail.MinLevel,
		MinHappiness:          detail.MinHappiness,
		MinBeauty:             detail.MinBeauty,
		MinAffection:          detail.MinAffection,
		PartySpecies:          resourceName(detail.PartySpecies),
		PartyType:             resourceName(detail.PartyType),
		RelativePhysicalStats: detail.RelativePhysicalStats,
		TradeSpecies:          resourceName(detail.TradeSpecies),
	}
	if detail.NeedsOverworldRain {
		yes := true
		method.NeedsOverworldRain = &yes
	}
	if detail.TimeOfDay != "" {
		timeOfDay := detail.TimeOfDay
		method.TimeOfDay = &timeOfDay
	}
	if detail.TurnUpsideDown {
		yes := true
		method.TurnUpsideDown = &yes
	}
	return method
}

func pokemonRows(
	pokemon []*api.Pokemon,
	moveIDs, abilityIDs map[string]int,
	vgGens map[string]int,
) ([]repository.PokemonRow, []repository.PokemonMoveRow, []repository.PokemonAbilityRow, []repository.PokemonTypeChangeRow, error) {
	rows := make([]repository.PokemonRow, 0, len(pokemon))
	var learnRows []repository.PokemonMoveRow
	var slotRows []repository.PokemonAbilityRow
	var changeRows []repository.PokemonTypeChangeRow

	for _, entry := range pokemon {
		speciesID, err := api.IDFromURL(entry.Species.URL)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("pokemon %s: %w", entry.Name, err)
		}
		primary, secondary, err := typeSlots(entry.Types)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("pokemon %s: %w", entry.Name, err)
		}

		row := repository.PokemonRow{
			ID:            entry.ID,
			Name:          entry.Name,
			PrimaryType:   primary,
			SecondaryType: secondary,
			SpeciesID:     speciesID,
		}
		for _, stat := range entry.Stats {
			switch stat.Stat.Name {
			case "hp":
				row.HP = stat.BaseStat
			case "attack":
				row.Attack = stat.BaseStat
			case "defense":
				row.Defense = stat.BaseStat
			case "special-attack":
				row.SpecialAttack = stat.BaseStat
			case "special-defense":
				row.SpecialDefense = stat.BaseStat
			case "speed":
				row.Speed = stat.BaseStat
			}
		}
		rows = append(rows, row)

		// Learnset and ability rows reference moves and abilities by id;
		// names outside the fetched sets are skipped.
		for _, learned := range entry.Moves {
			moveID, ok := moveIDs[learned.Move.Name]
			if !ok {
				continue
			}
			for _, detail := range learned.VersionGroupDetails {
				generation, ok := vgGens[detail.VersionGroup.Name]
				if !ok {
					continue
				}
				learnRows = append(learnRows, repository.PokemonMoveRow{
					MoveID:      moveID,
					LearnMethod: detail.MoveLearnMethod.Name,
					LearnLevel:  detail.LevelLearnedAt,
					Generation:  generation,
					PokemonID:   entry.ID,
				})
			}
		}

		for _, slot := range entry.Abilities {
			abilityID, ok := abilityIDs[slot.Ability.Name]
			if !ok {
				continue
			}
			slotRows = append(slotRows, repository.PokemonAbilityRow{
				AbilityID: abilityID,
				IsHidden:  slot.IsHidden,
				Slot:      slot.Slot,
				PokemonID: entry.ID,
			})
		}

		for _, past := range entry.PastTypes {
			generation, err := api.GenerationFromURL(past.Generation.URL)
			if err != nil {
				return nil, nil, nil, nil, fmt.Errorf("pokemon %s: %w", entry.Name, err)
			}
			pastPrimary, pastSecondary, err := typeSlots(past.Types)
			if err != nil {
				return nil, nil, nil, nil, fmt.Errorf("pokemon %s: %w", entry.Name, err)
			}
			changeRows = append(changeRows, repository.PokemonTypeChangeRow{
				PokemonTypeChange: domain.PokemonTypeChange{
					Types:      domain.TypePair{Primary: pastPrimary, Secondary: pastSecondary},
					Generation: generation,
				},
				PokemonID: entry.ID,
			})
		}
	}

	return rows, learnRows, slotRows, changeRows, nil
}

func typeSlots(slots []api.PokemonType) (string, *string, error) {
	var primary string
	var secondary *string
	for _, slot := range slots {
		switch slot.Slot {
		case 1:
			primary = slot.Type.Name
		case 2:
			name := slot.Type.Name
			secondary = &name
		}
	}
	if primary == "" {
		return "", nil, fmt.Errorf("no primary type slot")
	}
	return primary, secondary, nil
}

func typeRelations(relations api.TypeRelations) domain.TypeRelations {
	return domain.TypeRelations{
		NoDamageTo:       resourceNames(relations.NoDamageTo),
		HalfDamageTo:     resourceNames(relations.HalfDamageTo),
		DoubleDamageTo:   resourceNames(relations.DoubleDamageTo),
		NoDamageFrom:     resourceNames(relations.NoDamageFrom),
		HalfDamageFrom:   resourceNames(relations.HalfDamageFrom),
		DoubleDamageFrom: resourceNames(relations.DoubleDamageFrom),
	}
}

func resourceName(resource *api.NamedAPIResource) *string {
	if resource == nil {
		return nil
	}
	return &resource.Name
}

func resourceNames(resources []api.NamedAPIResource) []string {
	if len(resources) == 0 {
		return nil
	}
	names := make([]string, 0, len(resources))
	for _, resource := range resources {
		names = append(names, resource.Name)
	}
	return names
}

// knownTypes drops the placeholder types the API lists alongside the
// battle roster (unknown, shadow, stellar).
func knownTypes(names []string) []string {
	roster := make(map[string]struct{}, len(domain.Types))
	for _, name := range domain.Types {
		roster[name] = struct{}{}
	}

	known := make([]string, 0, len(domain.Types))
	for _, name := range names {
		if _, ok := roster[name]; ok {
			known = append(known, name)
		}
	}
	return known
}
