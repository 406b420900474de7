package api

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/norune/dunspars-sub000/internal/config"
	"github.com/norune/dunspars-sub000/internal/constants"
)

type PokeAPIClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewPokeAPIClient(cfg *config.Config) *PokeAPIClient {
	return &PokeAPIClient{
		baseURL: strings.TrimSuffix(cfg.APIBaseURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *PokeAPIClient) ListVersionGroups(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "version-group")
}

func (c *PokeAPIClient) ListMoves(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "move")
}

func (c *PokeAPIClient) ListTypes(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "type")
}

func (c *PokeAPIClient) ListAbilities(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "ability")
}

func (c *PokeAPIClient) ListPokemonSpecies(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "pokemon-species")
}

func (c *PokeAPIClient) ListPokemon(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "pokemon")
}

func (c *PokeAPIClient) listNames(ctx context.Context, endpoint string) ([]string, error) {
	url := fmt.Sprintf("%s/%s?limit=%d&offset=0", c.baseURL, endpoint, constants.ListPageLimit)
	page, err := doRequest[NamedResourceList](ctx, c, url)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(page.Results))
	for _, result := range page.Results {
		names = append(names, result.Name)
	}
	return names, nil
}

func (c *PokeAPIClient) GetVersionGroup(ctx context.Context, name string) (*VersionGroup, error) {
	url := fmt.Sprintf("%s/version-group/%s", c.baseURL, name)
	return doRequest[VersionGroup](ctx, c, url)
}

func (c *PokeAPIClient) GetMove(ctx context.Context, name string) (*Move, error) {
	url := fmt.Sprintf("%s/move/%s", c.baseURL, name)
	return doRequest[Move](ctx, c, url)
}

func (c *PokeAPIClient) GetType(ctx context.Context, name string) (*Type, error) {
	url := fmt.Sprintf("%s/type/%s", c.baseURL, name)
	return doRequest[Type](ctx, c, url)
}

func (c *PokeAPIClient) GetAbility(ctx context.Context, name string) (*Ability, error) {
	url := fmt.Sprintf("%s/ability/%s", c.baseURL, name)
	return doRequest[Ability](ctx, c, url)
}

func (c *PokeAPIClient) GetPokemonSpecies(ctx context.Context, name string) (*PokemonSpecies, error) {
	url := fmt.Sprintf("%s/pokemon-species/%s", c.baseURL, name)
	return doRequest[PokemonSpecies](ctx, c, url)
}

func (c *PokeAPIClient) GetEvolutionChain(ctx context.Context, id int) (*EvolutionChain, error) {
	url := fmt.Sprintf("%s/evolution-chain/%d", c.baseURL, id)
	return doRequest[EvolutionChain](ctx, c, url)
}

func (c *PokeAPIClient) GetPokemon(ctx context.Context, name string) (*Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%s", c.baseURL, name)
	return doRequest[Pokemon](ctx, c, url)
}

func doRequest[T any](ctx context.Context, client *PokeAPIClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent("dunspars/" + constants.Version)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type NamedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APIResource is a bare reference without a name, e.g. a species entry's
// evolution_chain link.
type APIResource struct {
	URL string `json:"url"`
}

type NamedResourceList struct {
	Count   int                `json:"count"`
	Results []NamedAPIResource `json:"results"`
}

type VersionGroup struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Order      int              `json:"order"`
	Generation NamedAPIResource `json:"generation"`
}

type VerboseEffect struct {
	Effect   string           `json:"effect"`
	Language NamedAPIResource `json:"language"`
}

type Move struct {
	ID            int                  `json:"id"`
	Name          string               `json:"name"`
	Accuracy      *int                 `json:"accuracy"`
	EffectChance  *int                 `json:"effect_chance"`
	PP            *int                 `json:"pp"`
	Power         *int                 `json:"power"`
	DamageClass   NamedAPIResource     `json:"damage_class"`
	Type          NamedAPIResource     `json:"type"`
	EffectEntries []VerboseEffect      `json:"effect_entries"`
	Generation    NamedAPIResource     `json:"generation"`
	PastValues    []PastMoveStatValues `json:"past_values"`
}

type PastMoveStatValues struct {
	Accuracy      *int              `json:"accuracy"`
	EffectChance  *int              `json:"effect_chance"`
	Power         *int              `json:"power"`
	PP            *int              `json:"pp"`
	EffectEntries []VerboseEffect   `json:"effect_entries"`
	Type          *NamedAPIResource `json:"type"`
	VersionGroup  NamedAPIResource  `json:"version_group"`
}

type Type struct {
	ID                  int                 `json:"id"`
	Name                string              `json:"name"`
	DamageRelations     TypeRelations       `json:"damage_relations"`
	PastDamageRelations []TypeRelationsPast `json:"past_damage_relations"`
	Generation          NamedAPIResource    `json:"generation"`
}

type TypeRelations struct {
	NoDamageTo       []NamedAPIResource `json:"no_damage_to"`
	HalfDamageTo     []NamedAPIResource `json:"half_damage_to"`
	DoubleDamageTo   []NamedAPIResource `json:"double_damage_to"`
	NoDamageFrom     []NamedAPIResource `json:"no_damage_from"`
	HalfDamageFrom   []NamedAPIResource `json:"half_damage_from"`
	DoubleDamageFrom []NamedAPIResource `json:"double_damage_from"`
}

type TypeRelationsPast struct {
	Generation      NamedAPIResource `json:"generation"`
	DamageRelations TypeRelations    `json:"damage_relations"`
}

type Ability struct {
	ID            int                   `json:"id"`
	Name          string                `json:"name"`
	EffectEntries []VerboseEffect       `json:"effect_entries"`
	EffectChanges []AbilityEffectChange `json:"effect_changes"`
	Generation    NamedAPIResource      `json:"generation"`
}

type AbilityEffectChange struct {
	EffectEntries []VerboseEffect  `json:"effect_entries"`
	VersionGroup  NamedAPIResource `json:"version_group"`
}

type PokemonSpecies struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	IsBaby         bool         `json:"is_baby"`
	IsLegendary    bool         `json:"is_legendary"`
	IsMythical     bool         `json:"is_mythical"`
	EvolutionChain *APIResource `json:"evolution_chain"`
}

type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

type ChainLink struct {
	Species          NamedAPIResource  `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

type EvolutionDetail struct {
	Item                  *NamedAPIResource `json:"item"`
	Trigger               NamedAPIResource  `json:"trigger"`
	Gender                *int              `json:"gender"`
	HeldItem              *NamedAPIResource `json:"held_item"`
	KnownMove             *NamedAPIResource `json:"known_move"`
	KnownMoveType         *NamedAPIResource `json:"known_move_type"`
	Location              *NamedAPIResource `json:"location"`
	MinLevel              *int              `json:"min_level"`
	MinHappiness          *int              `json:"min_happiness"`
	MinBeauty             *int              `json:"min_beauty"`
	MinAffection          *int              `json:"min_affection"`
	NeedsOverworldRain    bool              `json:"needs_overworld_rain"`
	PartySpecies          *NamedAPIResource `json:"party_species"`
	PartyType             *NamedAPIResource `json:"party_type"`
	RelativePhysicalStats *int              `json:"relative_physical_stats"`
	TimeOfDay             string            `json:"time_of_day"`
	TradeSpecies          *NamedAPIResource `json:"trade_species"`
	TurnUpsideDown        bool              `json:"turn_upside_down"`
}

type Pokemon struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Species   NamedAPIResource  `json:"species"`
	Stats     []PokemonStat     `json:"stats"`
	Types     []PokemonType     `json:"types"`
	PastTypes []PokemonTypePast `json:"past_types"`
	Abilities []PokemonAbility  `json:"abilities"`
	Moves     []PokemonMove     `json:"moves"`
}

type PokemonStat struct {
	BaseStat int              `json:"base_stat"`
	Stat     NamedAPIResource `json:"stat"`
}

type PokemonType struct {
	Slot int              `json:"slot"`
	Type NamedAPIResource `json:"type"`
}

type PokemonTypePast struct {
	Generation NamedAPIResource `json:"generation"`
	Types      []PokemonType    `json:"types"`
}

type PokemonAbility struct {
	IsHidden bool             `json:"is_hidden"`
	Slot     int              `json:"slot"`
	Ability  NamedAPIResource `json:"ability"`
}

type PokemonMove struct {
	Move                NamedAPIResource     `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

type VersionGroupDetail struct {
	LevelLearnedAt  int              `json:"level_learned_at"`
	MoveLearnMethod NamedAPIResource `json:"move_learn_method"`
	VersionGroup    NamedAPIResource `json:"version_group"`
}

var (
	urlIDPattern  = regexp.MustCompile(`/(\d+)/?$`)
	urlGenPattern = regexp.MustCompile(`generation/(\d+)/?$`)
)

// IDFromURL extracts the trailing resource id from a PokeAPI url.
func IDFromURL(url string) (int, error) {
	m := urlIDPattern.FindStringSubmatch(url)
	if m == nil {
		return 0, fmt.Errorf("no resource id in url %q", url)
	}
	return strconv.Atoi(m[1])
}

// GenerationFromURL extracts the generation number from a generation url.
func GenerationFromURL(url string) (int, error) {
	m := urlGenPattern.FindStringSubmatch(url)
	if m == nil {
		return 0, fmt.Errorf("no generation in url %q", url)
	}
	return strconv.Atoi(m[1])
}

// EnglishEffect picks the english entry out of a localized effect list.
func EnglishEffect(entries []VerboseEffect) string {
	for _, entry := range entries {
		if entry.Language.Name == "en" {
			return entry.Effect
		}
	}
	return ""
}
