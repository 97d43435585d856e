package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/wotr-planner/internal/clients/catalog"
	"github.com/KirkDiggler/wotr-planner/internal/engine"
	"github.com/KirkDiggler/wotr-planner/internal/errors"
	"github.com/KirkDiggler/wotr-planner/internal/orchestrators/character"
	"github.com/KirkDiggler/wotr-planner/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/wotr-planner/internal/repositories/character"
)

// Config holds the dependencies for the roster
type Config struct {
	Repository  characterrepo.Repository
	Catalog     catalog.Reader
	Engine      engine.Engine
	EventBus    events.EventBus
	IDGenerator idgen.Generator

	// DefaultRace and DefaultClass override the baseline for new characters
	DefaultRace  string
	DefaultClass string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type roster struct {
	repo         characterrepo.Repository
	catalog      catalog.Reader
	engine       engine.Engine
	bus          events.EventBus
	idGen        idgen.Generator
	defaultRace  string
	defaultClass string
}

// New creates a roster service
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &roster{
		repo:         cfg.Repository,
		catalog:      cfg.Catalog,
		engine:       cfg.Engine,
		bus:          cfg.EventBus,
		idGen:        cfg.IDGenerator,
		defaultRace:  cfg.DefaultRace,
		defaultClass: cfg.DefaultClass,
	}, nil
}

func (r *roster) NewCharacter(ctx context.Context, input *NewCharacterInput) (*NewCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := r.newCharacter(r.idGen.Generate(), input.Name, input.RaceName, input.ClassName)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created character", "id", c.ID(), "race", c.Race().Name, "class", c.Class().Name)

	return &NewCharacterOutput{Character: c}, nil
}

func (r *roster) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	data := input.Character.Data()
	if data.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	updated, err := r.repo.Update(ctx, characterrepo.UpdateInput{CharacterData: data})
	if err == nil {
		slog.DebugContext(ctx, "updated saved build", "id", data.ID)
		return &SaveOutput{CharacterData: updated.CharacterData}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to save character %s", data.ID)
	}

	created, err := r.repo.Create(ctx, characterrepo.CreateInput{CharacterData: data})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", data.ID)
	}

	slog.InfoContext(ctx, "saved new build", "id", data.ID, "name", data.Name)

	return &SaveOutput{CharacterData: created.CharacterData, Created: true}, nil
}

func (r *roster) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("ID is required")
	}

	out, err := r.repo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load character %s", input.ID)
	}
	data := out.CharacterData

	// start from the baseline so a race or class that left the catalog is
	// reported like any other refused choice
	c, err := r.newCharacter(data.ID, "", "", "")
	if err != nil {
		return nil, err
	}

	rejected := ApplyBuild(ctx, c, data)
	if len(rejected) > 0 {
		slog.WarnContext(ctx, "saved build no longer fully applies",
			"id", data.ID,
			"rejected", len(rejected))
	}

	return &LoadOutput{Character: c, Rejected: rejected}, nil
}

func (r *roster) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	out, err := r.repo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	return &ListOutput{Characters: out.Characters}, nil
}

func (r *roster) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("ID is required")
	}

	if _, err := r.repo.Delete(ctx, characterrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.ID)
	}

	slog.InfoContext(ctx, "deleted saved build", "id", input.ID)

	return &DeleteOutput{}, nil
}

func (r *roster) newCharacter(id, name, raceName, className string) (*character.Character, error) {
	if raceName == "" {
		raceName = r.defaultRace
	}
	if className == "" {
		className = r.defaultClass
	}

	c, err := character.New(&character.Config{
		Catalog:   r.catalog,
		Engine:    r.engine,
		EventBus:  r.bus,
		ID:        id,
		Name:      name,
		RaceName:  raceName,
		ClassName: className,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}
	return c, nil
}
