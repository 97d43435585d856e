package catalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/wotr-planner/internal/errors"
)

// Catalog file names inside the data directory
const (
	RacesFile       = "races.json"
	ClassesFile     = "classes.json"
	HeritagesFile   = "heritages.json"
	BackgroundsFile = "backgrounds.json"
	SkillsFile      = "skills.json"
	FeatsFile       = "feats.json"
	TraitsFile      = "traits.json"
)

// Load reads every catalog file from dir. A missing or malformed file fails
// the whole load; malformed optional fields inside a record fall back to
// their zero value.
func Load(ctx context.Context, dir string) (*Catalog, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("data directory is required")
	}

	var data StaticData
	g, ctx := errgroup.WithContext(ctx)

	load := func(file string, parse func(gjson.Result)) {
		g.Go(func() error {
			records, err := readArray(ctx, filepath.Join(dir, file))
			if err != nil {
				return err
			}
			for _, r := range records {
				parse(r)
			}
			slog.DebugContext(ctx, "loaded catalog file", "file", file, "records", len(records))
			return nil
		})
	}

	load(RacesFile, func(r gjson.Result) { data.Races = append(data.Races, parseRace(r)) })
	load(ClassesFile, func(r gjson.Result) { data.Classes = append(data.Classes, parseClass(r)) })
	load(HeritagesFile, func(r gjson.Result) { data.Heritages = append(data.Heritages, parseHeritage(r)) })
	load(BackgroundsFile, func(r gjson.Result) { data.Backgrounds = append(data.Backgrounds, parseBackground(r)) })
	load(SkillsFile, func(r gjson.Result) { data.Skills = append(data.Skills, parseSkill(r)) })
	load(FeatsFile, func(r gjson.Result) { data.Feats = append(data.Feats, parseFeat(r)) })
	load(TraitsFile, func(r gjson.Result) { data.Traits = append(data.Traits, parseTrait(r)) })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewStatic(data), nil
}

func readArray(ctx context.Context, path string) ([]gjson.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "catalog load canceled")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	if !gjson.ValidBytes(raw) {
		return nil, errors.InvalidArgumentf("catalog file %s is not valid JSON", path).
			WithMeta("path", path)
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return nil, errors.InvalidArgumentf("catalog file %s must contain a JSON array", path).
			WithMeta("path", path)
	}

	return doc.Array(), nil
}
