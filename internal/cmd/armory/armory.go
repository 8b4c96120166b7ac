// Package armory parses armory CLI flags and answers catalog queries.
package armory

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	entrypoint "github.com/louisbranch/ordnance/internal/platform/cmd"
	i18ncatalog "github.com/louisbranch/ordnance/internal/platform/i18n/catalog"
	"github.com/louisbranch/ordnance/internal/platform/otel"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/catalog"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/classify"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/compat"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
)

// Mode selects the query the CLI runs.
type Mode string

const (
	ModeList       Mode = "list"
	ModeShow       Mode = "show"
	ModeDefault    Mode = "default"
	ModeSwitch     Mode = "switch"
	ModeClassify   Mode = "classify"
	ModeCategories Mode = "categories"
)

var modes = []Mode{ModeList, ModeShow, ModeDefault, ModeSwitch, ModeClassify, ModeCategories}

// Config holds armory command configuration.
type Config struct {
	Mode   Mode
	Locale string `env:"LOCALE" envDefault:"en-US"`
	Year   int    `env:"ARMORY_YEAR" envDefault:"3050"`

	Filter    string
	Category  string
	Tag       string
	OrderBy   string
	PageSize  int
	PageToken string

	Key       string
	Candidate string

	RackSize   int
	StaticFeed bool

	Unit               string
	Interceptor        string
	PermissiveUnitAmmo bool `env:"ARMORY_PERMISSIVE_UNIT_AMMO"`
	InterceptArtillery bool `env:"ARMORY_INTERCEPT_ARTILLERY"`
}

// ParseConfig parses environment and flags into Config. The first
// positional argument is the mode.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "output locale")
	fs.IntVar(&cfg.Year, "year", cfg.Year, "campaign year for default selection")
	fs.StringVar(&cfg.Filter, "filter", "", "AIP-160 filter for list")
	fs.StringVar(&cfg.Category, "category", "", "category for list, default and categories")
	fs.StringVar(&cfg.Tag, "tag", "", "munition tag for list")
	fs.StringVar(&cfg.OrderBy, "order-by", "", "list ordering, e.g. \"cost desc\"")
	fs.IntVar(&cfg.PageSize, "page-size", 0, "records per list page")
	fs.StringVar(&cfg.PageToken, "page-token", "", "token from a previous list page")
	fs.StringVar(&cfg.Key, "key", "", "record key for show, switch and classify")
	fs.StringVar(&cfg.Candidate, "to", "", "candidate record key for switch")
	fs.IntVar(&cfg.RackSize, "rack", 0, "weapon rack size for default")
	fs.BoolVar(&cfg.StaticFeed, "static-feed", false, "weapon cannot switch ammunition mid-combat")
	fs.StringVar(&cfg.Unit, "unit", string(classify.UnitMek), "unit class for classify")
	fs.StringVar(&cfg.Interceptor, "interceptor", string(munition.FlagInterceptor), "comma-separated flags of the point-defense system for classify")
	fs.BoolVar(&cfg.PermissiveUnitAmmo, "permissive-unit-ammo", cfg.PermissiveUnitAmmo, "use permissive per-unit ammunition lists")
	fs.BoolVar(&cfg.InterceptArtillery, "intercept-artillery", cfg.InterceptArtillery, "allow point defense against artillery")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	cfg.Mode = ModeList
	if fs.NArg() > 0 {
		cfg.Mode = Mode(strings.ToLower(strings.TrimSpace(fs.Arg(0))))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	known := false
	for _, m := range modes {
		if c.Mode == m {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.Mode {
	case ModeShow, ModeClassify, ModeSwitch:
		if strings.TrimSpace(c.Key) == "" {
			return fmt.Errorf("%s requires -key", c.Mode)
		}
	case ModeDefault:
		if strings.TrimSpace(c.Category) == "" {
			return errors.New("default requires -category")
		}
	}
	return nil
}

// Run answers the configured query against the built catalog.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.Run(ctx, entrypoint.ServiceArmory, func(ctx context.Context) error {
		q := query{
			store:   catalog.Default(),
			rules:   classify.Default(),
			printer: i18ncatalog.Default().Printer(cfg.Locale),
			out:     out,
		}
		return q.run(ctx, cfg)
	})
}

type query struct {
	store   *catalog.Store
	rules   *classify.Rules
	printer *message.Printer
	out     io.Writer
}

func (q query) run(ctx context.Context, cfg Config) error {
	if q.out == nil {
		q.out = io.Discard
	}
	_, span := otel.Tracer(entrypoint.ServiceArmory).Start(ctx, "armory."+string(cfg.Mode))
	defer span.End()
	span.SetAttributes(attribute.String("armory.mode", string(cfg.Mode)))

	var err error
	switch cfg.Mode {
	case ModeList:
		err = q.list(cfg)
	case ModeShow:
		err = q.show(cfg)
	case ModeDefault:
		err = q.defaultFor(cfg)
	case ModeSwitch:
		err = q.loadoutSwitch(cfg)
	case ModeClassify:
		err = q.classify(cfg)
	case ModeCategories:
		err = q.categories()
	default:
		err = fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (q query) list(cfg Config) error {
	page, err := catalog.ListPage(q.store, catalog.PageRequest{
		ListRequest: catalog.ListRequest{
			Filter:   cfg.Filter,
			Category: munition.Category(strings.ToUpper(cfg.Category)),
			Tag:      munition.Tag(cfg.Tag),
		},
		OrderBy:   cfg.OrderBy,
		PageSize:  cfg.PageSize,
		PageToken: cfg.PageToken,
	})
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(q.out, 0, 4, 2, ' ', 0)
	for _, rec := range page.Records {
		q.printer.Fprintf(tw, "%s\t%s\t%d\t%.0f\t%v\n", rec.Key, rec.Name, rec.Shots, rec.Cost, rec.BV)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	q.println("cli.list.summary", page.TotalSize)
	if page.NextPageToken != "" {
		fmt.Fprintf(q.out, "next_page_token\t%s\n", page.NextPageToken)
	}
	return nil
}

func (q query) show(cfg Config) error {
	rec, ok := q.store.ByKey(cfg.Key)
	if !ok {
		q.println("cli.show.not_found", cfg.Key)
		return nil
	}

	tw := tabwriter.NewWriter(q.out, 0, 4, 2, ' ', 0)
	row := func(label string, value any) {
		fmt.Fprintf(tw, "%s\t%v\n", label, value)
	}
	row("key", rec.Key)
	row("name", rec.Name)
	row("short_name", rec.ShortName)
	row("category", rec.Category)
	row("rack_size", rec.RackSize)
	row("damage", rec.DamagePerShot)
	row("shots", rec.Shots)
	row("kg_per_shot", q.printer.Sprintf("%.2f", rec.KgPerShot()))
	row("cost", q.printer.Sprintf("%.0f", rec.Cost))
	row("bv", q.printer.Sprintf("%v", rec.BV))
	row("tech", fmt.Sprintf("%s %d-%d %s", rec.Tech.Base, rec.Tech.IntroYear, rec.Tech.ExtinctYear, rec.Tech.Level))
	row("tags", strings.Join(q.tagLabels(rec.Tags), ", "))
	row("flags", joinSorted(rec.Flags.Sorted()))
	if base, ok := q.store.BaseOf(rec); ok {
		row("base", base.Key)
	}
	return tw.Flush()
}

func (q query) defaultFor(cfg Config) error {
	weapon := compat.Weapon{
		Name:       cfg.Category,
		Category:   munition.Category(strings.ToUpper(cfg.Category)),
		RackSize:   cfg.RackSize,
		StaticFeed: cfg.StaticFeed,
	}
	rec, ok, err := compat.SelectDefaultForWeapon(q.store, weapon, cfg.Year)
	if err != nil {
		return err
	}
	if !ok {
		q.println("cli.default.none", weapon.Name, cfg.Year)
		return nil
	}
	q.println("cli.default.found", weapon.Name, cfg.Year, rec.Key)
	return nil
}

func (q query) loadoutSwitch(cfg Config) error {
	current, ok := q.store.ByKey(cfg.Key)
	if !ok {
		return notFound(cfg.Key)
	}

	if strings.TrimSpace(cfg.Candidate) != "" {
		candidate, ok := q.store.ByKey(cfg.Candidate)
		if !ok {
			return notFound(cfg.Candidate)
		}
		if compat.CanLoadoutSwitch(current, candidate, cfg.StaticFeed) {
			q.println("cli.switch.allowed", current.Key, candidate.Key)
		} else {
			q.println("cli.switch.denied", current.Key, candidate.Key)
		}
		return nil
	}

	var keys []string
	for _, candidate := range q.store.All() {
		if candidate.Ref != current.Ref && compat.CanLoadoutSwitch(current, candidate, cfg.StaticFeed) {
			keys = append(keys, candidate.Key)
		}
	}
	for _, key := range keys {
		fmt.Fprintln(q.out, key)
	}
	q.println("cli.switch.candidates", len(keys), current.Key)
	return nil
}

func (q query) classify(cfg Config) error {
	rec, ok := q.store.ByKey(cfg.Key)
	if !ok {
		return notFound(cfg.Key)
	}
	opts := classify.Options{
		InterceptArtillery: cfg.InterceptArtillery,
		PermissiveUnitAmmo: cfg.PermissiveUnitAmmo,
	}
	interceptor := munition.FlagSet{}
	for _, f := range strings.Split(cfg.Interceptor, ",") {
		if f = strings.TrimSpace(f); f != "" {
			interceptor[munition.Flag(strings.ToUpper(f))] = struct{}{}
		}
	}

	tw := tabwriter.NewWriter(q.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "area_denial\t%t\n", q.rules.IsAreaDenial(rec))
	fmt.Fprintf(tw, "minefield_delivery\t%t\n", q.rules.CanDeliverMinefield(rec))
	fmt.Fprintf(tw, "minefield_clearance\t%t\n", q.rules.CanClearMinefield(rec))
	fmt.Fprintf(tw, "interceptable\t%t\n", q.rules.CanBeIntercepted(rec, interceptor, opts))
	fmt.Fprintf(tw, "usable_by_%s\t%t\n", strings.ToLower(cfg.Unit), q.rules.UsableBy(rec, classify.UnitClass(strings.ToUpper(cfg.Unit)), opts))
	return tw.Flush()
}

func (q query) categories() error {
	categories, err := q.store.Categories()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(q.out, 0, 4, 2, ' ', 0)
	for _, c := range categories {
		records, err := q.store.ByCategory(c)
		if err != nil {
			return err
		}
		q.printer.Fprintf(tw, "%s\t%d\t%t\n", c, len(records), compat.Shareable(c))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	q.println("cli.categories.summary", len(categories))
	return nil
}

func (q query) println(key string, args ...any) {
	q.printer.Fprintf(q.out, key, args...)
	fmt.Fprintln(q.out)
}

func (q query) tagLabels(tags munition.TagSet) []string {
	labels := make([]string, 0, len(tags))
	for _, tag := range tags.Sorted() {
		label := q.printer.Sprintf(tag.MessageKey())
		if label == tag.MessageKey() {
			label = tag.Label()
		}
		labels = append(labels, label)
	}
	return labels
}

func joinSorted[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func notFound(key string) error {
	return apperrors.WithMetadata(apperrors.CodeNotFound, fmt.Sprintf("no record %q", key), map[string]string{"Key": key})
}
