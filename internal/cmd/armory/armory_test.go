package armory

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	i18ncatalog "github.com/louisbranch/ordnance/internal/platform/i18n/catalog"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/catalog"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/classify"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("armory", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Mode != ModeList || cfg.Year != 3050 || cfg.Locale != "en-US" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigModeAndFlags(t *testing.T) {
	t.Setenv("ORDNANCE_ARMORY_YEAR", "3067")

	cfg, err := ParseConfig(flag.NewFlagSet("armory", flag.ContinueOnError),
		[]string{"-category", "LRM", "-rack", "10", "default"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Mode != ModeDefault || cfg.Category != "LRM" || cfg.RackSize != 10 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Year != 3067 {
		t.Fatalf("year = %d, want env value", cfg.Year)
	}
}

func TestParseConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"explode"}},
		{"show without key", []string{"show"}},
		{"switch without key", []string{"switch"}},
		{"classify without key", []string{"classify"}},
		{"default without category", []string{"default"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig(flag.NewFlagSet("armory", flag.ContinueOnError), tt.args); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestListFilter(t *testing.T) {
	out := runQuery(t, Config{Mode: ModeList, Category: "lrm", Filter: `rack_size = 10 AND shots >= 12`})
	if !strings.Contains(out, "IS-Ammo-LRM-10") {
		t.Fatalf("expected LRM-10 in output:\n%s", out)
	}
	if strings.Contains(out, "IS-Ammo-LRM-5") {
		t.Fatalf("expected rack filter to exclude LRM-5:\n%s", out)
	}
	if !strings.Contains(out, "records") {
		t.Fatalf("expected summary line:\n%s", out)
	}
}

func TestListInvalidFilter(t *testing.T) {
	q := newQuery(&bytes.Buffer{})
	err := q.run(context.Background(), Config{Mode: ModeList, Filter: "rack_size >"})
	if apperrors.CodeOf(err) != apperrors.CodeInvalidFilter {
		t.Fatalf("err = %v, want invalid filter", err)
	}
}

func TestShow(t *testing.T) {
	out := runQuery(t, Config{Mode: ModeShow, Key: "IS-AC5-Precision-Ammo"})
	for _, want := range []string{"Precision AC/5 Ammo", "IS-AC5-Ammo", "Precision"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestShowMissing(t *testing.T) {
	out := runQuery(t, Config{Mode: ModeShow, Key: "IS-Ammo-Nothing"})
	if !strings.Contains(out, "No ammunition with key IS-Ammo-Nothing") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDefault(t *testing.T) {
	out := runQuery(t, Config{Mode: ModeDefault, Category: "LRM", RackSize: 10, Year: 3050})
	if !strings.Contains(out, "IS-Ammo-LRM-10") {
		t.Fatalf("unexpected output %q", out)
	}

	out = runQuery(t, Config{Mode: ModeDefault, Category: "GAUSS", RackSize: 7, Year: 3050})
	if !strings.HasPrefix(out, "No default ammunition for GAUSS") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSwitch(t *testing.T) {
	out := runQuery(t, Config{Mode: ModeSwitch, Key: "IS-Ammo-LRM-10", Candidate: "IS-Ammo-LRM-Swarm-10"})
	if !strings.Contains(out, "can switch") {
		t.Fatalf("unexpected output %q", out)
	}
	out = runQuery(t, Config{Mode: ModeSwitch, Key: "IS-Ammo-LRM-10", Candidate: "IS-Ammo-LRM-Swarm-10", StaticFeed: true})
	if !strings.Contains(out, "cannot switch") {
		t.Fatalf("unexpected static-feed output %q", out)
	}
	out = runQuery(t, Config{Mode: ModeSwitch, Key: "IS-Ammo-LRM-10"})
	if !strings.Contains(out, "IS-Ammo-LRM-Swarm-10") || strings.Contains(out, "IS-Ammo-LRM-5\n") {
		t.Fatalf("unexpected candidate list:\n%s", out)
	}
}

func TestSwitchMissingKey(t *testing.T) {
	q := newQuery(&bytes.Buffer{})
	err := q.run(context.Background(), Config{Mode: ModeSwitch, Key: "IS-Ammo-Nothing"})
	if apperrors.CodeOf(err) != apperrors.CodeNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
	if got := apperrors.Localize(err, "en-US"); !strings.Contains(got, "IS-Ammo-Nothing") {
		t.Fatalf("localized = %q", got)
	}
}

func TestClassify(t *testing.T) {
	out := runQuery(t, Config{Mode: ModeClassify, Key: "IS-Ammo-LRM-Thunder-10", Unit: "MEK", Interceptor: "INTERCEPTOR"})
	values := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 {
			values[fields[0]] = fields[1]
		}
	}
	if values["area_denial"] != "true" {
		t.Fatalf("expected area denial:\n%s", out)
	}
	if values["interceptable"] != "true" {
		t.Fatalf("expected missiles to be interceptable:\n%s", out)
	}
	if values["usable_by_mek"] != "true" {
		t.Fatalf("expected mek to be unrestricted:\n%s", out)
	}
}

func TestCategories(t *testing.T) {
	out := runQuery(t, Config{Mode: ModeCategories})
	if !strings.Contains(out, "LRM") || !strings.Contains(out, "categories") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	var out bytes.Buffer
	q := newQuery(&out)
	q.printer = i18ncatalog.Default().Printer("xx-YY")
	if err := q.run(context.Background(), Config{Mode: ModeShow, Key: "IS-Ammo-Nothing"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "No ammunition with key IS-Ammo-Nothing") {
		t.Fatalf("expected en-US output, got %q", out.String())
	}
}

func TestRunUsesConfiguredLocale(t *testing.T) {
	t.Setenv("ORDNANCE_OTEL_ENDPOINT", "")
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Mode: ModeShow, Key: "IS-Ammo-Nothing", Locale: "pt-BR"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Nenhuma munição") {
		t.Fatalf("expected pt-BR output, got %q", out.String())
	}
}

func newQuery(out *bytes.Buffer) query {
	return query{
		store:   catalog.Default(),
		rules:   classify.Default(),
		printer: i18ncatalog.Default().Printer("en-US"),
		out:     out,
	}
}

func runQuery(t *testing.T, cfg Config) string {
	t.Helper()
	var out bytes.Buffer
	if err := newQuery(&out).run(context.Background(), cfg); err != nil {
		t.Fatalf("run %s: %v", cfg.Mode, err)
	}
	return out.String()
}

func TestListPaging(t *testing.T) {
	out := runQuery(t, Config{Mode: ModeList, Category: "AC", PageSize: 2, OrderBy: "key"})
	if !strings.Contains(out, "next_page_token") {
		t.Fatalf("expected a next page token:\n%s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected two records, a summary and a token, got:\n%s", out)
	}
}
