// Package catalog loads the embedded locale bundles used by the error
// renderer and the armory tools.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to.
const BaseLocale = "en-US"

// namespaces are the message files each locale may ship.
var namespaces = []string{"cli", "errors", "tags"}

type localeFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the locale messages and the x/text catalog built from them.
type Bundle struct {
	locales  []string
	tags     []language.Tag
	matcher  language.Matcher
	messages map[string]map[string]map[string]string
	builder  *xcatalog.Builder
}

//go:embed locales/*/*.yaml
var localesFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the bundle built from the embedded locales.
func Default() *Bundle {
	return defaultBundle
}

// Match returns the supported locale closest to locale, or BaseLocale when
// nothing matches.
func (b *Bundle) Match(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return BaseLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return BaseLocale
	}
	_, i, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return b.locales[i]
}

// Printer returns a printer for the matched locale backed by this bundle.
func (b *Bundle) Printer(locale string) *message.Printer {
	return message.NewPrinter(language.MustParse(b.Match(locale)), message.Catalog(b.builder))
}

// Namespace returns the matched locale and a copy of its namespace
// messages, with keys the locale lacks taken from BaseLocale.
func (b *Bundle) Namespace(locale, namespace string) (string, map[string]string) {
	resolved := b.Match(locale)
	out := map[string]string{}
	for key, text := range b.messages[BaseLocale][namespace] {
		out[key] = text
	}
	for key, text := range b.messages[resolved][namespace] {
		out[key] = text
	}
	return resolved, out
}

func load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	sort.Strings(paths)

	messages := map[string]map[string]map[string]string{}
	for _, p := range paths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		if err := checkFile(p, file); err != nil {
			return nil, err
		}
		if messages[file.Locale] == nil {
			messages[file.Locale] = map[string]map[string]string{}
		}
		messages[file.Locale][file.Namespace] = file.Messages
	}

	base, ok := messages[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is missing", BaseLocale)
	}
	seen := map[string]string{}
	for namespace, entries := range base {
		for key := range entries {
			if other, dup := seen[key]; dup {
				return nil, fmt.Errorf("key %q defined in both %s and %s", key, other, namespace)
			}
			seen[key] = namespace
		}
	}

	b := &Bundle{
		locales:  []string{BaseLocale},
		messages: messages,
		builder:  xcatalog.NewBuilder(xcatalog.Fallback(language.MustParse(BaseLocale))),
	}
	for locale := range messages {
		if locale != BaseLocale {
			b.locales = append(b.locales, locale)
		}
	}
	sort.Strings(b.locales[1:])

	for _, locale := range b.locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		b.tags = append(b.tags, tag)
		for key, text := range b.merged(locale) {
			if _, ok := seen[key]; !ok {
				return nil, fmt.Errorf("locale %s: key %q is not defined in %s", locale, key, BaseLocale)
			}
			if err := b.builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// merged flattens every namespace of locale over the base locale.
func (b *Bundle) merged(locale string) map[string]string {
	out := map[string]string{}
	for _, layer := range []string{BaseLocale, locale} {
		for _, entries := range b.messages[layer] {
			for key, text := range entries {
				out[key] = text
			}
		}
	}
	return out
}

func checkFile(p string, file localeFile) error {
	dirLocale := path.Base(path.Dir(p))
	fileNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	switch {
	case file.Locale != dirLocale:
		return fmt.Errorf("%s: locale %q does not match directory %q", p, file.Locale, dirLocale)
	case file.Namespace != fileNamespace:
		return fmt.Errorf("%s: namespace %q does not match file name %q", p, file.Namespace, fileNamespace)
	case !slices.Contains(namespaces, file.Namespace):
		return fmt.Errorf("%s: unknown namespace %q", p, file.Namespace)
	case len(file.Messages) == 0:
		return fmt.Errorf("%s: no messages", p)
	}
	for key := range file.Messages {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%s: blank message key", p)
		}
	}
	return nil
}

func mustLoadEmbedded() *Bundle {
	b, err := load(localesFS)
	if err != nil {
		panic(err)
	}
	return b
}
