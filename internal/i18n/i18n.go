// Package i18n translates display-name keys using embedded locale catalogs.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale every catalog falls back to.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Translator resolves keys for one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for the best available match of locale.
// Unknown locales fall back to BaseLocale.
func New(locale string) (*Translator, error) {
	return NewFromFS(embeddedLocales, locale)
}

// NewFromFS is New with locale catalogs read from fsys (locales/*.yaml).
func NewFromFS(fsys fs.FS, locale string) (*Translator, error) {
	builder, tags, err := loadCatalog(fsys)
	if err != nil {
		return nil, err
	}

	requested, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	_, idx, conf := language.NewMatcher(tags).Match(requested)
	tag := tags[idx]
	if conf == language.No {
		tag = language.MustParse(BaseLocale)
	}

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// Locale returns the locale the translator resolved to.
func (t *Translator) Locale() string { return t.tag.String() }

// Translate returns the localized text for key, or key itself if it is not in the catalog.
func (t *Translator) Translate(key string) string {
	return t.printer.Sprintf(key)
}

// loadCatalog reads every locale file. The base locale is always first in tags
// so the matcher treats it as the default.
func loadCatalog(fsys fs.FS) (*catalog.Builder, []language.Tag, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	builder := catalog.NewBuilder(catalog.Fallback(base))
	tags := []language.Tag{base}
	haveBase := false

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if file.Locale != name {
			return nil, nil, fmt.Errorf("catalog %s: locale %q must match file name", p, file.Locale)
		}
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog %s: parse locale tag: %w", p, err)
		}

		for key, msg := range file.Messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, nil, fmt.Errorf("catalog %s: key %q: %w", p, key, err)
			}
		}

		if tag == base {
			haveBase = true
			continue
		}
		tags = append(tags, tag)
	}

	if !haveBase {
		return nil, nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return builder, tags, nil
}
