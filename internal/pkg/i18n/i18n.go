// Package i18n resolves message keys against the caller's negotiated locale.
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

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale catalog and the matcher used to negotiate between them.
type Bundle struct {
	tags       []language.Tag
	messages   []map[string]string
	matcher    language.Matcher
	catalog    *catalog.Builder
	defaultTag language.Tag
}

// LoadEmbedded loads the catalogs shipped with the binary.
func LoadEmbedded(defaultLocale string) (*Bundle, error) {
	return LoadFromFS(embeddedLocales, defaultLocale)
}

// LoadFromFS loads every locales/<tag>.yaml file from fsys.
func LoadFromFS(fsys fs.FS, defaultLocale string) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	defaultTag, err := language.Parse(strings.TrimSpace(defaultLocale))
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	b := &Bundle{
		catalog:    catalog.NewBuilder(catalog.Fallback(defaultTag)),
		defaultTag: defaultTag,
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		if err := b.add(p, data); err != nil {
			return nil, err
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func (b *Bundle) add(p string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse catalog %s: %w", p, err)
	}

	fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if file.Locale != fromPath {
		return fmt.Errorf("catalog %s: locale %q must match file name %q", p, file.Locale, fromPath)
	}
	tag, err := language.Parse(file.Locale)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", p, err)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	msgs := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if err := b.catalog.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: key %q: %w", p, key, err)
		}
		msgs[key] = value
	}

	b.tags = append(b.tags, tag)
	b.messages = append(b.messages, msgs)
	return nil
}

// Locales returns the configured locale tags in load order.
func (b *Bundle) Locales() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// Resolve negotiates an Accept-Language header value against the loaded catalogs.
// An empty header negotiates the default locale instead. The bool is false when
// no catalog matches at all.
func (b *Bundle) Resolve(acceptLanguage string) (language.Tag, bool) {
	accept := strings.TrimSpace(acceptLanguage)
	if accept == "" {
		return b.match(b.defaultTag)
	}

	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return language.Und, false
	}
	return b.match(tags...)
}

func (b *Bundle) match(tags ...language.Tag) (language.Tag, bool) {
	_, index, confidence := b.matcher.Match(tags...)
	if confidence == language.No {
		return language.Und, false
	}
	return b.tags[index], true
}

// Message renders key for a resolved tag, or returns def when the key is not
// defined for that exact catalog. Without args the message is returned verbatim.
func (b *Bundle) Message(tag language.Tag, key, def string, args ...any) string {
	for i, t := range b.tags {
		if t != tag {
			continue
		}
		text, ok := b.messages[i][key]
		if !ok {
			return def
		}
		// catalog text is only a format string when there is something to format
		if len(args) == 0 {
			return text
		}
		return message.NewPrinter(tag, message.Catalog(b.catalog)).Sprintf(key, args...)
	}
	return def
}

// Lookup resolves the locale from acceptLanguage and renders key with the default fallback.
func (b *Bundle) Lookup(acceptLanguage, key, def string, args ...any) string {
	tag, ok := b.Resolve(acceptLanguage)
	if !ok {
		return def
	}
	return b.Message(tag, key, def, args...)
}
