// Package i18n loads message catalogs and resolves localization keys for
// component labels and rule element diagnostics.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/special-api/internal/errors"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale.
type Bundle struct {
	locales map[string]map[string]string
	tags    []language.Tag
	names   []string
	matcher language.Matcher
	builder *catalog.Builder
}

// LoadEmbedded loads the catalogs shipped with the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/*.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to glob locale catalogs")
	}
	if len(paths) == 0 {
		return nil, errors.NotFound("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read catalog %s", path)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog "+path)
		}
		if err := b.add(path, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, errors.FailedPreconditionf("base locale %s is not defined in catalogs", BaseLocale)
	}

	b.builder = catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	// The base locale goes first so the matcher prefers it on ties.
	b.names = append([]string{BaseLocale}, b.otherLocales()...)
	for _, name := range b.names {
		tag := language.MustParse(name)
		b.tags = append(b.tags, tag)
		for key, msg := range b.locales[name] {
			if err := b.builder.SetString(tag, key, msg); err != nil {
				return nil, errors.Wrapf(err, "failed to register %s/%s", name, key)
			}
		}
	}
	b.matcher = language.NewMatcher(b.tags)

	return b, nil
}

func (b *Bundle) add(path string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return errors.InvalidArgumentf("catalog %s: locale is required", path)
	}
	if _, err := language.Parse(locale); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("catalog %s: invalid locale %q", path, locale))
	}
	if _, exists := b.locales[locale]; exists {
		return errors.AlreadyExistsf("catalog %s: locale %q defined twice", path, locale)
	}
	if file.Messages == nil {
		return errors.InvalidArgumentf("catalog %s: messages map is required", path)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			return errors.InvalidArgumentf("catalog %s: message key cannot be blank", path)
		}
		messages[trimmed] = value
	}
	b.locales[locale] = messages
	return nil
}

func (b *Bundle) otherLocales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		if locale != BaseLocale {
			out = append(out, locale)
		}
	}
	sort.Strings(out)
	return out
}

// Locales returns the loaded locale identifiers, base locale first.
func (b *Bundle) Locales() []string {
	return append([]string(nil), b.names...)
}

// Localizer returns a localizer for the closest supported locale.
func (b *Bundle) Localizer(locale string) *Localizer {
	_, idx, _ := b.matcher.Match(language.Make(locale))
	tag := b.tags[idx]
	return &Localizer{
		bundle:  b,
		locale:  b.names[idx],
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
	}
}

// Localizer resolves keys for one locale.
type Localizer struct {
	bundle  *Bundle
	locale  string
	printer *message.Printer
}

// Locale returns the matched locale identifier.
func (l *Localizer) Locale() string {
	return l.locale
}

// Resolve returns the message for key, falling back to the base locale and
// finally to the key itself.
func (l *Localizer) Resolve(key string) string {
	if msg, ok := l.lookup(key); ok {
		return msg
	}
	return key
}

// Format renders a templated message with args. A missing key renders the
// key followed by its arguments.
func (l *Localizer) Format(key string, args ...any) string {
	fallback, ok := l.lookup(key)
	if !ok {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf("%s %v", key, args)
	}
	return l.printer.Sprintf(message.Key(key, fallback), args...)
}

func (l *Localizer) lookup(key string) (string, bool) {
	if msg, ok := l.bundle.locales[l.locale][key]; ok {
		return msg, true
	}
	msg, ok := l.bundle.locales[BaseLocale][key]
	return msg, ok
}
