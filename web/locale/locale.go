// Package locale translates UI messages with go-i18n. The localizer is
// chosen per request and stored in the gin context.
package locale

import (
	"io/fs"
	"strings"

	"github.com/shopdesk/shopdesk/logger"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	contextKey = "localizer"
	printerKey = "printer"
	langCookie = "lang"
)

// Bundle holds the parsed translations and the language used when the
// request asks for none of them.
type Bundle struct {
	bundle      *i18n.Bundle
	defaultLang string
	matcher     language.Matcher
}

// NewBundle parses every translation file under dir in fsys.
func NewBundle(fsys fs.FS, dir string, defaultLang string) (*Bundle, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, err
	}
	b := i18n.NewBundle(tag)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	err = fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		_, err = b.ParseMessageFileBytes(data, path)
		return err
	})
	if err != nil {
		return nil, err
	}
	tags := []language.Tag{tag}
	for _, t := range b.LanguageTags() {
		if t != tag {
			tags = append(tags, t)
		}
	}
	return &Bundle{bundle: b, defaultLang: defaultLang, matcher: language.NewMatcher(tags)}, nil
}

// Localizer returns a localizer preferring langs, then the default language.
func (b *Bundle) Localizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(b.bundle, append(langs, b.defaultLang)...)
}

// Printer returns a number printer for the best supported match of langs,
// which may be Accept-Language lists.
func (b *Bundle) Printer(langs ...string) *message.Printer {
	tag, _ := language.MatchStrings(b.matcher, langs...)
	return message.NewPrinter(tag)
}

// LocalizerMiddleware picks the language from the lang cookie, falling back
// to the Accept-Language header.
func (b *Bundle) LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string
		if cookie, err := c.Request.Cookie(langCookie); err == nil {
			lang = cookie.Value
		} else {
			lang = c.GetHeader("Accept-Language")
		}
		c.Set(contextKey, b.Localizer(lang))
		c.Set(printerKey, b.Printer(lang))
		c.Next()
	}
}

// FromContext returns the request localizer, or nil outside the middleware.
func FromContext(c *gin.Context) *i18n.Localizer {
	if v, ok := c.Get(contextKey); ok {
		if l, ok := v.(*i18n.Localizer); ok {
			return l
		}
	}
	return nil
}

// PrinterFromContext returns the request number printer, or nil outside the
// middleware.
func PrinterFromContext(c *gin.Context) *message.Printer {
	if v, ok := c.Get(printerKey); ok {
		if p, ok := v.(*message.Printer); ok {
			return p
		}
	}
	return nil
}

// FormatPrice renders amount with two decimals using the separators of the
// printer's language. A nil printer formats for the root locale.
func FormatPrice(p *message.Printer, amount float64) string {
	if p == nil {
		p = message.NewPrinter(language.Und)
	}
	return p.Sprintf("%v", number.Decimal(amount, number.Scale(2)))
}

// I18n translates key. Params are "name==value" pairs filling the message
// template. The key itself is returned when no translation exists.
func I18n(localizer *i18n.Localizer, key string, params ...string) string {
	if localizer == nil {
		return key
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: createTemplateData(params),
	})
	if err != nil {
		logger.Warningf("Failed to localize message %q: %v", key, err)
		return key
	}
	return msg
}

func createTemplateData(params []string) map[string]any {
	templateData := make(map[string]any, len(params))
	for _, param := range params {
		parts := strings.SplitN(param, "==", 2)
		if len(parts) != 2 {
			continue
		}
		templateData[parts[0]] = parts[1]
	}
	return templateData
}
