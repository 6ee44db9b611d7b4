package translator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages, the first one is the fallback
}

const (
	LanguageEn = "en"
	LanguageFr = "fr"
	LanguageEs = "es"
)

var (
	supportedTags = []language.Tag{language.English}
	matcher       = language.NewMatcher(supportedTags)
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	matcher = newMatcher(cfg.SupportedLanguages)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || filepath.Ext(f.Name()) != ".toml" {
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// MatchLanguage resolves an Accept-Language header value to the closest
// supported language code.
func MatchLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		tags = []language.Tag{language.English}
	}

	_, index, _ := matcher.Match(tags...)
	supported := supportedTags[index]
	base, _ := supported.Base()
	return base.String()
}

func newMatcher(languages []string) language.Matcher {
	tags := make([]language.Tag, 0, len(languages))
	for _, lang := range languages {
		tag, err := language.Parse(strings.TrimSpace(lang))
		if err != nil {
			zap.L().Warn("ignoring unsupported language", zap.String("language", lang), zap.Error(err))
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = append(tags, language.English)
	}

	supportedTags = tags
	return language.NewMatcher(tags)
}
