package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const greetingKey = "good.morning.message"

func TestLoadEmbedded(t *testing.T) {
	b, err := LoadEmbedded("en-US")
	require.NoError(t, err)
	require.ElementsMatch(t, []language.Tag{language.English, language.French, language.Dutch}, b.Locales())
}

func TestLookup(t *testing.T) {
	b, err := LoadEmbedded("en-US")
	require.NoError(t, err)

	cases := []struct {
		accept string
		want   string
	}{
		{"", "Good Morning"},
		{"en-US,en;q=0.9", "Good Morning"},
		{"nl", "Goede Morgen"},
		{"nl-BE", "Goede Morgen"},
		{"fr-CA,fr;q=0.8", "Bonjour"},
		{"ja", "Default Message"},
		{"de-DE,de;q=0.9", "Default Message"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, b.Lookup(tc.accept, greetingKey, "Default Message"), tc.accept)
	}
}

func TestMessage_UnknownKeyFallsBack(t *testing.T) {
	b, err := LoadEmbedded("en")
	require.NoError(t, err)

	tag, ok := b.Resolve("fr")
	require.True(t, ok)
	require.Equal(t, "fallback", b.Message(tag, "no.such.key", "fallback"))
	require.Equal(t, "fallback", b.Message(language.Japanese, greetingKey, "fallback"))
}

func TestResolve_DefaultLocaleUnconfigured(t *testing.T) {
	b, err := LoadEmbedded("ja")
	require.NoError(t, err)

	_, ok := b.Resolve("")
	require.False(t, ok)
	require.Equal(t, "Default Message", b.Lookup("", greetingKey, "Default Message"))
}

func TestLoadFromFS_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty": {},
		"mismatched locale": {
			"locales/de.yaml": {Data: []byte("locale: \"fr\"\nmessages:\n  k: \"v\"\n")},
		},
		"no messages": {
			"locales/de.yaml": {Data: []byte("locale: \"de\"\n")},
		},
		"bad yaml": {
			"locales/de.yaml": {Data: []byte("locale: [\n")},
		},
	}
	for name, fsys := range cases {
		_, err := LoadFromFS(fsys, "en")
		require.Error(t, err, name)
	}
}

func TestLoadFromFS_CustomCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/de.yaml": {Data: []byte("locale: \"de\"\nmessages:\n  good.morning.message: \"Guten Morgen, %s\"\n")},
	}
	b, err := LoadFromFS(fsys, "de")
	require.NoError(t, err)
	require.Equal(t, "Guten Morgen, Ada", b.Lookup("de-AT", greetingKey, "x", "Ada"))
}

func TestLoadFromFS_BadDefaultLocale(t *testing.T) {
	_, err := LoadEmbedded("???")
	require.Error(t, err)
}

func TestLookup_LiteralPercent(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("locale: \"en\"\nmessages:\n  confidence: \"100% sure\"\n  progress: \"%d%% done\"\n")},
	}
	b, err := LoadFromFS(fsys, "en")
	require.NoError(t, err)
	require.Equal(t, "100% sure", b.Lookup("en", "confidence", "def"))
	require.Equal(t, "40% done", b.Lookup("en", "progress", "def", 40))
}
