package language_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldelorme/ratematch/internal/core/language"
	"github.com/ldelorme/ratematch/internal/platform/apperr"
)

/*
TestLanguage_RoundTrip verifies Parse(Code(v)) == v for every valid language.
*/
func TestLanguage_RoundTrip(t *testing.T) {
	for _, lang := range language.All() {
		parsed, err := language.Parse(lang.Code())
		require.NoError(t, err)
		assert.Equal(t, lang, parsed)
	}
}

/*
TestLanguage_Parse covers the exact-match decode contract: both valid codes
and a representative set of invalid inputs (wrong case, wrong length,
unknown codes).
*/
func TestLanguage_Parse(t *testing.T) {
	tests := []struct {
		raw     string
		want    language.Language
		wantErr bool
	}{
		{"FRE", language.French, false},
		{"ENG", language.English, false},
		{"fre", 0, true},
		{"eng", 0, true},
		{"EN", 0, true},
		{"ENGL", 0, true},
		{"GER", 0, true},
		{"", 0, true},
		{" ENG", 0, true},
	}

	for _, tt := range tests {
		t.Run("code_"+tt.raw, func(t *testing.T) {
			parsed, err := language.Parse(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "INVALID_LANGUAGE_CODE", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed)
		})
	}
}

/*
TestLanguage_JSON checks that languages marshal to their 3-letter codes and
that unmarshaling rejects unknown codes with the typed error.
*/
func TestLanguage_JSON(t *testing.T) {
	data, err := json.Marshal(language.French)
	require.NoError(t, err)
	assert.Equal(t, `"FRE"`, string(data))

	var lang language.Language
	require.NoError(t, json.Unmarshal([]byte(`"ENG"`), &lang))
	assert.Equal(t, language.English, lang)

	err = json.Unmarshal([]byte(`"XXX"`), &lang)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INVALID_LANGUAGE_CODE", ae.Code)
}

/*
TestLanguage_SQL checks the database round trip: Value produces the storage
code and Scan decodes it, rejecting anything outside the set.
*/
func TestLanguage_SQL(t *testing.T) {
	value, err := language.English.Value()
	require.NoError(t, err)
	assert.Equal(t, "ENG", value)

	var lang language.Language
	require.NoError(t, lang.Scan("FRE"))
	assert.Equal(t, language.French, lang)

	require.NoError(t, lang.Scan([]byte("ENG")))
	assert.Equal(t, language.English, lang)

	require.Error(t, lang.Scan("ITA"))
	require.Error(t, lang.Scan(42))
}

/*
TestLanguage_FromRequest checks the boundary parsing of the lang query
parameter, including the English default when absent.
*/
func TestLanguage_FromRequest(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    language.Language
		wantErr bool
	}{
		{"absent_defaults_to_english", "/ratings", language.English, false},
		{"french", "/ratings?lang=FRE", language.French, false},
		{"english", "/ratings?lang=ENG", language.English, false},
		{"unknown_rejected", "/ratings?lang=SPA", 0, true},
		{"lowercase_rejected", "/ratings?lang=fre", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)

			lang, err := language.FromRequest(request)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, lang)
		})
	}
}
