package i18n_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18n"
)

func TestPluralizeEnglish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word     string
		expected string
	}{
		{"item", "items"},
		{"day", "days"},
		{"toy", "toys"},
		{"bus", "buses"},
		{"dish", "dishes"},
		{"church", "churches"},
		{"box", "boxes"},
		{"quiz", "quizes"},
		{"city", "cities"},
		{"party", "parties"},
		{"y", "ys"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.Pluralize(tt.word, "en"))
		})
	}
}

func TestPluralizeFrench(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word     string
		expected string
	}{
		{"croissant", "croissants"},
		{"bras", "bras"},
		{"voix", "voix"},
		{"nez", "nez"},
		{"bateau", "bateaux"},
		{"eau", "eaux"},
		{"jeu", "jeux"},
		{"cheval", "chevaux"},
		{"journal", "journaux"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.Pluralize(tt.word, "fr"))
		})
	}
}

func TestPluralizeDefaultRule(t *testing.T) {
	t.Parallel()

	t.Run("unrecognized locale appends s", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Büchers", i18n.Pluralize("Bücher", "de"))
		require.Equal(t, "things", i18n.Pluralize("thing", "xx"))
		require.Equal(t, "things", i18n.Pluralize("thing", ""))
	})
}

func TestPluralizeLocaleNormalization(t *testing.T) {
	t.Parallel()

	t.Run("region and case are ignored", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "boxes", i18n.Pluralize("box", "en-US"))
		require.Equal(t, "boxes", i18n.Pluralize("box", "EN"))
		require.Equal(t, "chevaux", i18n.Pluralize("cheval", "fr_CA"))
	})

	t.Run("suffix check is case-insensitive", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Buses", i18n.Pluralize("Bus", "en"))
		require.Equal(t, "Cities", i18n.Pluralize("City", "en"))
		require.Equal(t, "BATEAUx", i18n.Pluralize("BATEAU", "fr"))
	})
}

func TestPluralizeIsPure(t *testing.T) {
	t.Parallel()

	inputs := []struct{ word, locale string }{
		{"city", "en"},
		{"cheval", "fr"},
		{"thing", "xx"},
	}

	for _, in := range inputs {
		t.Run(fmt.Sprintf("%s/%s", in.word, in.locale), func(t *testing.T) {
			t.Parallel()
			first := i18n.Pluralize(in.word, in.locale)
			for range 10 {
				require.Equal(t, first, i18n.Pluralize(in.word, in.locale))
			}
		})
	}
}
