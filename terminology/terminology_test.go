package terminology_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/artevia/venue-gateway/terminology"
	"github.com/stretchr/testify/require"
)

func requireAllFieldsNonEmpty(t *testing.T, terms terminology.Terms) {
	t.Helper()
	v := reflect.ValueOf(terms)
	for i := 0; i < v.NumField(); i++ {
		require.NotEmpty(t, v.Field(i).String(), "field %s", v.Type().Field(i).Name)
	}
}

func TestResolveMuseumMode(t *testing.T) {
	terms := terminology.Resolve(false, nil)
	requireAllFieldsNonEmpty(t, terms)
	require.Equal(t, "Work", terms.Work)
	require.Equal(t, "Trails", terms.Trails)
	require.Equal(t, "Visitors", terms.Visitors)
}

func TestResolveCityMode(t *testing.T) {
	terms := terminology.Resolve(true, nil)
	requireAllFieldsNonEmpty(t, terms)
	require.Equal(t, "Attraction", terms.Work)
	require.Equal(t, "Routes", terms.Trails)
	require.Equal(t, "Tourists", terms.Visitors)
}

func TestResolveWithTranslator(t *testing.T) {
	tr := func(key, fallback string) string {
		if key == "terminology.city.work" {
			return "Ponto turístico"
		}
		return fallback
	}

	terms := terminology.Resolve(true, tr)
	require.Equal(t, "Ponto turístico", terms.Work)
	require.Equal(t, "Attractions", terms.Works)
}

func TestResolveTranslatorMissingEntriesFallBack(t *testing.T) {
	// A translation layer that has nothing still yields non-empty labels.
	tr := func(key, fallback string) string { return "" }

	for _, cityMode := range []bool{false, true} {
		requireAllFieldsNonEmpty(t, terminology.Resolve(cityMode, tr))
	}
}

func TestTranslatorKeysFollowMode(t *testing.T) {
	var keys []string
	tr := func(key, fallback string) string {
		keys = append(keys, key)
		return fallback
	}

	terminology.Resolve(true, tr)
	for _, key := range keys {
		require.True(t, strings.HasPrefix(key, "terminology.city."), "key %s", key)
	}
}
