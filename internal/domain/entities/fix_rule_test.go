//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	t.Run("should start with E101 and end with W690", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := entities.DefaultCatalog()

		// when
		first, last := catalog[0], catalog[len(catalog)-1]

		// then
		assert.Len(t, catalog, 58)
		assert.Equal(t, "E101", first.Code)
		assert.Equal(t, "W690", last.Code)
	})

	t.Run("should never contain the excluded rules", func(t *testing.T) {
		t.Parallel()

		// given
		codes := entities.RuleCodes(entities.DefaultCatalog())

		// when
		excluded := entities.RuleCodes(entities.ExcludedRules())

		// then
		assert.Equal(t, []string{"E128", "E501", "W503"}, excluded)
		for _, code := range excluded {
			assert.NotContains(t, codes, code)
		}
	})

	t.Run("should not repeat codes", func(t *testing.T) {
		t.Parallel()

		// given
		seen := make(map[string]bool)

		// when
		for _, rule := range entities.DefaultCatalog() {
			// then
			assert.False(t, seen[rule.Code], "duplicate code %s", rule.Code)
			seen[rule.Code] = true
		}
	})

	t.Run("should keep E701 before E70 and E731 before W291", func(t *testing.T) {
		t.Parallel()

		// given
		codes := entities.RuleCodes(entities.DefaultCatalog())

		// when
		indexOf := func(code string) int {
			for i, c := range codes {
				if c == code {
					return i
				}
			}
			return -1
		}

		// then
		assert.Less(t, indexOf("E701"), indexOf("E70"))
		assert.Less(t, indexOf("E731"), indexOf("W291"))
		assert.Less(t, indexOf("E224"), indexOf("E225"))
	})
}

func TestFixRuleString(t *testing.T) {
	t.Parallel()

	t.Run("should render code and description", func(t *testing.T) {
		t.Parallel()

		// given
		rule := entities.FixRule{Code: "E225", Description: "Fix missing whitespace around operator"}

		// when
		text := rule.String()

		// then
		assert.Equal(t, "E225 - Fix missing whitespace around operator", text)
	})
}

func TestFilterCatalog(t *testing.T) {
	t.Parallel()

	t.Run("should return the whole catalog without a selection", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := entities.DefaultCatalog()

		// when
		result, err := entities.FilterCatalog(catalog, nil, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, catalog, result)
	})

	t.Run("should keep catalog order for only", func(t *testing.T) {
		t.Parallel()

		// given
		only := []string{"W291", "e225", " E101 "}

		// when
		result, err := entities.FilterCatalog(entities.DefaultCatalog(), only, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"E101", "E225", "W291"}, entities.RuleCodes(result))
	})

	t.Run("should drop excluded codes", func(t *testing.T) {
		t.Parallel()

		// given
		exclude := []string{"E101", "W690"}

		// when
		result, err := entities.FilterCatalog(entities.DefaultCatalog(), nil, exclude)

		// then
		require.NoError(t, err)
		assert.Len(t, result, 56)
		assert.Equal(t, "E11", result[0].Code)
		assert.Equal(t, "W605", result[len(result)-1].Code)
	})

	t.Run("should reject codes outside the catalog", func(t *testing.T) {
		t.Parallel()

		// given
		only := []string{"E501"}

		// when
		result, err := entities.FilterCatalog(entities.DefaultCatalog(), only, nil)

		// then
		require.ErrorIs(t, err, entities.ErrUnknownRule)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "E501")
	})
}
