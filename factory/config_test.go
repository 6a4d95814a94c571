package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeonbo/tenure-engine/tenure"
)

func TestParsePolicy_EmptyReturnsDefaults(t *testing.T) {
	policy, err := ParsePolicy("")
	require.NoError(t, err)

	assert.Equal(t, tenure.DefaultEnginePolicy(), policy)
	assert.False(t, policy.YearBlock.Enabled)
	assert.Equal(t, 15, policy.Rules.Regions[tenure.RegionChungju].RegionalTermYears)
}

func TestParsePolicy_RegionOverride(t *testing.T) {
	// A revision shortening Chungju's regional term; everything else
	// keeps the defaults.
	policy, err := ParsePolicy(`{
		"regions": [
			{"key": "chungju", "name": "충주시", "regional_term_years": 12, "school_term_years": 5}
		]
	}`)
	require.NoError(t, err)

	assert.Equal(t, 12, policy.Rules.Regions[tenure.RegionChungju].RegionalTermYears)
	assert.Equal(t, 15, policy.Rules.Regions[tenure.RegionJecheon].RegionalTermYears)
	assert.Equal(t, 13, policy.Rules.Regions[tenure.RegionCheongju].RegionalTermYears)
}

func TestParsePolicy_NewRegionAdded(t *testing.T) {
	policy, err := ParsePolicy(`{
		"regions": [
			{"key": "danyang", "name": "단양군", "regional_term_years": 8, "school_term_years": 5}
		]
	}`)
	require.NoError(t, err)

	p, ok := policy.Rules.Region(tenure.RegionKey("danyang"))
	require.True(t, ok)
	assert.Equal(t, 8, p.RegionalTermYears)
	// The built-in regions are untouched.
	assert.Len(t, policy.Rules.Regions, 5)
}

func TestParsePolicy_LeaveOverride(t *testing.T) {
	policy, err := ParsePolicy(`{
		"leaves": [
			{"type": "sick", "label": "질병휴직", "included_in_regional_service": true}
		]
	}`)
	require.NoError(t, err)

	assert.True(t, policy.Rules.Leave(tenure.LeaveSick).IncludedInRegionalService)
	assert.True(t, policy.Rules.Leave(tenure.LeaveParental).IncludedInRegionalService)
}

func TestParsePolicy_YearBlockOverride(t *testing.T) {
	policy, err := ParsePolicy(`{
		"year_block": {"enabled": true, "tolerance_days": 10}
	}`)
	require.NoError(t, err)

	assert.True(t, policy.YearBlock.Enabled)
	assert.Equal(t, 10, policy.YearBlock.ToleranceDays)
	// Unspecified fields keep their defaults.
	assert.Equal(t, 5, policy.YearBlock.MaxYears)
	assert.Equal(t, []tenure.LeaveType{tenure.LeaveParental}, policy.YearBlock.LeaveTypes)
}

func TestParsePolicy_Invalid(t *testing.T) {
	cases := map[string]string{
		"malformed JSON":     `{"regions": [`,
		"region missing key": `{"regions": [{"name": "충주시", "regional_term_years": 15, "school_term_years": 5}]}`,
		"non-positive term":  `{"regions": [{"key": "chungju", "regional_term_years": 0, "school_term_years": 5}]}`,
		"leave missing type": `{"leaves": [{"label": "질병휴직"}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePolicy(doc)
			assert.Error(t, err)
		})
	}
}

func TestLoadPolicyFile(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		policy, err := LoadPolicyFile("")
		require.NoError(t, err)
		assert.Equal(t, tenure.DefaultEnginePolicy(), policy)
	})

	t.Run("file override applies", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"year_block": {"enabled": true}}`), 0o644))

		policy, err := LoadPolicyFile(path)
		require.NoError(t, err)
		assert.True(t, policy.YearBlock.Enabled)
	})

	t.Run("missing file reported", func(t *testing.T) {
		_, err := LoadPolicyFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}
