package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/anonymousfse26/orbis/internal/model"
)

func TestSpellingPolicy_Warmup(t *testing.T) {
	p := NewSpellingPolicy(4, newTestRNG())

	assert.Equal(t, SpellingLong, p.Choose())

	p.Record(SpellingLong, 5)
	assert.Equal(t, SpellingShort, p.Choose())

	p.Record(SpellingShort, 0)
	assert.Equal(t, SpellingShort, p.Choose(), "zero coverage is not recorded")
}

func TestSpellingPolicy_FollowsCoverage(t *testing.T) {
	p := NewSpellingPolicy(2, newTestRNG())
	p.Record(SpellingShort, 9)
	p.Record(SpellingLong, 1)

	short := 0
	for range 1000 {
		if p.Choose() == SpellingShort {
			short++
		}
	}

	assert.Greater(t, short, 800)
	assert.Less(t, short, 980)
}

func TestSpelling_String(t *testing.T) {
	assert.Equal(t, "long", SpellingLong.String())
	assert.Equal(t, "short", SpellingShort.String())
}

func TestRenderArguments(t *testing.T) {
	obm := m.NewOptionBranchMap("prog")
	obm.Options["count"] = m.Option{Name: "count", Short: "c"}
	obm.Options["ignore-case"] = m.Option{Name: "ignore-case", Short: "i"}
	obm.Options["color"] = m.Option{Name: "color"}

	key := m.NewCombinationKey("ignore-case", "count", "color")

	assert.Equal(t, []string{"--color", "-c", "-i"}, RenderArguments(obm, key, SpellingShort, 2))
	assert.Equal(t, []string{"--color", "--count", "--ignore-case"}, RenderArguments(obm, key, SpellingLong, 2))
	assert.Equal(t, []string{"-color"}, RenderArguments(obm, m.NewCombinationKey("color"), SpellingLong, 1))
	assert.Empty(t, RenderArguments(obm, "", SpellingLong, 2))
}
