package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "gobi manchurian", Fold("  Gobi   Manchurian "))
	assert.Equal(t, "creme brulee", Fold("Crème Brûlée"))
	assert.Equal(t, "chicken 65 dry", Fold("Chicken-65 (dry)"))
	assert.Equal(t, "", Fold("   "))
}

func TestScoreIdentical(t *testing.T) {
	assert.Equal(t, 100.0, Score("gobi manchurian", "gobi manchurian"))
	assert.Equal(t, 100.0, Score("Gobi Manchurian", "gobi manchurian"))
	assert.Equal(t, 0.0, Score("", "naan"))
}

func TestScoreMisspelled(t *testing.T) {
	s := Score("gobee manchurian", "gobi manchurian")
	assert.GreaterOrEqual(t, s, 80.0)
	assert.Less(t, s, 100.0)
}

func TestScoreWordOrder(t *testing.T) {
	assert.GreaterOrEqual(t, Score("manchurian gobi", "gobi manchurian"), 95.0)
}

func TestScorePartial(t *testing.T) {
	// "naan" целиком входит в "garlic naan"
	assert.Equal(t, 90.0, Score("naan", "garlic naan"))
}

func TestScoreUnrelated(t *testing.T) {
	assert.Less(t, Score("xyz-unknown-dish", "gobi manchurian"), 80.0)
	assert.Less(t, Score("xyz-unknown-dish", "naan"), 80.0)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 100.0, Ratio("abc", "abc"))
	assert.Equal(t, 0.0, Ratio("", "abc"))
	// транспозиция считается одной правкой
	assert.InDelta(t, 75.0, Ratio("naan", "anan"), 0.001)
}

func TestTrigramsAndPhonetic(t *testing.T) {
	g := Trigrams("naan")
	assert.Contains(t, g, " na")
	assert.Contains(t, g, "an ")
	assert.Len(t, Trigrams("a"), 1)

	assert.True(t, SoundsAlike(Phonetic("gobee manchurian"), Phonetic("gobi manchurian")))
	assert.False(t, SoundsAlike(Phonetic("naan"), Phonetic("lassi")))
}
