package dataloader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/plectrum"
)

// suit is a test enumeration.
type suit int

const (
	hearts suit = iota + 1
	spades
	clubs
)

var suitLabels = []string{"hearts", "spades", "clubs"}

func (s suit) Value() string {
	if s < hearts || s > clubs {
		return ""
	}
	return suitLabels[s-1]
}

func (suit) FromValue(label string) suit {
	s, ok := suit(0).Lookup(label)
	if !ok {
		panic(plectrum.NewUnknownLabelError("suit", label))
	}
	return s
}

func (suit) Lookup(label string) (suit, bool) {
	for i, l := range suitLabels {
		if l == label {
			return suit(i + 1), true
		}
	}
	return 0, false
}

func (suit) Values() []string { return suitLabels }

func newMapping(t *testing.T) *plectrum.Mapping[int, suit] {
	t.Helper()
	m, err := plectrum.Load[int, suit](context.Background(), plectrum.Static[int]{10: "hearts", 20: "spades", 30: "clubs"})
	require.NoError(t, err)
	return m
}

// =============================================================================
// Resolve Tests
// =============================================================================

func TestByIDs(t *testing.T) {
	t.Parallel()
	m := newMapping(t)

	t.Run("all keys found", func(t *testing.T) {
		t.Parallel()
		result, errs := ByIDs(m, []int{30, 10, 20})

		assert.Equal(t, []suit{clubs, hearts, spades}, result)
		require.Len(t, errs, 3)
		for _, err := range errs {
			assert.NoError(t, err)
		}
	})

	t.Run("some keys missing", func(t *testing.T) {
		t.Parallel()
		result, errs := ByIDs(m, []int{10, 40, 20})

		assert.Equal(t, []suit{hearts, 0, spades}, result)
		assert.NoError(t, errs[0])
		assert.ErrorIs(t, errs[1], ErrNotFound)
		assert.Contains(t, errs[1].Error(), "40")
		assert.NoError(t, errs[2])
	})

	t.Run("empty keys", func(t *testing.T) {
		t.Parallel()
		result, errs := ByIDs(m, nil)

		assert.Empty(t, result)
		assert.Empty(t, errs)
	})
}

func TestByValuesAndGetIDs(t *testing.T) {
	t.Parallel()
	m := newMapping(t)

	result, errs := ByValues(m, []string{"spades", "diamonds"})
	assert.Equal(t, []suit{spades, 0}, result)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], ErrNotFound)

	ids, errs := GetIDs(m, []suit{clubs, hearts, suit(9)})
	assert.Equal(t, []int{30, 10, 0}, ids)
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.ErrorIs(t, errs[2], ErrNotFound)
}

func TestBatchByID(t *testing.T) {
	t.Parallel()
	batch := BatchByID(newMapping(t))

	result, errs := batch(context.Background(), []int{20})
	assert.Equal(t, []suit{spades}, result)
	assert.NoError(t, errs[0])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, errs = batch(ctx, []int{10, 20})
	assert.Len(t, result, 2)
	for _, err := range errs {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

// =============================================================================
// Grouping Tests
// =============================================================================

type card struct {
	Rank int
	Suit suit
}

func TestGroupByKey(t *testing.T) {
	t.Parallel()
	cards := []card{{1, hearts}, {2, spades}, {3, hearts}}

	grouped := GroupByKey(cards, func(c card) suit { return c.Suit })

	assert.Len(t, grouped, 2)
	assert.Equal(t, []card{{1, hearts}, {3, hearts}}, grouped[hearts])
	assert.Equal(t, []card{{2, spades}}, grouped[spades])

	ordered := OrderGroupsByKeys([]suit{clubs, spades, hearts}, grouped)
	require.Len(t, ordered, 3)
	assert.Nil(t, ordered[0])
	assert.Len(t, ordered[1], 1)
	assert.Len(t, ordered[2], 2)
}

// =============================================================================
// Context Tests
// =============================================================================

func TestWithMapping(t *testing.T) {
	t.Parallel()
	m := newMapping(t)

	ctx := WithMapping(context.Background(), m)
	assert.Same(t, m, For[int, suit](ctx))
	assert.Nil(t, For[string, suit](ctx))
	assert.Nil(t, For[int, suit](context.Background()))
}

func TestResults(t *testing.T) {
	t.Parallel()
	values, errs := ByIDs(newMapping(t), []int{10, 11})
	results := Results(values, errs)

	require.Len(t, results, 2)
	assert.Equal(t, hearts, results[0].Value)
	assert.NoError(t, results[0].Error)
	assert.ErrorIs(t, results[1].Error, ErrNotFound)
}
