package topk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinical-records-api/internal/platform/apperr"
)

func strs(vals ...string) []*string {
	out := make([]*string, 0, len(vals))
	for _, v := range vals {
		v := v
		out = append(out, &v)
	}
	return out
}

func repeat(v string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestRank_TiesAboveLowerCounts(t *testing.T) {
	var in []string
	in = append(in, repeat("D", 1)...)
	in = append(in, repeat("C", 3)...)
	in = append(in, repeat("B", 5)...)
	in = append(in, repeat("A", 5)...)

	got := Rank(strs(in...), 3)
	require.Len(t, got, 3)

	assert.Equal(t, "A", *got[0].Value)
	assert.Equal(t, "B", *got[1].Value)
	assert.Equal(t, int64(5), got[0].Count)
	assert.Equal(t, int64(5), got[1].Count)
	assert.Equal(t, "C", *got[2].Value)
	assert.Equal(t, int64(3), got[2].Count)
}

func TestRank_NullsAreNotCounted(t *testing.T) {
	values := append(strs("x", "x"), nil, nil)
	got := Rank(values, 10)

	require.Len(t, got, 2)
	assert.Equal(t, "x", *got[0].Value)
	assert.Nil(t, got[1].Value)
	assert.Equal(t, int64(0), got[1].Count)
}

func TestNewQuery(t *testing.T) {
	allowed := Fields{"drug", "route"}

	q, err := NewQuery(allowed, "", "drug", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, Query{Field: "drug", Limit: 10}, q)

	_, err = NewQuery(allowed, "drug; DROP TABLE prescriptions", "drug", 3)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = NewQuery(allowed, "route", "drug", 0)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = NewQuery(nil, "", "caregiver_id", 5)
	assert.Error(t, err)
}
