package ramadan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nur-collective/siyam/internal/model"
)

func profileWithPerfectDays(id int, name string, days int) model.Profile {
	records := emptyRecords()
	for day := 1; day <= days; day++ {
		records[day-1] = perfectDay(day)
	}
	return model.Profile{
		User:    model.User{ID: id, Name: name},
		Records: records,
	}
}

func TestRankOrdersByProgressDescending(t *testing.T) {
	profiles := []model.Profile{
		profileWithPerfectDays(1, "amin", 2),
		profileWithPerfectDays(2, "bilal", 10),
		profileWithPerfectDays(3, "chadni", 5),
	}

	ranked := Rank(profiles, 10)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "bilal", ranked[0].Profile.User.Name)
	assert.Equal(t, "chadni", ranked[1].Profile.User.Name)
	assert.Equal(t, "amin", ranked[2].Profile.User.Name)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t,
			ranked[i-1].Stats.OverallProgress,
			ranked[i].Stats.OverallProgress)
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	profiles := []model.Profile{
		profileWithPerfectDays(1, "first", 5),
		profileWithPerfectDays(2, "second", 5),
		profileWithPerfectDays(3, "third", 5),
	}

	ranked := Rank(profiles, 5)

	assert.Equal(t, "first", ranked[0].Profile.User.Name)
	assert.Equal(t, "second", ranked[1].Profile.User.Name)
	assert.Equal(t, "third", ranked[2].Profile.User.Name)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	profiles := []model.Profile{
		profileWithPerfectDays(1, "amin", 1),
		profileWithPerfectDays(2, "bilal", 8),
	}

	Rank(profiles, 8)

	assert.Equal(t, 1, profiles[0].User.ID)
	assert.Equal(t, 2, profiles[1].User.ID)
}

func TestRankEmptyGroup(t *testing.T) {
	ranked := Rank(nil, 1)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}
