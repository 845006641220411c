package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rithwika/career-advisor/internal/types"
)

func gapsWithResources(ids ...string) []types.SkillGap {
	gap := types.SkillGap{Skill: "Kubernetes"}
	for _, id := range ids {
		gap.LearningRoadmap = append(gap.LearningRoadmap, types.LearningResource{
			Title: "Resource " + id,
			URL:   id,
			Type:  types.ResourceArticle,
		})
	}
	return []types.SkillGap{gap}
}

func TestCompletion_NoResourcesIsVacuouslyComplete(t *testing.T) {
	tracker := NewTracker()

	assert.Equal(t, 100, tracker.Completion(nil))
	assert.Equal(t, 100, tracker.Completion([]types.SkillGap{{Skill: "Go"}}))
}

func TestToggle_IdempotentPair(t *testing.T) {
	tracker := NewTracker()
	gaps := gapsWithResources("r1", "r2")

	before := tracker.Completion(gaps)
	tracker.Toggle("r1")
	tracker.Toggle("r1")
	assert.Equal(t, before, tracker.Completion(gaps))
	assert.False(t, tracker.Done("r1"))
}

func TestCompletion_Percentage(t *testing.T) {
	tracker := NewTracker()
	gaps := []types.SkillGap{
		{LearningRoadmap: []types.LearningResource{{URL: "r1"}, {URL: "r2"}}},
		{LearningRoadmap: []types.LearningResource{{URL: "r3"}}},
	}

	assert.Equal(t, 0, tracker.Completion(gaps))

	tracker.Toggle("r1")
	assert.Equal(t, 33, tracker.Completion(gaps)) // round(100/3)

	tracker.Toggle("r3")
	assert.Equal(t, 67, tracker.Completion(gaps)) // round(200/3)

	tracker.Toggle("r2")
	assert.Equal(t, 100, tracker.Completion(gaps))
}

func TestCompletion_IgnoresUnrelatedCompletions(t *testing.T) {
	tracker := NewTracker()
	tracker.Toggle("from-an-earlier-analysis")

	gaps := gapsWithResources("r1")
	assert.Equal(t, 0, tracker.Completion(gaps))
}

func TestCompletion_RecomputedEveryCall(t *testing.T) {
	tracker := NewTracker()
	gaps := gapsWithResources("r1", "r2")

	assert.Equal(t, 0, tracker.Completion(gaps))
	tracker.Toggle("r1")
	assert.Equal(t, 50, tracker.Completion(gaps))
	tracker.Toggle("r1")
	assert.Equal(t, 0, tracker.Completion(gaps))
}

func TestClear(t *testing.T) {
	tracker := NewTracker()
	tracker.Toggle("r1")
	tracker.Toggle("r2")

	tracker.Clear()
	assert.Empty(t, tracker.Completed())
	assert.False(t, tracker.Done("r1"))
}
