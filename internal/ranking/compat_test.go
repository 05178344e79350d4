package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestSkillAlignment(t *testing.T) {
	candidate := []string{"Python", "Django", "AWS"}

	assert.Equal(t, 0.5, skillAlignment(candidate, []string{"python", "Kubernetes"}))
	assert.Equal(t, 1.0, skillAlignment(candidate, []string{"Python", "Django"}))
	assert.Equal(t, 0.0, skillAlignment(candidate, []string{"Rust"}))
	assert.Equal(t, 0.0, skillAlignment(candidate, nil))
	assert.Equal(t, 0.0, skillAlignment(nil, []string{"Python"}))
}

func TestExperienceMatch(t *testing.T) {
	tests := []struct {
		name  string
		level types.ExperienceLevel
		title string
		want  float64
	}{
		{"exact senior", types.LevelSenior, "Senior Software Engineer", 1.0},
		{"senior vs lead", types.LevelSenior, "Staff Engineer", 0.8},
		{"senior vs junior", types.LevelSenior, "Junior Developer", 0.6},
		{"entry vs executive", types.LevelEntry, "Director of Engineering", 0.2},
		{"executive vs entry", types.LevelExecutive, "Engineering Intern", 0.2},
		{"default mid title", types.LevelMid, "Software Engineer", 1.0},
		{"unknown level treated as mid", types.ExperienceLevel(""), "Software Engineer", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, experienceMatch(tt.level, tt.title), 1e-9)
		})
	}
}

func TestLocationFit_RemoteAlwaysFits(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1", Location: "Austin, TX"}
	remoteJob := &types.JobListing{ID: "j1", WorkType: types.WorkRemote, Location: "New York, NY"}

	assert.Equal(t, 1.0, locationFit(criteria, remoteJob))

	remoteCandidate := &types.RankCriteria{CandidateID: "c1", WorkType: types.WorkRemote}
	onsiteJob := &types.JobListing{ID: "j1", WorkType: types.WorkOnsite, Location: "New York, NY"}
	assert.Equal(t, 1.0, locationFit(remoteCandidate, onsiteJob))
}

func TestLocationFit_SameCity(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1", Location: "Austin, TX"}
	job := &types.JobListing{ID: "j1", WorkType: types.WorkOnsite, Location: "austin, tx"}

	assert.InDelta(t, 1.0, locationFit(criteria, job), 1e-6)
}

func TestLocationFit_DistantCities(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1", Location: "San Francisco, CA"}
	job := &types.JobListing{ID: "j1", WorkType: types.WorkOnsite, Location: "Boston, MA"}

	// Coast to coast is far beyond commutable range.
	assert.Equal(t, 0.0, locationFit(criteria, job))
}

func TestLocationFit_NearbyCities(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1", Location: "San Francisco, CA"}
	job := &types.JobListing{ID: "j1", WorkType: types.WorkOnsite, Location: "San Jose, CA"}

	score := locationFit(criteria, job)
	assert.Greater(t, score, 0.9)
	assert.Less(t, score, 1.0)
}

func TestLocationFit_UnknownCityDefault(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1", Location: "Smallville, KS"}
	job := &types.JobListing{ID: "j1", WorkType: types.WorkOnsite, Location: "Austin, TX"}

	// Unknown cities are assumed 50 miles apart.
	assert.InDelta(t, 0.9, locationFit(criteria, job), 1e-9)
}

func TestLocationFit_MissingLocation(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1"}
	job := &types.JobListing{ID: "j1", WorkType: types.WorkOnsite}

	assert.InDelta(t, 0.9, locationFit(criteria, job), 1e-9)
}

func TestIndustryRelevance(t *testing.T) {
	assert.Equal(t, 1.0, industryRelevance("Healthcare", "healthcare"))
	assert.Equal(t, 0.3, industryRelevance("Healthcare", "Finance"))
	assert.Equal(t, 0.5, industryRelevance("", "Finance"))
	assert.Equal(t, 0.5, industryRelevance("Healthcare", ""))
}

func TestHaversineMiles_KnownDistance(t *testing.T) {
	// San Francisco to Los Angeles is roughly 350 miles great-circle.
	d := haversineMiles(cityCoords["san francisco, ca"], cityCoords["los angeles, ca"])
	assert.InDelta(t, 350, d, 20)
}

func TestCompatibilityFactors_AllInUnitRange(t *testing.T) {
	criteria := &types.RankCriteria{
		CandidateID:       "c1",
		Skills:            []string{"Python"},
		ExperienceLevel:   types.LevelSenior,
		Location:          "Austin, TX",
		Industry:          "tech",
		SalaryExpectation: 150000,
	}
	job := &types.JobListing{
		ID:        "j1",
		Title:     "Senior Python Developer",
		Skills:    []string{"Python", "Django"},
		Location:  "Denver, CO",
		Industry:  "tech",
		WorkType:  types.WorkOnsite,
		SalaryMin: 120000,
		SalaryMax: 160000,
	}

	factors := compatibilityFactors(criteria, job)
	for name, v := range map[string]float64{
		"skill":    factors.SkillAlignment,
		"exp":      factors.ExperienceMatch,
		"location": factors.LocationFit,
		"salary":   factors.SalaryMatch,
		"industry": factors.IndustryRelevance,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
}
