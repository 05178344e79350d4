package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandClusters_StackInjectsConstituents(t *testing.T) {
	text := "Built several apps on the MERN stack in production."
	set := scanText(t, text)
	expandClusters(text, set)

	for _, want := range []string{"MongoDB", "Express.js", "React", "Node.js"} {
		cand, ok := set.get(want)
		require.True(t, ok, "expected %s injected", want)
		assert.True(t, cand.Inferred)
		assert.Equal(t, 1.5, cand.Weight)
	}
}

func TestExpandClusters_ExistingCandidateBoosted(t *testing.T) {
	text := "Skills\nReact\n\nSummary\nMERN stack developer"
	set := scanText(t, text)
	expandClusters(text, set)

	cand, ok := set.get("React")
	require.True(t, ok)
	assert.False(t, cand.Inferred, "explicit mention stays explicit")
	// Skills weight 3.0 plus cluster boost 0.5.
	assert.InDelta(t, 3.5, cand.Weight, 1e-9)
	assert.Equal(t, 2, cand.Count)
}

func TestExpandClusters_RolePhrase(t *testing.T) {
	text := "Registered Nurse with ten years on a busy med-surg floor"
	set := scanText(t, text)
	expandClusters(text, set)

	for _, want := range []string{"Patient Care", "Medication Administration", "Electronic Health Records", "HIPAA Compliance"} {
		_, ok := set.get(want)
		assert.True(t, ok, "expected %s", want)
	}
}

func TestExpandClusters_SubstringMatchIsLoose(t *testing.T) {
	// "cdl" matching inside an unrelated word is a known precision gap,
	// kept deliberately.
	text := "Worked at McDLT Logistics"
	set := newCandidateSet()
	expandClusters(text, set)

	_, ok := set.get("Commercial Driving")
	assert.True(t, ok)
}

func TestInferParents_FrameworkImpliesLanguage(t *testing.T) {
	set := scanText(t, "Skills\nReact, Django")
	inferParents(set)

	js, ok := set.get("JavaScript")
	require.True(t, ok)
	assert.True(t, js.Inferred)
	assert.Equal(t, 0.8, js.Weight)

	py, ok := set.get("Python")
	require.True(t, ok)
	assert.True(t, py.Inferred)
}

func TestInferParents_ExplicitParentUntouched(t *testing.T) {
	set := scanText(t, "Skills\nReact, JavaScript")
	inferParents(set)

	js, ok := set.get("JavaScript")
	require.True(t, ok)
	assert.False(t, js.Inferred)
	assert.Equal(t, 3.0, js.Weight)
}

func TestInferParents_ChainResolvesFully(t *testing.T) {
	set := scanText(t, "Skills\nNext.js")
	inferParents(set)

	// Next.js -> React -> JavaScript.
	_, ok := set.get("React")
	assert.True(t, ok)
	_, ok = set.get("JavaScript")
	assert.True(t, ok)
}

func TestInferParents_HealthcareBaseline(t *testing.T) {
	set := scanText(t, "Experienced with EHR systems and medication administration")
	inferParents(set)

	_, ok := set.get("HIPAA Compliance")
	assert.True(t, ok, "EHR implies the compliance baseline")
	_, ok = set.get("Patient Care")
	assert.True(t, ok)
}
