package extraction

import "strings"

// expandClusters injects constituent skills for every stack or role
// cluster named anywhere in the text. Constituents already seen as
// explicit candidates get a small weight boost; new ones enter as
// low-weight inferred candidates.
func expandClusters(rawText string, set *candidateSet) {
	lower := strings.ToLower(rawText)
	for key, constituents := range skillClusters {
		if !strings.Contains(lower, key) {
			continue
		}
		for _, skill := range constituents {
			if cand, ok := set.get(skill); ok {
				cand.Weight += clusterBoostWeight
				cand.Count++
				continue
			}
			set.byName[skill] = &SkillCandidate{
				Name:     skill,
				Weight:   clusterNewWeight,
				Count:    1,
				Inferred: true,
			}
			set.order = append(set.order, skill)
		}
	}
}

// inferParents adds parent skills implied by detected children, e.g. a
// UI framework implies its base language. Runs until no new parents
// appear so chains like Next.js -> React -> JavaScript resolve fully.
func inferParents(set *candidateSet) {
	for {
		added := false
		for _, name := range append([]string(nil), set.order...) {
			for _, parent := range skillParents[name] {
				if _, ok := set.get(parent); ok {
					continue
				}
				set.byName[parent] = &SkillCandidate{
					Name:     parent,
					Weight:   parentInferWeight,
					Count:    1,
					Inferred: true,
				}
				set.order = append(set.order, parent)
				added = true
			}
		}
		if !added {
			return
		}
	}
}
