package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Seniority ranks on a 5-point scale. Lead/staff titles sit between
// senior and executive even though extraction never emits that band.
const (
	rankEntry     = 1
	rankMid       = 2
	rankSenior    = 3
	rankLead      = 4
	rankExecutive = 5
)

const (
	unknownCityMiles   = 50
	maxCommutableMiles = 500
	earthRadiusMiles   = 3958.8
)

var levelRanks = map[types.ExperienceLevel]int{
	types.LevelEntry:     rankEntry,
	types.LevelMid:       rankMid,
	types.LevelSenior:    rankSenior,
	types.LevelExecutive: rankExecutive,
}

type coordinates struct {
	lat, lon float64
}

// cityCoords covers the metro areas most listings name. Anything else
// falls back to the unknown-city distance.
var cityCoords = map[string]coordinates{
	"new york, ny":      {40.7128, -74.0060},
	"los angeles, ca":   {34.0522, -118.2437},
	"chicago, il":       {41.8781, -87.6298},
	"houston, tx":       {29.7604, -95.3698},
	"phoenix, az":       {33.4484, -112.0740},
	"philadelphia, pa":  {39.9526, -75.1652},
	"san antonio, tx":   {29.4241, -98.4936},
	"san diego, ca":     {32.7157, -117.1611},
	"dallas, tx":        {32.7767, -96.7970},
	"austin, tx":        {30.2672, -97.7431},
	"san jose, ca":      {37.3382, -121.8863},
	"san francisco, ca": {37.7749, -122.4194},
	"seattle, wa":       {47.6062, -122.3321},
	"denver, co":        {39.7392, -104.9903},
	"boston, ma":        {42.3601, -71.0589},
	"atlanta, ga":       {33.7490, -84.3880},
	"miami, fl":         {25.7617, -80.1918},
	"portland, or":      {45.5152, -122.6784},
	"minneapolis, mn":   {44.9778, -93.2650},
	"charlotte, nc":     {35.2271, -80.8431},
	"nashville, tn":     {36.1627, -86.7816},
	"raleigh, nc":       {35.7796, -78.6382},
	"salt lake city, ut": {40.7608, -111.8910},
	"pittsburgh, pa":    {40.4406, -79.9959},
	"washington, dc":    {38.9072, -77.0369},
}

// compatibilityFactors computes the per-dimension alignment report for
// one listing. These are informational only and never feed the fused
// final score.
func compatibilityFactors(criteria *types.RankCriteria, job *types.JobListing) types.CompatibilityFactors {
	return types.CompatibilityFactors{
		SkillAlignment:    skillAlignment(criteria.Skills, job.Skills),
		ExperienceMatch:   experienceMatch(criteria.ExperienceLevel, job.Title),
		LocationFit:       locationFit(criteria, job),
		SalaryMatch:       salaryCloseness(criteria.SalaryExpectation, salaryMidpoint(job)),
		IndustryRelevance: industryRelevance(criteria.Industry, job.Industry),
	}
}

// skillAlignment is the fraction of the job's declared skills the
// candidate has.
func skillAlignment(candidateSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0
	}
	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(s)] = true
	}
	matched := 0
	for _, s := range jobSkills {
		if have[strings.ToLower(s)] {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSkills))
}

// experienceMatch compares the candidate's seniority band with the band
// implied by the job title, losing 0.2 per rank of distance.
func experienceMatch(level types.ExperienceLevel, jobTitle string) float64 {
	candidateRank, ok := levelRanks[level]
	if !ok {
		candidateRank = rankMid
	}
	diff := math.Abs(float64(candidateRank - titleRank(jobTitle)))
	score := 1 - 0.2*diff
	if score < 0 {
		return 0
	}
	return score
}

func titleRank(title string) int {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "chief") || strings.Contains(lower, "vp ") ||
		strings.Contains(lower, "vice president") || strings.Contains(lower, "director"):
		return rankExecutive
	case strings.Contains(lower, "principal") || strings.Contains(lower, "staff") ||
		strings.Contains(lower, "lead"):
		return rankLead
	case strings.Contains(lower, "senior") || strings.Contains(lower, "sr."):
		return rankSenior
	case strings.Contains(lower, "junior") || strings.Contains(lower, "jr.") ||
		strings.Contains(lower, "intern") || strings.Contains(lower, "entry"):
		return rankEntry
	default:
		return rankMid
	}
}

// locationFit is 1.0 when either side is remote, otherwise a
// distance-normalized score between the two locations. Cities missing
// from the lookup table are assumed 50 miles apart.
func locationFit(criteria *types.RankCriteria, job *types.JobListing) float64 {
	if job.WorkType == types.WorkRemote || criteria.WorkType == types.WorkRemote {
		return 1.0
	}
	if criteria.Location == "" || job.Location == "" {
		return distanceScore(unknownCityMiles)
	}

	from, okFrom := cityCoords[normalizeCity(criteria.Location)]
	to, okTo := cityCoords[normalizeCity(job.Location)]
	if !okFrom || !okTo {
		return distanceScore(unknownCityMiles)
	}
	return distanceScore(haversineMiles(from, to))
}

func normalizeCity(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

func distanceScore(miles float64) float64 {
	score := 1 - miles/maxCommutableMiles
	if score < 0 {
		return 0
	}
	return score
}

// haversineMiles is the great-circle distance between two coordinates.
func haversineMiles(a, b coordinates) float64 {
	lat1 := a.lat * math.Pi / 180
	lat2 := b.lat * math.Pi / 180
	dLat := (b.lat - a.lat) * math.Pi / 180
	dLon := (b.lon - a.lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// industryRelevance is exact-match or nothing, with a neutral score
// when either side left industry blank.
func industryRelevance(candidateIndustry, jobIndustry string) float64 {
	if candidateIndustry == "" || jobIndustry == "" {
		return 0.5
	}
	if strings.EqualFold(candidateIndustry, jobIndustry) {
		return 1.0
	}
	return 0.3
}
