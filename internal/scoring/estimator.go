package scoring

import "math"

// Criterion names understood by Estimate. Any other name falls back to
// NeutralScore.
const (
	CriterionEthical         = "ethical_score"
	CriterionEthicalCore     = "ethical_score_core"
	CriterionTechnical       = "technical_score"
	CriterionPopularity      = "popularity_score"
	CriterionDataQuality     = "data_quality"
	CriterionAnonymization   = "anonymization"
	CriterionTransparency    = "transparency"
	CriterionInformedConsent = "informed_consent"
	CriterionDocumentation   = "documentation"
)

// NeutralScore is the deterministic fallback for unrecognized criterion
// names, and the ethical score when no governance field is defined.
// Unknown criteria must not sink or float a dataset, so the value sits
// mid-range.
const (
	NeutralScore        = 0.5
	NeutralEthicalScore = 0.67
)

// Metrics is a read-only snapshot of the dataset attributes relevant to
// scoring. Pointer fields distinguish "unknown" from false/zero: a nil
// field was never recorded, which is not the same as a recorded false.
type Metrics struct {
	InformedConsent            *bool `json:"informed_consent,omitempty"`
	Transparency               *bool `json:"transparency,omitempty"`
	UserControl                *bool `json:"user_control,omitempty"`
	EquityNonDiscrimination    *bool `json:"equity_non_discrimination,omitempty"`
	SecurityMeasuresInPlace    *bool `json:"security_measures_in_place,omitempty"`
	AnonymizationApplied       *bool `json:"anonymization_applied,omitempty"`
	RecordKeepingPolicyExists  *bool `json:"record_keeping_policy_exists,omitempty"`
	PurposeLimitationRespected *bool `json:"purpose_limitation_respected,omitempty"`
	AccountabilityDefined      *bool `json:"accountability_defined,omitempty"`

	ExternalDocumentationAvailable *bool `json:"external_documentation_available,omitempty"`
	Split                          *bool `json:"split,omitempty"`
	HasMissingValues               *bool `json:"has_missing_values,omitempty"`

	InstancesNumber         *int64   `json:"instances_number,omitempty"`
	FeaturesNumber          *int64   `json:"features_number,omitempty"`
	NumCitations            *int64   `json:"num_citations,omitempty"`
	GlobalMissingPercentage *float64 `json:"global_missing_percentage,omitempty"`
}

// Estimate derives the [0,1] sub-score for one named criterion from a
// dataset's metrics. Unrecognized names return NeutralScore; the function
// never fails.
func Estimate(criterion string, m Metrics) float64 {
	switch criterion {
	case CriterionEthical:
		return ethicalScore(m.governanceFields())
	case CriterionEthicalCore:
		return ethicalScore([]*bool{m.InformedConsent, m.Transparency, m.AnonymizationApplied})
	case CriterionTechnical:
		return technicalScore(m)
	case CriterionPopularity:
		return popularityScore(m)
	case CriterionDataQuality:
		return dataQualityScore(m)
	case CriterionAnonymization:
		return passthrough(m.AnonymizationApplied)
	case CriterionTransparency:
		return passthrough(m.Transparency)
	case CriterionInformedConsent:
		return passthrough(m.InformedConsent)
	case CriterionDocumentation:
		return passthrough(m.ExternalDocumentationAvailable)
	default:
		return NeutralScore
	}
}

// governanceFields lists the nine governance booleans behind the canonical
// ethical_score.
func (m Metrics) governanceFields() []*bool {
	return []*bool{
		m.InformedConsent,
		m.Transparency,
		m.UserControl,
		m.EquityNonDiscrimination,
		m.SecurityMeasuresInPlace,
		m.AnonymizationApplied,
		m.RecordKeepingPolicyExists,
		m.PurposeLimitationRespected,
		m.AccountabilityDefined,
	}
}

// ethicalScore is the ratio of true fields among the defined ones. With
// nothing defined there is no evidence either way, so the documented neutral
// default applies rather than a silent zero.
func ethicalScore(fields []*bool) float64 {
	defined, positive := 0, 0
	for _, f := range fields {
		if f == nil {
			continue
		}
		defined++
		if *f {
			positive++
		}
	}
	if defined == 0 {
		return NeutralEthicalScore
	}
	return float64(positive) / float64(defined)
}

// technicalScore starts from a 0.5 base and adds fixed bonuses for recorded
// positives. An unknown field earns no bonus: absence of evidence is not
// evidence of quality.
func technicalScore(m Metrics) float64 {
	score := 0.5
	if m.ExternalDocumentationAvailable != nil && *m.ExternalDocumentationAvailable {
		score += 0.2
	}
	if m.Split != nil && *m.Split {
		score += 0.15
	}
	if m.HasMissingValues != nil && !*m.HasMissingValues {
		score += 0.15
	}
	if m.InstancesNumber != nil && *m.InstancesNumber > 10000 {
		score += 0.1
	}
	return math.Min(score, 1.0)
}

// popularityScore maps citation counts onto [0,1] with a log10 curve:
// 1000 citations saturate the score.
func popularityScore(m Metrics) float64 {
	if m.NumCitations == nil || *m.NumCitations <= 0 {
		return 0
	}
	return math.Min(1.0, math.Log10(float64(*m.NumCitations))/3.0)
}

// dataQualityScore rewards datasets known to be missing-free with a flat
// 0.8; otherwise the global missing percentage (default 0 when unrecorded)
// scales the score between 0.5 and 0.8.
func dataQualityScore(m Metrics) float64 {
	if m.HasMissingValues != nil && !*m.HasMissingValues {
		return 0.8
	}
	gmp := 0.0
	if m.GlobalMissingPercentage != nil {
		gmp = *m.GlobalMissingPercentage
	}
	score := 0.5 + (100-gmp)/100*0.3
	return clamp(score, 0, 1.0)
}

// passthrough maps a recorded true to 1.0; false and unknown both score 0.
func passthrough(f *bool) float64 {
	if f != nil && *f {
		return 1.0
	}
	return 0.0
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
