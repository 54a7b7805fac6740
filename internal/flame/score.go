package flame

import "fmt"

// Coefficients weight the stat slots in a flamescore.
type Coefficients struct {
	AllStat      float64 // flamescore per 1% all stat
	AllStatXenon float64 // xenon variant of AllStat
	SubStat      float64 // flamescore per point of secondary stat
	Att          float64 // flamescore per point of attack / magic attack
	AttDA        float64 // demon avenger variant of Att
	AttXenon     float64 // xenon variant of Att
	HPMP         float64 // HP or MP points per flamescore point (kanna)
}

type coefKind int

const (
	coefOne coefKind = iota
	coefAllStat
	coefAtt
	coefSubStat
	coefPerHPMP // divide by HPMP
)

type term struct {
	slot Stat
	coef coefKind
}

// scoringTable is the flamescore contract per target stat.
// The attack and all-stat coefficients are class variants resolved by NewScorer.
var scoringTable = [numTargets][]term{
	TargetSTR: {{StatAllStat, coefAllStat}, {StatATT, coefAtt}, {StatSTR, coefOne}, {StatDEX, coefSubStat}},
	TargetDEX: {{StatAllStat, coefAllStat}, {StatATT, coefAtt}, {StatDEX, coefOne}, {StatSTR, coefSubStat}},
	TargetINT: {{StatAllStat, coefAllStat}, {StatMATT, coefAtt}, {StatINT, coefOne}, {StatLUK, coefSubStat}},
	TargetLUK: {{StatAllStat, coefAllStat}, {StatATT, coefAtt}, {StatLUK, coefOne}, {StatDEX, coefSubStat}},
	TargetKanna: {
		{StatAllStat, coefAllStat}, {StatMATT, coefAtt}, {StatINT, coefOne}, {StatLUK, coefSubStat},
		{StatHP, coefPerHPMP}, {StatMP, coefPerHPMP},
	},
	TargetDA: {{StatAllStat, coefAllStat}, {StatATT, coefAtt}, {StatHP, coefOne}, {StatSTR, coefSubStat}},
	TargetXenon: {
		{StatAllStat, coefAllStat}, {StatATT, coefAtt}, {StatSTR, coefOne}, {StatDEX, coefOne}, {StatLUK, coefOne},
	},
	TargetAltThief: {
		{StatAllStat, coefAllStat}, {StatATT, coefAtt}, {StatLUK, coefOne}, {StatSTR, coefSubStat}, {StatDEX, coefSubStat},
	},
}

// Scorer reduces a StatVector to a flamescore for one target stat.
type Scorer struct {
	target  TargetStat
	weights [numStats]float64
	divisor [numStats]float64 // non-zero marks a slot that is divided instead of multiplied
}

// NewScorer resolves the class variants of the coefficients for target.
func NewScorer(target TargetStat, c Coefficients) (*Scorer, error) {
	if !target.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
	allStat, att := c.AllStat, c.Att
	switch target {
	case TargetDA:
		att = c.AttDA
	case TargetXenon:
		allStat, att = c.AllStatXenon, c.AttXenon
	}

	s := &Scorer{target: target}
	for _, t := range scoringTable[target] {
		switch t.coef {
		case coefOne:
			s.weights[t.slot] = 1
		case coefAllStat:
			s.weights[t.slot] = allStat
		case coefAtt:
			s.weights[t.slot] = att
		case coefSubStat:
			s.weights[t.slot] = c.SubStat
		case coefPerHPMP:
			if c.HPMP == 0 {
				return nil, fmt.Errorf("target %s: hpmp coefficient must be non-zero", target)
			}
			s.divisor[t.slot] = c.HPMP
		}
	}
	return s, nil
}

func (s *Scorer) Target() TargetStat { return s.target }

// Score is a pure function of v.
func (s *Scorer) Score(v StatVector) float64 {
	var score float64
	for i, x := range v {
		if x == 0 {
			continue
		}
		if d := s.divisor[i]; d != 0 {
			score += float64(x) / d
			continue
		}
		score += float64(x) * s.weights[i]
	}
	return score
}
