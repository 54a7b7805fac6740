package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/xtding233/flamesim/internal/cost"
	"github.com/xtding233/flamesim/internal/flame"
	"github.com/xtding233/flamesim/internal/sim"
)

// Settings echoes the run parameters in the report header.
type Settings struct {
	Trials    int64
	FlameType flame.FlameType
	Target    flame.TargetStat
	Bracket   flame.Bracket
	Keep      float64
	Boss      bool
	Chance    int64 // 0 disables the chance line
}

// Summary is everything a report renders.
type Summary struct {
	Settings Settings
	Result   *sim.Result
	Prices   *cost.Table // nil hides the cost line
}

// averageFlames rounds the expected flames per success up, as players buy whole flames.
func (s Summary) averageFlames() (int64, bool) {
	avg, ok := s.Result.Estimate().AverageAttempts()
	if !ok {
		return 0, false
	}
	return int64(math.Ceil(avg)), true
}

func (s Summary) averageCost() (string, bool) {
	if s.Prices == nil {
		return "", false
	}
	flames, ok := s.averageFlames()
	if !ok {
		return "", false
	}
	c, ok := s.Prices.Cost(s.Settings.FlameType, flames)
	if !ok {
		return "", false
	}
	return cost.Format(c), true
}

// Text writes the human-readable report.
func Text(w io.Writer, s Summary) error {
	var b strings.Builder
	st, res := s.Settings, s.Result

	fmt.Fprintf(&b, "Settings - Trials: %s, Flametype: %s, Stat: %s, Level: %s\n\n",
		humanize.Comma(st.Trials), st.FlameType, st.Target, st.Bracket)
	if !st.Boss {
		fmt.Fprintf(&b, "Noboss: true\n")
	}
	fmt.Fprintf(&b, "Results:\n")
	fmt.Fprintf(&b, "Flames over %s flamescore: %s/%s\n\n",
		humanize.Ftoa(st.Keep), humanize.Comma(res.Qualifying), humanize.Comma(res.Trials))

	if flames, ok := s.averageFlames(); ok {
		fmt.Fprintf(&b, "Average flames: %s\n", humanize.Comma(flames))
	} else {
		fmt.Fprintf(&b, "Average flames: n/a (no flame reached the target)\n")
	}
	if c, ok := s.averageCost(); ok {
		fmt.Fprintf(&b, "Average cost: %s\n", c)
	}
	fmt.Fprintf(&b, "\n")

	if st.Chance > 0 {
		fmt.Fprintf(&b, "Chance of getting within %s flames: %.3f%%\n\n",
			humanize.Comma(st.Chance), res.Estimate().ChanceWithin(st.Chance)*100)
	}

	switch {
	case len(res.Top) > 1:
		fmt.Fprintf(&b, "Top %d flames:\n", len(res.Top))
		for i, r := range res.Top {
			fmt.Fprintf(&b, "#%d: [%s] with score: %.2f\n", i+1, formatStats(r.Flame.Stats), r.Score)
		}
		fmt.Fprintf(&b, "\n")
	case len(res.Top) == 1:
		r := res.Top[0]
		fmt.Fprintf(&b, "Best flame:\n")
		for _, stat := range flame.Stats() {
			if v := r.Flame.Stats[stat]; v > 0 {
				fmt.Fprintf(&b, "%s, %d\n", stat, v)
			}
		}
		fmt.Fprintf(&b, "\nscore: %.2f\n\n", r.Score)
	}

	fmt.Fprintf(&b, "time: %s\n", res.Elapsed.Round(time.Millisecond))
	_, err := io.WriteString(w, b.String())
	return err
}

func formatStats(v flame.StatVector) string {
	parts := make([]string, 0, len(v))
	for _, stat := range flame.Stats() {
		if v[stat] > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", stat, v[stat]))
		}
	}
	return strings.Join(parts, ", ")
}

type jsonLine struct {
	Name  string `json:"name"`
	Tier  int    `json:"tier"`
	Value int    `json:"value"`
}

type jsonFlame struct {
	Score float64        `json:"score"`
	Stats map[string]int `json:"stats"`
	Lines []jsonLine     `json:"lines"`
}

type jsonReport struct {
	Trials          int64       `json:"trials"`
	FlameType       string      `json:"flame_type"`
	Target          string      `json:"stat"`
	Level           string      `json:"level"`
	Boss            bool        `json:"boss"`
	Keep            float64     `json:"keep"`
	Seed            uint64      `json:"seed"`
	Qualifying      int64       `json:"qualifying"`
	SuccessRate     float64     `json:"success_rate"`
	AverageFlames   *int64      `json:"average_flames"`
	AverageCost     string      `json:"average_cost,omitempty"`
	Chance          int64       `json:"chance,omitempty"`
	ChanceWithin    *float64    `json:"chance_within,omitempty"`
	ScoreMean       float64     `json:"score_mean"`
	ScoreStdDev     float64     `json:"score_stddev"`
	ScoreMax        float64     `json:"score_max"`
	Top             []jsonFlame `json:"top"`
	ElapsedMillisec int64       `json:"elapsed_ms"`
}

// JSON writes the report as one JSON document.
func JSON(w io.Writer, s Summary) error {
	st, res := s.Settings, s.Result
	out := jsonReport{
		Trials:          res.Trials,
		FlameType:       st.FlameType.String(),
		Target:          st.Target.String(),
		Level:           st.Bracket.String(),
		Boss:            st.Boss,
		Keep:            st.Keep,
		Seed:            res.Seed,
		Qualifying:      res.Qualifying,
		SuccessRate:     res.Estimate().SuccessRate(),
		ScoreMean:       res.Scores.Mean,
		ScoreStdDev:     res.Scores.StdDev,
		ScoreMax:        res.Scores.Max,
		Top:             make([]jsonFlame, 0, len(res.Top)),
		ElapsedMillisec: res.Elapsed.Milliseconds(),
	}
	if flames, ok := s.averageFlames(); ok {
		out.AverageFlames = &flames
	}
	if c, ok := s.averageCost(); ok {
		out.AverageCost = c
	}
	if st.Chance > 0 {
		chance := res.Estimate().ChanceWithin(st.Chance)
		out.Chance = st.Chance
		out.ChanceWithin = &chance
	}
	for _, r := range res.Top {
		jf := jsonFlame{Score: r.Score, Stats: map[string]int{}}
		for _, stat := range flame.Stats() {
			if v := r.Flame.Stats[stat]; v > 0 {
				jf.Stats[stat.String()] = v
			}
		}
		for _, l := range r.Flame.Rolled() {
			jf.Lines = append(jf.Lines, jsonLine{Name: l.Name.String(), Tier: l.Tier + 1, Value: l.Value})
		}
		out.Top = append(out.Top, jf)
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
