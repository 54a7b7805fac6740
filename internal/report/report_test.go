package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/xtding233/flamesim/internal/cost"
	"github.com/xtding233/flamesim/internal/flame"
	"github.com/xtding233/flamesim/internal/sim"
)

func sampleSummary(top int) Summary {
	var best flame.Flame
	best.Lines[0] = flame.Line{Name: flame.LineSTR, Tier: 5, Value: 48}
	best.Lines[1] = flame.Line{Name: flame.LineAllStat, Tier: 4, Value: 5}
	best.N = 2
	best.Stats[flame.StatSTR] = 48
	best.Stats[flame.StatAllStat] = 5

	res := &sim.Result{
		Trials:     100000,
		Qualifying: 1250,
		Keep:       100,
		Seed:       42,
		Elapsed:    1500 * time.Millisecond,
	}
	for i := 0; i < top; i++ {
		res.Top = append(res.Top, sim.TrialResult{Flame: best, Score: 88 - float64(i)})
	}
	return Summary{
		Settings: Settings{
			Trials:    100000,
			FlameType: flame.PFlame,
			Target:    flame.TargetSTR,
			Bracket:   flame.Bracket140,
			Keep:      100,
			Boss:      true,
			Chance:    50,
		},
		Result: res,
		Prices: cost.NewTable(nil),
	}
}

func TestTextBestFlame(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleSummary(1)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Settings - Trials: 100,000, Flametype: pflame, Stat: str, Level: 140-149",
		"Flames over 100 flamescore: 1,250/100,000",
		"Average flames: 80",
		"Average cost: 0.72960b",
		"Chance of getting within 50 flames:",
		"Best flame:\nstr, 48\nas, 5\n",
		"score: 88.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Noboss") {
		t.Errorf("boss run printed the noboss line")
	}
}

func TestTextTopAndNoQualifying(t *testing.T) {
	s := sampleSummary(3)
	s.Result.Qualifying = 0
	s.Settings.Boss = false
	var buf bytes.Buffer
	if err := Text(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Noboss: true", "Average flames: n/a", "Top 3 flames:", "#3: [str 48, as 5] with score: 86.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Average cost") {
		t.Errorf("cost printed without qualifying flames")
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleSummary(2)); err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := jsoniter.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got["average_flames"].(float64) != 80 {
		t.Errorf("average_flames = %v", got["average_flames"])
	}
	if got["flame_type"] != "pflame" || got["level"] != "140-149" {
		t.Errorf("settings = %v / %v", got["flame_type"], got["level"])
	}
	top := got["top"].([]any)
	if len(top) != 2 {
		t.Fatalf("top has %d entries", len(top))
	}
	lines := top[0].(map[string]any)["lines"].([]any)
	if first := lines[0].(map[string]any); first["name"] != "str" || first["tier"].(float64) != 6 {
		t.Errorf("first line = %v", first)
	}
}
