// types.go
package flame

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownBracket   = errors.New("unknown level bracket")
	ErrUnknownFlameType = errors.New("unknown flame type")
	ErrUnknownTarget    = errors.New("unknown target stat")
	ErrUnknownLine      = errors.New("unknown line name")
)

// Stat is one slot of a StatVector.
type Stat int

const (
	StatSTR Stat = iota
	StatDEX
	StatINT
	StatLUK
	StatATT
	StatMATT
	StatHP
	StatMP
	StatJMP
	StatSpeed
	StatAllStat // all-stat %
	numStats
)

var statNames = [numStats]string{"str", "dex", "int", "luk", "att", "matt", "hp", "mp", "jmp", "speed", "as"}

func (s Stat) String() string {
	if s < 0 || s >= numStats {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// Stats lists every slot in StatVector order.
func Stats() []Stat {
	out := make([]Stat, numStats)
	for i := range out {
		out[i] = Stat(i)
	}
	return out
}

// StatVector accumulates line values per slot for one flame.
type StatVector [numStats]int

// LineName is one of the 19 lines a flame can grant.
type LineName int

const (
	LineSTR LineName = iota
	LineDEX
	LineINT
	LineLUK
	LineSTRDEX
	LineSTRINT
	LineSTRLUK
	LineDEXINT
	LineDEXLUK
	LineLUKINT
	LineHP
	LineMP
	LineDEF
	LineLvlRed
	LineATT
	LineMATT
	LineSpeed
	LineJMP
	LineAllStat
	NumLines
)

type lineKind int

const (
	kindFlat lineKind = iota
	kindCombo
	kindHPMP
	kindBasic
)

type lineInfo struct {
	name  string
	kind  lineKind
	slots []Stat // def and level reduction score nothing
}

var lineTable = [NumLines]lineInfo{
	LineSTR:     {"str", kindFlat, []Stat{StatSTR}},
	LineDEX:     {"dex", kindFlat, []Stat{StatDEX}},
	LineINT:     {"int", kindFlat, []Stat{StatINT}},
	LineLUK:     {"luk", kindFlat, []Stat{StatLUK}},
	LineSTRDEX:  {"strdex", kindCombo, []Stat{StatSTR, StatDEX}},
	LineSTRINT:  {"strint", kindCombo, []Stat{StatSTR, StatINT}},
	LineSTRLUK:  {"strluk", kindCombo, []Stat{StatSTR, StatLUK}},
	LineDEXINT:  {"dexint", kindCombo, []Stat{StatDEX, StatINT}},
	LineDEXLUK:  {"dexluk", kindCombo, []Stat{StatDEX, StatLUK}},
	LineLUKINT:  {"lukint", kindCombo, []Stat{StatINT, StatLUK}},
	LineHP:      {"hp", kindHPMP, []Stat{StatHP}},
	LineMP:      {"mp", kindHPMP, []Stat{StatMP}},
	LineDEF:     {"def", kindBasic, nil},
	LineLvlRed:  {"lvlred", kindBasic, nil},
	LineATT:     {"att", kindBasic, []Stat{StatATT}},
	LineMATT:    {"matt", kindBasic, []Stat{StatMATT}},
	LineSpeed:   {"spd", kindBasic, []Stat{StatSpeed}},
	LineJMP:     {"jmp", kindBasic, []Stat{StatJMP}},
	LineAllStat: {"as", kindBasic, []Stat{StatAllStat}},
}

func (l LineName) String() string {
	if l < 0 || l >= NumLines {
		return fmt.Sprintf("LineName(%d)", int(l))
	}
	return lineTable[l].name
}

// Slots returns the StatVector slots a line adds its value to.
func (l LineName) Slots() []Stat { return lineTable[l].slots }

// ParseLineName accepts the canonical names plus "intluk" for lukint.
func ParseLineName(s string) (LineName, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "intluk" {
		return LineLUKINT, nil
	}
	for i := range lineTable {
		if lineTable[i].name == s {
			return LineName(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLine, s)
}

// Bracket is an equipment level range.
type Bracket int

const (
	Bracket100 Bracket = iota
	Bracket110
	Bracket120
	Bracket130
	Bracket140
	Bracket150
	Bracket160
	Bracket170
	Bracket180
	Bracket190
	Bracket200
	Bracket250
	numBrackets
)

var bracketNames = [numBrackets]string{
	"100-109", "110-119", "120-129", "130-139", "140-149", "150-159",
	"160-169", "170-179", "180-189", "190-199", "200-249", "250+",
}

func (b Bracket) String() string {
	if b < 0 || b >= numBrackets {
		return fmt.Sprintf("Bracket(%d)", int(b))
	}
	return bracketNames[b]
}

func (b Bracket) valid() bool { return b >= 0 && b < numBrackets }

// Brackets lists every supported level bracket.
func Brackets() []Bracket {
	out := make([]Bracket, numBrackets)
	for i := range out {
		out[i] = Bracket(i)
	}
	return out
}

func ParseBracket(s string) (Bracket, error) {
	s = strings.TrimSpace(s)
	for i, name := range bracketNames {
		if name == s {
			return Bracket(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (options: %s)", ErrUnknownBracket, s, strings.Join(bracketNames[:], ", "))
}

// FlameType selects the tier weight distribution.
type FlameType int

const (
	Abyss FlameType = iota
	Totem
	Drop
	PFlame
	EFlame
	RegCraft
	MasterCraft
	MeisterCraft
	MasterFuse
	MeisterFuse
	numFlameTypes
)

var flameTypeNames = [numFlameTypes]string{
	"abyss", "totem", "drop", "pflame", "eflame",
	"regcraft", "mastercraft", "meistercraft", "masterfuse", "meisterfuse",
}

func (t FlameType) String() string {
	if t < 0 || t >= numFlameTypes {
		return fmt.Sprintf("FlameType(%d)", int(t))
	}
	return flameTypeNames[t]
}

func (t FlameType) valid() bool { return t >= 0 && t < numFlameTypes }

// FlameTypes lists every supported flame type.
func FlameTypes() []FlameType {
	out := make([]FlameType, numFlameTypes)
	for i := range out {
		out[i] = FlameType(i)
	}
	return out
}

func ParseFlameType(s string) (FlameType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range flameTypeNames {
		if name == s {
			return FlameType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (options: %s)", ErrUnknownFlameType, s, strings.Join(flameTypeNames[:], ", "))
}

// TargetStat selects the flamescore formula.
type TargetStat int

const (
	TargetSTR TargetStat = iota
	TargetDEX
	TargetINT
	TargetLUK
	TargetKanna
	TargetDA
	TargetXenon
	TargetAltThief
	numTargets
)

var targetNames = [numTargets]string{"str", "dex", "int", "luk", "kanna", "da", "xenon", "alt_thief"}

func (t TargetStat) String() string {
	if t < 0 || t >= numTargets {
		return fmt.Sprintf("TargetStat(%d)", int(t))
	}
	return targetNames[t]
}

func (t TargetStat) valid() bool { return t >= 0 && t < numTargets }

// TargetStats lists every supported scoring target.
func TargetStats() []TargetStat {
	out := make([]TargetStat, numTargets)
	for i := range out {
		out[i] = TargetStat(i)
	}
	return out
}

func ParseTargetStat(s string) (TargetStat, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range targetNames {
		if name == s {
			return TargetStat(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (options: %s)", ErrUnknownTarget, s, strings.Join(targetNames[:], ", "))
}
