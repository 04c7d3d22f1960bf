// SPDX-License-Identifier: MIT

package catalog

import "github.com/taufulou/bazi-app-sub000/symbols"

// PairEntry is one row of the pairwise branch catalog.
type PairEntry struct {
	A, B    symbols.Branch
	Kind    Kind
	Element symbols.Element // resultant element for SixHarmony, zero otherwise
}

// Trio is a three-branch group. Pivot is the cardinal member of a
// three-harmony trio (the "prosperous" position); for meetings it is the
// middle branch.
type Trio struct {
	Branches [3]symbols.Branch
	Element  symbols.Element
	Pivot    symbols.Branch
}

// Contains reports whether b is a member of t.
func (t Trio) Contains(b symbols.Branch) bool {
	return t.Branches[0] == b || t.Branches[1] == b || t.Branches[2] == b
}

// PunishGroup is a punishment set. Groups of three punish when all members
// meet; the two-member group punishes as a pair.
type PunishGroup struct {
	Name     string
	Branches []symbols.Branch
}

// Contains reports whether b belongs to g.
func (g PunishGroup) Contains(b symbols.Branch) bool {
	for _, m := range g.Branches {
		if m == b {
			return true
		}
	}
	return false
}

// StemPair is one row of the stem-combination catalog.
type StemPair struct {
	A, B    symbols.Stem
	Element symbols.Element
}

const (
	zi   = symbols.BranchZi
	chou = symbols.BranchChou
	yin  = symbols.BranchYin
	mao  = symbols.BranchMao
	chen = symbols.BranchChen
	si   = symbols.BranchSi
	wu   = symbols.BranchWu
	wei  = symbols.BranchWei
	shen = symbols.BranchShen
	you  = symbols.BranchYou
	xu   = symbols.BranchXu
	hai  = symbols.BranchHai
)

// pairTable partitions the branch pairs that relate at all; every other
// unordered pair of distinct branches is unrelated.
var pairTable = [...]PairEntry{
	// six harmony
	{zi, chou, SixHarmony, symbols.Earth},
	{yin, hai, SixHarmony, symbols.Wood},
	{mao, xu, SixHarmony, symbols.Fire},
	{chen, you, SixHarmony, symbols.Metal},
	{si, shen, SixHarmony, symbols.Water},
	{wu, wei, SixHarmony, symbols.Earth},
	// six clash
	{zi, wu, SixClash, symbols.ElementNone},
	{chou, wei, SixClash, symbols.ElementNone},
	{yin, shen, SixClash, symbols.ElementNone},
	{mao, you, SixClash, symbols.ElementNone},
	{chen, xu, SixClash, symbols.ElementNone},
	{si, hai, SixClash, symbols.ElementNone},
	// six harm
	{zi, wei, SixHarm, symbols.ElementNone},
	{chou, wu, SixHarm, symbols.ElementNone},
	{yin, si, SixHarm, symbols.ElementNone},
	{mao, chen, SixHarm, symbols.ElementNone},
	{shen, hai, SixHarm, symbols.ElementNone},
	{you, xu, SixHarm, symbols.ElementNone},
	// six break
	{zi, you, SixBreak, symbols.ElementNone},
	{mao, wu, SixBreak, symbols.ElementNone},
	{chou, chen, SixBreak, symbols.ElementNone},
	{wei, xu, SixBreak, symbols.ElementNone},
}

var threeHarmonyTable = [...]Trio{
	{[3]symbols.Branch{shen, zi, chen}, symbols.Water, zi},
	{[3]symbols.Branch{hai, mao, wei}, symbols.Wood, mao},
	{[3]symbols.Branch{yin, wu, xu}, symbols.Fire, wu},
	{[3]symbols.Branch{si, you, chou}, symbols.Metal, you},
}

var threeMeetingTable = [...]Trio{
	{[3]symbols.Branch{yin, mao, chen}, symbols.Wood, mao},
	{[3]symbols.Branch{si, wu, wei}, symbols.Fire, wu},
	{[3]symbols.Branch{shen, you, xu}, symbols.Metal, you},
	{[3]symbols.Branch{hai, zi, chou}, symbols.Water, zi},
}

var punishTable = [...]PunishGroup{
	{"bullying", []symbols.Branch{yin, si, shen}},
	{"ungrateful", []symbols.Branch{chou, xu, wei}},
	{"uncivil", []symbols.Branch{zi, mao}},
}

var selfPunishTable = [...]symbols.Branch{chen, wu, you, hai}

var stemCombinationTable = [...]StemPair{
	{symbols.StemJia, symbols.StemJi, symbols.Earth},
	{symbols.StemYi, symbols.StemGeng, symbols.Metal},
	{symbols.StemBing, symbols.StemXin, symbols.Water},
	{symbols.StemDing, symbols.StemRen, symbols.Wood},
	{symbols.StemWu, symbols.StemGui, symbols.Fire},
}
