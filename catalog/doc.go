// SPDX-License-Identifier: MIT

// Package catalog is the fixed relationship catalog: which branch pairs and
// trios (and, for cross-chart use, which stem pairs) form which relationship,
// with what resultant element and base strength.
//
// Everything here is data. The tables in tables.go are plain arrays that can
// be audited line by line against reference material; lookup.go only indexes
// them. Nothing is mutated after package initialization.
//
// Relationship kinds form a closed enumeration (Kind) whose declaration
// order is also the tie-break priority used when sorting findings:
//
//	ThreeMeeting    +100   寅卯辰 巳午未 申酉戌 亥子丑
//	ThreeHarmony     +90   申子辰 亥卯未 寅午戌 巳酉丑
//	SixHarmony       +80   子丑 寅亥 卯戌 辰酉 巳申 午未
//	HalfHarmony   +70/60   two of a three-harmony trio (with / without pivot)
//	SixClash         -90   子午 丑未 寅申 卯酉 辰戌 巳亥
//	ThreePunishment  -80   寅巳申 丑戌未, and the 子卯 pair
//	SelfPunishment   -80   辰辰 午午 酉酉 亥亥 (punishment strength)
//	SixHarm          -70   子未 丑午 寅巳 卯辰 申亥 酉戌
//	SixBreak         -60   子酉 卯午 丑辰 未戌
//	StemCombination  +70   甲己 乙庚 丙辛 丁壬 戊癸 (cross-chart)
//	StemClash        -70   same polarity, one controls the other (cross-chart)
//
// The four pairwise branch sets are mutually exclusive: 寅亥 and 巳申, which
// some references also list as breaks, are classified as six-harmony only.
package catalog
