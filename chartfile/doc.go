// SPDX-License-Identifier: MIT

// Package chartfile loads chart.Input documents from YAML, TOML or JSON files
// and builds them into charts.
//
// The format is chosen by extension: .yaml/.yml, .toml, .json. Symbols may be
// written as glyphs or pinyin ("甲" or "jia", "子" or "zi"); enumerations use
// their kebab-case names ("very-weak", "peach-blossom"). Unknown keys are
// rejected so that a misspelled field cannot silently drop a fact.
//
//	name: alice
//	pillars:
//	  year:  {stem: 甲, branch: 子, ten_god: seven-killings}
//	  month: {stem: 丙, branch: 寅, ten_god: indirect-resource}
//	  day:   {stem: 戊, branch: 辰}
//	  hour:  {stem: 庚, branch: 申, ten_god: eating-god, stars: [nobleman]}
//	day_master_element: earth
//	strength: weak
//	preferences: {favorable: fire, useful: earth, idle: metal, taboo: water, enemy: wood}
//	balance: {wood: 20, fire: 20, earth: 20, metal: 20, water: 20}
//	luck: {stem: 乙, branch: 丑}
package chartfile
