// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package models contains the shared data objects of the matchmaking engine:
// roles, queue blueprints, pool kinds, the rank table and the non-owning
// handle types used for back-references between players, queues and matches.
package models

import (
	"fmt"
)

// Role is an in-game role a player can declare as preferred.
type Role string

const (
	RoleRunner  Role = "runner"
	RoleSupport Role = "support"
	RoleDefense Role = "defense"
)

// PrimaryRole must be covered by at least one member of every team.
var PrimaryRole = RoleRunner

// SecondaryRoles must be covered by at least one member of every team,
// either of the two is enough.
var SecondaryRoles = []Role{RoleSupport, RoleDefense}

// AllRoles lists every known role. A player with no declared preference is
// treated as capable of all of them.
var AllRoles = []Role{RoleRunner, RoleSupport, RoleDefense}

// PoolKind selects the matching algorithm of a pool.
type PoolKind int

const (
	SoloDuo PoolKind = iota
	PremadeDuo
	SoloTrio
	PremadeTrio
)

func (k PoolKind) String() string {
	switch k {
	case SoloDuo:
		return "solo-duo"
	case PremadeDuo:
		return "premade-duo"
	case SoloTrio:
		return "solo-trio"
	case PremadeTrio:
		return "premade-trio"
	default:
		return fmt.Sprintf("pool-kind-%d", int(k))
	}
}

// TeamSize is the number of players per team once placed in a match.
func (k PoolKind) TeamSize() int {
	switch k {
	case SoloDuo, PremadeDuo:
		return 2
	default:
		return 3
	}
}

// MaxPremadeSize is the largest team allowed to queue together. Solo pools
// accept singletons only.
func (k PoolKind) MaxPremadeSize() int {
	switch k {
	case SoloDuo, SoloTrio:
		return 1
	default:
		return k.TeamSize()
	}
}

// QueueBlueprint describes one game mode. One Queue is built from it per
// configured region.
type QueueBlueprint struct {
	Name        string   // stable name, also the pool id ratings are stored under
	DisplayName string   // name rendered to users, falls back to Name when empty
	Kind        PoolKind // matching algorithm for this mode
}

// DefaultBlueprints is the shipped mode list. Hosts can pass their own.
var DefaultBlueprints = []QueueBlueprint{
	{Name: "solo2v2", DisplayName: "Solo 2v2", Kind: SoloDuo},
	{Name: "solo3v3", DisplayName: "Solo 3v3", Kind: SoloTrio},
	{Name: "team2v2", DisplayName: "Team 2v2", Kind: PremadeDuo},
	{Name: "team3v3", DisplayName: "Team 3v3", Kind: PremadeTrio},
}

// QueueRef is a non-owning handle to one (mode, region) queue.
type QueueRef struct {
	Pool   string // blueprint name
	Region string
}

func (r QueueRef) String() string {
	return r.Pool + "/" + r.Region
}

// IsZero reports whether the handle points nowhere.
func (r QueueRef) IsZero() bool {
	return r.Pool == "" && r.Region == ""
}

// MatchID is a non-owning handle to an in-flight match.
type MatchID string

// Rank maps the start of a rating interval to a human label. Table order is
// by ascending Start.
type Rank struct {
	Name  string
	Start int
}

// DefaultRanks is the shipped rank ladder.
var DefaultRanks = []Rank{
	{Name: "Tin", Start: 800},
	{Name: "Bronze", Start: 1130},
	{Name: "Silver", Start: 1390},
	{Name: "Gold", Start: 1680},
	{Name: "Platinum", Start: 2000},
	{Name: "Diamond", Start: 2500},
	{Name: "Valhallan", Start: 3000},
}
