// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

import "time"

const (
	PoolLockTimeLimit = 10 * time.Second
)

const (
	ExtractMatchesFunction = "extractMatches"
	ReportMatchFunction    = "reportMatch"

	// Candidate skip reason constants.
	SkipReasonRoleCoverage   = "skip_role_coverage_not_satisfied"
	SkipReasonFairnessFloor  = "skip_fairness_below_floor"
	SkipReasonPlayerConsumed = "skip_player_already_consumed"

	// No match reason constants.
	ReasonNotEnoughPlayers = "not_enough_players"
	ReasonPremadeStub      = "premade_pool_not_implemented"
)
