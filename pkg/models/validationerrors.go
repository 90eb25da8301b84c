// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
	"fmt"
)

var (
	ValidationErrorTeamTooLarge       = errors.New("team exceeds the maximum premade size of this queue")
	ValidationErrorTeamAlreadyQueued  = errors.New("team is already in a queue")
	ValidationErrorTeamInMatch        = errors.New("team is already in a match")
	ValidationErrorPlayerQueued       = errors.New("player is already in a queue")
	ValidationErrorPlayerInMatch      = errors.New("player is already in a match")
	ValidationErrorPlayerInTeam       = errors.New("player is already in a different team")
	ValidationErrorAlreadyOnThisTeam  = errors.New("player is already on this team")
	ValidationErrorNotQueued          = errors.New("not in a queue")
	ValidationErrorNotInMatch         = errors.New("not in a match")
	ValidationErrorUnknownQueue       = errors.New("unknown queue mode or region")
	ValidationErrorSoloWithTeam       = errors.New("cannot solo queue while on a team")
	ValidationErrorPlayerNotOnTeam    = errors.New("player is not on this team")
)

var validationErrorCodeMap = map[error]int{
	ValidationErrorTeamTooLarge:      510201,
	ValidationErrorTeamAlreadyQueued: 510202,
	ValidationErrorTeamInMatch:       510203,
	ValidationErrorPlayerQueued:      510204,
	ValidationErrorPlayerInMatch:     510205,
	ValidationErrorPlayerInTeam:      510206,
	ValidationErrorAlreadyOnThisTeam: 510207,
	ValidationErrorNotQueued:         510208,
	ValidationErrorNotInMatch:        510209,
	ValidationErrorUnknownQueue:      510210,
	ValidationErrorSoloWithTeam:      510211,
	ValidationErrorPlayerNotOnTeam:   510212,
}

// ValidationErrorCode returns a code for the error.
// It returns 20002 if the error is not registered in the map.
func ValidationErrorCode(err error) int {
	for registered, code := range validationErrorCodeMap {
		if errors.Is(err, registered) {
			return code
		}
	}
	return 20002
}

// MemberError wraps a validation error with the member that caused it, so the
// surrounding layer can tell the team who is at fault.
type MemberError struct {
	PlayerID string
	Err      error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("player %s: %v", e.PlayerID, e.Err)
}

func (e *MemberError) Unwrap() error { return e.Err }
