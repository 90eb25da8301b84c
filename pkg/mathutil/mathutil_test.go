// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, Min(3, 7))
	assert.Equal(t, 7, Max(3, 7))
	assert.Equal(t, -7.5, Min(-7.5, -3.0))
	assert.Equal(t, "b", Max("a", "b"))
}

func TestAbs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, int64(9), Abs(int64(-9)))
}
