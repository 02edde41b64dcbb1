// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package testsutil

import (
	"fmt"
	"testing"

	"github.com/stashkv/stash/pkg/uuid"
	"github.com/stretchr/testify/require"
)

// GenerateUUID generates a UUID for testing purposes.
func GenerateUUID(t *testing.T) string {
	idProvider := uuid.New()
	id, err := idProvider.ID()
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))

	return id
}
