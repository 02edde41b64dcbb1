// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package cli

import stashsdk "github.com/stashkv/stash/pkg/sdk"

// Keep SDK handle in global var.
var sdk stashsdk.SDK

// SetSDK sets supplied SDK.
func SetSDK(s stashsdk.SDK) {
	sdk = s
}
