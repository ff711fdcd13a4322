// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the semver of this strata build. Overridden via ldflags in
// release builds.
var Version = "0.3.0"
