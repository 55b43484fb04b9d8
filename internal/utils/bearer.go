// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OnCallSight Authors

package utils

import "strings"

// NormalizeBearerToken strips an optional "Bearer" scheme prefix from a
// token, so a value pasted straight from an Authorization header can be
// stored as-is. A scheme with nothing after it normalizes to the empty
// string.
func NormalizeBearerToken(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) > 0 && fields[0] == "Bearer" {
		return strings.Join(fields[1:], " ")
	}

	return strings.TrimSpace(raw)
}
