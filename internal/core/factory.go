// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"contract-scan/internal/checks/compliance"
	"contract-scan/internal/checks/regulation"
	"contract-scan/internal/checks/risk"
	"contract-scan/internal/contract"
)

// BuildCheckerSet constructs the standard set of checkers filtered by the
// enabled checks map.
func BuildCheckerSet(enabledChecks map[string]bool) map[string]contract.Checker {
	result := make(map[string]contract.Checker)

	if enabledChecks["COMPLIANCE"] {
		result["COMPLIANCE"] = compliance.NewChecker()
	}
	if enabledChecks["REGULATION"] {
		result["REGULATION"] = regulation.NewChecker()
	}
	if enabledChecks["RISK"] {
		result["RISK"] = risk.NewChecker()
	}

	return result
}
