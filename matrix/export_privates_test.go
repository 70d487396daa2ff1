// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY, without widening the prod API.
//   - Compiled only with the tests of this directory; keep every bridge here
//     so a signature change is mirrored once.

// ExportedGatherOptions exposes gatherOptions for white-box tests.
var ExportedGatherOptions = gatherOptions

// OptionsSnapshot is a read-only view of Options for tests.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// Snapshot_TestOnly returns the public view of o.
func (o Options) Snapshot_TestOnly() OptionsSnapshot {
	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// PanicEpsilonInvalid_TestOnly exports the panic message to avoid magic strings in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
