// Package testutil provides utilities for testing dotupdate components.
//
// Key components:
//   - TestEnvironment: isolated source, destination and home directories
//     with HOME and XDG_* pointed inside the test's temp dir
//   - TestEnvironment.AddFile / AddDir: declarative source tree setup
//   - FaultyFS: a types.FS wrapper that injects errors into chosen calls
//
// All test data is defined inline; every environment is removed by
// t.TempDir cleanup.
package testutil
