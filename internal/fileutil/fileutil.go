// Package fileutil holds shared file permission constants.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for filtered document
// output files, which may contain sensitive API surface details
// (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
