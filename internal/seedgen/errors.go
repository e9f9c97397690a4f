package seedgen

import "errors"

// ErrInvariant marks a broken generation invariant: a programmer error in the
// orchestrator's branching, never a runtime condition worth retrying.
var ErrInvariant = errors.New("seedgen: invariant violation")

// ErrConfig marks invalid population bounds, rejected before any row is
// written.
var ErrConfig = errors.New("seedgen: invalid config")
