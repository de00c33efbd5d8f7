package fpl

import crerr "github.com/cockroachdb/errors"

// Failure kinds for a single fetch, checked in priority order: the request
// either never completed, completed with a non-2xx status, or completed but
// carried a body that does not match the expected shape. Wrapped messages
// always name the endpoint; match with errors.Is.
var (
	ErrTransport = crerr.New("request could not be completed")
	ErrBadStatus = crerr.New("unexpected response status")
	ErrDecode    = crerr.New("response body could not be decoded")
)

// Fixture resolution failures. The upstream API has no per-fixture endpoint,
// so GetFixture locates the fixture in the unscoped list first and then
// re-queries its gameweek; each step has its own failure mode.
var (
	// ErrUnresolvedGameweek: the fixture is absent from the unscoped list,
	// or present but not yet assigned to a gameweek, so the scoped lookup
	// cannot run.
	ErrUnresolvedGameweek = crerr.New("fixture cannot be resolved to a gameweek")

	// ErrFixtureVanished: the fixture appeared in the unscoped list but is
	// missing from its own gameweek's list — an upstream consistency anomaly.
	ErrFixtureVanished = crerr.New("fixture missing from its gameweek fixture list")
)
