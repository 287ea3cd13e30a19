package dbtest

import "happy-hotel/internal/infra/db"

// DBLike is what the room and booking fixtures need from a connection. The
// e2e pool and MockDBTX both satisfy it.
type DBLike = db.DBTX
