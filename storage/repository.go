/*
# Module: storage/repository.go
Repository interfaces for the operational search log.

## Linked Modules
- [types/search_record](../types/search_record.go) - Search record data structures

## Tags
storage, repository, interface, persistence

## Exports
SearchLogRepository

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/repository.go" ;
    code:description "Repository interfaces for the operational search log" ;
    code:linksTo [
        code:name "types/search_record" ;
        code:path "../types/search_record.go" ;
        code:relationship "Search record data structures"
    ] ;
    code:exports :SearchLogRepository ;
    code:tags "storage", "repository", "interface", "persistence" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"github.com/kjanuda/cityget/types"
)

// SearchLogRepository handles search record persistence
type SearchLogRepository interface {
	Save(record types.SearchRecord) error
	GetRecent(limit int) ([]types.SearchRecord, error)
}
