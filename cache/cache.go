/*
# Module: cache/cache.go
Cache interface for collaborator response caching.

## Linked Modules
- [cache/memory](./memory.go) - In-memory implementation
- [cache/redis](./redis.go) - Redis implementation

## Tags
cache, interface

## Exports
Cache

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "cache/cache.go" ;
    code:description "Cache interface for collaborator response caching" ;
    code:linksTo [
        code:name "cache/memory" ;
        code:path "./memory.go" ;
        code:relationship "In-memory implementation"
    ], [
        code:name "cache/redis" ;
        code:path "./redis.go" ;
        code:relationship "Redis implementation"
    ] ;
    code:exports :Cache ;
    code:tags "cache", "interface" .
<!-- End LinkedDoc RDF -->
*/
package cache

// Cache stores serialized collaborator responses for a backend-defined TTL.
// A best-effort store: Get misses and Set failures are silent.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}
