// Package dataset supplies the two parsed documents the knowledge base is
// built from: the STIX graph-exchange bundle and the per-technique
// enrichment dataset.
//
// The Provider interface is the boundary the core depends on. The default
// HTTPProvider fetches from the public dataset locations (or local file
// paths) through a pluggable Cache, so repeat loads are served without
// network I/O until a force-refresh. Cache backends: the on-disk FSCache
// and a Redis-backed RedisCache for hosts that share a cache.
//
// Document locations and the cache directory can be overridden through a
// small YAML config file, see Config.
package dataset
