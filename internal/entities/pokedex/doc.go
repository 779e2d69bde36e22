// Package pokedex holds the resolved data model served by the dex API:
// entity references, pokemon, species, evolution trees, moves, types and the
// list resources used by the aggregation engines.
//
// These are plain values. Wire-format decoding lives in the fetch client and
// no type here performs I/O.
package pokedex
