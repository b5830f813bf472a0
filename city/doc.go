// Package city holds the persisted state of a running city session.
//
// Every field mirrors one region of the savegame or scenario format and is a
// fixed-size value or array, so a raw copy between a piece and its field
// consumes the piece exactly. Regions owned by simulation subsystems this
// module does not implement (figures, buildings, city info, messages, ...)
// are kept as opaque byte blocks and round-trip unchanged.
//
// Types with a LoadState/SaveState pair pack richer records into one or more
// pieces; the savegame codec delegates to them.
package city
