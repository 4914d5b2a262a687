// Package chunkstore persists large video blobs as a sequence of fixed-size
// chunk objects plus a JSON manifest, GridFS style, on top of a gocloud.dev
// blob bucket. Readers stream an arbitrary byte range across chunk boundaries
// in order, without loading the blob into memory.
package chunkstore
