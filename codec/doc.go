// Package codec contains concrete core.Codec implementations. JSON is the
// default: a readable text capture of an instance's field state. CBOR is a
// compact binary alternative for hosts with large field maps; the capture is
// stored as a raw byte string in the snapshot KV, so the backing storage
// must be binary-safe. Both codecs overwrite fields in place on decode and
// never touch identity, type or location.
package codec
