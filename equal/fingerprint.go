package equal

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a structural 64-bit digest of v.
//
// On acyclic values it agrees with Equals: structurally equal values always
// fingerprint identically, including reordered Record fields and the
// array-shaped-record case, so a fingerprint mismatch there proves inequality.
// On cyclic graphs the digest is still deterministic and terminates, but two
// graphs that Equals accepts only through its optimistic cycle rule (loops of
// different period) may fingerprint differently; do not use it as an equality
// pre-filter for cyclic inputs.
func Fingerprint(v Value) uint64 {
	d := xxhash.New()
	hashValue(d, v, make(map[Value]int))
	return d.Sum64()
}

const (
	tagNull byte = iota + 1
	tagNumber
	tagText
	tagBool
	tagPattern
	tagInstant
	tagRef
	tagSeq
	tagMap
	tagRecord
	tagCycle
	tagInt
	tagUint
)

func hashValue(d *xxhash.Digest, v Value, path map[Value]int) {
	switch x := v.(type) {
	case nil, Null:
		writeTag(d, tagNull)
	case Number:
		writeTag(d, tagNumber)
		writeUint64(d, math.Float64bits(float64(x)))
	case Int:
		writeTag(d, tagInt)
		writeUint64(d, uint64(x))
	case Uint:
		writeTag(d, tagUint)
		writeUint64(d, uint64(x))
	case Text:
		writeTag(d, tagText)
		writeString(d, string(x))
	case Bool:
		writeTag(d, tagBool)
		if x {
			writeUint64(d, 1)
		} else {
			writeUint64(d, 0)
		}
	case Pattern:
		writeTag(d, tagPattern)
		writeString(d, x.Source)
		writeString(d, x.Flags)
	case Instant:
		writeTag(d, tagInstant)
		writeUint64(d, uint64(x.at.UnixNano()))
	case *Fn:
		// Reference-identity leaves hash by their identity: the lifted code
		// pointer when Of produced them, the wrapper address otherwise.
		writeTag(d, tagRef)
		if x != nil && x.ptr != 0 {
			writeUint64(d, uint64(x.ptr))
		} else {
			writeString(d, fmt.Sprintf("%p", x))
		}
	case *Opaque:
		writeTag(d, tagRef)
		if x.v != nil && comparableContents(x) {
			writeString(d, fmt.Sprintf("%T=%v", x.v, x.v))
		} else {
			writeString(d, fmt.Sprintf("%p", x))
		}
	case *Seq:
		if x == nil {
			writeTag(d, tagSeq)
			writeString(d, "nil")
			return
		}
		hashComposite(d, x, path, func() {
			writeTag(d, tagSeq)
			writeUint64(d, uint64(len(x.Items)))
			for _, item := range x.Items {
				hashValue(d, item, path)
			}
		})
	case *Map:
		if x == nil {
			writeTag(d, tagMap)
			writeString(d, "nil")
			return
		}
		hashComposite(d, x, path, func() {
			writeTag(d, tagMap)
			writeUint64(d, uint64(len(x.entries)))
			for _, entry := range x.entries {
				hashValue(d, entry.Key, path)
				hashValue(d, entry.Val, path)
			}
		})
	case *Record:
		if x == nil {
			writeTag(d, tagRecord)
			writeString(d, "nil")
			return
		}
		if arrayShaped(x) {
			// Array-shaped records must collide with their Seq twin.
			hashComposite(d, x, path, func() {
				writeTag(d, tagSeq)
				writeUint64(d, uint64(len(x.fields)))
				for _, item := range sequenceOf(x) {
					hashValue(d, item, path)
				}
			})
			return
		}
		hashComposite(d, x, path, func() {
			writeTag(d, tagRecord)
			writeUint64(d, uint64(len(x.fields)))
			for _, k := range x.Keys() {
				writeString(d, k)
				hashValue(d, x.fields[k], path)
			}
		})
	}
}

// hashComposite guards content against cycles: a node revisited on the
// current path hashes as a back-reference to its path depth.
func hashComposite(d *xxhash.Digest, node Value, path map[Value]int, content func()) {
	if depth, active := path[node]; active {
		writeTag(d, tagCycle)
		writeUint64(d, uint64(depth))
		return
	}
	path[node] = len(path)
	defer delete(path, node)
	content()
}

// comparableContents mirrors the eqOpaques rule: contents that compare by ==
// hash by rendered value, everything else by wrapper address.
func comparableContents(o *Opaque) bool {
	return reflect.TypeOf(o.v).Comparable()
}

func writeTag(d *xxhash.Digest, tag byte) {
	_, _ = d.Write([]byte{tag})
}

func writeUint64(d *xxhash.Digest, n uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	_, _ = d.Write(buf[:])
}

func writeString(d *xxhash.Digest, s string) {
	writeUint64(d, uint64(len(s)))
	_, _ = d.WriteString(s)
}
