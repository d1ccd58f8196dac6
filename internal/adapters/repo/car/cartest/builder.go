// Package cartest builds small repository archives for tests.
package cartest

import (
	"cmp"
	"encoding/binary"
	"slices"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/require"
)

const linkTag = 42

// Builder assembles a minimal signed-repository CAR in memory.
type Builder struct {
	t      testing.TB
	enc    cbor.EncMode
	blocks []block
}

type block struct {
	cid  cid.Cid
	data []byte
}

// Entry is one key of a tree node. Subtree links the keys that sort after it.
type Entry struct {
	Key     string
	Value   cid.Cid
	Subtree *cid.Cid
}

func NewBuilder(t testing.TB) *Builder {
	t.Helper()

	enc, err := cbor.CanonicalEncOptions().EncMode()
	require.NoError(t, err)
	return &Builder{t: t, enc: enc}
}

func CIDOf(data []byte) cid.Cid {
	prefix := cid.Prefix{Version: 1, Codec: cid.DagCBOR, MhType: 0x12, MhLength: -1}
	c, err := prefix.Sum(data)
	if err != nil {
		panic(err)
	}
	return c
}

func Link(c cid.Cid) cbor.Tag {
	return cbor.Tag{Number: linkTag, Content: append([]byte{0x00}, c.Bytes()...)}
}

func (b *Builder) Encode(v any) []byte {
	b.t.Helper()

	data, err := b.enc.Marshal(v)
	require.NoError(b.t, err)
	return data
}

// Put stores v as a block and returns its CID.
func (b *Builder) Put(v any) cid.Cid {
	data := b.Encode(v)
	c := CIDOf(data)
	b.blocks = append(b.blocks, block{cid: c, data: data})
	return c
}

// Ref computes the CID of v without storing it.
func (b *Builder) Ref(v any) cid.Cid {
	return CIDOf(b.Encode(v))
}

// Node stores a tree node with prefix-compressed keys.
func (b *Builder) Node(left *cid.Cid, entries ...Entry) cid.Cid {
	encoded := make([]any, 0, len(entries))
	prev := ""
	for _, entry := range entries {
		shared := 0
		for shared < len(prev) && shared < len(entry.Key) && prev[shared] == entry.Key[shared] {
			shared++
		}
		var tree any
		if entry.Subtree != nil {
			tree = Link(*entry.Subtree)
		}
		encoded = append(encoded, map[string]any{
			"p": shared,
			"k": []byte(entry.Key[shared:]),
			"v": Link(entry.Value),
			"t": tree,
		})
		prev = entry.Key
	}

	var l any
	if left != nil {
		l = Link(*left)
	}
	return b.Put(map[string]any{"l": l, "e": encoded})
}

// Archive writes the commit block and returns the CAR bytes.
func (b *Builder) Archive(did, rev string, data cid.Cid) []byte {
	root := b.Put(map[string]any{
		"did":     did,
		"version": 3,
		"data":    Link(data),
		"rev":     rev,
		"prev":    nil,
		"sig":     []byte{0x01, 0x02},
	})

	header := b.Encode(map[string]any{
		"roots":   []any{Link(root)},
		"version": 1,
	})

	out := binary.AppendUvarint(nil, uint64(len(header)))
	out = append(out, header...)
	for _, blk := range b.blocks {
		cidBytes := blk.cid.Bytes()
		out = binary.AppendUvarint(out, uint64(len(cidBytes)+len(blk.data)))
		out = append(out, cidBytes...)
		out = append(out, blk.data...)
	}
	return out
}

// Record is a record to place under Key in a one-node repository.
type Record struct {
	Key   string
	Value map[string]any
}

// Repo builds a repository whose tree is a single node holding records in key
// order.
func Repo(t testing.TB, did, rev string, records ...Record) []byte {
	t.Helper()

	b := NewBuilder(t)
	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, Entry{Key: record.Key, Value: b.Put(record.Value)})
	}
	slices.SortFunc(entries, func(x, y Entry) int { return cmp.Compare(x.Key, y.Key) })
	return b.Archive(did, rev, b.Node(nil, entries...))
}
