package car

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"
	carv2 "github.com/ipld/go-car/v2"
)

const cidLinkTag = 42

// Entry is one record reached through the repository's search tree. Bytes is
// nil when the archive does not carry the record block.
type Entry struct {
	Collection string
	RecordKey  string
	CID        cid.Cid
	Bytes      []byte
}

// Archive is a decoded repository snapshot in key order.
type Archive struct {
	DID      string
	Revision string
	Entries  []Entry
}

// link is a DAG-CBOR CID link (tag 42 over a 0x00-prefixed binary CID).
type link struct {
	cid.Cid
}

func (l *link) UnmarshalCBOR(data []byte) error {
	var tag cbor.Tag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("decode link: %w", err)
	}
	if tag.Number != cidLinkTag {
		return fmt.Errorf("decode link: unexpected tag %d", tag.Number)
	}
	content, ok := tag.Content.([]byte)
	if !ok || len(content) < 2 || content[0] != 0x00 {
		return errors.New("decode link: malformed CID bytes")
	}
	parsed, err := cid.Cast(content[1:])
	if err != nil {
		return fmt.Errorf("decode link: %w", err)
	}
	l.Cid = parsed
	return nil
}

type commit struct {
	DID     string `cbor:"did"`
	Version int    `cbor:"version"`
	Data    link   `cbor:"data"`
	Rev     string `cbor:"rev"`
	Prev    *link  `cbor:"prev"`
	Sig     []byte `cbor:"sig"`
}

type treeNode struct {
	Left    *link       `cbor:"l"`
	Entries []treeEntry `cbor:"e"`
}

type treeEntry struct {
	PrefixLen int    `cbor:"p"`
	KeySuffix []byte `cbor:"k"`
	Value     link   `cbor:"v"`
	Tree      *link  `cbor:"t"`
}

// ReadArchive decodes a CAR v1 repository export and walks its commit tree.
func ReadArchive(data []byte) (Archive, error) {
	reader, err := carv2.NewBlockReader(bytes.NewReader(data))
	if err != nil {
		return Archive{}, fmt.Errorf("open archive: %w", err)
	}
	if len(reader.Roots) == 0 {
		return Archive{}, errors.New("open archive: no root commit")
	}

	blocks := make(map[string][]byte)
	for {
		blk, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Archive{}, fmt.Errorf("read archive block: %w", err)
		}
		blocks[blk.Cid().KeyString()] = blk.RawData()
	}

	root := reader.Roots[0]
	rawCommit, ok := blocks[root.KeyString()]
	if !ok {
		return Archive{}, fmt.Errorf("read commit: block %s missing", root)
	}
	var head commit
	if err := cbor.Unmarshal(rawCommit, &head); err != nil {
		return Archive{}, fmt.Errorf("decode commit: %w", err)
	}

	archive := Archive{DID: head.DID, Revision: head.Rev}
	walker := treeWalker{blocks: blocks, visited: make(map[string]struct{})}
	err = walker.walk(head.Data.Cid, func(key string, value cid.Cid) {
		collection, rkey, _ := strings.Cut(key, "/")
		archive.Entries = append(archive.Entries, Entry{
			Collection: collection,
			RecordKey:  rkey,
			CID:        value,
			Bytes:      blocks[value.KeyString()],
		})
	})
	if err != nil {
		return Archive{}, err
	}

	return archive, nil
}

type treeWalker struct {
	blocks  map[string][]byte
	visited map[string]struct{}
	depth   int
	prevKey string
	started bool
}

// maxTreeDepth bounds recursion on malformed or cyclic archives.
const maxTreeDepth = 128

func (w *treeWalker) walk(node cid.Cid, visit func(key string, value cid.Cid)) error {
	if w.depth > maxTreeDepth {
		return errors.New("walk tree: maximum depth exceeded")
	}
	w.depth++
	defer func() { w.depth-- }()

	if _, seen := w.visited[node.KeyString()]; seen {
		return fmt.Errorf("walk tree: node %s reached twice", node)
	}
	w.visited[node.KeyString()] = struct{}{}

	raw, ok := w.blocks[node.KeyString()]
	if !ok {
		return fmt.Errorf("walk tree: node %s missing", node)
	}
	var decoded treeNode
	if err := cbor.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("walk tree: decode node %s: %w", node, err)
	}

	if decoded.Left != nil {
		if err := w.walk(decoded.Left.Cid, visit); err != nil {
			return err
		}
	}

	var lastKey []byte
	for _, entry := range decoded.Entries {
		if entry.PrefixLen < 0 || entry.PrefixLen > len(lastKey) {
			return fmt.Errorf("walk tree: node %s has invalid key prefix %d", node, entry.PrefixLen)
		}
		key := make([]byte, 0, entry.PrefixLen+len(entry.KeySuffix))
		key = append(key, lastKey[:entry.PrefixLen]...)
		key = append(key, entry.KeySuffix...)
		lastKey = key

		// Keys come out of an in-order walk, so each must sort after the last.
		if w.started && string(key) <= w.prevKey {
			return fmt.Errorf("walk tree: key %q does not follow %q", key, w.prevKey)
		}
		w.prevKey, w.started = string(key), true

		visit(string(key), entry.Value.Cid)

		if entry.Tree != nil {
			if err := w.walk(entry.Tree.Cid, visit); err != nil {
				return err
			}
		}
	}

	return nil
}
