package car

import (
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

const (
	CollectionLike   = "app.bsky.feed.like"
	CollectionPost   = "app.bsky.feed.post"
	CollectionRepost = "app.bsky.feed.repost"

	embedRecord          = "app.bsky.embed.record"
	embedRecordWithMedia = "app.bsky.embed.recordWithMedia"
)

// Record is a decoded repository record. Exactly one of LikeRecord,
// PostRecord, RepostRecord, UnrecognizedRecord or MalformedRecord.
type Record interface {
	isRecord()
}

type LikeRecord struct {
	Subject   string
	CreatedAt time.Time
}

type RepostRecord struct {
	Subject   string
	CreatedAt time.Time
}

// PostRecord keeps the parts of a post that identify other accounts. Quoted
// is empty when the post embeds no record.
type PostRecord struct {
	Text        string
	ReplyParent string
	Quoted      string
	CreatedAt   time.Time
}

// UnrecognizedRecord is any collection outside likes, posts and reposts.
type UnrecognizedRecord struct {
	Collection string
}

// MalformedRecord could not be decoded or lacks a usable createdAt.
type MalformedRecord struct {
	Collection string
	RecordKey  string
	Err        error
}

func (LikeRecord) isRecord()         {}
func (RepostRecord) isRecord()       {}
func (PostRecord) isRecord()         {}
func (UnrecognizedRecord) isRecord() {}
func (MalformedRecord) isRecord()    {}

var (
	errMissingBlock     = errors.New("record block missing from archive")
	errMissingCreatedAt = errors.New("createdAt missing")
)

type strongRef struct {
	URI string `cbor:"uri"`
}

type subjectBody struct {
	Subject   strongRef `cbor:"subject"`
	CreatedAt string    `cbor:"createdAt"`
}

type postBody struct {
	Text      string     `cbor:"text"`
	CreatedAt string     `cbor:"createdAt"`
	Reply     *replyRef  `cbor:"reply"`
	Embed     *embedBody `cbor:"embed"`
}

type replyRef struct {
	Parent strongRef `cbor:"parent"`
}

type embedBody struct {
	Type   string          `cbor:"$type"`
	Record cbor.RawMessage `cbor:"record"`
}

type nestedRecord struct {
	Record strongRef `cbor:"record"`
}

// DecodeRecord classifies entry by collection and decodes the fields needed
// for interaction analysis.
func DecodeRecord(entry Entry) Record {
	switch entry.Collection {
	case CollectionLike, CollectionRepost, CollectionPost:
	default:
		return UnrecognizedRecord{Collection: entry.Collection}
	}

	malformed := func(err error) Record {
		return MalformedRecord{Collection: entry.Collection, RecordKey: entry.RecordKey, Err: err}
	}
	if entry.Bytes == nil {
		return malformed(errMissingBlock)
	}

	switch entry.Collection {
	case CollectionLike, CollectionRepost:
		var body subjectBody
		if err := cbor.Unmarshal(entry.Bytes, &body); err != nil {
			return malformed(fmt.Errorf("decode %s: %w", entry.Collection, err))
		}
		createdAt, err := parseCreatedAt(body.CreatedAt)
		if err != nil {
			return malformed(err)
		}
		if entry.Collection == CollectionLike {
			return LikeRecord{Subject: body.Subject.URI, CreatedAt: createdAt}
		}
		return RepostRecord{Subject: body.Subject.URI, CreatedAt: createdAt}
	default:
		var body postBody
		if err := cbor.Unmarshal(entry.Bytes, &body); err != nil {
			return malformed(fmt.Errorf("decode %s: %w", entry.Collection, err))
		}
		createdAt, err := parseCreatedAt(body.CreatedAt)
		if err != nil {
			return malformed(err)
		}
		post := PostRecord{Text: body.Text, CreatedAt: createdAt}
		if body.Reply != nil {
			post.ReplyParent = body.Reply.Parent.URI
		}
		if body.Embed != nil {
			post.Quoted = quotedURI(*body.Embed)
		}
		return post
	}
}

func quotedURI(embed embedBody) string {
	if len(embed.Record) == 0 {
		return ""
	}
	switch embed.Type {
	case embedRecord:
		var ref strongRef
		if err := cbor.Unmarshal(embed.Record, &ref); err != nil {
			return ""
		}
		return ref.URI
	case embedRecordWithMedia:
		var nested nestedRecord
		if err := cbor.Unmarshal(embed.Record, &nested); err != nil {
			return ""
		}
		return nested.Record.URI
	default:
		return ""
	}
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseCreatedAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errMissingCreatedAt
	}
	for _, layout := range createdAtLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("createdAt %q is not a timestamp", raw)
}
