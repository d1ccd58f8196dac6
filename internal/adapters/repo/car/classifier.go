package car

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/logging"
	"github.com/bnema/skycircle/internal/ports"
)

var mentionPattern = regexp.MustCompile(`@([a-zA-Z0-9.-]+)`)

// Classifier turns a repository archive into outbound interactions.
type Classifier struct {
	Logger *slog.Logger
}

var _ ports.ArchiveClassifier = Classifier{}

func (c Classifier) Classify(ctx context.Context, archive domain.RepoArchive) (domain.ParsedInteractions, error) {
	decoded, err := ReadArchive(archive.Bytes)
	if err != nil {
		return domain.ParsedInteractions{}, err
	}

	parsed := domain.ParsedInteractions{Revision: archive.Revision}
	malformed := 0
	for i, entry := range decoded.Entries {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return domain.ParsedInteractions{}, err
			}
		}

		switch rec := DecodeRecord(entry).(type) {
		case LikeRecord:
			parsed.Likes = appendTarget(parsed.Likes, rec.Subject, rec.CreatedAt)
		case RepostRecord:
			parsed.Reposts = appendTarget(parsed.Reposts, rec.Subject, rec.CreatedAt)
		case PostRecord:
			parsed.Replies = appendTarget(parsed.Replies, rec.ReplyParent, rec.CreatedAt)
			parsed.Quotes = appendTarget(parsed.Quotes, rec.Quoted, rec.CreatedAt)
			for _, handle := range ExtractMentions(rec.Text) {
				parsed.Mentions = append(parsed.Mentions, domain.Interaction{Target: handle, CreatedAt: rec.CreatedAt})
			}
		case MalformedRecord:
			malformed++
			c.logger().Debug("skipping malformed record",
				"collection", rec.Collection, "rkey", rec.RecordKey, "err", rec.Err)
		case UnrecognizedRecord:
		}
	}

	c.logger().Debug("classified repository",
		"did", decoded.DID, "entries", len(decoded.Entries), "malformed", malformed, "summary", parsed.Summary())

	return parsed, nil
}

// ExtractMentions returns every @handle in text in order of appearance.
// Trailing dots and hyphens are sentence punctuation, not part of the handle.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	handles := make([]string, 0, len(matches))
	for _, match := range matches {
		handle := strings.TrimRight(match[1], ".-")
		if handle == "" {
			continue
		}
		handles = append(handles, handle)
	}
	return handles
}

func appendTarget(entries []domain.Interaction, target string, createdAt time.Time) []domain.Interaction {
	if target == "" {
		return entries
	}
	return append(entries, domain.Interaction{Target: target, CreatedAt: createdAt})
}

func (c Classifier) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.Discard()
}
