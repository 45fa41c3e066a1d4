//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// ActionKind is the outcome of classifying one update
// ENUM(noop, joined, left_or_kicked, banned, unbanned, self_promoted, member_promoted_or_demoted, reject_non_supergroup, kick_for_too_small, video_chat_cleared, unrecognized_status)
type ActionKind string
