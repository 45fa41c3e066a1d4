//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// LifecycleKind discriminates group messages the router cares about
// ENUM(video_chat_started, video_chat_ended, other)
type LifecycleKind string
