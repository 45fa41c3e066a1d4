//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// MembershipStatus is a chat member status as tagged by the Bot API.
// Banned is carried on the wire as "kicked".
// ENUM(left, member, administrator, banned=kicked, unrecognized)
type MembershipStatus string
