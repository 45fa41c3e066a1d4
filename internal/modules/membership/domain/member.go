package domain

// MemberUpdate is one chat member status change, consumed once.
// Seq is the transport's monotonic update id; zero means unknown.
type MemberUpdate struct {
	Seq       int64
	ChatID    int64
	SubjectID int64
	Old       MembershipStatus
	New       MembershipStatus
}

// StatusFromTag maps a transport status tag onto the closed status set.
// Tags outside it ("creator", "restricted", "") become MembershipStatusUnrecognized.
func StatusFromTag(tag string) MembershipStatus {
	status, err := ParseMembershipStatus(tag)
	if err != nil {
		return MembershipStatusUnrecognized
	}
	return status
}

// IsActive reports whether the status means the user is in the chat
func (x MembershipStatus) IsActive() bool {
	return x == MembershipStatusMember || x == MembershipStatusAdministrator
}
