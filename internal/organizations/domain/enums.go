package domain

// OrganizationStatus is the lifecycle state of an organization.
// Deactivation is one-way; there is no reactivation path.
type OrganizationStatus string

const (
	OrganizationActive   OrganizationStatus = "ACTIVE"
	OrganizationInactive OrganizationStatus = "INACTIVE"
)

func (s OrganizationStatus) String() string { return string(s) }

// ParseOrganizationStatus maps a wire value onto a known status, falling
// back to ACTIVE when the backend sends something unrecognized.
func ParseOrganizationStatus(raw string) OrganizationStatus {
	switch OrganizationStatus(raw) {
	case OrganizationActive, OrganizationInactive:
		return OrganizationStatus(raw)
	default:
		return OrganizationActive
	}
}

// InvitationStatus is the state of an organization invitation.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationRejected InvitationStatus = "REJECTED"
)

func (s InvitationStatus) String() string { return string(s) }

// ParseInvitationStatus falls back to PENDING on unknown wire values.
func ParseInvitationStatus(raw string) InvitationStatus {
	switch InvitationStatus(raw) {
	case InvitationPending, InvitationAccepted, InvitationRejected:
		return InvitationStatus(raw)
	default:
		return InvitationPending
	}
}

// MemberType classifies an organization member.
type MemberType string

const (
	MemberWorker     MemberType = "WORKER"
	MemberContractor MemberType = "CONTRACTOR"
)

func (t MemberType) String() string { return string(t) }

// ParseMemberType falls back to CONTRACTOR on unknown wire values.
func ParseMemberType(raw string) MemberType {
	switch MemberType(raw) {
	case MemberWorker, MemberContractor:
		return MemberType(raw)
	default:
		return MemberContractor
	}
}
