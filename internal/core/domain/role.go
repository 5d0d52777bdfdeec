package domain

// Role is the closed set of authority levels a cartowiki account can hold.
// RoleUnknown is the sentinel for any unrecognized or out-of-range value and
// never carries authority.
type Role string

const (
	RoleContributor        Role = "CONTRIBUTOR"
	RoleAdministrator      Role = "ADMINISTRATOR"
	RoleSuperadministrator Role = "SUPERADMINISTRATOR"
	RoleUnknown            Role = "UNKNOWN"
)

// roleRanks is the explicit total order over known roles. Unknown is absent
// on purpose: it has no rank at all.
var roleRanks = map[Role]int{
	RoleContributor:        0,
	RoleAdministrator:      1,
	RoleSuperadministrator: 2,
}

// ParseRole maps a role name to its Role value. Anything outside the three
// known names comes back as RoleUnknown.
func ParseRole(name string) Role {
	switch Role(name) {
	case RoleContributor, RoleAdministrator, RoleSuperadministrator:
		return Role(name)
	default:
		return RoleUnknown
	}
}

// Known reports whether r is one of the three recognized roles.
func (r Role) Known() bool {
	_, ok := roleRanks[r]
	return ok
}

// Rank returns the position of r in the privilege ordering and whether r is a
// known role. Unknown roles have no rank.
func (r Role) Rank() (int, bool) {
	rank, ok := roleRanks[r]
	return rank, ok
}

// HasEqualOrHigherPrivilegeThan reports whether an actor holding r may act on
// a target holding other.
//
// Known roles compare by rank. An unknown requester dominates nothing, not
// even another unknown role. An unknown target is dominated by administrators
// and superadministrators only: the asymmetry is deliberate deny-by-default
// for unrecognized roles.
func (r Role) HasEqualOrHigherPrivilegeThan(other Role) bool {
	selfRank, selfKnown := r.Rank()
	if !selfKnown {
		return false
	}

	otherRank, otherKnown := other.Rank()
	if !otherKnown {
		return selfRank >= roleRanks[RoleAdministrator]
	}

	return selfRank >= otherRank
}

// RolesAtOrBelow returns the reflexive-downward closure of r in the privilege
// ordering, in ascending rank order. Unknown roles close over nothing.
func (r Role) RolesAtOrBelow() []Role {
	rank, ok := r.Rank()
	if !ok {
		return nil
	}

	closure := make([]Role, 0, rank+1)
	for _, candidate := range []Role{RoleContributor, RoleAdministrator, RoleSuperadministrator} {
		if roleRanks[candidate] <= rank {
			closure = append(closure, candidate)
		}
	}
	return closure
}
