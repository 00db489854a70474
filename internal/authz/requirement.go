package authz

import "go.mongodb.org/mongo-driver/bson/primitive"

type requirementKind int

const (
	requireAnyMember requirementKind = iota + 1
	requireRole
	requireOwner
)

// Requirement is what an actor must satisfy, once tenant context is
// established, for an action to be allowed. The zero Requirement allows nothing.
type Requirement struct {
	kind  requirementKind
	roles RoleSet
}

// AnyMember is satisfied by any actor with a current business.
func AnyMember() Requirement {
	return Requirement{kind: requireAnyMember}
}

// RoleIn is satisfied by the business's owner or by a membership role in roles.
func RoleIn(roles RoleSet) Requirement {
	return Requirement{kind: requireRole, roles: roles}
}

// OwnerOnly is satisfied only by the business's ownerUserId.
func OwnerOnly() Requirement {
	return Requirement{kind: requireOwner}
}

func (r Requirement) satisfiedBy(actor *Actor, businessID primitive.ObjectID) bool {
	switch r.kind {
	case requireAnyMember:
		return true
	case requireRole:
		if actor.Owns(businessID) {
			return true
		}
		role, ok := actor.MembershipRole(businessID)
		return ok && r.roles.Contains(role)
	case requireOwner:
		return actor.Owns(businessID)
	}
	return false
}

func (r Requirement) String() string {
	switch r.kind {
	case requireAnyMember:
		return "AnyMember"
	case requireRole:
		return "RoleIn" + r.roles.String()
	case requireOwner:
		return "OwnerOnly"
	}
	return "Deny"
}
