// Package policy decides whether an actor may perform an operation on a
// target. Decide is pure: callers load the target first and pass the
// ownership facts in.
package policy

import (
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/utils/errors"
)

type Operation string

const (
	OpRead               Operation = "read"
	OpCreate             Operation = "create"
	OpUpdate             Operation = "update"
	OpDelete             Operation = "delete"
	OpAssignVet          Operation = "assign_veterinarian"
	OpCreateHealthRecord Operation = "create_health_record"
	OpList               Operation = "list"
	OpManageStatus       Operation = "manage_status"
)

type Resource string

const (
	ResourceAnimal Resource = "animal"
	ResourceUser   Resource = "user"
)

// Target describes the entity an operation acts on.
// For animals OwnerID is the farmer and VeterinarianID the assigned vet.
// For users OwnerID is the user itself and Role its role.
type Target struct {
	Resource       Resource
	OwnerID        string
	VeterinarianID string
	Role           constant.Role
}

func AnimalTarget(a *model.AnimalEntity) Target {
	t := Target{Resource: ResourceAnimal, OwnerID: a.FarmerID}
	if a.VeterinarianID != nil {
		t.VeterinarianID = *a.VeterinarianID
	}
	return t
}

// NewAnimalTarget is the target of creating an animal owned by farmerID.
func NewAnimalTarget(farmerID string) Target {
	return Target{Resource: ResourceAnimal, OwnerID: farmerID}
}

func UserTarget(u *model.UserEntity) Target {
	return Target{Resource: ResourceUser, OwnerID: u.ID, Role: u.Role}
}

// AccountTarget is the target of reading data owned by the account userID
// before the account itself is loaded.
func AccountTarget(userID string) Target {
	return Target{Resource: ResourceUser, OwnerID: userID}
}

// UserCollection is the target of listing or aggregating users.
var UserCollection = Target{Resource: ResourceUser}

type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Err converts a denial into a Forbidden error carrying the reason.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return errors.SetCustomError(constant.ErrForbidden).WithDetail(d.Reason)
}

// Decide applies the rules in precedence order: admin, farmer, veterinarian,
// then deny.
func Decide(actor model.Actor, op Operation, target Target) Decision {
	if actor.ID == "" {
		return Deny("unauthenticated actor")
	}

	switch actor.Role {
	case constant.RoleAdmin:
		return decideAdmin(actor, op, target)
	case constant.RoleFarmer:
		return decideFarmer(actor, op, target)
	case constant.RoleVeterinarian:
		return decideVeterinarian(actor, op, target)
	}
	return Deny("unknown role")
}

func decideAdmin(actor model.Actor, op Operation, target Target) Decision {
	if op == OpDelete && target.Resource == ResourceUser &&
		target.Role == constant.RoleAdmin && target.OwnerID != actor.ID {
		return Deny("admins cannot delete other admins")
	}
	return Allow()
}

func decideFarmer(actor model.Actor, op Operation, target Target) Decision {
	switch target.Resource {
	case ResourceAnimal:
		switch op {
		case OpRead, OpCreate, OpUpdate, OpDelete, OpAssignVet:
			if target.OwnerID == actor.ID {
				return Allow()
			}
			return Deny("animal belongs to another farmer")
		}
		return Deny("farmers cannot " + string(op) + " on animals")
	case ResourceUser:
		return decideSelf(actor, op, target)
	}
	return Deny("unsupported resource")
}

func decideVeterinarian(actor model.Actor, op Operation, target Target) Decision {
	switch target.Resource {
	case ResourceAnimal:
		switch op {
		case OpRead, OpCreateHealthRecord:
			if target.VeterinarianID != "" && target.VeterinarianID == actor.ID {
				return Allow()
			}
			return Deny("animal is not assigned to this veterinarian")
		}
		return Deny("veterinarians cannot " + string(op) + " on animals")
	case ResourceUser:
		return decideSelf(actor, op, target)
	}
	return Deny("unsupported resource")
}

// decideSelf lets non-admins read, edit and deactivate only their own account.
func decideSelf(actor model.Actor, op Operation, target Target) Decision {
	switch op {
	case OpRead, OpUpdate, OpDelete:
		if target.OwnerID != "" && target.OwnerID == actor.ID {
			return Allow()
		}
		return Deny("users can only access their own account")
	}
	return Deny("admin role required")
}

// AnimalScope returns the predicate every animal list query of actor must carry.
func AnimalScope(actor model.Actor) (model.AnimalScope, error) {
	switch actor.Role {
	case constant.RoleAdmin:
		return model.AnimalScope{}, nil
	case constant.RoleFarmer:
		return model.AnimalScope{FarmerID: actor.ID}, nil
	case constant.RoleVeterinarian:
		return model.AnimalScope{VeterinarianID: actor.ID}, nil
	}
	return model.AnimalScope{}, Deny("unknown role").Err()
}
