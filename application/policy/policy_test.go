package policy_test

import (
	"testing"

	"github.com/muhammadheryan/farm-portal/application/policy"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	cerr "github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin  = model.Actor{ID: "admin-1", Role: constant.RoleAdmin}
	admin2 = model.Actor{ID: "admin-2", Role: constant.RoleAdmin}
	f1     = model.Actor{ID: "farmer-1", Role: constant.RoleFarmer}
	f2     = model.Actor{ID: "farmer-2", Role: constant.RoleFarmer}
	v1     = model.Actor{ID: "vet-1", Role: constant.RoleVeterinarian}
	v2     = model.Actor{ID: "vet-2", Role: constant.RoleVeterinarian}
)

func cow() *model.AnimalEntity {
	vet := v1.ID
	return &model.AnimalEntity{ID: "animal-1", TagID: "COW001", FarmerID: f1.ID, VeterinarianID: &vet}
}

func TestDecide(t *testing.T) {
	animal := policy.AnimalTarget(cow())
	unassigned := policy.AnimalTarget(&model.AnimalEntity{ID: "animal-2", FarmerID: f1.ID})

	tests := []struct {
		name   string
		actor  model.Actor
		op     policy.Operation
		target policy.Target
		allow  bool
	}{
		{"admin reads any animal", admin, policy.OpRead, animal, true},
		{"admin deletes any animal", admin, policy.OpDelete, animal, true},
		{"admin creates health record", admin, policy.OpCreateHealthRecord, animal, true},
		{"admin deletes farmer", admin, policy.OpDelete, policy.Target{Resource: policy.ResourceUser, OwnerID: f1.ID, Role: constant.RoleFarmer}, true},
		{"admin deletes another admin", admin, policy.OpDelete, policy.Target{Resource: policy.ResourceUser, OwnerID: admin2.ID, Role: constant.RoleAdmin}, false},
		{"admin deletes self", admin, policy.OpDelete, policy.Target{Resource: policy.ResourceUser, OwnerID: admin.ID, Role: constant.RoleAdmin}, true},
		{"admin lists users", admin, policy.OpList, policy.UserCollection, true},
		{"admin reads a veterinarian's activity", admin, policy.OpRead, policy.AccountTarget(v1.ID), true},
		{"veterinarian reads own activity", v1, policy.OpRead, policy.AccountTarget(v1.ID), true},
		{"veterinarian reads another veterinarian's activity", v1, policy.OpRead, policy.AccountTarget("vet-other"), false},
		{"farmer reads a veterinarian's activity", f1, policy.OpRead, policy.AccountTarget(v1.ID), false},
		{"farmer reads own activity", f1, policy.OpRead, policy.AccountTarget(f1.ID), true},

		{"owner reads", f1, policy.OpRead, animal, true},
		{"owner updates", f1, policy.OpUpdate, animal, true},
		{"owner deletes", f1, policy.OpDelete, animal, true},
		{"owner assigns vet", f1, policy.OpAssignVet, animal, true},
		{"owner creates for self", f1, policy.OpCreate, policy.NewAnimalTarget(f1.ID), true},
		{"farmer creates for other farmer", f1, policy.OpCreate, policy.NewAnimalTarget(f2.ID), false},
		{"owner cannot create health record", f1, policy.OpCreateHealthRecord, animal, false},
		{"other farmer reads", f2, policy.OpRead, animal, false},
		{"other farmer updates", f2, policy.OpUpdate, animal, false},
		{"other farmer deletes", f2, policy.OpDelete, animal, false},
		{"other farmer assigns vet", f2, policy.OpAssignVet, animal, false},
		{"farmer lists users", f1, policy.OpList, policy.UserCollection, false},
		{"farmer reads own profile", f1, policy.OpRead, policy.Target{Resource: policy.ResourceUser, OwnerID: f1.ID, Role: constant.RoleFarmer}, true},
		{"farmer reads other profile", f1, policy.OpRead, policy.Target{Resource: policy.ResourceUser, OwnerID: f2.ID, Role: constant.RoleFarmer}, false},
		{"farmer cannot manage status", f1, policy.OpManageStatus, policy.Target{Resource: policy.ResourceUser, OwnerID: f1.ID, Role: constant.RoleFarmer}, false},

		{"assigned vet reads", v1, policy.OpRead, animal, true},
		{"assigned vet records checkup", v1, policy.OpCreateHealthRecord, animal, true},
		{"assigned vet cannot update", v1, policy.OpUpdate, animal, false},
		{"assigned vet cannot delete", v1, policy.OpDelete, animal, false},
		{"vet cannot assign", v1, policy.OpAssignVet, unassigned, false},
		{"vet cannot create animal", v1, policy.OpCreate, policy.NewAnimalTarget(f1.ID), false},
		{"other vet reads", v2, policy.OpRead, animal, false},
		{"other vet records checkup", v2, policy.OpCreateHealthRecord, animal, false},
		{"vet on unassigned animal", v1, policy.OpRead, unassigned, false},

		{"unknown role", model.Actor{ID: "x", Role: "guest"}, policy.OpRead, animal, false},
		{"anonymous", model.Actor{}, policy.OpRead, animal, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := policy.Decide(tt.actor, tt.op, tt.target)
			assert.Equal(t, tt.allow, d.Allowed)
			if !tt.allow {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestDecide_ForeignFarmerIsForbiddenForEveryOperation(t *testing.T) {
	animal := policy.AnimalTarget(cow())
	ops := []policy.Operation{
		policy.OpRead, policy.OpUpdate, policy.OpDelete, policy.OpAssignVet,
		policy.OpCreateHealthRecord, policy.OpList, policy.OpManageStatus,
	}
	for _, op := range ops {
		err := policy.Decide(f2, op, animal).Err()
		require.Error(t, err, "op %s", op)
		assert.True(t, cerr.IsType(err, constant.ErrForbidden), "op %s", op)
	}
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, policy.Allow().Err())

	err := policy.Deny("nope").Err()
	require.Error(t, err)
	assert.Equal(t, "nope", err.Error())
	assert.True(t, cerr.IsType(err, constant.ErrForbidden))
}

func TestAnimalScope(t *testing.T) {
	scope, err := policy.AnimalScope(admin)
	require.NoError(t, err)
	assert.Equal(t, model.AnimalScope{}, scope)

	scope, err = policy.AnimalScope(f1)
	require.NoError(t, err)
	assert.Equal(t, model.AnimalScope{FarmerID: f1.ID}, scope)

	scope, err = policy.AnimalScope(v1)
	require.NoError(t, err)
	assert.Equal(t, model.AnimalScope{VeterinarianID: v1.ID}, scope)

	_, err = policy.AnimalScope(model.Actor{ID: "x", Role: "guest"})
	assert.True(t, cerr.IsType(err, constant.ErrForbidden))
}
