package usecases

import (
	"rental-booking-service/internal/module/booking/lifecycle"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/pkg/errors"
)

type operation string

const (
	opView     operation = "view"
	opApprove  operation = "approve"
	opReject   operation = "reject"
	opPay      operation = "pay"
	opCancel   operation = "cancel"
	opComplete operation = "complete"
)

// roles lists who may run each operation.
var roles = map[operation][]lifecycle.Role{
	opView:     {lifecycle.RoleRenter, lifecycle.RoleOwner},
	opApprove:  {lifecycle.RoleOwner},
	opReject:   {lifecycle.RoleOwner},
	opPay:      {lifecycle.RoleRenter},
	opCancel:   {lifecycle.RoleRenter, lifecycle.RoleOwner},
	opComplete: {lifecycle.RoleOwner},
}

// authorize resolves actorID to its role on b and checks it may run op.
func authorize(op operation, b entity.Booking, actorID int64) (lifecycle.Actor, error) {
	var role lifecycle.Role
	switch actorID {
	case b.RenterID:
		role = lifecycle.RoleRenter
	case b.OwnerID:
		role = lifecycle.RoleOwner
	default:
		return lifecycle.Actor{}, errors.ForbiddenError("not a party to this booking")
	}

	for _, r := range roles[op] {
		if r == role {
			return lifecycle.Actor{ID: actorID, Role: role}, nil
		}
	}
	return lifecycle.Actor{}, errors.TransitionRejected(errors.CodeWrongActor, string(role)+" may not "+string(op)+" this booking")
}
