package helper

import (
	"errors"
	"log"

	"leevienna_shop/config"
	"leevienna_shop/constants"
	"leevienna_shop/database"
	"leevienna_shop/model"

	"gorm.io/gorm"
)

// AdminGate decides whether an identity has administrative privileges.
//
// The naive approach — read user_profiles.is_admin under the normal row
// policies — can recurse: evaluating the admin policy requires evaluating the
// admin policy. The gate therefore checks three tiers in a fixed order:
//
//  1. bootstrap email match (works before any profile row exists),
//  2. the privileged is_admin() SQL predicate (SECURITY DEFINER, so it never
//     re-enters the policy being evaluated),
//  3. direct row read as the last resort when the predicate is not
//     provisioned yet.
//
// The tier order must not be collapsed; tiers 1 and 2 are what keep the
// bootstrap and recursion-avoidance properties alive.
type AdminGate struct {
	BootstrapEmail string
	Privileged     func(userId uint) (bool, error)
	RowRead        func(userId uint) (bool, error)
}

// NewAdminGate wires the gate against the shared database handle.
func NewAdminGate() *AdminGate {
	return &AdminGate{
		BootstrapEmail: config.ConfigDefault("BOOTSTRAP_ADMIN_EMAIL", constants.DEFAULT_BOOTSTRAP_ADMIN_EMAIL),
		Privileged:     privilegedIsAdmin,
		RowRead:        rowReadIsAdmin,
	}
}

// ResolveIsAdmin runs the three tiers in order.
func (g *AdminGate) ResolveIsAdmin(userId uint, email string) bool {
	if email != "" && email == g.BootstrapEmail {
		return true
	}

	if g.Privileged != nil {
		isAdmin, err := g.Privileged(userId)
		if err == nil {
			return isAdmin
		}
		log.Printf("privileged admin check failed for user %d, falling back to row read: %v", userId, err)
	}

	if g.RowRead == nil {
		return false
	}
	isAdmin, err := g.RowRead(userId)
	if err != nil {
		log.Printf("admin row read failed for user %d: %v", userId, err)
		return false
	}
	return isAdmin
}

func privilegedIsAdmin(userId uint) (bool, error) {
	var isAdmin bool
	if err := database.DB.Raw("SELECT is_admin(?)", userId).Scan(&isAdmin).Error; err != nil {
		return false, err
	}
	return isAdmin, nil
}

func rowReadIsAdmin(userId uint) (bool, error) {
	var profile model.UserProfile
	if err := database.DB.Select("is_admin").First(&profile, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return profile.IsAdmin, nil
}
