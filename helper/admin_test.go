package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBootstrapEmailWinsWithoutProfile(t *testing.T) {
	gate := &AdminGate{
		BootstrapEmail: "owner@example.com",
		Privileged: func(uint) (bool, error) {
			t.Fatal("privileged tier should not run for the bootstrap email")
			return false, nil
		},
	}

	assert.True(t, gate.ResolveIsAdmin(0, "owner@example.com"))
}

func TestPrivilegedTierDecides(t *testing.T) {
	gate := &AdminGate{
		BootstrapEmail: "owner@example.com",
		Privileged:     func(uint) (bool, error) { return true, nil },
		RowRead: func(uint) (bool, error) {
			t.Fatal("row read should not run when the predicate answers")
			return false, nil
		},
	}

	assert.True(t, gate.ResolveIsAdmin(7, "someone@example.com"))
}

func TestPrivilegedErrorFallsThroughToRowRead(t *testing.T) {
	gate := &AdminGate{
		BootstrapEmail: "owner@example.com",
		Privileged:     func(uint) (bool, error) { return false, errors.New("function not provisioned") },
		RowRead:        func(uint) (bool, error) { return true, nil },
	}

	assert.True(t, gate.ResolveIsAdmin(7, "someone@example.com"))
}

func TestAllTiersDenyByDefault(t *testing.T) {
	gate := &AdminGate{
		BootstrapEmail: "owner@example.com",
		Privileged:     func(uint) (bool, error) { return false, nil },
		RowRead:        func(uint) (bool, error) { return false, nil },
	}

	assert.False(t, gate.ResolveIsAdmin(7, "someone@example.com"))
	assert.False(t, gate.ResolveIsAdmin(0, ""))
}

func TestRowReadErrorDenies(t *testing.T) {
	gate := &AdminGate{
		BootstrapEmail: "owner@example.com",
		Privileged:     func(uint) (bool, error) { return false, errors.New("down") },
		RowRead:        func(uint) (bool, error) { return false, errors.New("down") },
	}

	assert.False(t, gate.ResolveIsAdmin(7, "someone@example.com"))
}
