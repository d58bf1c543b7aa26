package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole(t *testing.T) {
	project := &Project{Id: 1, OwnerId: 10}

	assert.Equal(t, RoleOwner, ResolveRole(project, 10, nil))
	assert.Equal(t, RoleNone, ResolveRole(project, 11, nil))

	share := &ProjectShare{ProjectId: 1, UserId: 11, Role: RoleEditor}
	assert.Equal(t, RoleEditor, ResolveRole(project, 11, share))

	share.Role = RoleViewer
	assert.Equal(t, RoleViewer, ResolveRole(project, 11, share))

	// A share for another project grants nothing.
	otherShare := &ProjectShare{ProjectId: 2, UserId: 11, Role: RoleEditor}
	assert.Equal(t, RoleNone, ResolveRole(project, 11, otherShare))
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleOwner.CanEdit())
	assert.True(t, RoleEditor.CanEdit())
	assert.False(t, RoleViewer.CanEdit())
	assert.False(t, RoleNone.CanEdit())

	assert.True(t, RoleOwner.CanView())
	assert.True(t, RoleEditor.CanView())
	assert.True(t, RoleViewer.CanView())
	assert.False(t, RoleNone.CanView())
}

func TestParseShareRole(t *testing.T) {
	role, err := ParseShareRole("editor")
	assert.NoError(t, err)
	assert.Equal(t, RoleEditor, role)

	role, err = ParseShareRole("viewer")
	assert.NoError(t, err)
	assert.Equal(t, RoleViewer, role)

	_, err = ParseShareRole("owner")
	assert.Error(t, err)

	_, err = ParseShareRole("manager")
	assert.Error(t, err)
}
