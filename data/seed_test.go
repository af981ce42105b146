// file: data/seed_test.go
package data

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-ultimate-hub/models"
)

func TestSeed_ReturnsIndependentCopies(t *testing.T) {
	a := Seed()
	b := Seed()
	a.Events[0].Participants[0] = "changed"
	assert.NotEqual(t, a.Events[0].Participants[0], b.Events[0].Participants[0])
}

func TestSeed_OneUserPerRoleAtLeast(t *testing.T) {
	seen := map[models.Role]bool{}
	for _, u := range Seed().Users {
		seen[u.Role()] = true
	}
	for _, r := range models.Roles {
		assert.True(t, seen[r], "missing seed user for role %s", r)
	}
}

func TestSeed_ForeignKeysResolve(t *testing.T) {
	ds := Seed()
	venues := map[models.VenueID]bool{}
	for _, v := range ds.Venues {
		venues[v.ID] = true
	}
	orgs := map[models.OrganizationID]bool{}
	for _, o := range ds.Organizations {
		orgs[o.ID] = true
	}
	for _, e := range ds.Events {
		assert.True(t, venues[e.VenueID], "event %d has unknown venue %s", e.ID, e.VenueID)
		assert.True(t, orgs[e.OrganizationID], "event %d has unknown organization %s", e.ID, e.OrganizationID)
	}

	kids := map[models.ChildID]bool{}
	for _, c := range ds.Children {
		kids[c.ID] = true
	}
	for _, s := range ds.Sessions {
		for _, c := range s.Participants {
			assert.True(t, kids[c], "session %s lists unknown child %s", s.ID, c)
		}
	}
}
