package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Group is a community of users. The creator is always a member.
type Group struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatorID   uuid.UUID   `json:"creator"`
	CreatorName string      `json:"creator_name"`
	MemberIDs   []uuid.UUID `json:"members"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// MemberCount returns the number of members.
func (g *Group) MemberCount() int {
	return len(g.MemberIDs)
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID uuid.UUID) bool {
	return slices.Contains(g.MemberIDs, userID)
}

// IsCreator reports whether userID created the group.
func (g *Group) IsCreator(userID uuid.UUID) bool {
	return g.CreatorID == userID
}

// GroupPatch holds the optional fields of a group update.
type GroupPatch struct {
	Name        *string
	Description *string
}

// Apply copies every non-nil field onto the group.
func (p *GroupPatch) Apply(g *Group) {
	if p == nil || g == nil {
		return
	}
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
}
