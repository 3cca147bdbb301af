package commentController

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id uint) *uint { return &id }

func comment(id uint, parent *uint) models.Comment {
	c := models.Comment{ParentID: parent}
	c.ID = id
	return c
}

func TestBuildThreadsTwoLevels(t *testing.T) {
	view := BuildThreads([]models.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
		comment(3, nil),
		comment(4, ptr(2)), // reply to a reply: dropped
	})

	require.Len(t, view.Roots, 2)
	assert.Equal(t, uint(1), view.Roots[0].ID)
	assert.Equal(t, uint(3), view.Roots[1].ID)

	require.Len(t, view.RepliesByRoot[1], 1)
	assert.Equal(t, uint(2), view.RepliesByRoot[1][0].ID)
	assert.Empty(t, view.RepliesByRoot[3])
	assert.NotNil(t, view.RepliesByRoot[3])
}

func TestBuildThreadsDropsOrphans(t *testing.T) {
	view := BuildThreads([]models.Comment{
		comment(2, ptr(99)), // parent already deleted
		comment(1, nil),
	})

	require.Len(t, view.Roots, 1)
	assert.Empty(t, view.RepliesByRoot[1])
	total := 0
	for _, replies := range view.RepliesByRoot {
		total += len(replies)
	}
	assert.Zero(t, total)
}

func TestBuildThreadsPreservesInputOrder(t *testing.T) {
	view := BuildThreads([]models.Comment{
		comment(5, nil),
		comment(7, ptr(5)),
		comment(2, nil),
		comment(6, ptr(5)),
	})

	assert.Equal(t, uint(5), view.Roots[0].ID)
	assert.Equal(t, uint(2), view.Roots[1].ID)
	require.Len(t, view.RepliesByRoot[5], 2)
	assert.Equal(t, uint(7), view.RepliesByRoot[5][0].ID)
	assert.Equal(t, uint(6), view.RepliesByRoot[5][1].ID)
}

func TestAddPrependsRootsAndAppendsReplies(t *testing.T) {
	view := BuildThreads([]models.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
	})

	view.Add(comment(3, nil))
	require.Len(t, view.Roots, 2)
	assert.Equal(t, uint(3), view.Roots[0].ID)

	view.Add(comment(4, ptr(1)))
	require.Len(t, view.RepliesByRoot[1], 2)
	assert.Equal(t, uint(4), view.RepliesByRoot[1][1].ID)
}

func TestUpdateReplacesInPlace(t *testing.T) {
	view := BuildThreads([]models.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
	})

	updatedRoot := comment(1, nil)
	updatedRoot.Content = "edited root"
	view.Update(updatedRoot)
	assert.Equal(t, "edited root", view.Roots[0].Content)
	assert.Len(t, view.Roots, 1)

	updatedReply := comment(2, ptr(1))
	updatedReply.Content = "edited reply"
	view.Update(updatedReply)
	require.Len(t, view.RepliesByRoot[1], 1)
	assert.Equal(t, "edited reply", view.RepliesByRoot[1][0].Content)
}

func TestRemoveReplyLeavesRootsIntact(t *testing.T) {
	view := BuildThreads([]models.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
		comment(3, nil),
	})

	view.Remove(2)
	assert.Len(t, view.Roots, 2)
	assert.Empty(t, view.RepliesByRoot[1])
}

func TestRemoveRootDropsItsReplyList(t *testing.T) {
	view := BuildThreads([]models.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
		comment(3, nil),
	})

	view.Remove(1)
	require.Len(t, view.Roots, 1)
	assert.Equal(t, uint(3), view.Roots[0].ID)
	_, exists := view.RepliesByRoot[1]
	assert.False(t, exists)
}
