package commentController

import "learnhub/models"

// ThreadView is the two-level threaded form of a module's comments:
// top-level comments in the order handed in, with each root's direct
// replies grouped beside it. Replies never nest further.
type ThreadView struct {
	Roots         []models.Comment          `json:"roots"`
	RepliesByRoot map[uint][]models.Comment `json:"replies_by_root"`
}

// BuildThreads partitions a flat comment list into roots and replies.
// A reply whose parent is not a root (the parent was deleted, or was
// itself a reply) is dropped from the view rather than surfaced.
// Input order is preserved on both levels; callers sort beforehand.
func BuildThreads(all []models.Comment) ThreadView {
	view := ThreadView{
		Roots:         []models.Comment{},
		RepliesByRoot: make(map[uint][]models.Comment),
	}

	for _, comment := range all {
		if comment.ParentID == nil {
			view.Roots = append(view.Roots, comment)
			if _, ok := view.RepliesByRoot[comment.ID]; !ok {
				view.RepliesByRoot[comment.ID] = []models.Comment{}
			}
		}
	}

	for _, comment := range all {
		if comment.ParentID == nil {
			continue
		}
		if _, ok := view.RepliesByRoot[*comment.ParentID]; !ok {
			continue // orphan
		}
		view.RepliesByRoot[*comment.ParentID] = append(view.RepliesByRoot[*comment.ParentID], comment)
	}

	return view
}

// Add inserts a new comment: roots are prepended (most recent first),
// replies are appended to their parent's list. A reply to an unknown
// parent is ignored.
func (v *ThreadView) Add(comment models.Comment) {
	if comment.ParentID == nil {
		v.Roots = append([]models.Comment{comment}, v.Roots...)
		if _, ok := v.RepliesByRoot[comment.ID]; !ok {
			v.RepliesByRoot[comment.ID] = []models.Comment{}
		}
		return
	}
	if _, ok := v.RepliesByRoot[*comment.ParentID]; !ok {
		return
	}
	v.RepliesByRoot[*comment.ParentID] = append(v.RepliesByRoot[*comment.ParentID], comment)
}

// Update replaces a comment in place wherever it lives, never duplicating it.
func (v *ThreadView) Update(comment models.Comment) {
	for i := range v.Roots {
		if v.Roots[i].ID == comment.ID {
			v.Roots[i] = comment
			return
		}
	}
	for rootID, replies := range v.RepliesByRoot {
		for i := range replies {
			if replies[i].ID == comment.ID {
				v.RepliesByRoot[rootID][i] = comment
				return
			}
		}
	}
}

// Remove deletes a comment by id from the root list and from every reply
// list. A comment can only live in one place, but both removals are
// attempted so the caller never has to know which.
func (v *ThreadView) Remove(id uint) {
	kept := v.Roots[:0]
	for _, root := range v.Roots {
		if root.ID == id {
			delete(v.RepliesByRoot, id)
			continue
		}
		kept = append(kept, root)
	}
	v.Roots = kept

	for rootID, replies := range v.RepliesByRoot {
		filtered := replies[:0]
		for _, reply := range replies {
			if reply.ID != id {
				filtered = append(filtered, reply)
			}
		}
		v.RepliesByRoot[rootID] = filtered
	}
}
