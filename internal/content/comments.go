package content

import "soulforge/internal/models"

// The echo forest is mutated by pure recursive transforms: every ancestor
// of a touched node is copied, untouched subtrees are shared by reference.
// This keeps echo edits consistent with the store's replace-whole-collection
// update pattern.

// InsertReply returns a new forest with reply appended to the reply list of
// the node whose id equals parentID. Sibling order is preserved and replies
// are always appended, never inserted positionally. If no node matches,
// the forest is returned structurally unchanged.
func InsertReply(forest []models.Comment, parentID string, reply models.Comment) []models.Comment {
	out := make([]models.Comment, len(forest))
	for i, c := range forest {
		if c.ID == parentID {
			replies := make([]models.Comment, 0, len(c.Replies)+1)
			replies = append(replies, c.Replies...)
			c.Replies = append(replies, reply)
		} else if len(c.Replies) > 0 {
			c.Replies = InsertReply(c.Replies, parentID, reply)
		}
		out[i] = c
	}
	return out
}

// DeleteComment returns a new forest with the node whose id equals targetID
// removed. The node's entire reply subtree goes with it; children are never
// reparented.
func DeleteComment(forest []models.Comment, targetID string) []models.Comment {
	out := make([]models.Comment, 0, len(forest))
	for _, c := range forest {
		if c.ID == targetID {
			continue
		}
		if len(c.Replies) > 0 {
			c.Replies = DeleteComment(c.Replies, targetID)
			// A reply list emptied by the delete drops away entirely, the
			// same shape it had before the replies existed.
			if len(c.Replies) == 0 {
				c.Replies = nil
			}
		}
		out = append(out, c)
	}
	return out
}

// CountComments returns the total number of nodes in the forest, replies
// included.
func CountComments(forest []models.Comment) int {
	n := 0
	for _, c := range forest {
		n += 1 + CountComments(c.Replies)
	}
	return n
}

// FindComment returns the node with the given id, or nil.
func FindComment(forest []models.Comment, id string) *models.Comment {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i]
		}
		if found := FindComment(forest[i].Replies, id); found != nil {
			return found
		}
	}
	return nil
}
