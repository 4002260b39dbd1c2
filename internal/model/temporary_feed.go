package model

// Slots of the temporary feed table.
const (
	ListID  int64 = 0
	PagerID int64 = 1
)

// TemporaryFeed remembers which tree item is shown in the item list and in
// the pager.
type TemporaryFeed struct {
	ID           int64
	TreeItemID   int64
	TreeItemKind string
	Name         string
}
