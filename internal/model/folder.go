package model

// Folder groups feeds. Feeds outside of any folder carry FolderID 0.
type Folder struct {
	ID   int64
	Name string
}
