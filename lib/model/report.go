package model

// CreationReport tallies one materializer run. Paths that already existed
// before the run are not counted.
type CreationReport struct {
	// GroupsProcessed counts the declared groups that were visited.
	GroupsProcessed int

	// FilesCreated counts the files actually created, extras included.
	FilesCreated int

	// DirsCreated counts the declared directories that had to be
	// created. Intermediate ancestors created along the way are not
	// counted separately.
	DirsCreated int
}
