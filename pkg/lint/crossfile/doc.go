// Package crossfile runs checks that compare several parsed files.
//
// Cross-file checks run after every file of a project has been parsed. They
// read the trees but never modify them, and report issues through an
// IssueSaver supplied by the host, anchored to any file of the project.
//
// Checks are registered by key from init() functions and built through
// their Factory, so adding a check never touches the runner:
//
//	crossfile.Register(crossfile.Def{Key: "my-check", New: newMyCheck})
//
// Run is all-or-nothing: when a check cannot be built or fails, no issue of
// the run reaches the saver.
package crossfile
