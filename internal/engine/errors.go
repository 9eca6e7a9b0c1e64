package engine

import (
	"fmt"

	"github.com/intelligrit/geodis/internal/model"
)

// InvalidParentError indicates an attempt to boost a child by a location
// that is not actually among the child's ParentsIds — a programming
// error in the caller, not a data problem, so it is fatal rather than
// silently ignored.
type InvalidParentError struct {
	ChildID  string
	ParentID string
}

func (e *InvalidParentError) Error() string {
	return fmt.Sprintf("%s is not a parent of %s", e.ParentID, e.ChildID)
}

// requireParentOf panics with an *InvalidParentError if parentID is not
// among child's resolved ParentsIds — score propagation only ever walks
// parents taken directly from the child's own Location, so this is an
// invariant check on that construction, not a data-dependent branch.
func requireParentOf(child *model.ExtendedLocation, parentID string) {
	for _, pid := range child.Location.ParentsIds() {
		if pid == parentID {
			return
		}
	}
	panic(&InvalidParentError{ChildID: child.Location.ID, ParentID: parentID})
}
