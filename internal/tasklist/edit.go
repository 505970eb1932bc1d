package tasklist

// EditState is either Idle or Editing. At most one task is edited at a time.
type EditState interface {
	isEditState()
}

// Idle means no task is being edited.
type Idle struct{}

// Editing holds the uncommitted buffers for one task.
type Editing struct {
	TaskID      string
	Title       string
	Description string
}

func (Idle) isEditState()    {}
func (Editing) isEditState() {}
