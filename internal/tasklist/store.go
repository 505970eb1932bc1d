// Package tasklist owns the in-memory task list, the exclusive edit mode and
// the filtered views over them. Every committed change is written to a
// store.Slot; invalid input and unknown ids are silently ignored.
package tasklist

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Makepad-fr/tasklist/internal/model"
	"github.com/Makepad-fr/tasklist/internal/store"
)

// Store is not safe for concurrent use; callers drive it from one event loop.
type Store struct {
	ctx   context.Context
	slot  store.Slot
	log   log.FieldLogger
	now   func() time.Time
	newID func() string

	tasks   []model.Task
	edit    EditState
	loadErr error
}

type Option func(*Store)

func WithLogger(l log.FieldLogger) Option { return func(s *Store) { s.log = l } }

func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

func WithIDGenerator(gen func() string) Option { return func(s *Store) { s.newID = gen } }

// New loads the slot once. Missing state yields an empty list. Unreadable or
// corrupt state also yields an empty list, but the store then never writes
// back to the slot; see LoadErr.
// ctx is kept for the saves that follow mutations.
func New(ctx context.Context, slot store.Slot, opts ...Option) *Store {
	discard := log.New()
	discard.SetOutput(io.Discard)
	s := &Store{
		ctx:   ctx,
		slot:  slot,
		log:   discard,
		now:   time.Now,
		newID: newUUID,
		tasks: []model.Task{},
		edit:  Idle{},
	}
	for _, o := range opts {
		o(s)
	}
	s.load()
	return s
}

func newUUID() string { return uuid.Must(uuid.NewV7()).String() }

func (s *Store) load() {
	data, found, err := s.slot.Load(s.ctx)
	if err != nil {
		s.loadErr = fmt.Errorf("load tasks: %w", err)
		s.log.WithError(err).Error("load tasks")
		return
	}
	if !found {
		s.log.Debug("no saved tasks")
		return
	}
	tasks, err := model.Decode(data)
	if err != nil {
		s.loadErr = fmt.Errorf("decode tasks: %w", err)
		s.log.WithError(err).Error("decode tasks")
		return
	}
	s.tasks = tasks
	s.log.WithField("count", len(tasks)).Debug("tasks loaded")
}

// LoadErr reports why the initial load failed. While it is set, mutations
// only change memory and the stored bytes are left as they were.
func (s *Store) LoadErr() error { return s.loadErr }

func (s *Store) save(op string) {
	if s.loadErr != nil {
		s.log.WithField("op", op).Warn("stored tasks unreadable, not saving")
		return
	}
	data, err := model.Encode(s.tasks)
	if err == nil {
		err = s.slot.Save(s.ctx, data)
	}
	if err != nil {
		s.log.WithError(err).WithField("op", op).Error("save tasks")
	}
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a task. A title that trims to empty is ignored (ok=false).
func (s *Store) Add(title, description string) (model.Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, false
	}
	id := s.newID()
	for tries := 0; s.index(id) >= 0; tries++ {
		if tries == 3 {
			s.log.WithField("id", id).Warn("id generator keeps colliding, task not added")
			return model.Task{}, false
		}
		id = s.newID()
	}
	t := model.Task{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
	}
	s.tasks = append(s.tasks, t)
	s.save("add")
	return t, true
}

// Delete removes the task with id. Unknown ids are ignored.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.save("delete")
	return true
}

// ToggleComplete flips Completed on the task with id.
func (s *Store) ToggleComplete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.save("toggle")
	return true
}

// StartEdit enters edit mode for id, discarding any other edit in progress.
func (s *Store) StartEdit(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.edit = Editing{
		TaskID:      id,
		Title:       s.tasks[i].Title,
		Description: strings.TrimSpace(s.tasks[i].Description),
	}
	return true
}

// SetEditBuffer replaces the edit buffers. Ignored while Idle.
func (s *Store) SetEditBuffer(title, description string) {
	e, ok := s.edit.(Editing)
	if !ok {
		return
	}
	e.Title, e.Description = title, description
	s.edit = e
}

// CommitEdit writes the trimmed buffers to the task and returns to Idle.
// An empty title keeps the store in Editing and changes nothing.
func (s *Store) CommitEdit() bool {
	e, ok := s.edit.(Editing)
	if !ok {
		return false
	}
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return false
	}
	s.edit = Idle{}
	i := s.index(e.TaskID)
	if i < 0 {
		return false
	}
	s.tasks[i].Title = title
	s.tasks[i].Description = strings.TrimSpace(e.Description)
	s.save("edit")
	return true
}

// CancelEdit drops the buffers without touching the task.
func (s *Store) CancelEdit() { s.edit = Idle{} }

// Edit returns the current edit state.
func (s *Store) Edit() EditState { return s.edit }

// Tasks returns a copy of the full list in insertion order.
func (s *Store) Tasks() []model.Task {
	return append([]model.Task(nil), s.tasks...)
}

// Get returns a copy of the task with id.
func (s *Store) Get(id string) (model.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

// Visible is the list as shown for tab and search term.
func (s *Store) Visible(tab model.Tab, term string) []model.Task {
	return Filter(s.tasks, tab, term)
}

// Counts returns the per-tab totals.
func (s *Store) Counts() model.Counts { return Count(s.tasks) }
