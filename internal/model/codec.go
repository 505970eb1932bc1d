package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// TimeLayout is the ISO-8601 form used for createdAt (millisecond precision, UTC).
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrCorrupt marks a stored payload that cannot be turned back into a task list.
var ErrCorrupt = errors.New("corrupt task list")

var codec = sonic.Config{
	UseNumber:      true,
	CopyString:     true,
	ValidateString: true,
}.Froze()

// record is the stored shape of a Task.
// ID is decoded loosely: older data stored numeric millisecond ids.
type record struct {
	ID          any    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

// Encode serializes tasks in list order.
func Encode(tasks []Task) ([]byte, error) {
	out := make([]record, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, record{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.UTC().Format(TimeLayout),
		})
	}
	b, err := codec.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses a payload produced by Encode. Blank input and "null" yield an empty list.
func Decode(data []byte) ([]Task, error) {
	if strings.TrimSpace(string(data)) == "" {
		return []Task{}, nil
	}
	var recs []record
	if err := codec.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrCorrupt, err)
	}
	tasks := make([]Task, 0, len(recs))
	seen := make(map[string]struct{}, len(recs))
	for i, r := range recs {
		id, err := decodeID(r.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorrupt, i, err)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: record %d: duplicate id %s", ErrCorrupt, i, id)
		}
		seen[id] = struct{}{}
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("%w: record %d: empty title", ErrCorrupt, i)
		}
		created, err := parseTime(r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: createdAt: %v", ErrCorrupt, i, err)
		}
		tasks = append(tasks, Task{
			ID:          id,
			Title:       r.Title,
			Description: r.Description,
			Completed:   r.Completed,
			CreatedAt:   created,
		})
	}
	return tasks, nil
}

func decodeID(v any) (string, error) {
	var id string
	switch x := v.(type) {
	case string:
		id = x
	case json.Number:
		id = x.String()
	case float64:
		id = fmt.Sprintf("%.0f", x)
	case nil:
		return "", errors.New("missing id")
	default:
		return "", fmt.Errorf("unsupported id type %T", v)
	}
	if strings.TrimSpace(id) == "" {
		return "", errors.New("empty id")
	}
	return id, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
