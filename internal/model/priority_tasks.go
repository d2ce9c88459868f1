package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PriorityTasks holds the three priority-task slots of a career journal.
// It is stored as a JSON array. Anything that does not decode to exactly
// three strings is read back as three empty slots.
type PriorityTasks [3]string

// PriorityTasksFromSlice converts a slice of exactly three strings.
func PriorityTasksFromSlice(tasks []string) (PriorityTasks, error) {
	var out PriorityTasks
	if len(tasks) != len(out) {
		return out, fmt.Errorf("priority tasks: want %d entries, got %d", len(out), len(tasks))
	}
	copy(out[:], tasks)
	return out, nil
}

// Slice returns the tasks as a new slice.
func (p PriorityTasks) Slice() []string {
	return []string{p[0], p[1], p[2]}
}

func (p PriorityTasks) Value() (driver.Value, error) {
	raw, err := json.Marshal(p.Slice())
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (p *PriorityTasks) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	}

	*p = PriorityTasks{}
	var tasks []string
	if err := json.Unmarshal(raw, &tasks); err != nil || len(tasks) != len(p) {
		return nil
	}
	copy(p[:], tasks)
	return nil
}
