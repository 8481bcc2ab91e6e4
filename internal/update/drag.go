package update

import (
	"taskboard/internal/board"
	"taskboard/internal/model"
)

// DragPhase tracks the grab/drop gesture. Dropped is momentary: Drop returns
// it so callers can observe the terminal transition, and Reset brings the
// machine back to Idle.
type DragPhase string

const (
	DragIdle     DragPhase = "idle"
	DragDragging DragPhase = "dragging"
	DragDropped  DragPhase = "dropped"
)

type DragState struct {
	Phase  DragPhase
	TaskID string
	Target board.Column
}

// Start attaches the grabbed task's id as the gesture payload.
func (d DragState) Start(taskID string, origin board.Column) DragState {
	target := origin
	if _, ok := target.Priority(); !ok {
		target = board.ColumnHigh
	}
	return DragState{Phase: DragDragging, TaskID: taskID, Target: target}
}

// Over moves the highlighted drop target. Only the three priority columns
// accept drops; anything else leaves the state unchanged.
func (d DragState) Over(col board.Column) DragState {
	if d.Phase != DragDragging {
		return d
	}
	if _, ok := col.Priority(); !ok {
		return d
	}
	d.Target = col
	return d
}

// Drop reads the attached task id and the target column's priority. A column
// accepts the drop regardless of the task's current priority, so dropping
// onto the task's own column still yields a payload.
func (d DragState) Drop(col board.Column) (DropPayload, DragState, bool) {
	if d.Phase != DragDragging {
		return DropPayload{}, d, false
	}
	priority, ok := col.Priority()
	if !ok {
		return DropPayload{}, d, false
	}
	d.Phase = DragDropped
	return DropPayload{TaskID: d.TaskID, Priority: priority}, d, true
}

// Reset returns the machine to Idle.
func (d DragState) Reset() DragState {
	return DragState{Phase: DragIdle}
}

type DropPayload struct {
	TaskID   string
	Priority model.Priority
}
