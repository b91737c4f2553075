package stub

import (
	"fmt"
	"strings"
	"time"

	"taskmaster/internal/model"
)

func (s *Store) createTask(req model.TaskCreateRequest) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[req.ProjectID]; !ok {
		return model.Task{}, errNotFound
	}

	now := time.Now().UTC().Format(time.RFC3339)
	id := s.id()
	t := model.Task{
		ID:              id,
		TaskID:          id,
		ProjectID:       req.ProjectID,
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          defaultStr(req.Status, model.StatusToDo),
		Priority:        defaultStr(req.Priority, model.PriorityMedium),
		AssignedUserIDs: model.Int64List(req.AssignedUserIDs),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.tasks[id] = &t
	for _, uid := range t.AssignedUserIDs {
		s.notify(uid, "Nueva tarea asignada", fmt.Sprintf("Se te asignó la tarea %s", t.Title))
	}
	return t, nil
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (s *Store) task(id int64) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, errNotFound
	}
	return *t, nil
}

func (s *Store) allTasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, 0, len(s.tasks))
	for id := int64(1); id <= s.nextID; id++ {
		if t, ok := s.tasks[id]; ok {
			out = append(out, *t)
		}
	}
	return out
}

func (s *Store) updateTask(id int64, req model.TaskUpdateRequest) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, errNotFound
	}
	t.Title = req.Title
	t.Description = req.Description
	t.StartDate = req.StartDate
	t.EndDate = req.EndDate
	t.Priority = req.Priority
	t.Status = req.Status
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return *t, nil
}

func (s *Store) deleteTask(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return errNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *Store) assignTask(id, userID int64) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, errNotFound
	}
	if !t.AssignedUserIDs.Contains(userID) {
		t.AssignedUserIDs = append(t.AssignedUserIDs, userID)
		s.notify(userID, "Nueva tarea asignada", fmt.Sprintf("Se te asignó la tarea %s", t.Title))
	}
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return *t, nil
}

func (s *Store) unassignTask(id, userID int64) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, errNotFound
	}
	kept := t.AssignedUserIDs[:0]
	for _, uid := range t.AssignedUserIDs {
		if uid != userID {
			kept = append(kept, uid)
		}
	}
	t.AssignedUserIDs = kept
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return *t, nil
}

func (s *Store) updateTaskStatus(id int64, status string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, errNotFound
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return *t, nil
}

func (s *Store) tasksWhere(keep func(model.Task) bool) []model.Task {
	var out []model.Task
	for _, t := range s.allTasks() {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) tasksByUser(userID int64) []model.Task {
	return s.tasksWhere(func(t model.Task) bool { return t.AssignedTo(userID) })
}

func (s *Store) tasksByProject(projectID int64) []model.Task {
	return s.tasksWhere(func(t model.Task) bool { return t.ProjectID == projectID })
}

func (s *Store) tasksByProjectAndUser(projectID, userID int64) []model.Task {
	return s.tasksWhere(func(t model.Task) bool {
		return t.ProjectID == projectID && t.AssignedTo(userID)
	})
}

func (s *Store) tasksByProjectAndStatus(projectID int64, status string) []model.Task {
	return s.tasksWhere(func(t model.Task) bool {
		return t.ProjectID == projectID && strings.EqualFold(t.Status, status)
	})
}

func (s *Store) tasksByProjectAndPriority(projectID int64, priority string) []model.Task {
	return s.tasksWhere(func(t model.Task) bool {
		return t.ProjectID == projectID && strings.EqualFold(t.Priority, priority)
	})
}
