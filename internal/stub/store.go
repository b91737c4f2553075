// Package stub is a local in-memory stand-in for the TaskMaster backend.
// It serves the same api/v1 contract the real service exposes so the CLI
// can be developed and tested without network access. Nothing survives a
// restart; that is the point.
package stub

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskmaster/internal/model"
)

type account struct {
	user model.User
	hash []byte
}

// Store holds the stub's world behind one mutex. Handlers are the only
// callers and requests are short, so a single lock is fine here.
type Store struct {
	mu            sync.Mutex
	nextID        int64
	accounts      map[int64]*account
	projects      map[int64]*model.Project
	tasks         map[int64]*model.Task
	notifications []model.Notification
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[int64]*account),
		projects: make(map[int64]*model.Project),
		tasks:    make(map[int64]*model.Task),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

var errNotFound = fmt.Errorf("not found")

func (s *Store) createUser(req model.SignUpRequest) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.user.Email, req.Email) {
			return model.User{}, fmt.Errorf("email already registered")
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{model.RoleLeader}
	}
	u := model.User{
		ID:       s.id(),
		Email:    req.Email,
		Roles:    roles,
		Name:     req.Name,
		LastName: req.LastName,
	}
	s.accounts[u.ID] = &account{user: u, hash: hash}
	return u, nil
}

func (s *Store) authenticate(email, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.user.Email, email) {
			if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
				return model.User{}, fmt.Errorf("wrong password")
			}
			return a.user, nil
		}
	}
	return model.User{}, fmt.Errorf("user not found")
}

func (s *Store) userByID(id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return model.User{}, errNotFound
	}
	return a.user, nil
}

func (s *Store) userByEmail(email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.user.Email, email) {
			return a.user, nil
		}
	}
	return model.User{}, errNotFound
}

func (s *Store) users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.accounts))
	for id := int64(1); id <= s.nextID; id++ {
		if a, ok := s.accounts[id]; ok {
			out = append(out, a.user)
		}
	}
	return out
}

func (s *Store) updateUser(id int64, req model.UserUpdateRequest) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return model.User{}, errNotFound
	}
	a.user.Name = req.Name
	a.user.LastName = req.LastName
	a.user.ImageURL = req.ImageURL
	a.user.Salary = req.Salary
	return a.user, nil
}

func (s *Store) deleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return errNotFound
	}
	delete(s.accounts, id)
	return nil
}

func (s *Store) createProject(leaderID int64, req model.ProjectCreateRequest) model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id()
	p := model.Project{
		ID:          id,
		ProjectID:   id,
		Key:         strings.ToUpper(uuid.NewString()[:8]),
		LeaderID:    leaderID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Budget:      req.Budget,
		Status:      "ACTIVE",
		StartDate:   time.Now().UTC().Format("2006-01-02"),
		EndDate:     req.EndDate,
	}
	s.projects[id] = &p
	if a, ok := s.accounts[leaderID]; ok {
		a.user.ProjectIDs = append(a.user.ProjectIDs, id)
	}
	return p
}

func (s *Store) project(id int64) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return model.Project{}, errNotFound
	}
	return *p, nil
}

func (s *Store) allProjects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Project, 0, len(s.projects))
	for id := int64(1); id <= s.nextID; id++ {
		if p, ok := s.projects[id]; ok {
			out = append(out, *p)
		}
	}
	return out
}

func (s *Store) updateProject(id int64, req model.ProjectUpdateRequest) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return model.Project{}, errNotFound
	}
	p.Name = req.Name
	p.Description = req.Description
	p.ImageURL = req.ImageURL
	p.Budget = req.Budget
	p.Status = req.Status
	p.EndDate = req.EndDate
	return *p, nil
}

func (s *Store) deleteProject(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return errNotFound
	}
	delete(s.projects, id)
	for tid, t := range s.tasks {
		if t.ProjectID == id {
			delete(s.tasks, tid)
		}
	}
	return nil
}

func (s *Store) setProjectCode(id int64, code string) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return model.Project{}, errNotFound
	}
	p.Key = code
	return *p, nil
}

func (s *Store) projectsByLeader(leaderID int64) []model.Project {
	var out []model.Project
	for _, p := range s.allProjects() {
		if p.LeaderID == leaderID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) projectsByMember(memberID int64) []model.Project {
	u, err := s.userByID(memberID)
	if err != nil {
		return nil
	}
	var out []model.Project
	for _, p := range s.allProjects() {
		if u.ProjectIDs.Contains(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) joinProject(userID int64, key string) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.projects {
		if !strings.EqualFold(p.Key, key) {
			continue
		}
		a, ok := s.accounts[userID]
		if !ok {
			return model.Project{}, errNotFound
		}
		if !a.user.ProjectIDs.Contains(p.ID) {
			a.user.ProjectIDs = append(a.user.ProjectIDs, p.ID)
		}
		s.notify(userID, "Nuevo proyecto", fmt.Sprintf("Te uniste al proyecto %s", p.Name))
		return *p, nil
	}
	return model.Project{}, errNotFound
}

func (s *Store) removeMember(projectID, memberID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[memberID]
	if !ok {
		return errNotFound
	}
	kept := a.user.ProjectIDs[:0]
	for _, pid := range a.user.ProjectIDs {
		if pid != projectID {
			kept = append(kept, pid)
		}
	}
	a.user.ProjectIDs = kept
	return nil
}

// notify appends a notification; callers must hold the lock.
func (s *Store) notify(userID int64, title, message string) {
	s.notifications = append(s.notifications, model.Notification{
		ID:      int64(len(s.notifications) + 1),
		UserID:  userID,
		Title:   title,
		Message: message,
		SentAt:  time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Store) notificationsFor(userID int64) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
