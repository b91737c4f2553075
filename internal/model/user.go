package model

const (
	RoleLeader = "ROLE_LEADER"
	RoleMember = "ROLE_MEMBER"
)

type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Roles      []string  `json:"roles"`
	Name       string    `json:"name"`
	LastName   string    `json:"lastName"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Salary     *float64  `json:"salary,omitempty"`
	ProjectIDs Int64List `json:"projectIds"`
}

// FullName is the display label used across the CLI.
func (u User) FullName() string {
	return u.Name + " " + u.LastName
}

func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// MembersOf filters users down to ROLE_MEMBER accounts associated with the
// given project.
func MembersOf(users []User, projectID int64) []User {
	var members []User
	for _, u := range users {
		if u.HasRole(RoleMember) && u.ProjectIDs.Contains(projectID) {
			members = append(members, u)
		}
	}
	return members
}

type UserUpdateRequest struct {
	Name     string   `json:"name"`
	LastName string   `json:"lastName"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Salary   *float64 `json:"salary,omitempty"`
}

type SignUpRequest struct {
	Name     string   `json:"name"`
	LastName string   `json:"lastName"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
