// Package models holds the task manager's domain types and the pure
// aggregate rules computed over them.
package models

// User is one record of the user store. Passwords are kept in plain text,
// exactly as they appear on disk.
type User struct {
	UserName string
	Password string
}

// Users is the username → password mapping loaded from the user store.
//
// Iteration order is first-insertion order. Putting an existing name again
// overwrites its password but keeps its position, so a store holding a
// duplicate username resolves to the last password while the user is still
// listed where it first appeared.
type Users struct {
	order     []string
	passwords map[string]string
}

func NewUsers(users ...User) *Users {
	u := &Users{passwords: make(map[string]string, len(users))}
	for _, user := range users {
		u.Put(user.UserName, user.Password)
	}
	return u
}

func (u *Users) Put(userName, password string) {
	if _, ok := u.passwords[userName]; !ok {
		u.order = append(u.order, userName)
	}
	u.passwords[userName] = password
}

func (u *Users) Has(userName string) bool {
	_, ok := u.passwords[userName]
	return ok
}

func (u *Users) Password(userName string) (string, bool) {
	p, ok := u.passwords[userName]
	return p, ok
}

// Names returns the usernames in store order. The slice is a copy.
func (u *Users) Names() []string {
	out := make([]string, len(u.order))
	copy(out, u.order)
	return out
}

func (u *Users) Len() int {
	return len(u.order)
}
