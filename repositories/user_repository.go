// File: /repositories/user_repository.go
package repositories

import (
	"blog-api/models"
	"sync"
)

// UserRepository holds users in insertion order. It does not enforce email
// or nickname uniqueness; callers check FindByEmail/FindByNickname first.
type UserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Add stores a new user and returns its id
func (r *UserRepository) Add(email, password, nickname, imageURL string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.users = append(r.users, models.User{
		UserID:          id,
		Email:           email,
		Password:        password,
		Nickname:        nickname,
		ProfileImageURL: imageURL,
	})
	return id
}

func (r *UserRepository) indexOf(userID int) int {
	for i := range r.users {
		if r.users[i].UserID == userID {
			return i
		}
	}
	return -1
}

func (r *UserRepository) findBy(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if match(user) {
			found := user
			return &found, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *UserRepository) FindByID(userID int) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.UserID == userID })
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Email == email })
}

func (r *UserRepository) FindByNickname(nickname string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Nickname == nickname })
}

// Authenticate looks the user up by email and compares the password by
// plain string equality.
func (r *UserRepository) Authenticate(email, password string) (*models.User, error) {
	user, err := r.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, ErrRecordNotFound
	}
	return user, nil
}

func (r *UserRepository) UpdateProfile(userID int, nickname, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(userID)
	if idx < 0 {
		return ErrRecordNotFound
	}
	r.users[idx].Nickname = nickname
	r.users[idx].ProfileImageURL = imageURL
	return nil
}

func (r *UserRepository) UpdatePassword(userID int, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(userID)
	if idx < 0 {
		return ErrRecordNotFound
	}
	r.users[idx].Password = password
	return nil
}

func (r *UserRepository) DeleteByID(userID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(userID)
	if idx < 0 {
		return false
	}
	r.users = append(r.users[:idx], r.users[idx+1:]...)
	return true
}

func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
