// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"friender/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	ShouldClean bool
}

// DemoPassword is the plaintext password every seeded user gets.
const DemoPassword = "FrienderDemo1!"

// Seed populates the database with demo users, messages, and friendships.
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	if opts.NumUsers < 2 {
		opts.NumUsers = 2
	}

	log.Println("Starting database seeding...")

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("failed to clean database: %w", err)
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	messages, err := createMessages(db, users)
	if err != nil {
		return fmt.Errorf("failed to create messages: %w", err)
	}
	log.Printf("Created %d messages", messages)

	friendships, err := createFriendships(db, users)
	if err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}
	log.Printf("Created %d friendships", friendships)

	return nil
}

func clean(db *gorm.DB) error {
	// Friendships and messages go first; users hold the referenced key.
	for _, model := range []any{&models.Friendship{}, &models.Message{}, &models.User{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, n int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), i)
		if len(username) > 30 {
			username = username[:30]
		}
		user := models.User{
			Username:       username,
			Email:          fmt.Sprintf("%d_%s", i, gofakeit.Email()),
			HashedPassword: string(hashed),
			Location:       gofakeit.Number(10000, 99999),
			Bio:            gofakeit.Sentence(8),
			FriendRadius:   gofakeit.Number(1, 100),
		}
		if gofakeit.Bool() {
			photo := gofakeit.ImageURL(400, 400)
			user.Photo = &photo
		}
		users = append(users, user)
	}

	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createMessages(db *gorm.DB, users []models.User) (int, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	count := 0
	for i := range users {
		// A few messages per user to random other users, with timestamps
		// spread over the past two years.
		for n := 0; n < r.Intn(4)+1; n++ {
			to := users[r.Intn(len(users))]
			if to.Username == users[i].Username {
				continue
			}
			text := gofakeit.Sentence(10)
			if len(text) > models.MaxMessageLen {
				text = text[:models.MaxMessageLen]
			}
			msg := models.Message{
				Text:      text,
				Timestamp: gofakeit.DateRange(time.Now().AddDate(-2, 0, 0), time.Now()),
				FromUser:  users[i].Username,
				ToUser:    to.Username,
			}
			if err := db.Create(&msg).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func createFriendships(db *gorm.DB, users []models.User) (int, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	statuses := []models.FriendshipStatus{
		models.FriendshipStatusAccepted,
		models.FriendshipStatusAccepted,
		models.FriendshipStatusPending,
		models.FriendshipStatusRejected,
	}

	count := 0
	seen := map[[2]string]bool{}
	for i := range users {
		for n := 0; n < r.Intn(3)+1; n++ {
			to := users[r.Intn(len(users))]
			if to.Username == users[i].Username {
				continue
			}
			// One row per unordered pair keeps the friend set derivable
			// without duplicates.
			key := [2]string{users[i].Username, to.Username}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			friendship := models.Friendship{
				Sender:    users[i].Username,
				Recipient: to.Username,
				Status:    statuses[r.Intn(len(statuses))],
			}
			if err := db.Create(&friendship).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
