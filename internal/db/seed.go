package db

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-smartmatch/internal/logger"
)

const seedUserCount = 20

var (
	seedInterests = []string{
		"hiking", "reading", "gaming", "cooking", "travel", "jazz", "climbing",
		"photography", "yoga", "football", "film", "coffee", "running", "art",
	}

	seedBios = []string{
		"Weekend hiker, coffee snob and amateur photographer.",
		"Bookworm who cooks too much pasta and plays jazz piano.",
		"Climbing walls by day, gaming by night.",
		"Travelling whenever I can; film photography on the side.",
		"Runner, yoga teacher, espresso enthusiast.",
		"Street football, art galleries and long walks.",
	}

	// city centres the seed scatters profiles around
	seedCities = [][2]float64{
		{51.5074, -0.1278}, // London
		{53.4808, -2.2426}, // Manchester
		{52.4862, -1.8904}, // Birmingham
	}
)

// SeedTestData resets the database and populates it with demo profiles,
// decisions and blocks.
//
// Behavior:
//  1. Clears existing data in all tables.
//  2. Creates 20 users (10 male, 10 female) with interests, bios and
//     coordinates. Every 4th profile is left incomplete (no bio, no location)
//     so the degraded scoring paths are exercised.
//  3. Generates ~100 decisions with ~70% likes and a couple of blocks.
//
// Compatible with MySQL, Postgres and SQLite.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	log := logger.With("component", "seed")

	// --- Fresh start ---
	for _, table := range []string{"compatibility_scores", "blocks", "decisions", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	// Reset auto-increment sequences
	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
	case "postgres":
		db.Exec("ALTER SEQUENCE users_id_seq RESTART WITH 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
	}
	log.Info("cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// --- Seed Users ---
	now := time.Now().UTC()
	ids := make([]uint64, 0, seedUserCount)
	genders := make(map[uint64]string, seedUserCount)
	for i := 1; i <= seedUserCount; i++ {
		gender := "male"
		if i > seedUserCount/2 {
			gender = "female"
		}

		user := User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Gender:       gender,
			Active:       true,
			LastLoginAt:  now.Add(-time.Duration(r.Intn(500)) * time.Hour),
			Interests:    strings.Join(pickInterests(r, 2+r.Intn(4)), ","),
		}
		lastActive := now.Add(-time.Duration(r.Intn(24*40)) * time.Hour)
		user.LastActiveAt = &lastActive

		if i%4 != 0 {
			city := seedCities[r.Intn(len(seedCities))]
			lat := city[0] + (r.Float64()-0.5)*0.4
			lon := city[1] + (r.Float64()-0.5)*0.4
			user.Latitude, user.Longitude = &lat, &lon
			user.Bio = seedBios[r.Intn(len(seedBios))]
		}

		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		ids = append(ids, user.ID)
		genders[user.ID] = gender
	}
	log.Info("seeded users", "count", len(ids))

	// --- Seed Decisions ---
	decisions := 0
	for _, actorID := range ids {
		for j := 0; j < 5; j++ {
			recipientID := ids[r.Intn(len(ids))]
			if actorID == recipientID || genders[actorID] == genders[recipientID] {
				continue
			}
			decision := Decision{
				ActorID:     actorID,
				RecipientID: recipientID,
				Liked:       r.Intn(100) < 70, // like probability 70%
			}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
			}).Create(&decision).Error; err != nil {
				return fmt.Errorf("failed to seed decision: %w", err)
			}
			decisions++
		}
	}

	// --- Seed Blocks ---
	blocks := []Block{
		{BlockerID: ids[0], BlockedID: ids[len(ids)-1]},
		{BlockerID: ids[len(ids)/2], BlockedID: ids[1]},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&blocks).Error; err != nil {
		return fmt.Errorf("failed to seed blocks: %w", err)
	}

	log.Info("seeded relations", "decisions", decisions, "blocks", len(blocks))
	return nil
}

func pickInterests(r *rand.Rand, n int) []string {
	perm := r.Perm(len(seedInterests))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, seedInterests[idx])
	}
	return out
}
