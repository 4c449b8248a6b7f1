package seed

import (
	"log"

	"creel/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a demo social mesh.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded content, children before parents.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.PostCommentReply{},
		&models.PostComment{},
		&models.PostImage{},
		&models.Post{},
		&models.Profile{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedSocialMesh creates numUsers users and numPosts posts with a spread of
// comments and replies, so listings, search and the score ledger all have
// something to show.
func (s *Seeder) SeedSocialMesh(numUsers, numPosts int) error {
	log.Printf("Seeding %d users and %d posts...", numUsers, numPosts)

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rnd.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return err
		}
		posts = append(posts, post)
	}

	for _, post := range posts {
		for i := 0; i < s.factory.rnd.Intn(4); i++ {
			commenter := users[s.factory.rnd.Intn(len(users))]
			comment, err := s.factory.CreateComment(post, commenter)
			if err != nil {
				return err
			}
			for j := 0; j < s.factory.rnd.Intn(3); j++ {
				replier := users[s.factory.rnd.Intn(len(users))]
				if _, err := s.factory.CreateReply(comment, replier); err != nil {
					return err
				}
			}
		}
	}

	// Backfill the ledger so seeded profiles carry the experience their
	// content would have earned.
	return s.backfillExperience()
}

// backfillExperience recomputes each profile's experience and level from
// the content counts in one statement per profile.
func (s *Seeder) backfillExperience() error {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return err
	}
	for _, user := range users {
		var postCount, commentCount int64
		if err := s.db.Model(&models.Post{}).Where("user_id = ?", user.ID).Count(&postCount).Error; err != nil {
			return err
		}
		if err := s.db.Model(&models.PostComment{}).Where("user_id = ?", user.ID).Count(&commentCount).Error; err != nil {
			return err
		}
		experience := int(postCount)*100 + int(commentCount)*50
		err := s.db.Model(&models.Profile{}).
			Where("user_id = ?", user.ID).
			Updates(map[string]any{
				"experience": experience,
				"level":      experience / models.ExperiencePerLevel,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
