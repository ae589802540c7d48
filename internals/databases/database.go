package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolioku_backend/internals/configs"
	contactModel "portfolioku_backend/internals/features/portfolio/contact/model"
	profileModel "portfolioku_backend/internals/features/portfolio/profile/model"
	projectModel "portfolioku_backend/internals/features/portfolio/projects/model"
	skillModel "portfolioku_backend/internals/features/portfolio/skills/model"
	socialModel "portfolioku_backend/internals/features/portfolio/social_links/model"
	timelineModel "portfolioku_backend/internals/features/portfolio/timeline/model"
	tenantModel "portfolioku_backend/internals/features/templates/user_profiles/model"
	userModel "portfolioku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full DSN + statement_timeout. With PgBouncer keep PreferSimpleProtocol=true
	// and point host/port at the pooler.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=portfolioku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates the portfolio tables.
func Migrate() {
	if err := AutoMigrate(DB); err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}
	log.Println("✅ Migration done.")
}

// AutoMigrate is split out so tests can run it against their own DB handle.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&profileModel.ProfileModel{},
		&skillModel.SkillModel{},
		&timelineModel.ExperienceModel{},
		&timelineModel.EducationModel{},
		&projectModel.ProjectModel{},
		&socialModel.SocialLinkModel{},
		&tenantModel.UserProfileModel{},
		&contactModel.ContactMessageModel{},
	)
}

func WarmUpQueries() {
	// fire a light query so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
