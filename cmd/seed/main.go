package main

import (
	"log"
	"os"

	"hestia-console-be/internal/model"
	"hestia-console-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedFeature struct {
	feature     model.Feature
	subfeatures []model.Subfeature
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding default feature registry...")

	allRoles := datatypes.NewJSONSlice([]string{"ROOT", "ADMIN", "USER"})
	adminRoles := datatypes.NewJSONSlice([]string{"ROOT", "ADMIN"})

	seeds := []seedFeature{
		{
			feature: model.Feature{
				Code:         "dashboard",
				Name:         "Dashboard",
				Description:  "Landing overview of the console",
				Path:         "/dashboard",
				Enabled:      true,
				AllowedRoles: allRoles,
			},
		},
		{
			feature: model.Feature{
				Code:         "monitoring",
				Name:         "Monitoring",
				Description:  "Infrastructure monitoring",
				Path:         "/monitoring",
				Enabled:      true,
				AllowedRoles: adminRoles,
			},
			subfeatures: []model.Subfeature{
				{
					Code:         "monitoring-servers",
					Name:         "Servers",
					Path:         "/monitoring/servers",
					Enabled:      true,
					AllowedRoles: adminRoles,
				},
				{
					Code:         "monitoring-services",
					Name:         "Services",
					Path:         "/monitoring/services",
					Enabled:      true,
					AllowedRoles: adminRoles,
				},
			},
		},
		{
			feature: model.Feature{
				Code:         "admin-management",
				Name:         "Administration",
				Description:  "User and registry administration",
				Path:         "/admin",
				Enabled:      true,
				AllowedRoles: datatypes.NewJSONSlice([]string{"ROOT"}),
			},
		},
	}

	for _, s := range seeds {
		seedOne(db, s)
	}

	log.Println("Registry seeding completed!")
}

func seedOne(db *gorm.DB, s seedFeature) {
	var existing model.Feature
	err := db.Where("code = ?", s.feature.Code).First(&existing).Error
	if err == nil {
		log.Printf("Feature '%s' already exists, skipping...", s.feature.Code)
		seedSubfeatures(db, existing.Id, s.subfeatures)
		return
	}

	if err := db.Create(&s.feature).Error; err != nil {
		log.Printf("Error creating feature '%s': %v", s.feature.Code, err)
		return
	}
	log.Printf("Created feature: %s (%s)", s.feature.Name, s.feature.Code)
	seedSubfeatures(db, s.feature.Id, s.subfeatures)
}

func seedSubfeatures(db *gorm.DB, featureId uuid.UUID, subfeatures []model.Subfeature) {
	for _, sf := range subfeatures {
		var existing model.Subfeature
		if err := db.Where("code = ?", sf.Code).First(&existing).Error; err == nil {
			log.Printf("Subfeature '%s' already exists, skipping...", sf.Code)
			continue
		}

		sf.FeatureId = featureId
		if err := db.Create(&sf).Error; err != nil {
			log.Printf("Error creating subfeature '%s': %v", sf.Code, err)
		} else {
			log.Printf("Created subfeature: %s (%s)", sf.Name, sf.Code)
		}
	}
}
