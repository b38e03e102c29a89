// Command admin_seed creates the owner account and the initial default fee
// rate. Run once against a fresh database.
package main

import (
	"context"
	"log"
	"os"

	"omnigate/internal/config"
	"omnigate/internal/models"
	"omnigate/internal/repositories"
	"omnigate/internal/services/rates"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	if ownerEmail == "" || ownerPassword == "" {
		log.Fatal("OWNER_EMAIL and OWNER_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err == nil {
				sqlDB.Close()
			}
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	var existingOwner models.User
	result := repositories.DB.Where("email = ?", ownerEmail).First(&existingOwner)
	if result.Error == nil {
		log.Println("Owner account already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	owner := models.User{
		Email:        ownerEmail,
		Password:     string(hashedPassword),
		Role:         "owner",
		TokenVersion: 1,
	}
	if err := repositories.DB.Create(&owner).Error; err != nil {
		log.Fatal("Failed to create owner account:", err)
	}

	defaultRate := rates.BasisPoints(config.GetUint64Env("DEFAULT_FEE_RATE_BPS", 0))
	rateRepo := repositories.NewFeeRateRepository(repositories.DB)
	rateService := rates.NewService(rateRepo, repositories.CacheService)

	claims := &models.UserClaims{
		UserID:      owner.ID,
		Email:       owner.Email,
		Role:        owner.Role,
		Permissions: models.GetDefaultPermissions(owner.Role),
	}
	if err := rateService.SetDefaultRate(context.Background(), claims, defaultRate); err != nil {
		log.Fatal("Failed to set default fee rate:", err)
	}

	log.Printf("Owner account created, default rate %d bp", defaultRate)
}
