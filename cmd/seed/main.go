package main

import (
	"context"
	"flag"
	"log"
	"time"

	"labclinics-service/internal/app/config"
	"labclinics-service/internal/app/drivers/database"
	"labclinics-service/internal/app/drivers/logger"
	"labclinics-service/internal/app/models"
	"labclinics-service/internal/app/services/core/auth"
	"labclinics-service/internal/app/services/core/doctors"
	"labclinics-service/internal/pkg/dto/requests"
	"labclinics-service/internal/pkg/utils"

	"github.com/brianvoe/gofakeit/v7"
)

var specialtyPool = []string{
	"Cardiología",
	"Clínica Médica",
	"Dermatología",
	"Ginecología",
	"Kinesiología",
	"Nutrición",
	"Oftalmología",
	"Pediatría",
	"Traumatología",
}

var branchPool = []string{"Centro", "Norte", "Sur"}

// Seeds the database with an admin account and a set of fake doctors for
// local development. Existing records are left untouched.
func main() {
	doctorCount := flag.Int("doctors", 25, "number of fake doctors to insert")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	seedAdmin(ctx, auth.NewUserMongoRepository(db, zapLogger))
	seedDoctors(ctx, doctors.NewDoctorMongoRepository(db, zapLogger), *doctorCount)

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Fatalf("Failed to disconnect from mongo database: %v", err)
	}
}

func seedAdmin(ctx context.Context, userRepository auth.UserRepository) {
	email := utils.GetEnvString("ADMIN_EMAIL", "admin@labclinics.local")
	password := utils.GetEnvString("ADMIN_PASSWORD", "admin1234")

	existing, err := userRepository.FindByEmail(ctx, email)
	if err != nil {
		log.Fatalf("Failed to look up admin user: %v", err)
	}
	if existing != nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	userID, err := userRepository.CreateUser(ctx, &models.User{
		Email:       email,
		Password:    hashed,
		DisplayName: "Administrador",
	})
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Created admin user %s (%s)", email, userID)
}

func seedDoctors(ctx context.Context, doctorRepository doctors.DoctorRepository, count int) {
	for i := 0; i < count; i++ {
		request := fakeDoctorRequest()
		utils.SanitizeUpsertDoctorRequest(request)

		doctorID, err := doctorRepository.CreateDoctor(ctx, doctors.BuildDoctorPayload(request))
		if err != nil {
			log.Fatalf("Failed to create doctor: %v", err)
		}
		log.Printf("Created doctor %s %s (%s)", request.FirstName, request.LastName, doctorID)
	}
}

func fakeDoctorRequest() *requests.UpsertDoctor {
	firstName := gofakeit.FirstName()
	lastName := gofakeit.LastName()
	specialty := specialtyPool[gofakeit.Number(0, len(specialtyPool)-1)]
	active := gofakeit.Number(0, 9) > 1

	return &requests.UpsertDoctor{
		FirstName:   firstName,
		LastName:    lastName,
		Phone:       gofakeit.Phone(),
		Profession:  "Médico/a",
		Specialties: []string{specialty},
		Treatments:  []string{gofakeit.HipsterWord(), gofakeit.HipsterWord()},
		Address:     gofakeit.Street(),
		Branch:      branchPool[gofakeit.Number(0, len(branchPool)-1)],
		Email:       gofakeit.Email(),
		About:       gofakeit.Sentence(12),
		Active:      &active,
		Priority:    gofakeit.Number(0, 5),
	}
}
