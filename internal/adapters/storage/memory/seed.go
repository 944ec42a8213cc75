package memory

import (
	"time"

	"vax-tracker/internal/domain/admin"
	"vax-tracker/internal/domain/calendar"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/domain/vaccinations"
	"vax-tracker/internal/ports/activity"
)

// Datos demo con los que arranca el backend in-memory.

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func stamp(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func stampPtr(s string) *time.Time {
	t := stamp(s)
	return &t
}

func SeedPets() []pets.Pet {
	return []pets.Pet{
		{
			ID:      "PET123456",
			Name:    "Buddy",
			Species: pets.SpeciesDog,
			Breed:   "Golden Retriever",
			Age:     "3 years",
			Gender:  pets.GenderMale,
			Color:   "Golden with white chest",
			Owner: pets.Owner{
				Name:    "Maria Santos",
				Address: "123 Main Street, Barangay 1, Municipality A",
				Contact: "+63 912 345 6789",
				Email:   "maria.santos@example.com",
			},
			RegistrationDate: date("2024-01-15"),
			Microchip:        "MC123456789",
			History: []pets.VaccinationEvent{
				{ID: "VAC-0001", Date: date("2025-02-15"), Vaccine: pets.VaccineRabies, BatchNo: "RV2025-001", Location: "Municipal Veterinary Office", Veterinarian: "Dr. Maria Cruz", NextDue: date("2026-02-15")},
				{ID: "VAC-0002", Date: date("2024-02-10"), Vaccine: pets.VaccineRabies, BatchNo: "RV2024-089", Location: "Barangay Health Center", Veterinarian: "Dr. Jose Santos", NextDue: date("2025-02-10")},
				{ID: "VAC-0003", Date: date("2023-03-20"), Vaccine: pets.VaccineRabies, BatchNo: "RV2023-045", Location: "Mobile Clinic", Veterinarian: "Dr. Ana Rodriguez", NextDue: date("2024-03-20")},
			},
			HealthNotes: []pets.HealthNote{
				{Date: date("2025-02-15"), Note: "Pet appeared healthy, no adverse reactions to vaccination."},
				{Date: date("2024-08-10"), Note: "Minor injury on left paw, healed well."},
			},
		},
		{
			ID:      "PET789012",
			Name:    "Luna",
			Species: pets.SpeciesCat,
			Breed:   "Persian",
			Age:     "2 years",
			Gender:  pets.GenderFemale,
			Color:   "White with gray patches",
			Owner: pets.Owner{
				Name:    "Jose Cruz",
				Address: "Barangay 2, Municipality A",
				Contact: "+63 987 654 3210",
			},
			RegistrationDate: date("2023-12-10"),
			History: []pets.VaccinationEvent{
				{ID: "VAC-0004", Date: date("2024-01-20"), Vaccine: pets.VaccineRabies, BatchNo: "RV2024-012", Location: "Barangay Health Center 1", Veterinarian: "Dr. Jose Santos", NextDue: date("2025-01-20")},
			},
		},
		{
			ID:      "PET345678",
			Name:    "Max",
			Species: pets.SpeciesDog,
			Breed:   "German Shepherd",
			Age:     "5 years",
			Gender:  pets.GenderMale,
			Color:   "Black and Tan",
			Owner: pets.Owner{
				Name:    "Ana Rodriguez",
				Address: "Barangay 3, Municipality B",
				Contact: "+63 923 456 7890",
			},
			RegistrationDate: date("2022-03-20"),
			History: []pets.VaccinationEvent{
				{ID: "VAC-0005", Date: date("2025-07-30"), Vaccine: pets.VaccineRabies3Year, BatchNo: "RV3Y-2025-05", Location: "Mobile Clinic - Barangay 3", Veterinarian: "Dr. Ana Rodriguez", NextDue: date("2028-07-30")},
			},
		},
		{
			ID:      "PET456789",
			Name:    "Whiskers",
			Species: pets.SpeciesCat,
			Breed:   "Tabby",
			Age:     "4 years",
			Gender:  pets.GenderMale,
			Color:   "Brown tabby with white chest",
			Owner: pets.Owner{
				Name:    "Carlos Mendoza",
				Address: "Barangay 1, Municipality A",
				Contact: "+63 934 567 8901",
			},
			RegistrationDate: date("2023-08-05"),
			History: []pets.VaccinationEvent{
				{ID: "VAC-0006", Date: date("2025-06-15"), Vaccine: pets.VaccineRabies, BatchNo: "RV2025-001", Location: "Barangay Health Center 2", Veterinarian: "Dr. Maria Cruz", NextDue: date("2026-06-15")},
			},
		},
		{
			ID:      "PET567890",
			Name:    "Bella",
			Species: pets.SpeciesDog,
			Breed:   "Labrador",
			Age:     "1 year",
			Gender:  pets.GenderFemale,
			Color:   "Black",
			Owner: pets.Owner{
				Name:    "Elena Reyes",
				Address: "Barangay 4, Municipality B",
				Contact: "+63 945 678 9012",
			},
			RegistrationDate: date("2024-11-20"),
			History: []pets.VaccinationEvent{
				// refuerzo adelantado por el veterinario
				{ID: "VAC-0007", Date: date("2024-12-10"), Vaccine: pets.VaccineRabies, BatchNo: "RV2024-098", Location: "Municipal Veterinary Office", Veterinarian: "Dr. Carlos Mendoza", NextDue: date("2025-08-25")},
			},
		},
	}
}

// SeedDailyRecords es el registro "Vaccinated Today" demo, fechado en day.
func SeedDailyRecords(day time.Time) []vaccinations.DailyRecord {
	day = pets.Day(day)
	return []vaccinations.DailyRecord{
		{ID: "DLY-0001", Date: day, Time: "08:30 AM", PetID: "PET123456", PetName: "Buddy", PetSpecies: "Dog", PetBreed: "Golden Retriever", Owner: "Maria Santos", OwnerContact: "+63 912 345 6789", VaccineType: pets.VaccineRabies, BatchNo: "RV2025-001", Location: "Municipal Veterinary Office", Municipality: "Municipality A", Veterinarian: "Dr. Maria Cruz", Status: vaccinations.StatusCompleted, Notes: "No adverse reactions observed"},
		{ID: "DLY-0002", Date: day, Time: "09:15 AM", PetID: "PET789012", PetName: "Luna", PetSpecies: "Cat", PetBreed: "Persian", Owner: "Jose Cruz", OwnerContact: "+63 987 654 3210", VaccineType: pets.VaccineRabies, BatchNo: "RV2025-001", Location: "Barangay Health Center 1", Municipality: "Municipality A", Veterinarian: "Dr. Jose Santos", Status: vaccinations.StatusCompleted, Notes: "Pet was calm during procedure"},
		{ID: "DLY-0003", Date: day, Time: "10:00 AM", PetID: "PET345678", PetName: "Max", PetSpecies: "Dog", PetBreed: "German Shepherd", Owner: "Ana Rodriguez", OwnerContact: "+63 923 456 7890", VaccineType: pets.VaccineRabies3Year, BatchNo: "RV3Y-2025-05", Location: "Mobile Clinic - Barangay 3", Municipality: "Municipality B", Veterinarian: "Dr. Ana Rodriguez", Status: vaccinations.StatusCompleted, Notes: "Large dog, vaccination successful"},
		{ID: "DLY-0004", Date: day, Time: "11:30 AM", PetID: "PET456789", PetName: "Whiskers", PetSpecies: "Cat", PetBreed: "Tabby", Owner: "Carlos Mendoza", OwnerContact: "+63 934 567 8901", VaccineType: pets.VaccineRabies, BatchNo: "RV2025-001", Location: "Barangay Health Center 2", Municipality: "Municipality A", Veterinarian: "Dr. Maria Cruz", Status: vaccinations.StatusCompleted, Notes: "First vaccination for this pet"},
		{ID: "DLY-0005", Date: day, Time: "02:00 PM", PetID: "PET567890", PetName: "Bella", PetSpecies: "Dog", PetBreed: "Labrador", Owner: "Elena Reyes", OwnerContact: "+63 945 678 9012", VaccineType: pets.VaccineRabies, BatchNo: "RV2025-002", Location: "Municipal Veterinary Office", Municipality: "Municipality B", Veterinarian: "Dr. Carlos Mendoza", Status: vaccinations.StatusInProgress, Notes: "Currently being processed"},
		{ID: "DLY-0006", Date: day, Time: "02:45 PM", PetID: "PET678901", PetName: "Rocky", PetSpecies: "Dog", PetBreed: "Mixed Breed", Owner: "Roberto Silva", OwnerContact: "+63 956 789 0123", VaccineType: pets.VaccineRabies, BatchNo: "RV2025-002", Location: "Mobile Clinic - Barangay 4", Municipality: "Municipality B", Veterinarian: "Dr. Ana Rodriguez", Status: vaccinations.StatusScheduled, Notes: "Appointment scheduled for 2:45 PM"},
	}
}

func SeedUsers() []admin.User {
	return []admin.User{
		{ID: "USR-0001", Name: "Dr. Maria Cruz", Email: "maria.cruz@example.com", Role: admin.UserRoleVeterinarian, Municipality: "Municipality 1", Status: admin.UserActive, LastLogin: stampPtr("2025-08-05 14:30:00")},
		{ID: "USR-0002", Name: "Jose Santos", Email: "jose.santos@example.com", Role: admin.UserRoleAdmin, Municipality: "All", Status: admin.UserActive, LastLogin: stampPtr("2025-08-05 09:15:00")},
		{ID: "USR-0003", Name: "Ana Rodriguez", Email: "ana.rodriguez@example.com", Role: admin.UserRoleVaccinator, Municipality: "Municipality 2", Status: admin.UserInactive, LastLogin: stampPtr("2025-08-03 16:45:00")},
	}
}

func SeedVaccines() []admin.Vaccine {
	return []admin.Vaccine{
		{ID: "VCN-0001", Name: pets.VaccineRabies, Type: admin.VaccineInjectable, Manufacturer: "VetPharma Inc.", Quantity: 150, BatchNo: "RV2025-001", ExpiryDate: date("2026-12-31")},
		{ID: "VCN-0002", Name: pets.VaccineRabies3Year, Type: admin.VaccineInjectable, Manufacturer: "MedVet Solutions", Quantity: 75, BatchNo: "RV3Y-2025-05", ExpiryDate: date("2027-06-30")},
		{ID: "VCN-0003", Name: pets.VaccineRabies, Type: admin.VaccineInjectable, Manufacturer: "VetPharma Inc.", Quantity: 25, BatchNo: "RV2024-098", ExpiryDate: date("2025-09-15")},
	}
}

// SeedLogs va en orden de inserción (más viejo primero).
func SeedLogs() []admin.LogEntry {
	return []admin.LogEntry{
		{ID: "LOG-0005", Timestamp: stamp("2025-08-04 23:30:00"), Action: "Vaccine Expiry Alert", User: "System", Details: "Vaccine batch RV2024-098 expires in 45 days", Severity: activity.SeverityWarning},
		{ID: "LOG-0004", Timestamp: stamp("2025-08-05 08:45:12"), Action: admin.ActionDataBackup, User: "System", Details: "Automated daily backup completed", Severity: activity.SeveritySuccess},
		{ID: "LOG-0003", Timestamp: stamp("2025-08-05 09:15:43"), Action: activity.ActionUserLogin, User: "Jose Santos", Details: "Admin user logged in successfully", Severity: activity.SeverityInfo},
		{ID: "LOG-0002", Timestamp: stamp("2025-08-05 14:30:22"), Action: activity.ActionVaccinationRecord, User: "Dr. Maria Cruz", Details: "Recorded vaccination for Luna (PET789012)", Severity: activity.SeverityInfo},
		{ID: "LOG-0001", Timestamp: stamp("2025-08-05 14:32:15"), Action: activity.ActionPetRegistration, User: "Dr. Maria Cruz", Details: "Registered new pet: Buddy (PET123456)", Severity: activity.SeverityInfo},
	}
}

func SeedCalendarEvents() []calendar.Event {
	return []calendar.Event{
		{ID: "EVT-0001", Title: "Community Vaccination Drive", Location: "Barangay San Jose", Date: date("2025-08-08"), StartTime: "08:00", EndTime: "17:00", Type: calendar.TypeDrive, ExpectedPets: 150, RegisteredPets: 89},
		{ID: "EVT-0002", Title: "School Vaccination Program", Location: "Barangay Santa Cruz Elementary", Date: date("2025-08-10"), StartTime: "09:00", EndTime: "16:00", Type: calendar.TypeProgram, ExpectedPets: 75, RegisteredPets: 45},
		{ID: "EVT-0003", Title: "Mobile Clinic Visit", Location: "Barangay Del Pilar", Date: date("2025-08-12"), StartTime: "08:30", EndTime: "17:30", Type: calendar.TypeMobile, ExpectedPets: 200, RegisteredPets: 167},
		{ID: "EVT-0004", Title: "Pet Wellness Check", Location: "Municipal Veterinary Office", Date: date("2025-08-05"), StartTime: "14:00", EndTime: "16:00", Type: calendar.TypeCheckup, ExpectedPets: 25, RegisteredPets: 23},
		{ID: "EVT-0005", Title: "Emergency Vaccination", Location: "Barangay 1", Date: date("2025-08-06"), StartTime: "10:00", EndTime: "12:00", Type: calendar.TypeEmergency, ExpectedPets: 15, RegisteredPets: 12},
	}
}
