package main

import (
	"log"

	"github.com/Userdead-19/labs-cse/internal/database"
	"github.com/Userdead-19/labs-cse/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("labs.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Lab{},
		&domain.Booking{},
		&domain.ExamPeriod{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM exam_periods")
	db.Exec("DELETE FROM labs")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	users := []struct {
		email    string
		password string
		name     string
		role     domain.UserRole
		year     int
	}{
		{"admin@labs.edu", "admin123", "Lab Administrator", domain.RoleAdmin, 0},
		{"smith@labs.edu", "teacher123", "Dr. Smith", domain.RoleTeacher, 0},
		{"coordinator@labs.edu", "coord123", "Year 2 Coordinator", domain.RoleYearCoordinator, 2},
		{"student1@labs.edu", "student123", "Alex Kim", domain.RoleStudent, 1},
		{"student2@labs.edu", "student123", "Priya Raman", domain.RoleStudent, 3},
	}

	byEmail := make(map[string]int64)
	for _, u := range users {
		hash, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		row := domain.User{
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
			YearGroup:    u.year,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatal("user seed failed:", err)
		}
		byEmail[u.email] = row.ID
	}

	// ================== LABS ==================
	log.Println("Creating labs...")

	weekHours := map[string]domain.OpeningHours{
		"monday":    {Open: "08:00", Close: "20:00"},
		"tuesday":   {Open: "08:00", Close: "20:00"},
		"wednesday": {Open: "08:00", Close: "20:00"},
		"thursday":  {Open: "08:00", Close: "20:00"},
		"friday":    {Open: "08:00", Close: "18:00"},
		"saturday":  {Open: "09:00", Close: "13:00"},
		"sunday":    {},
	}

	labs := []domain.Lab{
		{
			Name:         "Programming Lab 1",
			Location:     "Ground Floor",
			Building:     "CSE Block A",
			Capacity:     60,
			Description:  "General purpose programming lab with dual-boot workstations",
			Equipment:    []string{"60 workstations", "projector", "whiteboard"},
			OpeningHours: weekHours,
			Status:       domain.LabOperational,
		},
		{
			Name:         "Networks Lab",
			Location:     "First Floor",
			Building:     "CSE Block A",
			Capacity:     40,
			Description:  "Routers, switches and patch panels for networking coursework",
			Equipment:    []string{"40 workstations", "router rack", "packet analyzers"},
			OpeningHours: weekHours,
			Status:       domain.LabOperational,
		},
		{
			Name:         "Hardware Lab",
			Location:     "Second Floor",
			Building:     "CSE Block B",
			Capacity:     30,
			Description:  "Microcontroller and digital electronics bench lab",
			Equipment:    []string{"30 benches", "oscilloscopes", "soldering stations"},
			OpeningHours: weekHours,
			Status:       domain.LabMaintenance,
		},
	}

	for i := range labs {
		if err := db.Create(&labs[i]).Error; err != nil {
			log.Fatal("lab seed failed:", err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	bookings := []domain.Booking{
		{
			LabID:        labs[0].ID,
			Date:         "2026-09-14",
			StartTime:    "09:00",
			EndTime:      "11:00",
			Title:        "Data Structures Lab Session",
			Purpose:      "Weekly practical for CS201",
			UserID:       byEmail["smith@labs.edu"],
			UserName:     "Dr. Smith",
			StudentCount: 55,
			Equipment:    "Projector",
			Status:       domain.BookingApproved,
			YearGroup:    2,
		},
		{
			LabID:        labs[0].ID,
			Date:         "2026-09-14",
			StartTime:    "11:00",
			EndTime:      "13:00",
			Title:        "Open Practice Slot",
			Purpose:      "Self-study before mid-terms",
			UserID:       byEmail["student1@labs.edu"],
			UserName:     "Alex Kim",
			StudentCount: 20,
			Status:       domain.BookingPending,
			YearGroup:    1,
		},
		{
			LabID:        labs[1].ID,
			Date:         "2026-09-15",
			StartTime:    "14:00",
			EndTime:      "16:00",
			Title:        "Routing Protocols Practical",
			Purpose:      "OSPF configuration exercise",
			UserID:       byEmail["smith@labs.edu"],
			UserName:     "Dr. Smith",
			StudentCount: 38,
			Status:       domain.BookingPending,
			YearGroup:    3,
		},
	}

	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			log.Fatal("booking seed failed:", err)
		}
	}

	// ================== EXAM PERIODS ==================
	log.Println("Creating exam periods...")

	period := domain.ExamPeriod{
		Name:           "Semester 1 Finals",
		StartDate:      "2026-12-07",
		EndDate:        "2026-12-18",
		YearGroup:      2,
		AffectedLabIDs: []int64{labs[0].ID, labs[1].ID},
		IsActive:       false,
	}
	if err := db.Create(&period).Error; err != nil {
		log.Fatal("exam period seed failed:", err)
	}

	log.Println("Seed complete.")
}
