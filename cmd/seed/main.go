package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"campusfm/internal/database"
	"campusfm/internal/domain"
	"campusfm/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "campusfm.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Department{},
		&domain.Room{},
		&domain.Equipment{},
		&domain.ScheduleEntry{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	lendingRepo := repository.NewLendingRepository(db)
	if err := lendingRepo.Migrate(); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_equipment")
	db.Exec("DELETE FROM equipment_bookings")
	db.Exec("DELETE FROM checkout_items")
	db.Exec("DELETE FROM checkouts")
	db.Exec("DELETE FROM lending_items")
	db.Exec("DELETE FROM lendings")
	db.Exec("DELETE FROM schedule_entries")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM departments")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@campusfm.edu",
		PasswordHash: string(adminHash),
		Name:         "Facility Admin",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@campusfm.edu / admin123")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := domain.User{
		Email:        "aigerim@campusfm.edu",
		PasswordHash: string(staffHash),
		Name:         "Aigerim Seidakhmetova",
		Role:         domain.RoleStaff,
	}
	db.Create(&staff)

	// ================== DEPARTMENTS ==================
	log.Println("Creating departments...")

	cs := domain.Department{Name: "Computer Science", Code: "CS"}
	ee := domain.Department{Name: "Electrical Engineering", Code: "EE"}
	db.Create(&cs)
	db.Create(&ee)

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	rooms := []domain.Room{
		{Name: "Lab A-1", Code: "LA1", Capacity: 24, DepartmentID: &cs.ID},
		{Name: "Lab A-2", Code: "LA2", Capacity: 20, DepartmentID: &cs.ID},
		{Name: "Lecture Hall B", Code: "LHB", Capacity: 120, DepartmentID: &ee.ID},
		{Name: "Seminar Room 3", Code: "SR3", Capacity: 16},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== SCHEDULE ==================
	log.Println("Creating schedule entries...")

	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)

	// "lab a.1" resolves to the same room as "Lab A-1" through the
	// normalized join key.
	entries := []domain.ScheduleEntry{
		{
			Kind:      domain.ScheduleLecture,
			RoomName:  "lab a.1",
			DayOfWeek: int(today.Weekday()),
			StartTime: "09:00",
			EndTime:   "10:30",
			Activity:  "Operating Systems",
		},
		{
			Kind:      domain.ScheduleLecture,
			RoomName:  "Lecture Hall B",
			DayOfWeek: int(today.Weekday()),
			StartTime: "11:00",
			EndTime:   "12:30",
			Activity:  "Circuit Theory",
		},
		{
			Kind:      domain.ScheduleExam,
			RoomName:  "Lab A-2",
			DayOfWeek: int(tomorrow.Weekday()),
			Date:      &tomorrow,
			StartTime: "14:00",
			EndTime:   "16:00",
			Activity:  "Databases Midterm",
		},
		{
			Kind:      domain.ScheduleDefense,
			RoomName:  "Seminar Room 3",
			DayOfWeek: int(today.Weekday()),
			Date:      &today,
			StartTime: "15:00",
			EndTime:   "17:00",
			Activity:  "Thesis Defense",
		},
	}
	for i := range entries {
		db.Create(&entries[i])
	}

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")

	items := []domain.Equipment{
		{Name: "Projector Epson EB-X06", Code: "PRJ-01", Category: "projector", Quantity: 5, Unit: "pcs", Condition: domain.ConditionGood, IsAvailable: true, RoomID: &rooms[0].ID},
		{Name: "Oscilloscope Rigol DS1054", Code: "OSC-01", Category: "lab", Quantity: 8, Unit: "pcs", Condition: domain.ConditionGood, IsAvailable: true, RoomID: &rooms[1].ID},
		{Name: "HDMI Cable 3m", Code: "CBL-01", Category: "cable", Quantity: 20, Unit: "pcs", Condition: domain.ConditionGood, IsAvailable: true},
	}
	for i := range items {
		db.Create(&items[i])
	}

	// ================== LENDINGS ==================
	log.Println("Creating lendings...")

	lending := domain.Lending{
		BorrowerID: staff.ID,
		BorrowDate: today.AddDate(0, 0, -3),
		Note:       "Robotics workshop",
		Items: []domain.LendingItem{
			{EquipmentID: items[0].ID, Quantity: 2},
			{EquipmentID: items[2].ID, Quantity: 4},
		},
	}
	if err := lendingRepo.CreateLending(ctx, &lending); err != nil {
		log.Fatal("seed lending failed:", err)
	}

	// Partial return: one projector still out, all cables back.
	checkout := domain.Checkout{
		LendingID: lending.ID,
		Reference: "seed-checkout-1",
		Status:    domain.CheckoutActive,
		Items: []domain.CheckoutItem{
			{EquipmentID: items[0].ID, ReturnedQty: 1},
			{EquipmentID: items[2].ID, ReturnedQty: 4},
		},
	}
	if err := lendingRepo.CreateCheckout(ctx, &checkout); err != nil {
		log.Fatal("seed checkout failed:", err)
	}

	booking := domain.EquipmentBooking{
		BorrowerID:   staff.ID,
		RoomName:     "Lab A-2",
		StartTime:    tomorrow.Add(9 * time.Hour),
		EndTime:      tomorrow.Add(11 * time.Hour),
		Status:       domain.BookingApproved,
		EquipmentIDs: []int64{items[1].ID},
	}
	if err := lendingRepo.CreateBooking(ctx, &booking); err != nil {
		log.Fatal("seed booking failed:", err)
	}

	log.Println("Seed complete.")
}
