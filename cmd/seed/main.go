// Command seed loads a set of sample records through the record service,
// for demos and manual testing. Re-running it is safe: saves are upserts.
package main

import (
	"context"
	"log"
	"time"

	"github.com/aadhaarseva/registry/internal/server"
	"github.com/aadhaarseva/registry/internal/server/config"
	"github.com/aadhaarseva/registry/internal/server/models"
	"github.com/aadhaarseva/registry/internal/server/repositories/repomanager"
	"github.com/aadhaarseva/registry/internal/server/services"
)

type sample struct {
	number, name, dob, gender, address, phone, email string
}

var samples = []sample{
	{"123456789012", "Rajesh Kumar", "1990-05-15", "Male",
		"123 Main Street, Sector 5, New Delhi, Delhi 110001", "9876543210", "rajesh.kumar@example.com"},
	{"234567890123", "Priya Sharma", "1992-08-22", "Female",
		"456 Park Avenue, Andheri West, Mumbai, Maharashtra 400053", "9876543211", "priya.sharma@example.com"},
	{"345678901234", "Amit Patel", "1988-12-10", "Male",
		"789 MG Road, Koramangala, Bangalore, Karnataka 560095", "9876543212", "amit.patel@example.com"},
	{"456789012345", "Sneha Reddy", "1995-03-18", "Female",
		"321 Brigade Road, HSR Layout, Bangalore, Karnataka 560102", "9876543213", "sneha.reddy@example.com"},
	{"567890123456", "Vikram Singh", "1987-07-25", "Male",
		"654 Connaught Place, Central Delhi, New Delhi, Delhi 110001", "9876543214", "vikram.singh@example.com"},
	{"678901234567", "Anjali Desai", "1993-11-30", "Female",
		"987 Marine Drive, Colaba, Mumbai, Maharashtra 400005", "9876543215", "anjali.desai@example.com"},
	{"789012345678", "Rahul Mehta", "1991-02-14", "Male",
		"147 Banjara Hills, Hyderabad, Telangana 500034", "9876543216", "rahul.mehta@example.com"},
	{"890123456789", "Kavita Nair", "1994-09-05", "Female",
		"258 Jubilee Hills, Hyderabad, Telangana 500033", "9876543217", "kavita.nair@example.com"},
}

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := server.OpenPool(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	svc := services.NewRecordService(db, rm)

	for _, s := range samples {
		dob, err := time.Parse("2006-01-02", s.dob)
		if err != nil {
			log.Fatalf("bad sample date %q: %v", s.dob, err)
		}
		rec := &models.Record{
			AadhaarNumber: s.number,
			Name:          s.name,
			DateOfBirth:   &dob,
			Gender:        &s.gender,
			Address:       &s.address,
			PhoneNumber:   &s.phone,
			Email:         &s.email,
		}
		saved, err := svc.Save(ctx, rec)
		if err != nil {
			log.Fatalf("saving %s: %v", s.number, err)
		}
		log.Printf("saved %s (%s)", saved.AadhaarNumber, saved.Name)
	}
	log.Printf("seeded %d records", len(samples))
}
