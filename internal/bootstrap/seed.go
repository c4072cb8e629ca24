package bootstrap

import (
	"log"

	"anoa.com/binbeacon/internal/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.House{},
		&entity.User{},
		&entity.ResidentProfile{},
		&entity.CollectorProfile{},
		&entity.AuthorityProfile{},
		&entity.OverflowReport{},
		&entity.SegregationViolation{},
		&entity.CollectionRecord{},
		&entity.Tip{},
		&entity.Feedback{},
		&entity.Broadcast{},
		&entity.Chat{},
		&entity.TrainingModule{},
		&entity.TrainingQuestion{},
		&entity.TrainingProgress{},
		&entity.DistributeRequest{},
		&entity.TruckRoute{},
		&entity.Attendance{},
	)
}

type seedQuestion struct {
	text    string
	options [3]string
	correct int
}

type seedModule struct {
	slug             string
	title            string
	shortTitle       string
	description      string
	audience         string
	level            string
	estimatedMinutes int
	videoSrc         string
	questions        []seedQuestion
}

var trainingModules = []seedModule{
	{
		slug:             "types-of-waste",
		shortTitle:       "Types of Waste",
		title:            "Understanding Types of Waste & Segregation",
		description:      "Learn the difference between wet, dry, and hazardous waste, and how to separate them correctly at home.",
		audience:         entity.TrainingAudienceResident,
		level:            "basic",
		estimatedMinutes: 3,
		videoSrc:         "/videos/module1-waste-types.mp4",
		questions: []seedQuestion{
			{"Vegetable peels and leftover food should go into:", [3]string{"Dry waste bin", "Wet waste bin", "Hazardous waste bin"}, 1},
			{"Plastic bottles should go into:", [3]string{"Wet waste bin", "Dry waste bin", "Hazardous waste bin"}, 1},
			{"Used batteries and sanitary pads are:", [3]string{"Normal dry waste", "Wet waste", "Domestic hazardous waste"}, 2},
		},
	},
	{
		slug:             "home-composting",
		shortTitle:       "Home Composting",
		title:            "Basics of Home Composting",
		description:      "Understand what a compost kit is, what can go into compost, and how it reduces landfill waste.",
		audience:         entity.TrainingAudienceResident,
		level:            "basic",
		estimatedMinutes: 3,
		videoSrc:         "/videos/module2-composting.mp4",
		questions: []seedQuestion{
			{"Composting mainly uses:", [3]string{"Plastic waste", "Kitchen wet waste", "E-waste"}, 1},
			{"Compost can be used as:", [3]string{"Fertilizer for plants", "Plastic bags", "Drinking water"}, 0},
			{"Which of these should NOT go into compost?", [3]string{"Vegetable peels", "Cooked rice", "Batteries"}, 2},
		},
	},
	{
		slug:             "responsible-disposal",
		shortTitle:       "Responsible Disposal",
		title:            "Responsible Waste Disposal & Community Cleanliness",
		description:      "Learn what not to do: no open dumping, no burning, and how to keep your street and ward clean.",
		audience:         entity.TrainingAudienceResident,
		level:            "basic",
		estimatedMinutes: 2,
		videoSrc:         "/videos/module3-responsible-disposal.mp4",
		questions: []seedQuestion{
			{"Burning waste in open areas:", [3]string{"Is a good way to reduce volume", "Causes air pollution and is harmful", "Is always allowed"}, 1},
			{"Throwing waste in drains can cause:", [3]string{"Nothing special", "Blockages and flooding", "Road repair"}, 1},
			{"Who is responsible for keeping the street clean?", [3]string{"Only the collector", "Only the municipality", "Every resident plus the municipal workers"}, 2},
		},
	},
	{
		slug:             "rules-and-beacon-score",
		shortTitle:       "Rules & Beacon Score",
		title:            "Local Rules, Penalties & Beacon Score",
		description:      "Understand how Beacon Score works, what penalties apply, and how you can earn a better score and rewards.",
		audience:         entity.TrainingAudienceResident,
		level:            "basic",
		estimatedMinutes: 2,
		videoSrc:         "/videos/module4-rules-beacon-score.mp4",
		questions: []seedQuestion{
			{"Beacon Score represents:", [3]string{"Your electricity usage", "How responsibly you manage your waste", "Your income"}, 1},
			{"If you frequently mix wet and dry waste, your Beacon Score will:", [3]string{"Increase", "Stay same", "Decrease"}, 2},
			{"A good Beacon Score can lead to:", [3]string{"Incentives/recognition", "More penalties", "No effect at all"}, 0},
		},
	},
	{
		slug:             "worker-safety",
		shortTitle:       "Worker Safety",
		title:            "Safety & PPE for Waste Workers",
		description:      "Learn how to use gloves, masks, boots, and other PPE correctly to avoid injuries and infections while working.",
		audience:         entity.TrainingAudienceCollector,
		level:            "basic",
		estimatedMinutes: 3,
		videoSrc:         "/videos/collector-module1-safety.mp4",
		questions: []seedQuestion{
			{"Why should you always wear gloves while handling waste?", [3]string{"To look professional", "To protect your hands from germs and sharp objects", "To work faster"}, 1},
			{"Which of these is part of a PPE kit?", [3]string{"Shoes only", "Mask, gloves, boots, jacket", "Cap"}, 1},
			{"If your PPE is damaged, you should:", [3]string{"Ignore it and continue working", "Immediately report and request replacement", "Give it to a resident"}, 1},
		},
	},
	{
		slug:             "sop-collection",
		shortTitle:       "Collection SOP",
		title:            "Standard Operating Procedure for Collection",
		description:      "Understand the step-by-step process for safe door-to-door collection, handling segregated waste, and using BinBeacon.",
		audience:         entity.TrainingAudienceCollector,
		level:            "basic",
		estimatedMinutes: 3,
		videoSrc:         "/videos/collector-module2-sop.mp4",
		questions: []seedQuestion{
			{"When a house gives mixed waste (not segregated), you should:", [3]string{"Quietly take it away", "Throw it on the street", "Inform them politely and report via the app if repeated"}, 2},
			{"Which waste should be kept separate during collection?", [3]string{"Wet and dry only", "Hazardous waste separately", "All of the above (wet, dry, hazardous)"}, 2},
			{"What should you do if you see overflow on the street during your route?", [3]string{"Ignore it", "Report it as an overflow issue in BinBeacon", "Wait for someone else to report"}, 1},
		},
	},
	{
		slug:             "dignity-rights",
		shortTitle:       "Dignity & Rights",
		title:            "Dignity, Rights & Welfare of Sanitation Workers",
		description:      "Know your rights, welfare schemes, and how BinBeacon supports safer and more dignified working conditions.",
		audience:         entity.TrainingAudienceCollector,
		level:            "basic",
		estimatedMinutes: 2,
		videoSrc:         "/videos/collector-module3-rights.mp4",
		questions: []seedQuestion{
			{"Waste work should be done with:", [3]string{"Shame", "Dignity and respect", "Silence only"}, 1},
			{"If you face harassment or unsafe conditions, you should:", [3]string{"Keep quiet", "Immediately inform your supervisor/authority", "Stop coming to work"}, 1},
			{"Government and ULBs should provide:", [3]string{"Only salary", "No support", "PPE, training, and health support"}, 2},
		},
	},
}

// SeedTrainingModules inserts the awareness modules, keyed by slug so reseeds
// are idempotent. Existing modules are left untouched to preserve progress
// rows.
func SeedTrainingModules(db *gorm.DB) error {
	for _, m := range trainingModules {
		var count int64
		if err := db.Model(&entity.TrainingModule{}).
			Where("slug = ?", m.slug).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		module := entity.TrainingModule{
			Slug:             m.slug,
			Title:            m.title,
			ShortTitle:       m.shortTitle,
			Description:      m.description,
			Audience:         m.audience,
			Level:            m.level,
			EstimatedMinutes: m.estimatedMinutes,
			VideoSrc:         m.videoSrc,
		}
		for i, q := range m.questions {
			module.Questions = append(module.Questions, entity.TrainingQuestion{
				Position:     i + 1,
				Text:         q.text,
				OptionA:      q.options[0],
				OptionB:      q.options[1],
				OptionC:      q.options[2],
				CorrectIndex: q.correct,
			})
		}

		if err := db.Create(&module).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedDemoUsers creates one login per role for local development.
func SeedDemoUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).
		Where("phone = ?", "9000000001").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Demo users already exist, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	house := entity.House{
		WardNumber:  "WARD-1",
		HouseNumber: "101",
		HouseCode:   "WARD-DEMO-101",
		Address:     "Residence - Delhi",
		Lat:         28.6139,
		Lng:         77.209,
		BeaconScore: 80,
	}
	if err := db.Create(&house).Error; err != nil {
		return err
	}

	resident := entity.User{
		Name:         "Demo Resident",
		Phone:        "9000000001",
		PasswordHash: string(hash),
		Role:         entity.RoleResident,
		HouseID:      &house.ID,
	}
	if err := db.Create(&resident).Error; err != nil {
		return err
	}
	if err := db.Create(&entity.ResidentProfile{
		UserID:      resident.ID,
		DoorNumber:  "101",
		Address:     "Residence - Delhi",
		BeaconScore: 80,
		IsAvailable: true,
	}).Error; err != nil {
		return err
	}

	collector := entity.User{
		Name:         "Demo Collector",
		Phone:        "9000000002",
		PasswordHash: string(hash),
		Role:         entity.RoleCollector,
	}
	if err := db.Create(&collector).Error; err != nil {
		return err
	}
	if err := db.Create(&entity.CollectorProfile{
		UserID:       collector.ID,
		EmployeeID:   "EMP-001",
		AreaAssigned: "WARD-1",
	}).Error; err != nil {
		return err
	}

	authority := entity.User{
		Name:         "Demo Authority",
		Phone:        "9000000003",
		PasswordHash: string(hash),
		Role:         entity.RoleAuthority,
	}
	if err := db.Create(&authority).Error; err != nil {
		return err
	}
	if err := db.Create(&entity.AuthorityProfile{
		UserID:        authority.ID,
		AuthorityName: "Demo Authority",
		EmployeeID:    "AUTH-001",
		Email:         "authority@binbeacon.local",
	}).Error; err != nil {
		return err
	}

	log.Println("Demo users seeded (phones 9000000001-3, password: password123)")
	return nil
}
